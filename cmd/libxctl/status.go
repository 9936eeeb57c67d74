package main

import (
	"github.com/spf13/cobra"

	"github.com/joshuapare/libx/status"
)

func init() {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "List status codes and their descriptions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStatus()
		},
	})
}

type statusEntry struct {
	Code        int    `json:"code"`
	Description string `json:"description"`
	Error       string `json:"error,omitempty"`
}

func runStatus() error {
	codes := status.Codes()
	entries := make([]statusEntry, 0, len(codes))
	for _, c := range codes {
		ent := statusEntry{Code: int(c), Description: status.Describe(c)}
		if err := c.Err(); err != nil {
			ent.Error = err.Error()
		}
		entries = append(entries, ent)
	}

	if jsonOut {
		return printJSON(entries)
	}
	for _, ent := range entries {
		printInfo("%3d  %s\n", ent.Code, ent.Description)
	}
	return nil
}
