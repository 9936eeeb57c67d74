package main

import (
	"github.com/spf13/cobra"

	"github.com/joshuapare/libx/arena"
	"github.com/joshuapare/libx/str"
)

func init() {
	rootCmd.AddCommand(newStatsCmd())
}

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats <file>",
		Short: "Show arena statistics after loading a file",
		Long: `The stats command loads a file into a fresh arena and reports the arena's
usage together with a few facts about the text.

Example:
  libxctl stats notes.txt
  libxctl stats notes.txt --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(args)
		},
	}
	return cmd
}

type fileStats struct {
	File     string        `json:"file"`
	Bytes    int           `json:"bytes"`
	Lines    int           `json:"lines"`
	Encoding string        `json:"encoding"`
	Backing  string        `json:"backing"`
	Arena    arena.Metrics `json:"arena"`
}

func runStats(args []string) error {
	path := args[0]

	e, err := openEnv()
	if err != nil {
		return err
	}
	defer e.close()

	text, err := e.load(path)
	if err != nil {
		return err
	}

	st := fileStats{
		File:     path,
		Bytes:    text.Len(),
		Lines:    str.Count(text, '\n'),
		Encoding: e.settings.Encoding.String(),
		Backing:  e.settings.BackingName,
		Arena:    e.arena.Metrics(),
	}
	if text.Len() > 0 && str.CharAt(text, text.Len()-1) != '\n' {
		st.Lines++
	}

	if jsonOut {
		return printJSON(st)
	}

	m := st.Arena
	printInfo("File: %s\n", st.File)
	printInfo("  Bytes:       %d\n", st.Bytes)
	printInfo("  Lines:       %d\n", st.Lines)
	printInfo("  Encoding:    %s\n", st.Encoding)
	printInfo("\nArena (%s):\n", st.Backing)
	printInfo("  Capacity:    %d\n", m.Capacity)
	printInfo("  In use:      %d\n", m.SizeInUse)
	printInfo("  Peak:        %d\n", m.Peak)
	printInfo("  Allocations: %d\n", m.Allocs)
	printInfo("  Utilization: %.1f%%\n", m.Utilization*100)
	printInfo("  Status:      %s\n", m.Status)
	return nil
}
