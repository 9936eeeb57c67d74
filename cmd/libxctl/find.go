package main

import (
	"github.com/spf13/cobra"

	"github.com/joshuapare/libx/str"
)

func init() {
	rootCmd.AddCommand(newFindCmd())
}

func newFindCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "find <file> <needle>",
		Short: "Find the first occurrence of a substring",
		Long: `The find command prints the byte offset of the first occurrence of needle in
the file, or -1 if it does not occur. For a single-byte needle the number of
occurrences is printed as well.

Example:
  libxctl find server.log ERROR
  libxctl find data.csv , --json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFind(args)
		},
	}
	return cmd
}

type findResult struct {
	File   string `json:"file"`
	Needle string `json:"needle"`
	Offset int    `json:"offset"`
	Count  *int   `json:"count,omitempty"`
}

func runFind(args []string) error {
	path, needle := args[0], args[1]

	e, err := openEnv()
	if err != nil {
		return err
	}
	defer e.close()

	text, err := e.load(path)
	if err != nil {
		return err
	}

	n := str.Lit(needle)
	res := findResult{File: path, Needle: needle, Offset: str.Index(text, n)}
	if n.Len() == 1 {
		c := str.Count(text, str.CharAt(n, 0))
		res.Count = &c
	}

	if jsonOut {
		return printJSON(res)
	}
	if res.Offset < 0 {
		printInfo("%q not found\n", needle)
	} else {
		printInfo("offset: %d\n", res.Offset)
	}
	if res.Count != nil {
		printInfo("count: %d\n", *res.Count)
	}
	return nil
}
