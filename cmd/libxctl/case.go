package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/libx/arena"
	"github.com/joshuapare/libx/internal/logger"
	"github.com/joshuapare/libx/str"
)

var (
	caseUpper bool
	caseLower bool
)

func init() {
	cmd := newCaseCmd()
	cmd.Flags().BoolVar(&caseUpper, "upper", false, "Convert ASCII letters to upper case")
	cmd.Flags().BoolVar(&caseLower, "lower", false, "Convert ASCII letters to lower case")
	cmd.MarkFlagsMutuallyExclusive("upper", "lower")
	cmd.MarkFlagsOneRequired("upper", "lower")
	rootCmd.AddCommand(cmd)
}

func newCaseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "case <file>",
		Short: "Print a file with ASCII letters case-converted",
		Long: `The case command loads a file into the root arena and converts it inside a
temporary arena of the same size, which is released once the result has been
written. The root arena must therefore hold twice the file size.

Example:
  libxctl case notes.txt --upper
  libxctl case notes.txt --lower --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCase(args)
		},
	}
	return cmd
}

type caseResult struct {
	File  string `json:"file"`
	Mode  string `json:"mode"`
	Text  string `json:"text"`
	Bytes int    `json:"bytes"`
}

func runCase(args []string) error {
	path := args[0]
	if caseUpper == caseLower {
		return fmt.Errorf("exactly one of --upper or --lower is required")
	}
	mode, conv := "lower", str.ToLower
	if caseUpper {
		mode, conv = "upper", str.ToUpper
	}

	e, err := openEnv()
	if err != nil {
		return err
	}
	defer e.close()

	text, err := e.load(path)
	if err != nil {
		return err
	}

	err = e.arena.Scoped(text.Len(), func(t *arena.Arena) error {
		out := conv(t, text)
		if !out.Ok() {
			return fmt.Errorf("converting %s: %w", path, out.Err())
		}
		logger.Debug("libxctl: case", "path", path, "mode", mode, "temp_used", t.Pos())

		if jsonOut {
			return printJSON(caseResult{File: path, Mode: mode, Text: out.String(), Bytes: out.Len()})
		}
		_, werr := os.Stdout.Write(out.Bytes())
		return werr
	})
	if err != nil {
		return err
	}
	if live := e.arena.Metrics().LiveTemps; live != 0 {
		return fmt.Errorf("%d temporary arenas still open after case conversion", live)
	}
	return nil
}
