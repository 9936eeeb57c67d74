package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/libx/internal/logger"
	"github.com/joshuapare/libx/list"
	"github.com/joshuapare/libx/status"
	"github.com/joshuapare/libx/str"
)

var (
	splitDelim string
)

func init() {
	cmd := newSplitCmd()
	cmd.Flags().StringVarP(&splitDelim, "delim", "d", ",", "Single-byte delimiter")
	rootCmd.AddCommand(cmd)
}

func newSplitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "split <file>",
		Short: "Split a file into delimiter-separated segments",
		Long: `The split command loads a file into the arena and walks it with a cursor,
collecting segment offsets into a list carved from the same arena. The list
capacity and overflow policy come from the [list] configuration section.

A single trailing newline is ignored. Empty segments are kept.

Example:
  libxctl split data.csv
  libxctl split /etc/passwd --delim :
  libxctl split data.csv --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSplit(args)
		},
	}
	return cmd
}

// segment locates one field inside the loaded file.
type segment struct {
	Off int
	Len int
}

type splitResult struct {
	File     string   `json:"file"`
	Delim    string   `json:"delimiter"`
	Total    int      `json:"total"`
	Kept     int      `json:"kept"`
	Policy   string   `json:"overflow"`
	Segments []string `json:"segments"`
}

func runSplit(args []string) error {
	path := args[0]
	if len(splitDelim) != 1 {
		return fmt.Errorf("delimiter must be a single byte, got %q", splitDelim)
	}
	delim := splitDelim[0]

	e, err := openEnv()
	if err != nil {
		return err
	}
	defer e.close()

	text, err := e.load(path)
	if err != nil {
		return err
	}
	text = trimNewline(text)

	segs := list.NewIn[segment](e.arena, e.settings.ListCapacity, list.WithPolicy(e.settings.Overflow))
	if err := segs.Err(); err != nil {
		return fmt.Errorf("allocating segment list: %w", err)
	}

	total := 0
	c := text.Cursor()
	for !c.Exhausted() {
		off := c.Pos()
		field := c.Next(delim)
		if !field.Ok() {
			return field.Err()
		}
		total++
		if err := segs.Append(segment{Off: off, Len: field.Len()}); err != nil {
			if errors.Is(err, status.ErrCapacityExceeded) {
				return fmt.Errorf("%s: more than %d segments: %w", path, segs.Cap(), err)
			}
			return err
		}
	}
	logger.Debug("libxctl: split", "path", path, "segments", total, "kept", segs.Len())

	res := splitResult{
		File:     path,
		Delim:    splitDelim,
		Total:    total,
		Kept:     segs.Len(),
		Policy:   segs.Policy().String(),
		Segments: make([]string, 0, segs.Len()),
	}
	for _, sg := range segs.Items() {
		res.Segments = append(res.Segments, str.Slice(text, sg.Off, sg.Off+sg.Len).String())
	}

	if jsonOut {
		return printJSON(res)
	}
	for i, s := range res.Segments {
		printInfo("%d\t%s\n", i, s)
	}
	if res.Kept < res.Total {
		printInfo("(%d of %d segments kept, overflow=%s)\n", res.Kept, res.Total, res.Policy)
	}
	return nil
}

// trimNewline drops one trailing "\n" or "\r\n".
func trimNewline(s str.String) str.String {
	n := s.Len()
	if n > 0 && str.CharAt(s, n-1) == '\n' {
		n--
		if n > 0 && str.CharAt(s, n-1) == '\r' {
			n--
		}
	}
	return str.Slice(s, 0, n)
}
