package commands

import (
	"fmt"
	"strconv"

	"github.com/leapstack-labs/sqlseg/internal/cli/output"
	"github.com/leapstack-labs/sqlseg/pkg/script"
	"github.com/spf13/cobra"
)

// NewLinesCommand creates the lines command.
func NewLinesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "lines <file>",
		Short: "Show the line index of a script",
		Long: `Show the byte range of every line in a script.

Each line covers [begin, end), where end includes the line's newline. The
ranges tile the whole text, so any offset maps to exactly one line.`,
		Example: `  sqlseg lines query.sql
  sqlseg lines - --format json < query.sql`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLines(cmd, args[0])
		},
	}
}

func runLines(cmd *cobra.Command, path string) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer

	text, err := readInput(cmd, path)
	if err != nil {
		return err
	}

	lines := script.BuildLineIndex(text).Lines()

	if r.EffectiveMode().Structured() {
		return r.Data(lines)
	}

	r.Header(2, fmt.Sprintf("%s (%s)", displayName(path), plural(len(lines), "line")))
	rows := make([][]string, len(lines))
	for i, rec := range lines {
		rows[i] = []string{
			strconv.Itoa(rec.Index + 1),
			strconv.Itoa(rec.Begin),
			strconv.Itoa(rec.End),
			output.TruncateOneLine(lineText(text, rec), statementPreviewLen),
		}
	}
	r.Table([]string{"Line", "Begin", "End", "Text"}, rows)
	return nil
}

// lineText returns the content of a line without its newline.
func lineText(text string, rec script.LineRecord) string {
	end := rec.End - 1
	if end > len(text) {
		end = len(text)
	}
	if rec.Begin >= end {
		return ""
	}
	return text[rec.Begin:end]
}
