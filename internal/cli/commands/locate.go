package commands

import (
	"errors"
	"fmt"

	"github.com/leapstack-labs/sqlseg/internal/cli/output"
	"github.com/leapstack-labs/sqlseg/pkg/script"
	"github.com/spf13/cobra"
)

// LocateResult answers which line and statement contain an offset.
type LocateResult struct {
	File    string          `json:"file" yaml:"file"`
	Offset  int             `json:"offset" yaml:"offset"`
	Line    int             `json:"line" yaml:"line"`
	Found   bool            `json:"found" yaml:"found"`
	Segment *script.Segment `json:"segment,omitempty" yaml:"segment,omitempty"`
}

// LocateOptions holds options for the locate command.
type LocateOptions struct {
	Offset int
	Line   int // 1-based; 0 means use Offset
	Column int // 1-based
}

// NewLocateCommand creates the locate command.
func NewLocateCommand() *cobra.Command {
	opts := &LocateOptions{}

	cmd := &cobra.Command{
		Use:   "locate <file>",
		Short: "Find the statement at a cursor position",
		Long: `Find the statement under a cursor, as an editor does for "run current statement".

The position is a byte offset, or a 1-based line and column. A cursor on
trailing whitespace or a delimiter resolves to the statement just before it
on the same or previous line.`,
		Example: `  sqlseg locate query.sql --offset 120
  sqlseg locate query.sql --line 4 --column 1`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLocate(cmd, args[0], opts)
		},
	}

	cmd.Flags().IntVar(&opts.Offset, "offset", 0, "Byte offset of the cursor")
	cmd.Flags().IntVar(&opts.Line, "line", 0, "1-based cursor line (overrides --offset)")
	cmd.Flags().IntVar(&opts.Column, "column", 1, "1-based cursor column, used with --line")

	return cmd
}

func runLocate(cmd *cobra.Command, path string, opts *LocateOptions) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer

	text, err := readInput(cmd, path)
	if err != nil {
		return err
	}

	seg, err := cmdCtx.NewSegmenter(cmdCtx.Dialect())
	if err != nil {
		return err
	}
	seg.SetScript(text)

	offset, err := cursorOffset(seg, opts)
	if err != nil {
		return err
	}

	res := LocateResult{
		File:   displayName(path),
		Offset: offset,
		Line:   seg.LineAt(offset),
	}
	if s, ok := seg.SegmentAt(offset); ok {
		res.Found = true
		res.Segment = &s
	}

	if r.EffectiveMode().Structured() {
		return r.Data(res)
	}

	r.Header(2, fmt.Sprintf("%s @ %d (line %d)", res.File, res.Offset, res.Line+1))
	if !res.Found {
		r.Muted("no statement at this position")
		return nil
	}

	r.Printf("lines %s, offsets %d-%d\n\n", lineRange(*res.Segment), res.Segment.Begin, res.Segment.End)
	if r.EffectiveMode() == output.ModeMarkdown {
		r.Println("```sql")
		r.Println(res.Segment.Query)
		r.Println("```")
		return nil
	}
	r.Println(res.Segment.Query)
	return nil
}

// cursorOffset converts the requested position to a byte offset.
func cursorOffset(seg *script.Segmenter, opts *LocateOptions) (int, error) {
	if opts.Line <= 0 {
		if opts.Offset < 0 {
			return 0, errors.New("offset must not be negative")
		}
		return opts.Offset, nil
	}

	lines := seg.Lines()
	if opts.Line > len(lines) {
		return 0, fmt.Errorf("line %d is past the end of the script (%d lines)", opts.Line, len(lines))
	}
	rec := lines[opts.Line-1]
	col := opts.Column
	if col < 1 {
		col = 1
	}
	offset := rec.Begin + col - 1
	if offset >= rec.End {
		offset = rec.End - 1
	}
	return offset, nil
}
