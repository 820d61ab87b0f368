package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/leapstack-labs/sqlseg/internal/cli/output"
	"github.com/leapstack-labs/sqlseg/pkg/dialect"
	"github.com/leapstack-labs/sqlseg/pkg/script"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// statementPreviewLen bounds statement text in text-mode tables.
const statementPreviewLen = 60

// FileResult is the segmentation of one input.
type FileResult struct {
	File         string               `json:"file" yaml:"file"`
	Dialect      string               `json:"dialect" yaml:"dialect"`
	Lines        int                  `json:"lines" yaml:"lines"`
	Segments     []script.Segment     `json:"segments" yaml:"segments"`
	Unterminated *script.Unterminated `json:"unterminated,omitempty" yaml:"unterminated,omitempty"`
}

// NewSplitCommand creates the split command.
func NewSplitCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "split [files...]",
		Short: "Split SQL scripts into statements",
		Long: `Split one or more SQL scripts into individually executable statements.

Statements end at the dialect delimiter or any custom delimiter. Delimiters
inside quotes and comments are ignored. Reads stdin when no file (or "-") is
given.

Output adapts to environment:
  - Terminal: Styled table
  - Piped/Scripted: Markdown format (agent-friendly)

Use --format to override: auto, text, markdown, json, yaml`,
		Example: `  # Split a script using the default dialect
  sqlseg split migrations.sql

  # SQL Server batches separated by GO
  sqlseg split --dialect sqlserver --delimiter GO deploy.sql

  # Postgres functions with dollar quoting, as JSON
  cat schema.sql | sqlseg split --dialect postgres --format json

  # Many files, four at a time
  sqlseg split --jobs 4 sql/*.sql`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSplit(cmd, args)
		},
	}

	cmd.Flags().Int("jobs", 0, "Number of files to split in parallel (0 = unlimited)")

	return cmd
}

func runSplit(cmd *cobra.Command, args []string) error {
	cmdCtx := NewCommandContext(cmd)
	if len(args) == 0 {
		args = []string{"-"}
	}

	d := cmdCtx.Dialect()
	results, err := splitFiles(cmd.Context(), cmd, cmdCtx, d, args)
	if err != nil {
		return err
	}

	return renderSplit(cmdCtx.Renderer, results)
}

// splitFiles segments every input concurrently, one segmenter per input.
// Results keep the order of paths.
func splitFiles(ctx context.Context, cmd *cobra.Command, c *CommandContext, d *dialect.Dialect, paths []string) ([]FileResult, error) {
	results := make([]FileResult, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	if c.Cfg.Jobs > 0 {
		g.SetLimit(c.Cfg.Jobs)
	}

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			text, err := readInput(cmd, path)
			if err != nil {
				return err
			}

			seg, err := c.NewSegmenter(d)
			if err != nil {
				return err
			}
			seg.SetScript(text)
			res := seg.Result()

			results[i] = FileResult{
				File:         displayName(path),
				Dialect:      seg.Dialect().Name,
				Lines:        res.Index.Len(),
				Segments:     res.Segments,
				Unterminated: res.Unterminated,
			}
			if results[i].Segments == nil {
				results[i].Segments = []script.Segment{}
			}

			c.Logger.Debug("split file",
				"file", results[i].File,
				"statements", len(res.Segments),
				"lines", res.Index.Len(),
			)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func renderSplit(r *output.Renderer, results []FileResult) error {
	switch r.EffectiveMode() {
	case output.ModeJSON, output.ModeYAML:
		return r.Data(results)
	case output.ModeMarkdown:
		splitMarkdown(r, results)
	default:
		splitText(r, results)
	}
	return nil
}

// splitText outputs statements as styled tables.
func splitText(r *output.Renderer, results []FileResult) {
	for i, res := range results {
		if i > 0 {
			r.Println("")
		}
		r.Header(1, res.File)

		rows := make([][]string, len(res.Segments))
		for j, seg := range res.Segments {
			rows[j] = []string{
				strconv.Itoa(j + 1),
				lineRange(seg),
				fmt.Sprintf("%d-%d", seg.Begin, seg.End),
				output.TruncateOneLine(seg.Query, statementPreviewLen),
			}
		}
		r.Table([]string{"#", "Lines", "Offsets", "Statement"}, rows)
		r.Muted(fmt.Sprintf("%s, %d lines", plural(len(res.Segments), "statement"), res.Lines))

		if res.Unterminated != nil {
			r.Warning(unterminatedMessage(res))
		}
	}
}

// splitMarkdown outputs each statement in a fenced SQL block.
func splitMarkdown(r *output.Renderer, results []FileResult) {
	for _, res := range results {
		r.Header(2, fmt.Sprintf("%s (%s)", res.File, plural(len(res.Segments), "statement")))

		for j, seg := range res.Segments {
			r.Printf("%d. lines %s, offsets %d-%d\n\n", j+1, lineRange(seg), seg.Begin, seg.End)
			r.Println("```sql")
			r.Println(seg.Query)
			r.Println("```")
			r.Println("")
		}

		if res.Unterminated != nil {
			r.Printf("> %s\n\n", unterminatedMessage(res))
		}
	}
}

// lineRange renders the 1-based lines a segment spans.
func lineRange(seg script.Segment) string {
	if seg.FromLine == seg.ToLine {
		return strconv.Itoa(seg.FromLine + 1)
	}
	return fmt.Sprintf("%d-%d", seg.FromLine+1, seg.ToLine+1)
}

func unterminatedMessage(res FileResult) string {
	u := res.Unterminated
	return fmt.Sprintf("%s: unterminated %s %q at offset %d; trailing text was not split",
		res.File, u.Kind, u.Open, u.Offset)
}

func plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
