package main

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/leapstack-labs/sqlseg/internal/cli"
	"github.com/leapstack-labs/sqlseg/internal/cli/output"
	"github.com/leapstack-labs/sqlseg/internal/config"
	"github.com/leapstack-labs/sqlseg/pkg/dialect"
	"github.com/leapstack-labs/sqlseg/pkg/script"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// sampleScript is fed on stdin to every command that has a sample.
const sampleScript = `-- nightly load; runs first
INSERT INTO customers (name) VALUES ('O''Brien; Ltd');
/* report; one row */
SELECT count(*) FROM customers;
`

// commandSamples lists the arguments, after --format markdown, whose real
// output is embedded in a command page.
var commandSamples = map[string][]string{
	"split":    {"split"},
	"lines":    {"lines", "-"},
	"locate":   {"locate", "-", "--line", "4"},
	"dialects": {"dialects"},
}

// generateCLIDocs writes index.md and one page per visible command.
func generateCLIDocs(outDir string) error {
	log.Printf("Generating CLI docs to %s", outDir)

	if err := os.MkdirAll(outDir, 0750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	root := cli.NewRootCmd()
	pages := map[string][]byte{"index.md": cliIndex(root)}
	for _, cmd := range visibleCommands(root) {
		page, err := commandPage(cmd)
		if err != nil {
			return fmt.Errorf("failed to generate page for %s: %w", cmd.Name(), err)
		}
		pages[cmd.Name()+".md"] = page
	}

	for name, data := range pages {
		if err := os.WriteFile(filepath.Join(outDir, name), data, 0600); err != nil {
			return err
		}
		log.Printf("  Generated %s", name)
	}
	return nil
}

func visibleCommands(root *cobra.Command) []*cobra.Command {
	var cmds []*cobra.Command
	for _, cmd := range root.Commands() {
		if cmd.Hidden || cmd.Name() == "help" {
			continue
		}
		cmds = append(cmds, cmd)
	}
	return cmds
}

func cliIndex(root *cobra.Command) []byte {
	w := NewMarkdownWriter()
	w.Frontmatter("CLI Reference", "Command-line interface reference for sqlseg")
	w.GeneratedMarker()

	w.Header(1, "CLI Reference")
	w.Paragraph(strings.TrimSpace(root.Long))
	w.CodeBlock("bash", "go install github.com/leapstack-labs/sqlseg/cmd/sqlseg@latest")

	w.Header(2, "Commands")
	var rows [][]string
	for _, cmd := range visibleCommands(root) {
		link := fmt.Sprintf("[%s](/cli/%s)", InlineCode(cmd.Name()), cmd.Name())
		rows = append(rows, []string{link, cleanDescription(cmd.Short)})
	}
	w.Table([]string{"Command", "Description"}, rows)

	w.Header(2, "Global Options")
	writeFlagsTable(w, root.PersistentFlags())

	w.Header(2, "Environment Variables")
	w.Paragraph("Flags override SQLSEG_ variables, which override the config file. " +
		"Nested keys use a double underscore and lists are comma-separated.")
	w.Table([]string{"Variable", "Description"}, envRows(getConfigSchema()))

	w.Header(2, "Exit Codes")
	w.Paragraph("sqlseg exits with 1 on any error. An unterminated quote or comment is a warning, not an error.")
	return w.Bytes()
}

// envRows derives the SQLSEG_ variables from the top-level and log config keys.
func envRows(fields []ConfigField) [][]string {
	var rows [][]string
	for _, f := range fields {
		if f.Category == "dialect" {
			continue
		}
		name := "SQLSEG_" + strings.ToUpper(strings.ReplaceAll(f.Name, ".", "__"))
		rows = append(rows, []string{InlineCode(name), f.Description})
	}
	return rows
}

func commandPage(cmd *cobra.Command) ([]byte, error) {
	w := NewMarkdownWriter()
	w.Frontmatter(cmd.Name(), cmd.Short)
	w.GeneratedMarker()

	w.Header(1, cmd.Name())
	if cmd.Long != "" {
		w.Paragraph(cmd.Long)
	} else {
		w.Paragraph(cmd.Short)
	}

	w.Header(2, "Usage")
	w.CodeBlock("bash", "sqlseg "+strings.TrimPrefix(cmd.UseLine(), "sqlseg "))

	if cmd.HasLocalFlags() {
		w.Header(2, "Options")
		writeFlagsTable(w, cmd.LocalFlags())
	}

	if cmd.Example != "" {
		w.Header(2, "Examples")
		w.CodeBlock("bash", cleanExample(cmd.Example))
	}

	if args, ok := commandSamples[cmd.Name()]; ok {
		out, err := runSample(args)
		if err != nil {
			return nil, err
		}
		w.Header(2, "Sample Output")
		w.Paragraph(fmt.Sprintf("Output of %s with this script on stdin:",
			InlineCode("sqlseg --format markdown "+strings.Join(args, " "))))
		w.CodeBlock("sql", sampleScript)
		w.CodeBlock("markdown", out)
	}

	if cmd.Name() == "split" {
		writeDialectSamples(w)
	}

	return w.Bytes(), nil
}

// runSample runs sqlseg in-process against sampleScript and returns stdout.
// The working directory's config file still applies.
func runSample(args []string) (string, error) {
	config.ResetConfig()
	defer config.ResetConfig()

	root := cli.NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetIn(strings.NewReader(sampleScript))
	root.SetArgs(append([]string{"--format", "markdown"}, args...))

	if err := root.Execute(); err != nil {
		return "", fmt.Errorf("sqlseg %s: %w", strings.Join(args, " "), err)
	}
	return strings.TrimSpace(out.String()), nil
}

// writeDialectSamples shows how each registered dialect splits a script
// built from its own tokens.
func writeDialectSamples(w *MarkdownWriter) {
	w.Header(2, "Dialect Behaviour")
	w.Paragraph("Each script below puts the delimiter inside the dialect's last quote pair " +
		"and after its first line comment. Neither ends a statement.")

	for _, d := range dialect.All() {
		text := dialectSample(d)
		res := script.Scan(text, dialect.Resolve(d.Config(), dialect.DefaultOverrides))

		w.Header(3, d.Name)
		w.CodeBlock("sql", text)
		items := make([]string, len(res.Segments))
		for i, seg := range res.Segments {
			items[i] = InlineCode(output.TruncateOneLine(seg.Query, 72))
		}
		w.BulletList(items)
	}
}

func dialectSample(d *dialect.Dialect) string {
	delim := d.Delimiter()
	var b strings.Builder
	quote := dialect.DefaultOverrides.Quotes[0]
	if qs := d.Quotes(); len(qs) > 0 {
		quote = qs[len(qs)-1]
	}
	fmt.Fprintf(&b, "SELECT %s%s%s AS v%s\n", quote.Open, delim, quote.Close, delim)
	if lc := d.LineComments(); len(lc) > 0 {
		fmt.Fprintf(&b, "%s note%s\n", lc[0], delim)
	}
	fmt.Fprintf(&b, "SELECT 2%s\n", delim)
	return b.String()
}

// writeFlagsTable writes a table of flags.
func writeFlagsTable(w *MarkdownWriter, flags *pflag.FlagSet) {
	var rows [][]string
	flags.VisitAll(func(f *pflag.Flag) {
		if f.Hidden {
			return
		}
		short := ""
		if f.Shorthand != "" {
			short = "-" + f.Shorthand
		}
		defVal := f.DefValue
		switch defVal {
		case "", "[]", "0", "false":
			defVal = "-"
		default:
			defVal = InlineCode(defVal)
		}
		rows = append(rows, []string{InlineCode("--" + f.Name), short, defVal, cleanDescription(f.Usage)})
	})
	w.Table([]string{"Option", "Short", "Default", "Description"}, rows)
}

// cleanExample removes common leading whitespace from example text.
func cleanExample(example string) string {
	lines := strings.Split(strings.TrimRight(example, "\n"), "\n")
	indent := -1
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		n := len(line) - len(strings.TrimLeft(line, " \t"))
		if indent == -1 || n < indent {
			indent = n
		}
	}
	for i, line := range lines {
		if len(line) >= indent && indent > 0 {
			lines[i] = line[indent:]
		} else {
			lines[i] = strings.TrimLeft(line, " \t")
		}
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
