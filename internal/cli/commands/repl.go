package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/chzyer/readline"
	"github.com/leapstack-labs/sqlseg/internal/cli/output"
	"github.com/leapstack-labs/sqlseg/pkg/dialect"
	"github.com/leapstack-labs/sqlseg/pkg/script"
	"github.com/spf13/cobra"
)

const (
	replPrompt         = "sqlseg> "
	replContinuePrompt = "   ...> "
)

// lineReader is the part of readline the REPL loop uses.
type lineReader interface {
	Readline() (string, error)
	SetPrompt(prompt string)
}

// NewReplCommand creates the repl command.
func NewReplCommand() *cobra.Command {
	var historyFile string

	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Interactive statement splitter",
		Long: `Type or paste SQL and see each statement as soon as its delimiter is entered.

Input accumulates across lines until a statement is terminated by a delimiter
outside quotes and comments, so multi-line statements and quoted delimiters
work as they would in a script.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runREPL(cmd, historyFile)
		},
	}

	cmd.Flags().StringVar(&historyFile, "history", defaultHistoryFile(), "History file (empty to disable)")

	return cmd
}

func defaultHistoryFile() string {
	dir, err := os.UserHomeDir()
	if err != nil || dir == "" {
		return ""
	}
	return filepath.Join(dir, ".sqlseg_history")
}

func runREPL(cmd *cobra.Command, historyFile string) error {
	cmdCtx := NewCommandContext(cmd)

	seg, err := cmdCtx.NewSegmenter(cmdCtx.Dialect())
	if err != nil {
		return err
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          replPrompt,
		HistoryFile:     historyFile,
		AutoComplete:    newREPLCompleter(),
		InterruptPrompt: "^C",
		EOFPrompt:       ".quit",
		Stdin:           io.NopCloser(cmd.InOrStdin()),
		Stdout:          cmd.OutOrStdout(),
		Stderr:          cmd.ErrOrStderr(),
	})
	if err != nil {
		return fmt.Errorf("failed to initialize REPL: %w", err)
	}
	defer func() { _ = rl.Close() }()

	r := cmdCtx.Renderer
	r.Printf("sqlseg REPL (dialect: %s)\n", seg.Dialect().Name)
	r.Println("Type .help for commands, .quit to exit")
	r.Println("")

	return newREPL(seg, r).loop(rl)
}

// repl accumulates input and prints each completed statement.
type repl struct {
	seg    *script.Segmenter
	r      *output.Renderer
	buf    strings.Builder
	count  int
	closed bool
}

func newREPL(seg *script.Segmenter, r *output.Renderer) *repl {
	return &repl{seg: seg, r: r}
}

func (p *repl) loop(rl lineReader) error {
	for !p.closed {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			p.buf.Reset()
			rl.SetPrompt(replPrompt)
			continue
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}

		// Dot-commands only at the start of a statement
		if p.buf.Len() == 0 && strings.HasPrefix(strings.TrimSpace(line), ".") {
			p.command(strings.TrimSpace(line))
			continue
		}

		p.feed(line)
		if strings.TrimSpace(p.buf.String()) == "" {
			p.buf.Reset()
			rl.SetPrompt(replPrompt)
		} else {
			rl.SetPrompt(replContinuePrompt)
		}
	}

	if rest := strings.TrimSpace(p.buf.String()); rest != "" {
		p.r.Muted("discarded unterminated input: " + output.TruncateOneLine(rest, statementPreviewLen))
	}
	return nil
}

// feed appends a line and prints every statement it completes.
func (p *repl) feed(line string) {
	p.buf.WriteString(line)
	p.buf.WriteString("\n")

	done, rest := completeStatements(p.seg, p.buf.String())
	for _, s := range done {
		p.count++
		p.r.Printf("-- [%d] lines %s\n%s\n\n", p.count, lineRange(s), s.Query)
	}
	p.buf.Reset()
	p.buf.WriteString(rest)
}

// completeStatements splits text into statements already terminated by a
// delimiter and the unfinished remainder.
func completeStatements(seg *script.Segmenter, text string) ([]script.Segment, string) {
	seg.SetScript(text)
	delims := seg.ScriptDelimiters()

	var done []script.Segment
	restStart := 0
	for _, s := range seg.Segments() {
		after := text[s.End:]
		trimmed := strings.TrimLeftFunc(after, unicode.IsSpace)
		delim, ok := hasPrefixAny(trimmed, delims)
		if !ok {
			break
		}
		done = append(done, s)
		restStart = s.End + len(after) - len(trimmed) + len(delim)
	}

	return done, text[restStart:]
}

func hasPrefixAny(s string, prefixes []string) (string, bool) {
	for _, p := range prefixes {
		if p != "" && strings.HasPrefix(s, p) {
			return p, true
		}
	}
	return "", false
}

func (p *repl) command(line string) {
	parts := strings.Fields(line)
	command := strings.ToLower(parts[0])

	switch command {
	case ".quit", ".exit":
		p.closed = true

	case ".help":
		printREPLHelp(p.r.Writer())

	case ".dialect":
		if len(parts) < 2 {
			p.r.Printf("dialect: %s\n", p.seg.Dialect().Name)
			return
		}
		d, err := dialect.MustGet(parts[1])
		if err != nil {
			p.r.Error(err.Error())
			return
		}
		p.seg.SetDialect(d.Config())
		p.r.Printf("dialect: %s\n", d.Name)

	case ".delimiter":
		p.seg.SetCustomDelimiters(parts[1:])
		p.r.Printf("delimiters: %s\n", strings.Join(p.seg.ScriptDelimiters(), " "))

	case ".tokens":
		p.r.Printf("delimiters:     %s\n", strings.Join(p.seg.ScriptDelimiters(), " "))
		p.r.Printf("quotes:         %s\n", strings.Join(pairStrings(p.seg.QuoteStrings()), " "))
		p.r.Printf("line comments:  %s\n", strings.Join(p.seg.SingleLineComments(), " "))
		p.r.Printf("block comments: %s\n", strings.Join(pairStrings(p.seg.MultiLineComments()), " "))

	default:
		p.r.Error(fmt.Sprintf("unknown command: %s (type .help for commands)", command))
	}
}

func printREPLHelp(w io.Writer) {
	help := `
Commands:
  .help               Show this help message
  .dialect [name]     Show or switch the dialect
  .delimiter [d...]   Set custom delimiters (none to clear)
  .tokens             Show the active delimiter, quote and comment tokens
  .quit / .exit       Exit the REPL

Tips:
  - A statement is printed once its delimiter is typed
  - Delimiters inside quotes and comments do not end a statement
  - Ctrl+C discards the pending input
`
	_, _ = fmt.Fprintln(w, help)
}

// newREPLCompleter completes dot-commands and dialect names.
func newREPLCompleter() *readline.PrefixCompleter {
	var dialects []readline.PrefixCompleterInterface
	for _, name := range dialect.List() {
		dialects = append(dialects, readline.PcItem(name))
	}

	return readline.NewPrefixCompleter(
		readline.PcItem(".help"),
		readline.PcItem(".dialect", dialects...),
		readline.PcItem(".delimiter"),
		readline.PcItem(".tokens"),
		readline.PcItem(".quit"),
		readline.PcItem(".exit"),
	)
}
