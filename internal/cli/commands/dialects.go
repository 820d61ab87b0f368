package commands

import (
	"strings"

	"github.com/leapstack-labs/sqlseg/pkg/dialect"
	"github.com/leapstack-labs/sqlseg/pkg/token"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DialectInfo describes a registered dialect's tokens.
type DialectInfo struct {
	Name          string   `json:"name" yaml:"name"`
	Description   string   `json:"description,omitempty" yaml:"description,omitempty"`
	Delimiter     string   `json:"delimiter" yaml:"delimiter"`
	Quotes        []string `json:"quotes" yaml:"quotes"`
	LineComments  []string `json:"line_comments" yaml:"line_comments"`
	BlockComments []string `json:"block_comments" yaml:"block_comments"`
}

// NewDialectsCommand creates the dialects command.
func NewDialectsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "dialects",
		Short: "List registered dialects and their tokens",
		Long: `List the built-in and user-defined dialects with the delimiter, quote and
comment tokens used to split scripts.

User-defined dialects come from the dialects section of sqlseg.yaml.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDialects(cmd)
		},
	}
}

func runDialects(cmd *cobra.Command) error {
	r := NewCommandContext(cmd).Renderer

	all := dialect.All()
	infos := make([]DialectInfo, len(all))
	for i, d := range all {
		infos[i] = dialectInfo(d)
	}

	if r.EffectiveMode().Structured() {
		return r.Data(infos)
	}

	titleCaser := cases.Title(language.English)
	r.Header(2, "Dialects")
	rows := make([][]string, len(infos))
	for i, info := range infos {
		rows[i] = []string{
			titleCaser.String(info.Name),
			info.Delimiter,
			strings.Join(info.Quotes, " "),
			strings.Join(info.LineComments, " "),
			strings.Join(info.BlockComments, " "),
			info.Description,
		}
	}
	r.Table([]string{"Dialect", "Delimiter", "Quotes", "Line", "Block", "Description"}, rows)
	return nil
}

func dialectInfo(d *dialect.Dialect) DialectInfo {
	return DialectInfo{
		Name:          d.Name,
		Description:   d.Description,
		Delimiter:     d.Delimiter(),
		Quotes:        pairStrings(d.Quotes()),
		LineComments:  append([]string{}, d.LineComments()...),
		BlockComments: pairStrings(d.BlockComments()),
	}
}

func pairStrings(pairs []token.Pair) []string {
	out := make([]string, len(pairs))
	for i, p := range pairs {
		out[i] = p.String()
	}
	return out
}
