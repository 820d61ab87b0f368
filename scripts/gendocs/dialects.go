package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/leapstack-labs/sqlseg/pkg/dialect"
	_ "github.com/leapstack-labs/sqlseg/pkg/dialects/all" // register built-in dialects
	"github.com/leapstack-labs/sqlseg/pkg/token"
)

// generateDialectDocs generates the built-in dialect reference.
func generateDialectDocs(outDir string) error {
	log.Printf("Generating dialect docs to %s", outDir)

	if err := os.MkdirAll(outDir, 0750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	w := NewMarkdownWriter()
	w.Frontmatter("Dialects", "Built-in dialect tokens")
	w.GeneratedMarker()

	w.Header(1, "Dialects")
	w.Paragraph("Each dialect defines the tokens that decide where a statement ends. " +
		"A delimiter only ends a statement outside quotes and comments. " +
		"The single quote is prepended to every dialect's quotes unless `default_quotes` is false.")

	headers := []string{"Dialect", "Delimiter", "Quotes", "Line Comments", "Block Comments"}
	var rows [][]string
	for _, d := range dialect.All() {
		rows = append(rows, []string{
			InlineCode(d.Name),
			InlineCode(d.Delimiter()),
			codeList(pairNames(d.Quotes())),
			codeList(d.LineComments()),
			codeList(pairNames(d.BlockComments())),
		})
	}
	w.Table(headers, rows)

	filename := filepath.Join(outDir, "dialects.md")
	if err := os.WriteFile(filename, w.Bytes(), 0600); err != nil {
		return err
	}
	log.Printf("  Generated dialects.md")
	return nil
}

func pairNames(pairs []token.Pair) []string {
	out := make([]string, len(pairs))
	for i, p := range pairs {
		out[i] = p.String()
	}
	return out
}

func codeList(items []string) string {
	if len(items) == 0 {
		return "-"
	}
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = InlineCode(item)
	}
	return strings.Join(out, " ")
}
