package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/leapstack-labs/sqlseg/internal/config"
)

// generateSchemaDocs generates the configuration reference.
func generateSchemaDocs(outDir string) error {
	log.Printf("Generating schema docs to %s", outDir)

	if err := os.MkdirAll(outDir, 0750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	if err := generateConfigurationDoc(outDir); err != nil {
		return fmt.Errorf("failed to generate configuration.md: %w", err)
	}
	log.Printf("  Generated configuration.md")

	return nil
}

// ConfigField represents a configuration field definition.
type ConfigField struct {
	Name        string
	Type        string
	Default     string
	Description string
	Category    string // "general", "log", "dialect"
}

// getConfigSchema returns the configuration schema definition.
// This mirrors internal/config/types.go Config and DialectConfig.
func getConfigSchema() []ConfigField {
	return []ConfigField{
		{Name: "dialect", Type: "string", Default: config.DefaultDialect, Description: "Dialect used to split scripts", Category: "general"},
		{Name: "delimiters", Type: "[]string", Description: "Custom delimiters, tried before the dialect delimiter", Category: "general"},
		{Name: "quotes", Type: "[]string", Description: "Custom quote pairs (open or open:close), tried before the dialect quotes", Category: "general"},
		{Name: "default_quotes", Type: "bool", Default: "true", Description: "Prepend the single-quote pair to the dialect quotes", Category: "general"},
		{Name: "output", Type: "string", Default: config.DefaultOutput, Description: "Output format: auto, text, markdown, json, yaml", Category: "general"},
		{Name: "jobs", Type: "int", Default: fmt.Sprint(config.DefaultJobs), Description: "Files split in parallel (0 = unlimited)", Category: "general"},
		{Name: "verbose", Type: "bool", Default: "false", Description: "Verbose output and debug logging", Category: "general"},

		{Name: "log.level", Type: "string", Default: config.DefaultLogLevel, Description: "debug, info, warn or error", Category: "log"},
		{Name: "log.format", Type: "string", Default: config.DefaultLogFormat, Description: "text or json", Category: "log"},
		{Name: "log.file", Type: "string", Description: "Also write JSON logs to this file, rotated by size", Category: "log"},

		{Name: "extends", Type: "string", Description: "Registered dialect to start from", Category: "dialect"},
		{Name: "description", Type: "string", Description: "Shown by sqlseg dialects", Category: "dialect"},
		{Name: "delimiter", Type: "string", Description: "Statement delimiter", Category: "dialect"},
		{Name: "quotes", Type: "[]string", Description: "Quote pairs; an empty list disables quotes", Category: "dialect"},
		{Name: "line_comments", Type: "[]string", Description: "Line comment markers; an empty list disables them", Category: "dialect"},
		{Name: "block_comments", Type: "[]string", Description: "Block comment pairs as open:close", Category: "dialect"},
	}
}

func fieldRows(fields []ConfigField, category string) [][]string {
	var rows [][]string
	for _, f := range fields {
		if f.Category != category {
			continue
		}
		defVal := "-"
		if f.Default != "" {
			defVal = InlineCode(f.Default)
		}
		rows = append(rows, []string{InlineCode(f.Name), f.Type, defVal, f.Description})
	}
	return rows
}

// generateConfigurationDoc generates the configuration reference page.
func generateConfigurationDoc(outDir string) error {
	w := NewMarkdownWriter()

	w.Frontmatter("Configuration", "sqlseg configuration reference")
	w.GeneratedMarker()

	w.Header(1, "Configuration")
	w.Paragraph(fmt.Sprintf("sqlseg reads `%s` (or `%s`) from the working directory or the nearest parent directory. "+
		"Environment variables prefixed with `%s` and command-line flags override file values.",
		config.ConfigFileName, config.ConfigFileNameAlt, config.EnvPrefix))

	fields := getConfigSchema()
	headers := []string{"Field", "Type", "Default", "Description"}

	w.Header(2, "General")
	w.Table(headers, fieldRows(fields, "general"))

	w.Header(2, "Logging")
	w.Table(headers, fieldRows(fields, "log"))

	w.Header(2, "Custom Dialects")
	w.Paragraph("Dialects defined under the `dialects` key are registered at startup and can be selected like built-in ones. " +
		"Unset fields inherit from `extends`, or from the ANSI defaults.")
	w.Table(headers, fieldRows(fields, "dialect"))

	w.Header(2, "Full Configuration Example")
	w.CodeBlock("yaml", `# sqlseg.yaml
dialect: tsql
output: auto
jobs: 4

log:
  level: warn
  file: .sqlseg/sqlseg.log

dialects:
  tsql:
    extends: sqlserver
    description: SQL Server scripts with GO batches
    quotes: ["[:]", '"']
  oracle:
    delimiter: ";"
    quotes: ["q'[:]'"]`)

	filename := filepath.Join(outDir, "configuration.md")
	return os.WriteFile(filename, w.Bytes(), 0600)
}
