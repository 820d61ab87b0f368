// Package config provides configuration management for sqlseg.
//
// Configuration is layered with koanf: built-in defaults, a sqlseg.yaml file,
// SQLSEG_ environment variables and explicitly set command-line flags, in
// increasing order of precedence.
package config

// Config holds all sqlseg configuration options.
type Config struct {
	// Dialect names the registered dialect to segment with.
	Dialect string `koanf:"dialect"`

	// Delimiters are custom delimiters tried before the dialect delimiter.
	Delimiters []string `koanf:"delimiters"`

	// Quotes are custom quote pairs written as "open" or "open:close".
	Quotes []string `koanf:"quotes"`

	// DefaultQuotes keeps the single-quote pair in front of the custom quotes.
	DefaultQuotes bool `koanf:"default_quotes"`

	OutputFormat string    `koanf:"output"`
	Verbose      bool      `koanf:"verbose"`
	Jobs         int       `koanf:"jobs"`
	Log          LogConfig `koanf:"log"`

	// Dialects are user-defined dialects registered at load time.
	Dialects map[string]DialectConfig `koanf:"dialects"`
}

// LogConfig controls the logger built by internal/logging.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	File   string `koanf:"file"`
}

// DialectConfig describes a user-defined dialect in the config file.
//
// Unset token lists inherit from Extends (or the ANSI defaults). An explicit
// empty list disables that token class.
type DialectConfig struct {
	Extends       string   `koanf:"extends"`
	Description   string   `koanf:"description"`
	Delimiter     string   `koanf:"delimiter"`
	Quotes        []string `koanf:"quotes"`
	LineComments  []string `koanf:"line_comments"`
	BlockComments []string `koanf:"block_comments"`
}
