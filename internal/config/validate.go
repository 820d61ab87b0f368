package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrInvalidQuote is returned for a quote that is not "open" or "open:close".
var ErrInvalidQuote = errors.New("invalid quote")

// Output formats accepted by the output option.
var validOutputs = []string{"auto", "text", "markdown", "json", "yaml"}

var (
	validLogLevels  = []string{"debug", "info", "warn", "warning", "error"}
	validLogFormats = []string{"text", "json"}
)

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.OutputFormat != "" && !slices.Contains(validOutputs, strings.ToLower(c.OutputFormat)) {
		return fmt.Errorf("unknown output format %q (available: %s)", c.OutputFormat, strings.Join(validOutputs, ", "))
	}
	if c.Jobs < 0 {
		return fmt.Errorf("jobs must not be negative, got %d", c.Jobs)
	}
	if lvl := strings.ToLower(c.Log.Level); lvl != "" && !slices.Contains(validLogLevels, lvl) {
		return fmt.Errorf("unknown log level %q", c.Log.Level)
	}
	if f := strings.ToLower(c.Log.Format); f != "" && !slices.Contains(validLogFormats, f) {
		return fmt.Errorf("unknown log format %q", c.Log.Format)
	}
	if _, err := ParseQuotes(c.Quotes); err != nil {
		return err
	}
	for name, d := range c.Dialects {
		if _, err := ParseQuotes(d.Quotes); err != nil {
			return fmt.Errorf("dialect %s: %w", name, err)
		}
		if _, err := ParseQuotes(d.BlockComments); err != nil {
			return fmt.Errorf("dialect %s: block comments: %w", name, err)
		}
	}
	return nil
}
