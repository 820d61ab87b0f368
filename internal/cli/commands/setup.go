package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/leapstack-labs/sqlseg/internal/cli/output"
	"github.com/leapstack-labs/sqlseg/internal/config"
	"github.com/leapstack-labs/sqlseg/pkg/dialect"
	"github.com/leapstack-labs/sqlseg/pkg/script"
	"github.com/spf13/cobra"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Renderer *output.Renderer
}

// NewCommandContext creates a CommandContext with a renderer for the
// configured output mode.
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	cfg := getConfig()
	logger := config.GetLogger(cmd.Context())
	mode := output.Mode(cfg.OutputFormat)
	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode)

	return &CommandContext{
		Cfg:      cfg,
		Logger:   logger,
		Renderer: r,
	}
}

// getConfig returns the current configuration, or the defaults when none was
// loaded (e.g. a command executed on its own in tests).
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}
	return config.Default()
}

// Dialect returns the configured dialect. Unknown names fall back to the
// default dialect with a warning.
func (c *CommandContext) Dialect() *dialect.Dialect {
	d, ok := dialect.Lookup(c.Cfg.Dialect)
	if !ok {
		c.Logger.Warn("unknown dialect, using default",
			"dialect", c.Cfg.Dialect,
			"default", dialect.DefaultName,
		)
		c.Renderer.Warning(fmt.Sprintf("unknown dialect %q, using %s", c.Cfg.Dialect, dialect.DefaultName))
	}
	return d
}

// SegmenterOptions returns the segmenter options for d and the configured
// custom delimiters and quotes.
func (c *CommandContext) SegmenterOptions(d *dialect.Dialect) ([]script.Option, error) {
	o, err := c.Cfg.Overrides()
	if err != nil {
		return nil, err
	}
	return []script.Option{
		script.WithLogger(c.Logger),
		script.WithDialect(d.Config()),
		script.WithCustomDelimiters(o.Delimiters...),
		script.WithCustomQuotes(o.Quotes...),
	}, nil
}

// NewSegmenter builds a segmenter from the configured dialect and overrides.
func (c *CommandContext) NewSegmenter(d *dialect.Dialect) (*script.Segmenter, error) {
	opts, err := c.SegmenterOptions(d)
	if err != nil {
		return nil, err
	}
	return script.New(opts...), nil
}

// readInput reads a script from path, or from stdin when path is "-".
func readInput(cmd *cobra.Command, path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(data), nil
}

// displayName names an input in output.
func displayName(path string) string {
	if path == "-" {
		return "<stdin>"
	}
	return path
}
