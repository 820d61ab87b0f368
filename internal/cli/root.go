// Package cli provides the command-line interface for sqlseg.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/leapstack-labs/sqlseg/internal/cli/commands"
	"github.com/leapstack-labs/sqlseg/internal/cli/output"
	"github.com/leapstack-labs/sqlseg/internal/config"
	"github.com/leapstack-labs/sqlseg/internal/logging"
	"github.com/leapstack-labs/sqlseg/pkg/dialect"
	_ "github.com/leapstack-labs/sqlseg/pkg/dialects/all" // register built-in dialects
	"github.com/spf13/cobra"
)

// Version information (set at build time).
var (
	Version   = "0.1.0"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	var (
		cfgFile  string
		closeLog func() error
	)

	rootCmd := &cobra.Command{
		Use:   "sqlseg",
		Short: "sqlseg - SQL script segmentation engine",
		Long: `sqlseg splits SQL scripts into individual statements.

Statement delimiters are only recognised outside quoted strings and comments,
using the quote, comment and delimiter tokens of the selected dialect plus any
custom delimiters and quotes you configure.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip config loading for help and completion commands
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			cfg, err := config.LoadConfig(cfgFile, cmd.Flags())
			if err != nil {
				return err
			}

			logger, closer := logging.New(cmd.ErrOrStderr(), logging.Options{
				Level:   cfg.Log.Level,
				Format:  cfg.Log.Format,
				File:    cfg.Log.File,
				Verbose: cfg.Verbose,
			})
			closeLog = closer

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cmd.SetContext(context.WithValue(ctx, config.LoggerKey(), logger))

			if cfg.Verbose {
				if configFile := config.GetConfigFileUsed(); configFile != "" {
					_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Using config file: %s\n", configFile)
				}
			}
			logger.Debug("configuration loaded",
				"file", config.GetConfigFileUsed(),
				"dialect", cfg.Dialect,
				"output", cfg.OutputFormat,
			)

			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			if closeLog == nil {
				return nil
			}
			return closeLog()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate(`{{.Name}} {{.Version}}
SQL script segmentation engine
`)

	// Global persistent flags
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default: ./sqlseg.yaml)")
	flags.StringP("dialect", "d", "", "SQL dialect (default: ansi)")
	flags.StringArray("delimiter", nil, "Custom statement delimiter, tried before the dialect delimiter (repeatable)")
	flags.StringArray("quote", nil, "Custom quote pair as open or open:close (repeatable)")
	flags.Bool("no-default-quotes", false, "Do not prepend the single-quote pair to the dialect quotes")
	flags.StringP("format", "f", "", "Output format (auto|text|markdown|json|yaml)")
	flags.String("log-level", "", "Log level (debug|info|warn|error)")
	flags.String("log-format", "", "Log format (text|json)")
	flags.String("log-file", "", "Also write JSON logs to this file (rotated)")
	flags.BoolP("verbose", "v", false, "Verbose output")

	_ = rootCmd.RegisterFlagCompletionFunc("format", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return output.Modes, cobra.ShellCompDirectiveNoFileComp
	})
	_ = rootCmd.RegisterFlagCompletionFunc("dialect", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return dialect.List(), cobra.ShellCompDirectiveNoFileComp
	})
	_ = rootCmd.RegisterFlagCompletionFunc("log-level", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"debug", "info", "warn", "error"}, cobra.ShellCompDirectiveNoFileComp
	})

	// Add subcommands
	rootCmd.AddCommand(commands.NewVersionCommand(Version))
	rootCmd.AddCommand(commands.NewSplitCommand())
	rootCmd.AddCommand(commands.NewLinesCommand())
	rootCmd.AddCommand(commands.NewLocateCommand())
	rootCmd.AddCommand(commands.NewDialectsCommand())
	rootCmd.AddCommand(commands.NewWatchCommand())
	rootCmd.AddCommand(commands.NewReplCommand())
	rootCmd.AddCommand(NewCompletionCommand())

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

// NewCompletionCommand creates the completion command.
func NewCompletionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for sqlseg.

To load completions:

Bash:
  $ source <(sqlseg completion bash)

Zsh:
  $ sqlseg completion zsh > "${fpath[1]}/_sqlseg"

Fish:
  $ sqlseg completion fish | source

PowerShell:
  PS> sqlseg completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
	return cmd
}
