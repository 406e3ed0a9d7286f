// Package cli implements the rebar binary: a thin front end over the
// environment façade exposing tokenize, parse, repl, serve, lsp, and
// version subcommands. It never touches the string, lexical, or
// semantic analysis subsystems' internals, only drives them.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rebar-lang/rebar/internal/rebarconfig"
)

// globalFlags holds the root command's persistent flags, read by
// every subcommand.
type globalFlags struct {
	noColor    bool
	logLevel   string
	configPath string
}

var flags globalFlags

// rootLogger is the process-wide zap logger, built once flags are
// parsed and handed to the playground and LSP servers by the serve and
// lsp subcommands.
var rootLogger *zap.Logger

// NewRootCommand builds the `rebar` root command and its subcommands.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "rebar",
		Short:         "rebar tokenizes and parses Rebar source text",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := buildLogger(flags.logLevel)
			if err != nil {
				return fmt.Errorf("rebar: %w", err)
			}
			rootLogger = logger
			return nil
		},
	}

	root.PersistentFlags().BoolVar(&flags.noColor, "no-color", false, "disable colorized diagnostic output")
	root.PersistentFlags().StringVar(&flags.logLevel, "log-level", "info", "debug, info, warn, or error")
	root.PersistentFlags().StringVar(&flags.configPath, "config", "", "path to a rebar.yaml config file")

	root.AddCommand(newTokenizeCommand())
	root.AddCommand(newParseCommand())
	root.AddCommand(newReplCommand())
	root.AddCommand(newServeCommand())
	root.AddCommand(newLSPCommand())
	root.AddCommand(newVersionCommand())

	return root
}

// Execute runs the root command against os.Args, writing errors to
// stderr. It is the sole entry point cmd/rebar calls.
func Execute() int {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func buildLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	if err := cfg.Level.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return cfg.Build()
}

// loadConfig loads rebarconfig.Config for the serve subcommand, which
// needs the server address and source-size defaults, honoring --config.
func loadConfig() (*rebarconfig.Config, error) {
	return rebarconfig.Load(flags.configPath)
}
