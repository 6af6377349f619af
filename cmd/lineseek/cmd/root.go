// Package cmd provides the CLI commands for lineseek.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/lineseek/lineseek/internal/config"
	"github.com/lineseek/lineseek/internal/logging"
	"github.com/lineseek/lineseek/pkg/version"
)

var (
	configPath string
	corpusDir  string
	debugMode  bool

	loggingCleanup func()
)

// NewRootCmd creates the root command for the lineseek CLI.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lineseek",
		Short: "Full-text search over a directory of documents, line by line",
		Long: `lineseek indexes a directory of documents once at startup and answers
full-text queries with the exact lines that contain the query term.

Run 'lineseek serve' to expose search over HTTP, or 'lineseek search'
for a one-shot query from the shell.`,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.SetVersionTemplate("lineseek version {{.Version}}\n")

	cmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to YAML config file")
	cmd.PersistentFlags().StringVar(&corpusDir, "dir", "", "Corpus directory (overrides config)")
	cmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")

	cmd.PersistentPreRunE = setupLogging
	cmd.PersistentPostRun = func(*cobra.Command, []string) {
		if loggingCleanup != nil {
			loggingCleanup()
		}
	}

	cmd.AddCommand(NewServeCmd())
	cmd.AddCommand(NewSearchCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() error {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

// loadConfig resolves configuration with flag overrides applied.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if corpusDir != "" {
		cfg.Corpus.Dir = corpusDir
	}
	if debugMode {
		cfg.Log.Level = "debug"
		cfg.Log.Verbose = true
	}
	return cfg, nil
}

func setupLogging(*cobra.Command, []string) error {
	logCfg := logging.DefaultConfig()
	if debugMode {
		logCfg.Level = "debug"
	}

	cleanup, err := logging.SetupDefault(logCfg)
	if err != nil {
		// Fall back to stderr-only logging rather than refusing to start.
		slog.Warn("file_logging_unavailable", slog.String("error", err.Error()))
		return nil
	}
	loggingCleanup = cleanup
	return nil
}
