// Package cmd provides the CLI commands for movieretrieval.
package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/Aman-CERP/movieretrieval/internal/config"
	"github.com/Aman-CERP/movieretrieval/internal/logging"
	"github.com/Aman-CERP/movieretrieval/pkg/version"
)

// Global flags and the loaded configuration, populated by PersistentPreRunE
// before any subcommand runs.
var (
	cfgPath   string
	debugMode bool

	cfg            config.Config
	loggingCleanup func()
)

// NewRootCmd creates the root command for the movieretrieval CLI.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "movieretrieval",
		Short: "Hybrid BM25 + semantic search over a movie catalog",
		Long: `movieretrieval builds and queries a hybrid retrieval index over a movie
catalog: a BM25 inverted index, a chunked semantic index, a fusion layer
combining the two, and an optional re-rank stage.

Run 'movieretrieval build' first to create the on-disk cache, then query it
with 'search', 'bm25search', 'weighted-search', or 'rrf-search'.`,
		Version:           version.Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: loadConfigAndLogging,
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			if loggingCleanup != nil {
				loggingCleanup()
				loggingCleanup = nil
			}
			return nil
		},
	}

	cmd.SetVersionTemplate("movieretrieval version {{.Version}}\n")

	cmd.PersistentFlags().StringVar(&cfgPath, "config", "", "Path to YAML config file (optional)")
	cmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")

	cmd.AddCommand(newBuildCmd())
	cmd.AddCommand(newSearchCmd())
	cmd.AddCommand(newBM25SearchCmd())
	cmd.AddCommand(newWeightedSearchCmd())
	cmd.AddCommand(newRRFSearchCmd())
	cmd.AddCommand(newRAGCmd())
	cmd.AddCommand(newSummarizeCmd())
	cmd.AddCommand(newCitationsCmd())
	cmd.AddCommand(newQuestionCmd())
	cmd.AddCommand(newEvaluateCmd())
	cmd.AddCommand(newTermCmds()...)
	cmd.AddCommand(newNormalizeCmd())

	return cmd
}

// loadConfigAndLogging loads the layered configuration and sets up
// structured logging. Runs once before every subcommand.
func loadConfigAndLogging(_ *cobra.Command, _ []string) error {
	var err error
	cfg, err = config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logCfg := logging.Config{
		Level:         cfg.Logging.Level,
		FilePath:      cfg.Logging.FilePath,
		MaxSizeMB:     cfg.Logging.MaxSizeMB,
		MaxFiles:      cfg.Logging.MaxFiles,
		WriteToStderr: cfg.Logging.WriteToStderr,
	}
	if logCfg.FilePath == "" {
		logCfg.FilePath = logging.DefaultLogPath()
	}
	if debugMode {
		logCfg.Level = "debug"
	}

	logger, cleanup, err := logging.Setup(logCfg)
	if err != nil {
		return fmt.Errorf("setting up logging: %w", err)
	}
	loggingCleanup = cleanup
	slog.SetDefault(logger)
	return nil
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}
