package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/testforge/testforge/analyzer"
)

var (
	verbose bool
	Logger  *slog.Logger

	rootCmd = &cobra.Command{
		Use:   "testforge [collection.json]",
		Short: "Generate test-suite scaffolding from API collections and web pages",
		Long: `Testforge inspects Postman-style API collections and static web pages
and emits ready-to-run test scaffolding: HTTP assertion tests, UI
automation skeletons and plain-text test-case documents. Run it with a
collection file to browse the extracted endpoints in the terminal.`,
		Args: cobra.MaximumNArgs(1),
		Example: `  testforge collection.json
  testforge analyze collection.json
  testforge generate collection.json -o generated
  testforge scan login.html --ui-out ui_suite.txt`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogger()
		},
		RunE: runRoot,
	}
)

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")

	// will be reconfigured in PersistentPreRun based on flags
	setupLogger()
}

func runRoot(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		fmt.Println(RenderBanner())
		return cmd.Help()
	}

	collectionFile := args[0]
	if err := ValidateInputFile(collectionFile); err != nil {
		return fmt.Errorf("invalid collection file: %w", err)
	}

	if err := LaunchTUI(collectionFile); err != nil {
		return fmt.Errorf("failed to launch TUI: %w", err)
	}
	return nil
}

// setupLogger configures the global slog logger based on the verbose flag
func setupLogger() {
	var opts *slog.HandlerOptions

	if verbose {
		opts = &slog.HandlerOptions{
			Level:     slog.LevelDebug,
			AddSource: true,
		}
	} else {
		opts = &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}
	}

	handler := slog.NewTextHandler(os.Stderr, opts)
	Logger = slog.New(handler)
	slog.SetDefault(Logger)

	if verbose {
		Logger.Debug("verbose logging enabled",
			"level", slog.LevelDebug.String(),
			"pid", os.Getpid())
	}
}

// GetLogger returns the global logger instance
func GetLogger() *slog.Logger {
	if Logger == nil {
		setupLogger()
	}
	return Logger
}

// ValidateInputFile checks that the provided input file exists and is not a
// directory.
func ValidateInputFile(path string) error {
	if path == "" {
		return fmt.Errorf("input file path is required")
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("input file does not exist: %s", path)
		}
		return fmt.Errorf("error accessing input file: %w", err)
	}

	if info.IsDir() {
		return fmt.Errorf("provided path is a directory, not a file: %s", path)
	}

	return nil
}

// AnalyzeCollection runs the analysis pipeline for a collection file with
// standard logging.
func AnalyzeCollection(collectionFile string, logger *slog.Logger) (*analyzer.Analysis, error) {
	a := analyzer.New(logger)

	analysis, err := a.AnalyzeCollectionFile(collectionFile)
	if err != nil {
		return nil, fmt.Errorf("failed to analyze collection: %w", err)
	}

	logger.Info("collection analyzed",
		"collection", analysis.CollectionName,
		"endpoints", analysis.TotalEndpoints,
		"unique_urls", analysis.UniqueURLs,
		"fingerprint", analysis.Fingerprint,
		"build_time", analysis.BuildTime)

	return analysis, nil
}
