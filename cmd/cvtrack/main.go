// Package main provides cvtrack, the command line front end of the résumé
// normalization engine and its HTTP API.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/jonathan/cv-tracker/internal/config"
	"github.com/jonathan/cv-tracker/internal/resume"
	"github.com/spf13/cobra"
)

var (
	configPath string
	verbose    bool

	appConfig config.Config
	logger    = newLogger(slog.LevelWarn)
)

var rootCmd = &cobra.Command{
	Use:               "cvtrack",
	Short:             "Normalize, merge and serve résumé data",
	Long:              "cvtrack converts résumés between the markdown text and canonical JSON formats, merges imported data into candidate profiles, and serves the same operations over HTTP.",
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadAppConfig,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a JSON config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug records to stderr")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadAppConfig reads --config, falls back to the environment for secrets,
// and sets up the logger
func loadAppConfig(_ *cobra.Command, _ []string) error {
	cfg := &config.Config{}
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	merged := cfg.MergeWithDefaults(config.Config{
		APIKey:      os.Getenv("GEMINI_API_KEY"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
	})
	if err := merged.Validate(); err != nil {
		return err
	}
	if verbose {
		merged.Verbose = true
	}

	appConfig = merged
	if merged.Verbose {
		logger = newLogger(slog.LevelDebug)
	}
	logger.Debug("config loaded", "path", configPath, "port", merged.Port, "database", merged.DatabaseURL != "")
	return nil
}

func newLogger(level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// newParser builds a résumé parser from the parsing block of the config
func newParser() (*resume.Parser, error) {
	opts, err := appConfig.ParserOptions()
	if err != nil {
		return nil, fmt.Errorf("invalid parsing config: %w", err)
	}
	return resume.NewParser(opts), nil
}
