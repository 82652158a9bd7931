package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jonathan/cv-tracker/internal/server"
	"github.com/jonathan/cv-tracker/internal/server/ratelimit"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  "Start an HTTP server exposing detection, parsing, serialization and profile merging. Record and profile routes need DATABASE_URL.",
	RunE:  runServe,
}

var (
	servePort    int
	serveMigrate bool
)

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default from config, then 8080)")
	serveCmd.Flags().BoolVar(&serveMigrate, "migrate", true, "Create missing tables on startup")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts, err := appConfig.ParserOptions()
	if err != nil {
		return fmt.Errorf("invalid parsing config: %w", err)
	}
	port := servePort
	if port == 0 {
		port = appConfig.Port
	}

	var store server.Store
	if appConfig.DatabaseURL != "" {
		database, err := connectDB(ctx)
		if err != nil {
			return err
		}
		defer database.Close()

		if serveMigrate {
			if err := database.Migrate(ctx); err != nil {
				return fmt.Errorf("failed to migrate database: %w", err)
			}
		}
		store = database
	} else {
		logger.Warn("DATABASE_URL not set; record and profile routes are disabled")
	}

	srv := server.New(server.Config{
		Port:      port,
		Parsing:   opts,
		Strategy:  appConfig.BucketStrategy(),
		RateLimit: ratelimit.FromEnv(),
	}, store, serverLogger())
	return srv.Start(ctx)
}

// serverLogger logs requests at info level, or everything with --verbose
func serverLogger() *slog.Logger {
	if appConfig.Verbose {
		return logger
	}
	return newLogger(slog.LevelInfo)
}
