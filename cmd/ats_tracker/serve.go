package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/ats-tracker/internal/server"
)

var (
	serveAddr       string
	serveScoring    string
	serveNorms      string
	serveUseBrowser bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for resume and job storage, matching, and boolean search.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "Address to listen on")
	serveCmd.Flags().StringVar(&serveScoring, "scoring-config", "", "Path to scoring config JSON")
	serveCmd.Flags().StringVar(&serveNorms, "normalization", "", "Path to normalization map JSON")
	serveCmd.Flags().BoolVar(&serveUseBrowser, "use-browser", false, "Use a headless browser for SPA job boards")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}

	logger, err := newLogger()
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logger.Sync() //nolint:errcheck

	srv, err := server.New(server.Config{
		Addr:              serveAddr,
		DatabaseURL:       databaseURL,
		ScoringPath:       serveScoring,
		NormalizationPath: serveNorms,
		UseBrowser:        serveUseBrowser,
		Logger:            logger,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
