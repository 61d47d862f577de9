package main

import (
	"context"
	"fmt"
	"os"

	"github.com/Nitish-kumar7/web-scraping/internal/config"
	"github.com/Nitish-kumar7/web-scraping/internal/server"
	"github.com/spf13/cobra"
)

var (
	servePort       int
	serveUseBrowser bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for running candidate analyses.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().BoolVar(&serveUseBrowser, "use-browser", false, "Use headless browser for SPA sites (requires Chrome)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg := config.Config{
		Port:       servePort,
		UseBrowser: serveUseBrowser,
	}
	cfg.FromEnv()

	// Requests are rejected without a configured key
	if cfg.APIKey == "" {
		return fmt.Errorf("API_KEY environment variable is required")
	}
	if cfg.GeminiAPIKey == "" {
		fmt.Fprintln(os.Stderr, "GOOGLE_API_KEY not set; skill extraction and matching run deterministic-only")
	}
	if cfg.DatabaseURL == "" {
		fmt.Fprintln(os.Stderr, "DATABASE_URL not set; analysis reports will not be persisted")
	}

	collab, err := buildCollaborators(ctx, cfg)
	if err != nil {
		return err
	}
	defer collab.cleanup()

	var store server.AnalysisStore
	if collab.database != nil {
		store = collab.database
	}

	srv := server.New(server.Config{
		Port:   cfg.Port,
		APIKey: cfg.APIKey,
	}, collab.analyzer, collab.github, collab.resume, store)

	return srv.Start()
}
