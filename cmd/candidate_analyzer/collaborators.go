package main

import (
	"context"
	"fmt"
	"log"

	"github.com/Nitish-kumar7/web-scraping/internal/analysis"
	"github.com/Nitish-kumar7/web-scraping/internal/config"
	"github.com/Nitish-kumar7/web-scraping/internal/db"
	"github.com/Nitish-kumar7/web-scraping/internal/github"
	"github.com/Nitish-kumar7/web-scraping/internal/llm"
	"github.com/Nitish-kumar7/web-scraping/internal/matching"
	"github.com/Nitish-kumar7/web-scraping/internal/portfolio"
	"github.com/Nitish-kumar7/web-scraping/internal/resume"
	"github.com/Nitish-kumar7/web-scraping/internal/skills"
	"github.com/Nitish-kumar7/web-scraping/internal/social"
)

// collaborators bundles the analyzer and its injected dependencies so the
// analyze and serve commands can share one wiring path.
type collaborators struct {
	analyzer *analysis.Analyzer
	github   *github.Client
	resume   *resume.Parser
	database *db.DB
	cleanup  func()
}

// buildCollaborators wires a full analyzer from the merged config. When a
// Gemini API key is present the extractor and matcher run LLM-first with
// deterministic fallbacks; otherwise they run deterministic-only. A database
// connection is opened only when a URL is configured.
func buildCollaborators(ctx context.Context, cfg config.Config) (*collaborators, error) {
	var closers []func()
	cleanup := func() {
		for _, fn := range closers {
			fn()
		}
	}

	var extractor skills.Extractor = skills.NewPatternExtractor()
	var matcher matching.Matcher = matching.Deterministic{}

	if cfg.GeminiAPIKey != "" {
		client, err := llm.NewClient(ctx, nil, cfg.GeminiAPIKey)
		if err != nil {
			return nil, fmt.Errorf("failed to create Gemini client: %w", err)
		}
		closers = append(closers, func() { _ = client.Close() })

		extractor = skills.NewFallbackExtractor(skills.NewGeminiExtractor(client), skills.NewPatternExtractor())
		matcher = &matching.FallbackMatcher{
			Primary:  matching.NewGeminiMatcher(client),
			Fallback: matching.Deterministic{},
			OnFallback: func(err error) {
				log.Printf("[WARN] assisted skill matching failed, using deterministic matcher: %v", err)
			},
		}
	}

	// Thin-page browser fallback is on by default and degrades silently
	// without Chrome; --use-browser additionally forces it for Instagram.
	portfolioScraper := portfolio.NewScraper()
	portfolioScraper.Verbose = cfg.Verbose

	socialScraper := social.NewInstagramScraper()
	socialScraper.UseBrowser = cfg.UseBrowser
	socialScraper.Verbose = cfg.Verbose

	githubClient := github.NewClient(cfg.GitHubToken)
	resumeParser := resume.NewParser(extractor)

	var database *db.DB
	if cfg.DatabaseURL != "" {
		var err error
		database, err = db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			cleanup()
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		closers = append(closers, database.Close)

		if err := database.EnsureSchema(ctx); err != nil {
			cleanup()
			return nil, fmt.Errorf("failed to ensure database schema: %w", err)
		}
	}

	analyzer := &analysis.Analyzer{
		Portfolio: portfolioScraper,
		GitHub:    githubClient,
		Social:    socialScraper,
		Resume:    resumeParser,
		Extractor: extractor,
		Matcher:   matcher,
	}
	if database != nil {
		analyzer.Store = database
	}

	return &collaborators{
		analyzer: analyzer,
		github:   githubClient,
		resume:   resumeParser,
		database: database,
		cleanup:  cleanup,
	}, nil
}
