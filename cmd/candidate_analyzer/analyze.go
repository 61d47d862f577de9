package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/Nitish-kumar7/web-scraping/internal/analysis"
	"github.com/Nitish-kumar7/web-scraping/internal/config"
	"github.com/Nitish-kumar7/web-scraping/internal/observability"
	"github.com/Nitish-kumar7/web-scraping/internal/requirements"
	"github.com/Nitish-kumar7/web-scraping/internal/types"
	"github.com/spf13/cobra"
)

var analyzeCommand = &cobra.Command{
	Use:   "analyze",
	Short: "Run a full candidate analysis",
	Long: `Scrapes the candidate's portfolio website, enriches it with GitHub, Instagram
and resume data, matches the pooled skills against a job requirements profile,
and writes a scored qualification report as JSON.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runAnalyzeCmd,
}

var (
	analyzeConfigPath     string
	analyzePortfolioURL   string
	analyzeGitHubURL      string
	analyzeInstagram      string
	analyzeResume         string
	analyzeRequirements   string
	analyzeJobDescription string
	analyzeOutput         string
	analyzeAPIKey         string
	analyzeGitHubToken    string
	analyzeDatabaseURL    string
	analyzeUseBrowser     bool
	analyzeVerbose        bool
)

func init() {
	// Config file flag (processed first)
	analyzeCommand.Flags().StringVar(&analyzeConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	analyzeCommand.Flags().StringVarP(&analyzePortfolioURL, "portfolio", "p", "", "Candidate portfolio URL (required via flag or config)")
	analyzeCommand.Flags().StringVar(&analyzeGitHubURL, "github", "", "GitHub profile URL (optional, auto-discovered from portfolio if not provided)")
	analyzeCommand.Flags().StringVar(&analyzeInstagram, "instagram", "", "Instagram handle or profile URL (optional)")
	analyzeCommand.Flags().StringVar(&analyzeResume, "resume", "", "Path to resume text file (optional)")
	analyzeCommand.Flags().StringVarP(&analyzeRequirements, "requirements", "r", "", "Path to job requirements JSON profile (optional, defaults to a full-stack profile)")
	analyzeCommand.Flags().StringVar(&analyzeJobDescription, "job-description", "", "Job description text used for skill extraction (optional)")
	analyzeCommand.Flags().StringVarP(&analyzeOutput, "output", "o", "", "Path to write the JSON report to")
	analyzeCommand.Flags().BoolVar(&analyzeUseBrowser, "use-browser", false, "Use headless browser for SPA sites (requires Chrome)")
	analyzeCommand.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print detailed analysis output")

	// Keys can be passed as flags, or read from env vars
	analyzeCommand.Flags().StringVar(&analyzeAPIKey, "api-key", "", "Gemini API key (optional, defaults to GOOGLE_API_KEY env var)")
	analyzeCommand.Flags().StringVar(&analyzeGitHubToken, "github-token", "", "GitHub API token (optional, defaults to GITHUB_TOKEN env var)")

	// Database URL for report persistence
	analyzeCommand.Flags().StringVar(&analyzeDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")

	rootCmd.AddCommand(analyzeCommand)
}

func runAnalyzeCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	// Step 1: Load config file if provided
	var cfg config.Config
	if analyzeConfigPath != "" {
		loadedCfg, err := config.LoadConfig(analyzeConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if err := loadedCfg.Validate(); err != nil {
			return err
		}

		cfg = *loadedCfg
		if analyzeVerbose {
			_, _ = fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", analyzeConfigPath)
		}
	}

	// Step 2: Apply CLI overrides (command-line args take priority)
	// Only override if the flag was explicitly set
	if cmd.Flags().Changed("portfolio") {
		cfg.PortfolioURL = analyzePortfolioURL
	}
	if cmd.Flags().Changed("github") {
		cfg.GitHubURL = analyzeGitHubURL
	}
	if cmd.Flags().Changed("instagram") {
		cfg.InstagramHandle = analyzeInstagram
	}
	if cmd.Flags().Changed("resume") {
		cfg.Resume = analyzeResume
	}
	if cmd.Flags().Changed("requirements") {
		cfg.Requirements = analyzeRequirements
	}
	if cmd.Flags().Changed("job-description") {
		cfg.JobDescription = analyzeJobDescription
	}
	if cmd.Flags().Changed("output") {
		cfg.Output = analyzeOutput
	}
	if cmd.Flags().Changed("api-key") {
		cfg.GeminiAPIKey = analyzeAPIKey
	}
	if cmd.Flags().Changed("github-token") {
		cfg.GitHubToken = analyzeGitHubToken
	}
	if cmd.Flags().Changed("db-url") {
		cfg.DatabaseURL = analyzeDatabaseURL
	}
	if cmd.Flags().Changed("use-browser") {
		cfg.UseBrowser = analyzeUseBrowser
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = analyzeVerbose
	}

	// Step 3: Fill remaining secrets from the environment, then apply defaults
	cfg.FromEnv()
	cfg = cfg.MergeWithDefaults(config.Config{
		Output: "analysis_report.json",
	})

	// Step 4: Validate required fields
	if cfg.PortfolioURL == "" {
		return fmt.Errorf("--portfolio is required (via flag or config)")
	}

	// Step 5: Resolve the job requirements profile
	reqs := requirements.DefaultFullStack()
	if cfg.Requirements != "" {
		loaded, err := requirements.LoadProfile(cfg.Requirements)
		if err != nil {
			return fmt.Errorf("failed to load requirements profile: %w", err)
		}
		reqs = loaded
	}

	// Step 6: Read the resume file if provided
	resumeText := ""
	if cfg.Resume != "" {
		data, err := os.ReadFile(cfg.Resume)
		if err != nil {
			return fmt.Errorf("failed to read resume file: %w", err)
		}
		resumeText = string(data)
	}

	collab, err := buildCollaborators(ctx, cfg)
	if err != nil {
		return err
	}
	defer collab.cleanup()

	report, err := collab.analyzer.Run(ctx, analysis.Request{
		PortfolioURL:    cfg.PortfolioURL,
		GitHubURL:       cfg.GitHubURL,
		InstagramHandle: cfg.InstagramHandle,
		ResumeText:      resumeText,
		JobDescription:  cfg.JobDescription,
		Requirements:    reqs,
	})
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	if err := saveReport(report, cfg.Output); err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "Report saved to: %s\n\n", cfg.Output)

	displayReport(report, cfg.Verbose)
	return nil
}

// saveReport writes the analysis report as indented JSON.
func saveReport(report *types.AnalysisReport, path string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

// displayReport prints the rendered summary, plus per-stage boxes in
// verbose mode.
func displayReport(report *types.AnalysisReport, verbose bool) {
	printer := observability.NewPrinter(os.Stdout)

	if verbose {
		printer.PrintPortfolio(report.Portfolio)
		printer.PrintGitHubProfile(report.GitHub)
		printer.PrintSkillMatch(report.SkillMatch)
		printer.PrintEvaluation(report.Evaluation)
		return
	}

	printer.PrintSummary(report.Summary)
}
