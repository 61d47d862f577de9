// Package analysis orchestrates a full candidate analysis: portfolio
// scraping, optional GitHub/Instagram/resume enrichment, skill pooling,
// scoring, and report assembly.
package analysis

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/Nitish-kumar7/web-scraping/internal/github"
	"github.com/Nitish-kumar7/web-scraping/internal/matching"
	"github.com/Nitish-kumar7/web-scraping/internal/scoring"
	"github.com/Nitish-kumar7/web-scraping/internal/skills"
	"github.com/Nitish-kumar7/web-scraping/internal/types"
)

// Error represents a failed candidate analysis.
type Error struct {
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("analysis error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("analysis error: %s", e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// PortfolioScraper fetches and parses a portfolio website.
type PortfolioScraper interface {
	Scrape(ctx context.Context, url string) (*types.PortfolioData, error)
}

// GitHubFetcher aggregates a GitHub user's profile statistics.
type GitHubFetcher interface {
	FetchProfile(ctx context.Context, username string) (*types.GitHubProfile, error)
}

// SocialScraper fetches a public social profile by handle or URL.
type SocialScraper interface {
	Scrape(ctx context.Context, usernameOrURL string) (*types.InstagramProfile, error)
}

// ResumeParser extracts structured data from resume text.
type ResumeParser interface {
	ParseText(ctx context.Context, text string) (*types.ResumeData, error)
}

// Store persists finished analysis reports.
type Store interface {
	SaveAnalysis(ctx context.Context, report *types.AnalysisReport) error
}

// Request describes one candidate analysis. PortfolioURL is mandatory;
// the remaining sources are optional enrichment.
type Request struct {
	PortfolioURL    string
	GitHubURL       string
	InstagramHandle string
	ResumeText      string
	JobDescription  string
	Requirements    types.JobRequirements
}

// Analyzer runs candidate analyses with injected collaborators.
// Portfolio and Extractor are required; the rest are optional.
type Analyzer struct {
	Portfolio PortfolioScraper
	GitHub    GitHubFetcher
	Social    SocialScraper
	Resume    ResumeParser
	Extractor skills.Extractor
	Matcher   matching.Matcher
	Store     Store
}

// Run performs the full analysis. The portfolio scrape must succeed;
// failures on the optional sources degrade to absent data with a logged
// warning so one flaky collaborator cannot sink the whole analysis.
func (a *Analyzer) Run(ctx context.Context, req Request) (*types.AnalysisReport, error) {
	if req.PortfolioURL == "" {
		return nil, &Error{Message: "portfolio URL is required"}
	}

	portfolioData, err := a.Portfolio.Scrape(ctx, req.PortfolioURL)
	if err != nil {
		return nil, &Error{Message: "portfolio scrape failed", Cause: err}
	}

	githubURL := req.GitHubURL
	if githubURL == "" {
		githubURL = portfolioData.SocialLinks["github"]
	}
	instagramHandle := req.InstagramHandle
	if instagramHandle == "" {
		instagramHandle = portfolioData.SocialLinks["instagram"]
	}

	var (
		githubProfile    *types.GitHubProfile
		instagramProfile *types.InstagramProfile
		resumeData       *types.ResumeData
		mu               sync.Mutex
	)

	g, gCtx := errgroup.WithContext(ctx)

	if a.GitHub != nil && githubURL != "" {
		g.Go(func() error {
			username := github.UsernameFromURL(githubURL)
			if username == "" {
				log.Printf("[WARN] could not extract GitHub username from %s", githubURL)
				return nil
			}
			profile, err := a.GitHub.FetchProfile(gCtx, username)
			if err != nil {
				log.Printf("[WARN] could not fetch GitHub data: %v", err)
				return nil
			}
			mu.Lock()
			githubProfile = profile
			mu.Unlock()
			return nil
		})
	}

	if a.Social != nil && instagramHandle != "" {
		g.Go(func() error {
			profile, err := a.Social.Scrape(gCtx, instagramHandle)
			if err != nil {
				log.Printf("[WARN] could not fetch Instagram data: %v", err)
				return nil
			}
			mu.Lock()
			instagramProfile = profile
			mu.Unlock()
			return nil
		})
	}

	if a.Resume != nil && req.ResumeText != "" {
		g.Go(func() error {
			parsed, err := a.Resume.ParseText(gCtx, req.ResumeText)
			if err != nil {
				log.Printf("[WARN] could not parse resume: %v", err)
				return nil
			}
			mu.Lock()
			resumeData = parsed
			mu.Unlock()
			return nil
		})
	}

	// Goroutines swallow their own errors, so Wait only propagates
	// context cancellation.
	if err := g.Wait(); err != nil {
		return nil, &Error{Message: "analysis canceled", Cause: err}
	}

	pooledSkills := a.poolSkills(ctx, req, portfolioData, resumeData)

	facts := types.CandidateFacts{
		Skills:     pooledSkills,
		Experience: portfolioData.Experience,
		Projects:   portfolioData.Projects,
		Education:  portfolioData.Education,
		GitHub:     githubProfile,
	}
	if resumeData != nil {
		facts.Experience = append(facts.Experience, resumeData.Experience...)
		facts.Education = append(facts.Education, resumeData.Education...)
	}

	matcher := a.Matcher
	if matcher == nil {
		matcher = matching.Deterministic{}
	}
	match, err := matcher.MatchSkills(ctx, pooledSkills, req.Requirements)
	if err != nil {
		return nil, &Error{Message: "skill matching failed", Cause: err}
	}

	evaluation := scoring.EvaluateMatch(match, facts, req.Requirements)

	report := &types.AnalysisReport{
		ID:           uuid.NewString(),
		Evaluation:   evaluation,
		SkillMatch:   match,
		Summary:      scoring.RenderSummary(evaluation),
		Portfolio:    portfolioData,
		GitHub:       githubProfile,
		Resume:       resumeData,
		Instagram:    instagramProfile,
		Requirements: req.Requirements,
		Timestamp:    time.Now().UTC().Format(time.RFC3339),
	}

	if a.Store != nil {
		if err := a.Store.SaveAnalysis(ctx, report); err != nil {
			log.Printf("[WARN] could not persist analysis %s: %v", report.ID, err)
		}
	}

	return report, nil
}

// poolSkills merges skills from the portfolio, the resume, and the
// extractor run over the candidate's text, then canonicalizes the union.
func (a *Analyzer) poolSkills(ctx context.Context, req Request, portfolioData *types.PortfolioData, resumeData *types.ResumeData) []string {
	pooled := append([]string{}, portfolioData.Skills...)
	if resumeData != nil {
		pooled = append(pooled, resumeData.Skills...)
	}

	if a.Extractor != nil {
		var sb strings.Builder
		sb.WriteString(portfolioData.Description)
		sb.WriteString(" ")
		sb.WriteString(strings.Join(portfolioData.Skills, " "))
		if req.JobDescription != "" {
			sb.WriteString(" ")
			sb.WriteString(req.JobDescription)
		}
		extracted, err := a.Extractor.ExtractSkills(ctx, sb.String())
		if err != nil {
			log.Printf("[WARN] skill extraction failed: %v", err)
		} else {
			pooled = append(pooled, extracted...)
		}
	}

	return skills.Normalize(pooled)
}
