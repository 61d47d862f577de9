// Package social performs best-effort scraping of public social profiles.
// Instagram serves no structured API for anonymous access, so the scraper
// relies on Open Graph meta tags present in the initial HTML.
package social

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/Nitish-kumar7/web-scraping/internal/fetch"
	"github.com/Nitish-kumar7/web-scraping/internal/types"
)

// ScrapeError represents an error during social profile scraping.
type ScrapeError struct {
	Username string
	Message  string
	Cause    error
}

func (e *ScrapeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("social scrape error for %s: %s: %v", e.Username, e.Message, e.Cause)
	}
	return fmt.Sprintf("social scrape error for %s: %s", e.Username, e.Message)
}

func (e *ScrapeError) Unwrap() error {
	return e.Cause
}

var (
	instagramURLRe = regexp.MustCompile(`instagram\.com/([^/?#]+)`)
	handleRe       = regexp.MustCompile(`@([^/?\s]+)`)

	followersRe = regexp.MustCompile(`([\d,.]+[KkMm]?)\s+Followers`)
	postsRe     = regexp.MustCompile(`([\d,.]+[KkMm]?)\s+Posts`)
	// og:title looks like "Jane Doe (@janedoe) • Instagram photos and videos"
	titleNameRe = regexp.MustCompile(`^(.+?)\s+\(@`)
)

// UsernameFromInput extracts an Instagram username from a profile URL or
// an @handle. Bare input is treated as a username as-is.
func UsernameFromInput(input string) string {
	input = strings.TrimSpace(input)
	if matches := instagramURLRe.FindStringSubmatch(input); matches != nil {
		return matches[1]
	}
	if matches := handleRe.FindStringSubmatch(input); matches != nil {
		return matches[1]
	}
	return input
}

// InstagramScraper fetches public profile pages. Profiles behind a login
// wall yield partial data rather than an error. UseBrowser switches to
// headless rendering, which surfaces more of the profile markup.
type InstagramScraper struct {
	Options    *fetch.Options
	UseBrowser bool
	Verbose    bool
	// BaseURL is overridable for tests
	BaseURL string
}

// NewInstagramScraper returns a scraper with default fetch options.
func NewInstagramScraper() *InstagramScraper {
	return &InstagramScraper{
		Options: fetch.DefaultOptions(),
		BaseURL: "https://www.instagram.com",
	}
}

// Scrape fetches a public Instagram profile page and extracts what the
// initial HTML exposes: full name, bio, and approximate counts.
func (s *InstagramScraper) Scrape(ctx context.Context, usernameOrURL string) (*types.InstagramProfile, error) {
	username := UsernameFromInput(usernameOrURL)
	if username == "" {
		return nil, &ScrapeError{Username: usernameOrURL, Message: "could not determine username"}
	}

	profileURL := s.BaseURL + "/" + username + "/"

	var html string
	if s.UseBrowser {
		rendered, err := fetch.BrowserSimple(ctx, profileURL, s.Verbose)
		if err != nil {
			return nil, &ScrapeError{Username: username, Message: "failed to render profile page", Cause: err}
		}
		html = rendered
	} else {
		result, err := fetch.URL(ctx, profileURL, s.Options)
		if err != nil {
			return nil, &ScrapeError{Username: username, Message: "failed to fetch profile page", Cause: err}
		}
		html = result.HTML
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, &ScrapeError{Username: username, Message: "failed to parse HTML", Cause: err}
	}

	profile := &types.InstagramProfile{
		Username:  username,
		ScrapedAt: time.Now().UTC().Format(time.RFC3339),
	}

	if desc, ok := doc.Find(`meta[property="og:description"]`).Attr("content"); ok {
		profile.Bio = strings.TrimSpace(desc)
		profile.Followers = parseCount(followersRe.FindStringSubmatch(profile.Bio))
		profile.Posts = parseCount(postsRe.FindStringSubmatch(profile.Bio))
	}

	if title, ok := doc.Find(`meta[property="og:title"]`).Attr("content"); ok {
		if matches := titleNameRe.FindStringSubmatch(title); matches != nil {
			profile.FullName = strings.TrimSpace(matches[1])
		}
	}

	return profile, nil
}

// IsPrivate reports whether the scraped bio indicates a private account.
func IsPrivate(profile *types.InstagramProfile) bool {
	return profile != nil && strings.Contains(profile.Bio, "This Account is Private")
}

// parseCount converts count strings like "1,234" or "12.5K" to an integer.
// Unparseable input yields zero.
func parseCount(matches []string) int {
	if matches == nil {
		return 0
	}
	raw := strings.ReplaceAll(matches[1], ",", "")

	multiplier := 1.0
	switch {
	case strings.HasSuffix(raw, "K"), strings.HasSuffix(raw, "k"):
		multiplier = 1_000
		raw = raw[:len(raw)-1]
	case strings.HasSuffix(raw, "M"), strings.HasSuffix(raw, "m"):
		multiplier = 1_000_000
		raw = raw[:len(raw)-1]
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return int(value * multiplier)
}
