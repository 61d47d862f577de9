// Package portfolio scrapes candidate portfolio websites: page title and
// description, social profile links, project sections, and skill lists.
package portfolio

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/Nitish-kumar7/web-scraping/internal/fetch"
	"github.com/Nitish-kumar7/web-scraping/internal/types"
)

// ScrapeError represents an error during portfolio scraping.
type ScrapeError struct {
	URL     string
	Message string
	Cause   error
}

func (e *ScrapeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("portfolio scrape error for %s: %s: %v", e.URL, e.Message, e.Cause)
	}
	return fmt.Sprintf("portfolio scrape error for %s: %s", e.URL, e.Message)
}

func (e *ScrapeError) Unwrap() error {
	return e.Cause
}

// socialPlatforms maps platform names to host patterns recognized in links
var socialPlatforms = map[string]*regexp.Regexp{
	"github":    regexp.MustCompile(`(?i)github\.com`),
	"linkedin":  regexp.MustCompile(`(?i)linkedin\.com`),
	"twitter":   regexp.MustCompile(`(?i)twitter\.com`),
	"instagram": regexp.MustCompile(`(?i)instagram\.com`),
	"facebook":  regexp.MustCompile(`(?i)facebook\.com`),
	"medium":    regexp.MustCompile(`(?i)medium\.com`),
	"dev.to":    regexp.MustCompile(`(?i)dev\.to`),
	"behance":   regexp.MustCompile(`(?i)behance\.net`),
	"dribbble":  regexp.MustCompile(`(?i)dribbble\.com`),
}

var (
	projectSectionRe = regexp.MustCompile(`(?i)project|portfolio|work`)
	descriptionRe    = regexp.MustCompile(`(?i)description|about|summary`)
	techListRe       = regexp.MustCompile(`(?i)tech|stack|tools|skills`)
	skillSectionRe   = regexp.MustCompile(`(?i)skill|expertise|technologies`)
)

// maxSkillLength filters out long text blocks that are unlikely to be a skill name
const maxSkillLength = 50

// Scraper fetches and parses portfolio websites. When BrowserFallback is set,
// pages whose extracted text is too thin are re-rendered in a headless browser
// before parsing, which recovers content from JavaScript-only sites.
type Scraper struct {
	Options         *fetch.Options
	BrowserFallback bool
	Verbose         bool
}

// NewScraper returns a Scraper with default fetch options and browser fallback enabled.
func NewScraper() *Scraper {
	return &Scraper{
		Options:         fetch.DefaultOptions(),
		BrowserFallback: true,
	}
}

// NormalizeURL adds an https scheme when the URL has none.
func NormalizeURL(rawURL string) string {
	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return "https://" + rawURL
	}
	return rawURL
}

// Scrape fetches the portfolio page and extracts structured data from it.
func (s *Scraper) Scrape(ctx context.Context, rawURL string) (*types.PortfolioData, error) {
	pageURL := NormalizeURL(rawURL)

	result, err := fetch.URL(ctx, pageURL, s.Options)
	if err != nil {
		return nil, &ScrapeError{URL: pageURL, Message: "failed to fetch page", Cause: err}
	}

	html := result.HTML
	if s.BrowserFallback {
		text, textErr := fetch.ExtractMainText(html, fetch.PortfolioSelectors())
		if textErr == nil && fetch.ShouldUseBrowser(text) {
			if rendered, browserErr := fetch.BrowserSimple(ctx, pageURL, s.Verbose); browserErr == nil {
				html = rendered
			}
		}
	}

	return Parse(html, pageURL)
}

// Parse extracts portfolio data from already-fetched HTML.
func Parse(html, pageURL string) (*types.PortfolioData, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, &ScrapeError{URL: pageURL, Message: "failed to parse HTML", Cause: err}
	}

	data := &types.PortfolioData{
		URL:         pageURL,
		Title:       strings.TrimSpace(doc.Find("title").First().Text()),
		SocialLinks: extractSocialLinks(doc, pageURL),
		Projects:    extractProjects(doc),
		Skills:      extractSkills(doc),
		ScrapedAt:   time.Now().UTC().Format(time.RFC3339),
	}

	if desc, ok := doc.Find(`meta[name="description"]`).Attr("content"); ok {
		data.Description = strings.TrimSpace(desc)
	}

	return data, nil
}

// extractSocialLinks scans anchor hrefs for known social platform hosts.
// The last link per platform wins, matching typical footer link placement.
func extractSocialLinks(doc *goquery.Document, pageURL string) map[string]string {
	base, err := url.Parse(pageURL)
	if err != nil {
		base = nil
	}

	links := make(map[string]string)
	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, ok := sel.Attr("href")
		if !ok {
			return
		}
		absolute := resolveURL(base, href)
		if absolute == "" {
			return
		}
		for platform, pattern := range socialPlatforms {
			if pattern.MatchString(absolute) {
				links[platform] = absolute
				break
			}
		}
	})
	return links
}

func resolveURL(base *url.URL, href string) string {
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return ""
	}
	if base != nil {
		ref = base.ResolveReference(ref)
	}
	if ref.Scheme == "" || ref.Host == "" {
		return ""
	}
	return ref.String()
}

// extractProjects finds sections whose class names suggest project content
// and pulls a title, description, technology list, and link from each.
func extractProjects(doc *goquery.Document) []types.Project {
	var projects []types.Project

	doc.Find("section, div").Each(func(_ int, section *goquery.Selection) {
		class, _ := section.Attr("class")
		if !projectSectionRe.MatchString(class) {
			return
		}

		var project types.Project

		if title := section.Find("h1, h2, h3, h4, h5, h6").First(); title.Length() > 0 {
			project.Title = strings.TrimSpace(title.Text())
		}

		section.Find("p, div").EachWithBreak(func(_ int, elem *goquery.Selection) bool {
			elemClass, _ := elem.Attr("class")
			if descriptionRe.MatchString(elemClass) {
				project.Description = strings.TrimSpace(elem.Text())
				return false
			}
			return true
		})

		section.Find("div, ul").EachWithBreak(func(_ int, elem *goquery.Selection) bool {
			elemClass, _ := elem.Attr("class")
			if !techListRe.MatchString(elemClass) {
				return true
			}
			elem.Find("li, span").Each(func(_ int, tech *goquery.Selection) {
				if name := strings.TrimSpace(tech.Text()); name != "" {
					project.Technologies = append(project.Technologies, name)
				}
			})
			return false
		})

		if link := section.Find("a[href]").First(); link.Length() > 0 {
			project.URL, _ = link.Attr("href")
		}

		if project.Title != "" || project.Description != "" {
			projects = append(projects, project)
		}
	})

	return projects
}

// extractSkills collects short text items from sections whose class names
// suggest a skill list. Items at or above maxSkillLength are discarded.
func extractSkills(doc *goquery.Document) []string {
	seen := make(map[string]bool)
	var skills []string

	doc.Find("section, div").Each(func(_ int, section *goquery.Selection) {
		class, _ := section.Attr("class")
		if !skillSectionRe.MatchString(class) {
			return
		}
		section.Find("li, span, div").Each(func(_ int, elem *goquery.Selection) {
			skill := strings.TrimSpace(elem.Text())
			if skill == "" || len(skill) >= maxSkillLength || seen[skill] {
				return
			}
			seen[skill] = true
			skills = append(skills, skill)
		})
	})

	return skills
}

// portfolioKeywords are title/description words indicating a personal portfolio site
var portfolioKeywords = []string{"portfolio", "projects", "work", "developer", "designer", "engineer"}

// IsPortfolioSite reports whether scraped data looks like a personal portfolio:
// it has projects, skills, or portfolio keywords in the title or description.
func IsPortfolioSite(data *types.PortfolioData) bool {
	if data == nil {
		return false
	}
	if len(data.Projects) > 0 || len(data.Skills) > 0 {
		return true
	}
	title := strings.ToLower(data.Title)
	desc := strings.ToLower(data.Description)
	for _, keyword := range portfolioKeywords {
		if strings.Contains(title, keyword) || strings.Contains(desc, keyword) {
			return true
		}
	}
	return false
}
