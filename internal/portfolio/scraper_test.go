package portfolio

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nitish-kumar7/web-scraping/internal/types"
)

const samplePortfolioHTML = `
<html>
<head>
	<title>Jane Doe - Developer Portfolio</title>
	<meta name="description" content="Full stack developer portfolio">
</head>
<body>
	<footer>
		<a href="https://github.com/janedoe">GitHub</a>
		<a href="https://www.linkedin.com/in/janedoe">LinkedIn</a>
		<a href="/contact">Contact</a>
	</footer>
	<section class="projects">
		<h2>Chat App</h2>
		<p class="description">A real-time chat application.</p>
		<ul class="tech-stack">
			<li>Go</li>
			<li>React</li>
		</ul>
		<a href="https://example.com/chat">Live demo</a>
	</section>
	<div class="skills">
		<span>Python</span>
		<span>Docker</span>
	</div>
</body>
</html>`

func TestParse_ExtractsTitleAndDescription(t *testing.T) {
	data, err := Parse(samplePortfolioHTML, "https://janedoe.dev")

	require.NoError(t, err)
	assert.Equal(t, "https://janedoe.dev", data.URL)
	assert.Equal(t, "Jane Doe - Developer Portfolio", data.Title)
	assert.Equal(t, "Full stack developer portfolio", data.Description)
	assert.NotEmpty(t, data.ScrapedAt)
}

func TestParse_ExtractsSocialLinks(t *testing.T) {
	data, err := Parse(samplePortfolioHTML, "https://janedoe.dev")

	require.NoError(t, err)
	assert.Equal(t, "https://github.com/janedoe", data.SocialLinks["github"])
	assert.Equal(t, "https://www.linkedin.com/in/janedoe", data.SocialLinks["linkedin"])
	assert.NotContains(t, data.SocialLinks, "twitter")
}

func TestParse_ExtractsProjects(t *testing.T) {
	data, err := Parse(samplePortfolioHTML, "https://janedoe.dev")

	require.NoError(t, err)
	require.NotEmpty(t, data.Projects)
	project := data.Projects[0]
	assert.Equal(t, "Chat App", project.Title)
	assert.Equal(t, "A real-time chat application.", project.Description)
	assert.Contains(t, project.Technologies, "Go")
	assert.Contains(t, project.Technologies, "React")
}

func TestParse_ExtractsSkills(t *testing.T) {
	data, err := Parse(samplePortfolioHTML, "https://janedoe.dev")

	require.NoError(t, err)
	assert.Contains(t, data.Skills, "Python")
	assert.Contains(t, data.Skills, "Docker")
}

func TestParse_SkillsFilterLongText(t *testing.T) {
	html := `<html><body><div class="skills">
		<span>Go</span>
		<span>This is a long paragraph about my journey as a developer and it is definitely not a skill name</span>
	</div></body></html>`

	data, err := Parse(html, "https://example.com")

	require.NoError(t, err)
	assert.Equal(t, []string{"Go"}, data.Skills)
}

func TestParse_ResolvesRelativeSocialLinks(t *testing.T) {
	html := `<html><body><a href="//github.com/janedoe">GitHub</a></body></html>`

	data, err := Parse(html, "https://janedoe.dev")

	require.NoError(t, err)
	assert.Equal(t, "https://github.com/janedoe", data.SocialLinks["github"])
}

func TestNormalizeURL(t *testing.T) {
	assert.Equal(t, "https://example.com", NormalizeURL("example.com"))
	assert.Equal(t, "https://example.com", NormalizeURL("https://example.com"))
	assert.Equal(t, "http://example.com", NormalizeURL("http://example.com"))
}

func TestScrape_FetchesAndParses(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(samplePortfolioHTML))
	}))
	defer server.Close()

	scraper := NewScraper()
	scraper.BrowserFallback = false // no Chrome in tests

	data, err := scraper.Scrape(context.Background(), server.URL)

	require.NoError(t, err)
	assert.Equal(t, "Jane Doe - Developer Portfolio", data.Title)
	assert.Contains(t, data.Skills, "Python")
}

func TestScrape_FetchFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	scraper := NewScraper()
	scraper.BrowserFallback = false

	_, err := scraper.Scrape(context.Background(), server.URL)

	var scrapeErr *ScrapeError
	assert.ErrorAs(t, err, &scrapeErr)
}

func TestIsPortfolioSite(t *testing.T) {
	assert.False(t, IsPortfolioSite(nil))
	assert.True(t, IsPortfolioSite(&types.PortfolioData{Projects: []types.Project{{Title: "App"}}}))
	assert.True(t, IsPortfolioSite(&types.PortfolioData{Skills: []string{"Go"}}))
	assert.True(t, IsPortfolioSite(&types.PortfolioData{Title: "My Portfolio"}))
	assert.True(t, IsPortfolioSite(&types.PortfolioData{Description: "Software engineer based in Oslo"}))
	assert.False(t, IsPortfolioSite(&types.PortfolioData{Title: "Cooking blog"}))
}
