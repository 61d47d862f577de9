package social

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nitish-kumar7/web-scraping/internal/types"
)

func TestUsernameFromInput(t *testing.T) {
	assert.Equal(t, "janedoe", UsernameFromInput("https://www.instagram.com/janedoe"))
	assert.Equal(t, "janedoe", UsernameFromInput("https://instagram.com/janedoe/?hl=en"))
	assert.Equal(t, "janedoe", UsernameFromInput("@janedoe"))
	assert.Equal(t, "janedoe", UsernameFromInput("janedoe"))
	assert.Equal(t, "janedoe", UsernameFromInput("  janedoe  "))
}

func TestScrape_ExtractsProfileFromMetaTags(t *testing.T) {
	const profileHTML = `<html><head>
		<meta property="og:title" content="Jane Doe (@janedoe) &bull; Instagram photos and videos">
		<meta property="og:description" content="1,234 Followers, 321 Following, 56 Posts - photographer and traveler">
	</head><body></body></html>`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/janedoe/", r.URL.Path)
		_, _ = w.Write([]byte(profileHTML))
	}))
	defer server.Close()

	scraper := NewInstagramScraper()
	scraper.BaseURL = server.URL

	profile, err := scraper.Scrape(context.Background(), "janedoe")

	require.NoError(t, err)
	assert.Equal(t, "janedoe", profile.Username)
	assert.Equal(t, "Jane Doe", profile.FullName)
	assert.Equal(t, 1234, profile.Followers)
	assert.Equal(t, 56, profile.Posts)
	assert.Contains(t, profile.Bio, "photographer")
	assert.NotEmpty(t, profile.ScrapedAt)
}

func TestScrape_AbbreviatedCounts(t *testing.T) {
	const profileHTML = `<html><head>
		<meta property="og:description" content="12.5K Followers, 100 Following, 1.2M Posts">
	</head></html>`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(profileHTML))
	}))
	defer server.Close()

	scraper := NewInstagramScraper()
	scraper.BaseURL = server.URL

	profile, err := scraper.Scrape(context.Background(), "janedoe")

	require.NoError(t, err)
	assert.Equal(t, 12500, profile.Followers)
	assert.Equal(t, 1200000, profile.Posts)
}

func TestScrape_MissingMetaTags(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html><head></head><body>Login required</body></html>`))
	}))
	defer server.Close()

	scraper := NewInstagramScraper()
	scraper.BaseURL = server.URL

	profile, err := scraper.Scrape(context.Background(), "janedoe")

	require.NoError(t, err)
	assert.Equal(t, "janedoe", profile.Username)
	assert.Empty(t, profile.Bio)
	assert.Zero(t, profile.Followers)
}

func TestScrape_FetchFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	scraper := NewInstagramScraper()
	scraper.BaseURL = server.URL

	_, err := scraper.Scrape(context.Background(), "janedoe")

	var scrapeErr *ScrapeError
	assert.ErrorAs(t, err, &scrapeErr)
}

func TestIsPrivate(t *testing.T) {
	assert.False(t, IsPrivate(nil))
	assert.False(t, IsPrivate(&types.InstagramProfile{Bio: "public account"}))
	assert.True(t, IsPrivate(&types.InstagramProfile{Bio: "This Account is Private"}))
}
