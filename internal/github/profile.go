package github

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"time"

	"github.com/Nitish-kumar7/web-scraping/internal/types"
)

var profileURLRe = regexp.MustCompile(`(?i)github\.com/([A-Za-z0-9](?:[A-Za-z0-9-]*[A-Za-z0-9])?)`)

// UsernameFromURL extracts a GitHub username from a profile URL.
// Returns an empty string when the URL is not a recognizable profile link.
func UsernameFromURL(profileURL string) string {
	matches := profileURLRe.FindStringSubmatch(profileURL)
	if matches == nil {
		return ""
	}
	return matches[1]
}

// FetchProfile aggregates the user's profile, repositories, and recent public
// events into a GitHubProfile. The activity score is the raw count of recent
// public events, an approximation of contribution activity.
func (c *Client) FetchProfile(ctx context.Context, username string) (*types.GitHubProfile, error) {
	var user userResponse
	if err := c.get(ctx, username, "/users/"+username, &user); err != nil {
		return nil, err
	}

	var repos []repoResponse
	if err := c.get(ctx, username, "/users/"+username+"/repos", &repos); err != nil {
		return nil, err
	}

	var events []json.RawMessage
	if err := c.get(ctx, username, "/users/"+username+"/events/public", &events); err != nil {
		return nil, err
	}

	languages := make(map[string]int)
	totalStars := 0
	for _, repo := range repos {
		totalStars += repo.StargazersCount
		if repo.Language != "" {
			languages[repo.Language]++
		}
	}

	return &types.GitHubProfile{
		Name:          user.Name,
		Bio:           user.Bio,
		Location:      user.Location,
		Repositories:  user.PublicRepos,
		Followers:     user.Followers,
		Following:     user.Following,
		TotalStars:    totalStars,
		ActivityScore: float64(len(events)),
		Languages:     languages,
		ProfileURL:    user.HTMLURL,
		CreatedAt:     user.CreatedAt,
		LastUpdated:   time.Now().UTC().Format(time.RFC3339),
	}, nil
}

// FetchRepository returns metadata for a single repository.
func (c *Client) FetchRepository(ctx context.Context, username, repoName string) (*RepositoryDetails, error) {
	var repo repoResponse
	path := fmt.Sprintf("/repos/%s/%s", username, repoName)
	if err := c.get(ctx, username, path, &repo); err != nil {
		return nil, err
	}

	return &RepositoryDetails{
		Name:        repo.Name,
		Description: repo.Description,
		Language:    repo.Language,
		Stars:       repo.StargazersCount,
		Forks:       repo.ForksCount,
		OpenIssues:  repo.OpenIssuesCount,
		URL:         repo.HTMLURL,
		CreatedAt:   repo.CreatedAt,
		UpdatedAt:   repo.UpdatedAt,
	}, nil
}
