package scoring

import "github.com/Nitish-kumar7/web-scraping/internal/types"

// Blend weights for the GitHub activity score
const (
	githubStarsWeight    = 0.4
	githubReposWeight    = 0.3
	githubActivityWeight = 0.3
)

// GitHubScore scores source-profile activity. A nil profile (no data
// supplied) scores 0. Star and repository counts are scored against their
// minimums with full credit when no minimum is set.
//
// ActivityScore is taken verbatim from the profile: upstream derives it
// from a raw recent-public-event count, an approximation of activity that
// is not rescaled here. The final blend is capped to [0,100].
func GitHubScore(profile *types.GitHubProfile, minStars, minRepos int) float64 {
	if profile == nil {
		return 0
	}

	starsScore := 100.0
	if minStars > 0 {
		starsScore = clampScore(float64(profile.TotalStars) / float64(minStars) * 100)
	}
	reposScore := 100.0
	if minRepos > 0 {
		reposScore = clampScore(float64(profile.Repositories) / float64(minRepos) * 100)
	}

	final := starsScore*githubStarsWeight + reposScore*githubReposWeight + profile.ActivityScore*githubActivityWeight
	return round2(clampScore(final))
}
