package scoring

import "github.com/Nitish-kumar7/web-scraping/internal/types"

// Blend weights for the project score
const (
	projectQuantityWeight = 0.6
	projectQualityWeight  = 0.4
)

// ProjectScore scores the candidate's project portfolio by quantity and
// quality. A "quality" project has both a non-empty description and a
// non-empty technologies list. An empty portfolio scores 0 regardless of
// the minimum; minProjects == 0 gives full quantity credit.
func ProjectScore(projects []types.Project, minProjects int) float64 {
	if len(projects) == 0 {
		return 0
	}

	qualityCount := 0
	for _, project := range projects {
		if project.Description != "" && len(project.Technologies) > 0 {
			qualityCount++
		}
	}

	quantityScore := 100.0
	if minProjects > 0 {
		quantityScore = clampScore(float64(len(projects)) / float64(minProjects) * 100)
	}
	qualityScore := float64(qualityCount) / float64(len(projects)) * 100

	return round2(quantityScore*projectQuantityWeight + qualityScore*projectQualityWeight)
}
