package scoring

import (
	"strings"

	"github.com/Nitish-kumar7/web-scraping/internal/types"
)

// educationLevels maps degree level keywords to ordinal ranks.
// "phd" and "doctorate" share the top rank.
var educationLevels = map[string]int{
	"high school": 1,
	"associate":   2,
	"bachelor":    3,
	"master":      4,
	"phd":         5,
	"doctorate":   5,
}

// EducationScore scores the candidate's education against a required degree
// level. No requirement, or a requirement that maps to no known level,
// yields full credit. Otherwise every entry's degree text is scanned for
// level keywords (case-insensitive substring match) and the highest rank
// found across all entries combined is scored against the required rank.
func EducationScore(entries []types.EducationEntry, requiredEducation string) float64 {
	if requiredEducation == "" {
		return 100
	}

	requiredLevel := educationLevels[strings.ToLower(requiredEducation)]
	if requiredLevel == 0 {
		return 100
	}

	highestLevel := 0
	for _, entry := range entries {
		degree := strings.ToLower(entry.Degree)
		for keyword, level := range educationLevels {
			if strings.Contains(degree, keyword) && level > highestLevel {
				highestLevel = level
			}
		}
	}

	score := float64(highestLevel) / float64(requiredLevel) * 100
	return round2(clampScore(score))
}
