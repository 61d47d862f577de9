package scoring

import (
	"strconv"
	"strings"
	"time"

	"github.com/Nitish-kumar7/web-scraping/internal/types"
)

// ExperienceScore scores total years of work experience against a minimum.
// Each entry's date range is parsed as "YYYY-YYYY" or "YYYY-Present"; an
// end that is not a plain year counts as the current calendar year.
// Entries that do not parse are silently skipped and contribute nothing.
//
// minYears == 0 means no minimum is required and yields full credit. Note
// this is the opposite empty-requirement policy from the skill matcher.
func ExperienceScore(entries []types.ExperienceEntry, minYears int) float64 {
	totalYears := 0
	for _, entry := range entries {
		if entry.Date == "" {
			continue
		}
		parts := strings.Split(entry.Date, "-")
		if len(parts) != 2 {
			continue
		}
		startYear, err := strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil {
			continue
		}
		endYear, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil {
			// "Present" or anything non-numeric counts as the current year
			endYear = time.Now().Year()
		}
		totalYears += endYear - startYear
	}

	if minYears <= 0 {
		return 100
	}
	score := float64(totalYears) / float64(minYears) * 100
	return round2(clampScore(score))
}
