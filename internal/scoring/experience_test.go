package scoring

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Nitish-kumar7/web-scraping/internal/types"
)

func TestExperienceScore_MeetsMinimum(t *testing.T) {
	entries := []types.ExperienceEntry{{Date: "2020-2023"}}

	assert.Equal(t, 100.0, ExperienceScore(entries, 3))
}

func TestExperienceScore_BelowMinimum(t *testing.T) {
	entries := []types.ExperienceEntry{{Date: "2020-2023"}}

	assert.Equal(t, 50.0, ExperienceScore(entries, 6))
}

func TestExperienceScore_ZeroMinimumIsFullCredit(t *testing.T) {
	// No minimum required yields full credit regardless of entries.
	// This is the opposite empty-requirement policy from skill matching.
	assert.Equal(t, 100.0, ExperienceScore(nil, 0))
	assert.Equal(t, 100.0, ExperienceScore([]types.ExperienceEntry{{Date: "garbage"}}, 0))
}

func TestExperienceScore_PresentCountsAsCurrentYear(t *testing.T) {
	start := time.Now().Year() - 4
	entries := []types.ExperienceEntry{{Date: fmt.Sprintf("%d-Present", start)}}

	assert.Equal(t, 100.0, ExperienceScore(entries, 4))
}

func TestExperienceScore_MultipleEntriesAccumulate(t *testing.T) {
	entries := []types.ExperienceEntry{
		{Date: "2016-2019"}, // 3 years
		{Date: "2019-2022"}, // 3 years
	}

	assert.Equal(t, 100.0, ExperienceScore(entries, 6))
	assert.Equal(t, 75.0, ExperienceScore(entries, 8))
}

func TestExperienceScore_UnparseableEntriesSkipped(t *testing.T) {
	entries := []types.ExperienceEntry{
		{Date: ""},
		{Date: "sometime ago"},
		{Date: "2019-2020-2021"},
		{Date: "abcd-2020"},
		{Date: "2020-2022"}, // only this one counts: 2 years
	}

	assert.Equal(t, 100.0, ExperienceScore(entries, 2))
	assert.Equal(t, 50.0, ExperienceScore(entries, 4))
}

func TestExperienceScore_ExceedingMinimumIsCapped(t *testing.T) {
	entries := []types.ExperienceEntry{{Date: "2010-2024"}}

	assert.Equal(t, 100.0, ExperienceScore(entries, 2))
}

func TestExperienceScore_NoEntries(t *testing.T) {
	assert.Equal(t, 0.0, ExperienceScore(nil, 3))
}
