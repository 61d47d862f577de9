package db

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestAnalysisSummaryType(t *testing.T) {
	summary := AnalysisSummary{
		ID:           uuid.New(),
		PortfolioURL: "https://janedoe.dev",
		OverallScore: 75.0,
		IsQualified:  false,
	}

	assert.Equal(t, "https://janedoe.dev", summary.PortfolioURL)
	assert.Equal(t, 75.0, summary.OverallScore)
	assert.False(t, summary.IsQualified)
}

func TestListFiltersDefaults(t *testing.T) {
	filters := ListFilters{}
	assert.Zero(t, filters.Limit)
	assert.False(t, filters.QualifiedOnly)
}
