package scoring

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nitish-kumar7/web-scraping/internal/types"
)

func TestRenderSummary_ContainsAllSections(t *testing.T) {
	score := &types.CandidateScore{
		OverallScore:    75.5,
		SkillMatchScore: 35,
		ExperienceScore: 100,
		ProjectScore:    100,
		GitHubScore:     85,
		EducationScore:  100,
		IsQualified:     false,
		Strengths:       []string{"Meets or exceeds required experience"},
		Weaknesses:      []string{"Missing key skills: JavaScript"},
		Recommendations: []string{"Focus on acquiring missing required skills"},
	}

	summary := RenderSummary(score)

	assert.Contains(t, summary, "Overall Score: 75.5%")
	assert.Contains(t, summary, "Qualification Status: Not Qualified")
	assert.Contains(t, summary, "Detailed Scores:")
	assert.Contains(t, summary, "- Skill Match: 35%")
	assert.Contains(t, summary, "- GitHub Activity: 85%")
	assert.Contains(t, summary, "Strengths:")
	assert.Contains(t, summary, "Areas for Improvement:")
	assert.Contains(t, summary, "- Missing key skills: JavaScript")
	assert.Contains(t, summary, "Recommendations:")
}

func TestRenderSummary_EmptySectionsOmitted(t *testing.T) {
	score := &types.CandidateScore{
		OverallScore: 90,
		IsQualified:  true,
	}

	summary := RenderSummary(score)

	assert.Contains(t, summary, "Qualification Status: Qualified")
	assert.NotContains(t, summary, "Strengths:")
	assert.NotContains(t, summary, "Areas for Improvement:")
	assert.NotContains(t, summary, "Recommendations:")
}

func TestRenderSummary_DimensionOrderIsFixed(t *testing.T) {
	summary := RenderSummary(&types.CandidateScore{})

	skillIdx := strings.Index(summary, "- Skill Match:")
	expIdx := strings.Index(summary, "- Experience:")
	projIdx := strings.Index(summary, "- Projects:")
	ghIdx := strings.Index(summary, "- GitHub Activity:")
	eduIdx := strings.Index(summary, "- Education:")

	require.True(t, skillIdx >= 0 && expIdx >= 0 && projIdx >= 0 && ghIdx >= 0 && eduIdx >= 0)
	assert.True(t, skillIdx < expIdx && expIdx < projIdx && projIdx < ghIdx && ghIdx < eduIdx)
}

func TestRenderSummary_RoundTripFromEvaluate(t *testing.T) {
	summary := RenderSummary(Evaluate(types.CandidateFacts{}, types.JobRequirements{}))

	assert.Contains(t, summary, "Overall Score:")
}
