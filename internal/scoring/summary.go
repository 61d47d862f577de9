package scoring

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Nitish-kumar7/web-scraping/internal/types"
)

// RenderSummary produces the ordered human-readable report for a completed
// evaluation: overall score and qualification, the five dimension scores in
// fixed order, then strengths, areas for improvement, and recommendations,
// each section omitted entirely when empty. Pure formatting, no computation.
func RenderSummary(score *types.CandidateScore) string {
	parts := make([]string, 0, 16)

	status := "Not Qualified"
	if score.IsQualified {
		status = "Qualified"
	}
	parts = append(parts,
		fmt.Sprintf("Overall Score: %s%%", formatScore(score.OverallScore)),
		fmt.Sprintf("Qualification Status: %s", status),
		"\nDetailed Scores:",
		fmt.Sprintf("- Skill Match: %s%%", formatScore(score.SkillMatchScore)),
		fmt.Sprintf("- Experience: %s%%", formatScore(score.ExperienceScore)),
		fmt.Sprintf("- Projects: %s%%", formatScore(score.ProjectScore)),
		fmt.Sprintf("- GitHub Activity: %s%%", formatScore(score.GitHubScore)),
		fmt.Sprintf("- Education: %s%%", formatScore(score.EducationScore)),
	)

	if len(score.Strengths) > 0 {
		parts = append(parts, "\nStrengths:")
		for _, strength := range score.Strengths {
			parts = append(parts, "- "+strength)
		}
	}

	if len(score.Weaknesses) > 0 {
		parts = append(parts, "\nAreas for Improvement:")
		for _, weakness := range score.Weaknesses {
			parts = append(parts, "- "+weakness)
		}
	}

	if len(score.Recommendations) > 0 {
		parts = append(parts, "\nRecommendations:")
		for _, rec := range score.Recommendations {
			parts = append(parts, "- "+rec)
		}
	}

	return strings.Join(parts, "\n")
}

// formatScore renders a score without trailing zeros (85.5, not 85.50)
func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
