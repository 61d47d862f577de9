package scoring

import (
	"fmt"
	"strings"

	"github.com/Nitish-kumar7/web-scraping/internal/types"
)

// Aggregate combines the five dimension scores into a CandidateScore under
// the given policy: the weighted overall score, the qualification verdict,
// and the derived strengths, weaknesses, and recommendations.
//
// Per dimension, a score of 80 or above emits a strength and a score below
// 60 emits a weakness; the skills weakness names the missing required
// skills. Recommendations are emitted only for unqualified candidates, one
// per dimension scoring below 70.
func Aggregate(match *types.SkillMatch, experienceScore, projectScore, githubScore, educationScore float64, policy Policy) *types.CandidateScore {
	w := policy.Weights
	overall := match.Score*w.SkillMatch +
		experienceScore*w.Experience +
		projectScore*w.Projects +
		githubScore*w.GitHub +
		educationScore*w.Education
	overall = round2(overall)

	isQualified := policy.qualified(match, experienceScore, projectScore, overall)

	dimensions := []struct {
		score          float64
		strength       string
		weakness       string
		recommendation string
	}{
		{
			score:          match.Score,
			strength:       "Strong skill match with job requirements",
			weakness:       fmt.Sprintf("Missing key skills: %s", strings.Join(match.MissingRequiredSkills, ", ")),
			recommendation: "Focus on acquiring missing required skills",
		},
		{
			score:          experienceScore,
			strength:       "Meets or exceeds required experience",
			weakness:       "Below required experience level",
			recommendation: "Gain more relevant work experience",
		},
		{
			score:          projectScore,
			strength:       "Strong project portfolio",
			weakness:       "Limited project experience",
			recommendation: "Build more projects to showcase skills",
		},
		{
			score:          githubScore,
			strength:       "Active GitHub presence",
			weakness:       "Limited GitHub activity",
			recommendation: "Increase GitHub activity and contributions",
		},
		{
			score:          educationScore,
			strength:       "Meets required education level",
			weakness:       "Below required education level",
			recommendation: "Pursue further education or certifications",
		},
	}

	strengths := make([]string, 0)
	weaknesses := make([]string, 0)
	recommendations := make([]string, 0)
	for _, dim := range dimensions {
		if dim.score >= strengthThreshold {
			strengths = append(strengths, dim.strength)
		} else if dim.score < weaknessThreshold {
			weaknesses = append(weaknesses, dim.weakness)
		}
		if !isQualified && dim.score < dimensionThreshold {
			recommendations = append(recommendations, dim.recommendation)
		}
	}

	return &types.CandidateScore{
		OverallScore:    overall,
		SkillMatchScore: match.Score,
		ExperienceScore: experienceScore,
		ProjectScore:    projectScore,
		GitHubScore:     githubScore,
		EducationScore:  educationScore,
		IsQualified:     isQualified,
		Strengths:       strengths,
		Weaknesses:      weaknesses,
		Recommendations: recommendations,
	}
}
