package matching

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/Nitish-kumar7/web-scraping/internal/llm"
	"github.com/Nitish-kumar7/web-scraping/internal/skills"
	"github.com/Nitish-kumar7/web-scraping/internal/types"
)

// GeminiMatcher asks the model to judge how well the candidate's skills
// cover the job requirements, including related-skill equivalences a set
// overlap cannot see (e.g. Vue experience against a React requirement).
type GeminiMatcher struct {
	client llm.Client
}

func NewGeminiMatcher(client llm.Client) *GeminiMatcher {
	return &GeminiMatcher{client: client}
}

// geminiMatchResponse is the JSON object the prompt instructs the model to return
type geminiMatchResponse struct {
	MatchScore      float64  `json:"match_score"`
	MatchingSkills  []string `json:"matching_skills"`
	MissingSkills   []string `json:"missing_skills"`
	SkillGaps       []string `json:"skill_gaps"`
	Recommendations []string `json:"recommendations"`
}

func (m *GeminiMatcher) MatchSkills(ctx context.Context, candidateSkills []string, req types.JobRequirements) (*types.SkillMatch, error) {
	candidateJSON, err := json.Marshal(skills.Normalize(candidateSkills))
	if err != nil {
		return nil, fmt.Errorf("failed to encode candidate skills: %w", err)
	}
	requiredJSON, err := json.Marshal(req.RequiredSkills)
	if err != nil {
		return nil, fmt.Errorf("failed to encode required skills: %w", err)
	}
	preferredJSON, err := json.Marshal(req.PreferredSkills)
	if err != nil {
		return nil, fmt.Errorf("failed to encode preferred skills: %w", err)
	}

	var sb strings.Builder
	sb.WriteString("Compare the candidate's skills with the job requirements and provide a detailed analysis.\n")
	sb.WriteString("Treat closely related technologies as partial matches.\n")
	sb.WriteString("Return a JSON object with the following structure:\n")
	sb.WriteString(`{
  "match_score": float,           // Overall match percentage (0-100)
  "matching_skills": ["string"],  // Required skills the candidate covers
  "missing_skills": ["string"],   // Required skills that are missing
  "skill_gaps": ["string"],       // Detailed analysis of skill gaps
  "recommendations": ["string"]   // Recommendations for improvement
}`)
	sb.WriteString("\n\nCandidate Skills: ")
	sb.Write(candidateJSON)
	sb.WriteString("\nRequired Skills: ")
	sb.Write(requiredJSON)
	sb.WriteString("\nPreferred Skills: ")
	sb.Write(preferredJSON)

	response, err := m.client.GenerateJSON(ctx, sb.String(), llm.TierStandard)
	if err != nil {
		return nil, fmt.Errorf("skill matching request failed: %w", err)
	}

	var parsed geminiMatchResponse
	if err := json.Unmarshal([]byte(llm.CleanJSONBlock(response)), &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse skill match response: %w", err)
	}

	score := clampPercent(parsed.MatchScore)
	return &types.SkillMatch{
		Score: score,
		// The assisted score is a single blended judgement; qualification
		// under the assisted policy reads the overall score only.
		RequiredMatchScore:     score,
		MatchingRequiredSkills: parsed.MatchingSkills,
		MissingRequiredSkills:  parsed.MissingSkills,
		SkillGaps:              parsed.SkillGaps,
		Source:                 types.SourceAssisted,
	}, nil
}

func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return math.Round(v*100) / 100
}
