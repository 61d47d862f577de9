package matching

import (
	"context"

	"github.com/Nitish-kumar7/web-scraping/internal/scoring"
	"github.com/Nitish-kumar7/web-scraping/internal/types"
)

// Deterministic matches skills by normalized set overlap. It never fails
// and is the terminal fallback for every matching pipeline.
type Deterministic struct{}

func (Deterministic) MatchSkills(_ context.Context, candidateSkills []string, req types.JobRequirements) (*types.SkillMatch, error) {
	return scoring.MatchSkills(candidateSkills, req.RequiredSkills, req.PreferredSkills), nil
}
