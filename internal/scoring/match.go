package scoring

import (
	"github.com/Nitish-kumar7/web-scraping/internal/skills"
	"github.com/Nitish-kumar7/web-scraping/internal/types"
)

// Blend weights for the final skill-match score
const (
	requiredSkillWeight  = 0.7
	preferredSkillWeight = 0.3
)

// MatchSkills computes the deterministic skill match between candidate
// skills and job requirements. All three collections are normalized to the
// canonical vocabulary first.
//
// An empty required (or preferred) set scores 0 for that component, not
// full credit. This is deliberate and differs from the empty-requirement
// policy of the other scorers: a job with no required skills listed gives
// the skill dimension nothing to claim credit against.
func MatchSkills(candidateSkills, requiredSkills, preferredSkills []string) *types.SkillMatch {
	candidate := skills.Normalize(candidateSkills)
	required := skills.Normalize(requiredSkills)
	preferred := skills.Normalize(preferredSkills)

	requiredSet := toSet(required)
	preferredSet := toSet(preferred)
	candidateSet := toSet(candidate)

	matchingRequired := make([]string, 0)
	matchingPreferred := make([]string, 0)
	for _, skill := range candidate {
		if requiredSet[skill] {
			matchingRequired = append(matchingRequired, skill)
		}
		if preferredSet[skill] {
			matchingPreferred = append(matchingPreferred, skill)
		}
	}

	missingRequired := make([]string, 0)
	for _, skill := range required {
		if !candidateSet[skill] {
			missingRequired = append(missingRequired, skill)
		}
	}

	requiredScore := 0.0
	if len(required) > 0 {
		requiredScore = float64(len(matchingRequired)) / float64(len(required)) * 100
	}
	preferredScore := 0.0
	if len(preferred) > 0 {
		preferredScore = float64(len(matchingPreferred)) / float64(len(preferred)) * 100
	}

	finalScore := requiredScore*requiredSkillWeight + preferredScore*preferredSkillWeight

	return &types.SkillMatch{
		Score:                   round2(finalScore),
		RequiredMatchScore:      round2(requiredScore),
		PreferredMatchScore:     round2(preferredScore),
		MatchingRequiredSkills:  matchingRequired,
		MatchingPreferredSkills: matchingPreferred,
		MissingRequiredSkills:   missingRequired,
		Source:                  types.SourceDeterministic,
	}
}

func toSet(items []string) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, item := range items {
		set[item] = true
	}
	return set
}
