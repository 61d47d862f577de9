package scoring

import "github.com/Nitish-kumar7/web-scraping/internal/types"

// Qualification thresholds. Fixed by policy, not configurable inputs.
const (
	strengthThreshold  = 80.0
	weaknessThreshold  = 60.0
	dimensionThreshold = 70.0
	overallThreshold   = 75.0
	assistedThreshold  = 70.0
)

// Weights holds the per-dimension weights of one scoring policy.
// Each policy's weights sum to 1.0.
type Weights struct {
	SkillMatch float64
	Experience float64
	Projects   float64
	GitHub     float64
	Education  float64
}

// Policy is a named scoring strategy: the dimension weights plus the
// qualification rule. Two policies coexist in this system and must never
// be merged; which one applies follows from the skill-matching strategy
// that produced the match.
type Policy struct {
	Name      string
	Weights   Weights
	qualified func(match *types.SkillMatch, experience, project, overall float64) bool
}

// PolicyDeterministic applies when the deterministic set-overlap matcher
// produced the skill match: skill-heavy weights with a strict
// multi-threshold qualification rule.
var PolicyDeterministic = Policy{
	Name: "deterministic",
	Weights: Weights{
		SkillMatch: 0.35,
		Experience: 0.25,
		Projects:   0.20,
		GitHub:     0.15,
		Education:  0.05,
	},
	qualified: func(match *types.SkillMatch, experience, project, overall float64) bool {
		return match.RequiredMatchScore >= dimensionThreshold &&
			experience >= dimensionThreshold &&
			project >= dimensionThreshold &&
			overall >= overallThreshold
	},
}

// PolicyAssisted applies when the LLM-backed matcher produced the skill
// match: heavier skill weighting with a single overall threshold.
var PolicyAssisted = Policy{
	Name: "assisted",
	Weights: Weights{
		SkillMatch: 0.40,
		Experience: 0.20,
		Projects:   0.20,
		GitHub:     0.10,
		Education:  0.10,
	},
	qualified: func(_ *types.SkillMatch, _, _, overall float64) bool {
		return overall >= assistedThreshold
	},
}

// PolicyFor returns the scoring policy implied by a skill match's source
func PolicyFor(source types.MatchSource) Policy {
	if source == types.SourceAssisted {
		return PolicyAssisted
	}
	return PolicyDeterministic
}
