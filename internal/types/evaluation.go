package types

// MatchSource identifies which skill-matching strategy produced a SkillMatch.
// The aggregator selects its scoring policy from this.
type MatchSource string

const (
	// SourceDeterministic marks a match computed by the local set-overlap matcher
	SourceDeterministic MatchSource = "deterministic"
	// SourceAssisted marks a match produced by the LLM-backed matcher
	SourceAssisted MatchSource = "assisted"
)

// SkillMatch represents the outcome of matching candidate skills against
// job requirements. Scores are percentages rounded to 2 decimal places.
type SkillMatch struct {
	Score                   float64     `json:"match_score"`
	RequiredMatchScore      float64     `json:"required_match_score"`
	PreferredMatchScore     float64     `json:"preferred_match_score"`
	MatchingRequiredSkills  []string    `json:"matching_required_skills"`
	MatchingPreferredSkills []string    `json:"matching_preferred_skills"`
	MissingRequiredSkills   []string    `json:"missing_required_skills"`
	Source                  MatchSource `json:"source"`
	// SkillGaps holds the assisted matcher's free-form gap analysis, when available
	SkillGaps []string `json:"skill_gaps,omitempty"`
}

// CandidateScore is the normalized qualification verdict for a candidate.
// All scores lie in [0,100]. Constructed exactly once by the aggregator
// and never mutated afterwards.
type CandidateScore struct {
	OverallScore    float64  `json:"overall_score"`
	SkillMatchScore float64  `json:"skill_match_score"`
	ExperienceScore float64  `json:"experience_score"`
	ProjectScore    float64  `json:"project_score"`
	GitHubScore     float64  `json:"github_score"`
	EducationScore  float64  `json:"education_score"`
	IsQualified     bool     `json:"is_qualified"`
	Strengths       []string `json:"strengths"`
	Weaknesses      []string `json:"weaknesses"`
	Recommendations []string `json:"recommendations"`
}

// AnalysisReport is the full structured output of one candidate analysis:
// the verdict, its rendered summary, the input facts, and provenance.
type AnalysisReport struct {
	ID           string            `json:"id"`
	Evaluation   *CandidateScore   `json:"evaluation"`
	SkillMatch   *SkillMatch       `json:"skill_match"`
	Summary      string            `json:"summary"`
	Portfolio    *PortfolioData    `json:"portfolio_data,omitempty"`
	GitHub       *GitHubProfile    `json:"github_data,omitempty"`
	Resume       *ResumeData       `json:"resume_data,omitempty"`
	Instagram    *InstagramProfile `json:"instagram_data,omitempty"`
	Requirements JobRequirements   `json:"job_requirements"`
	Timestamp    string            `json:"timestamp"`
}
