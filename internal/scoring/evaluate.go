package scoring

import "github.com/Nitish-kumar7/web-scraping/internal/types"

// Evaluate scores a candidate's facts against job requirements using the
// deterministic skill matcher and its policy. It never fails: missing or
// empty inputs degrade to each scorer's documented default.
func Evaluate(facts types.CandidateFacts, req types.JobRequirements) *types.CandidateScore {
	match := MatchSkills(facts.Skills, req.RequiredSkills, req.PreferredSkills)
	return EvaluateMatch(match, facts, req)
}

// EvaluateMatch scores a candidate's facts using a caller-supplied skill
// match, selecting the scoring policy from the match's source. This is the
// path the orchestrator takes when an LLM-backed matcher produced the match.
func EvaluateMatch(match *types.SkillMatch, facts types.CandidateFacts, req types.JobRequirements) *types.CandidateScore {
	experienceScore := ExperienceScore(facts.Experience, req.MinExperienceYears)
	projectScore := ProjectScore(facts.Projects, req.MinProjects)
	githubScore := GitHubScore(facts.GitHub, req.MinGitHubStars, req.MinGitHubRepos)
	educationScore := EducationScore(facts.Education, req.RequiredEducation)

	return Aggregate(match, experienceScore, projectScore, githubScore, educationScore, PolicyFor(match.Source))
}
