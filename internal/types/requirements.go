package types

// JobRequirements represents the job-requirements profile a candidate is
// evaluated against. Created once per evaluation request and never mutated.
type JobRequirements struct {
	RequiredSkills     []string `json:"required_skills"`
	PreferredSkills    []string `json:"preferred_skills"`
	MinExperienceYears int      `json:"min_experience_years"`
	MinProjects        int      `json:"min_projects"`
	MinGitHubStars     int      `json:"min_github_stars"`
	MinGitHubRepos     int      `json:"min_github_repos"`
	// RequiredEducation names the minimum degree level ("high school",
	// "associate", "bachelor", "master", "phd"). Empty means no requirement.
	RequiredEducation string `json:"required_education,omitempty"`
}
