// Package types provides type definitions for structured data used throughout the candidate analyzer.
//
//nolint:revive // types is a standard Go package name pattern
package types

// PortfolioData represents the extracted contents of a candidate's portfolio website
type PortfolioData struct {
	URL         string            `json:"url"`
	Title       string            `json:"title"`
	Description string            `json:"description,omitempty"`
	Skills      []string          `json:"skills"`
	Experience  []ExperienceEntry `json:"experience"`
	Projects    []Project         `json:"projects"`
	Education   []EducationEntry  `json:"education"`
	SocialLinks map[string]string `json:"social_links"`
	ScrapedAt   string            `json:"scraped_at,omitempty"`
}

// Project represents a single project found on a portfolio or resume
type Project struct {
	Title        string   `json:"title"`
	Description  string   `json:"description,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
	URL          string   `json:"url,omitempty"`
}

// ExperienceEntry represents one work experience entry.
// Date holds a range string of the form "YYYY-YYYY" or "YYYY-Present".
type ExperienceEntry struct {
	Title            string   `json:"title"`
	Company          string   `json:"company,omitempty"`
	Date             string   `json:"date,omitempty"`
	Responsibilities []string `json:"responsibilities,omitempty"`
}

// EducationEntry represents one education entry
type EducationEntry struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution,omitempty"`
	Year        string `json:"year,omitempty"`
}

// GitHubProfile represents aggregated profile statistics from the GitHub API.
// ActivityScore is a raw count of recent public events; it is an approximate
// proxy for activity, not a true contribution count, and is consumed as-is.
type GitHubProfile struct {
	Name          string         `json:"name,omitempty"`
	Bio           string         `json:"bio,omitempty"`
	Location      string         `json:"location,omitempty"`
	Repositories  int            `json:"repositories"`
	Followers     int            `json:"followers"`
	Following     int            `json:"following"`
	TotalStars    int            `json:"total_stars"`
	ActivityScore float64        `json:"activity_score"`
	Languages     map[string]int `json:"languages,omitempty"`
	ProfileURL    string         `json:"profile_url,omitempty"`
	CreatedAt     string         `json:"created_at,omitempty"`
	LastUpdated   string         `json:"last_updated,omitempty"`
}

// ResumeData represents information parsed from a resume document
type ResumeData struct {
	Email      string            `json:"email,omitempty"`
	Phone      string            `json:"phone,omitempty"`
	Skills     []string          `json:"skills"`
	Education  []EducationEntry  `json:"education"`
	Experience []ExperienceEntry `json:"experience"`
	RawText    string            `json:"raw_text,omitempty"`
	ParsedAt   string            `json:"parsed_at,omitempty"`
}

// InstagramProfile represents best-effort public profile data for a social handle
type InstagramProfile struct {
	Username  string `json:"username"`
	FullName  string `json:"full_name,omitempty"`
	Bio       string `json:"bio,omitempty"`
	Followers int    `json:"followers,omitempty"`
	Posts     int    `json:"posts,omitempty"`
	ScrapedAt string `json:"scraped_at,omitempty"`
}

// CandidateFacts bundles the already-extracted raw facts about a candidate
// that feed the scoring engine. GitHub is nil when no source-profile data
// was supplied; the profile scorer degrades to zero credit.
type CandidateFacts struct {
	Skills     []string          `json:"skills"`
	Experience []ExperienceEntry `json:"experience"`
	Projects   []Project         `json:"projects"`
	Education  []EducationEntry  `json:"education"`
	GitHub     *GitHubProfile    `json:"github,omitempty"`
}
