package types

import "github.com/go-playground/validator/v10"

// AnalyzeRequest represents the request to analyze a candidate.
type AnalyzeRequest struct {
	PortfolioURL    string          `json:"portfolio_url" validate:"required"`
	GitHubURL       string          `json:"github_url,omitempty" validate:"omitempty,url"`
	InstagramHandle string          `json:"instagram_handle,omitempty"`
	ResumeText      string          `json:"resume_text,omitempty"`
	JobDescription  string          `json:"job_description,omitempty"`
	JobRequirements JobRequirements `json:"job_requirements"`
}

// ResumeParseRequest represents the request to parse resume text.
type ResumeParseRequest struct {
	Text string `json:"text" validate:"required"`
}

// Validate validates the AnalyzeRequest using the validator.
func (r *AnalyzeRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the ResumeParseRequest using the validator.
func (r *ResumeParseRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
