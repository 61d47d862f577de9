// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Inputs
	PortfolioURL    string `json:"portfolio_url,omitempty"`    // Candidate portfolio URL
	GitHubURL       string `json:"github_url,omitempty"`       // Candidate GitHub profile URL
	InstagramHandle string `json:"instagram_handle,omitempty"` // Candidate Instagram handle
	Resume          string `json:"resume,omitempty"`           // Path to resume text file
	Requirements    string `json:"requirements,omitempty"`     // Path to job-requirements profile JSON
	JobDescription  string `json:"job_description,omitempty"`  // Path to job description text file

	// Behavior
	GeminiAPIKey string `json:"gemini_api_key,omitempty"` // Gemini API key
	GitHubToken  string `json:"github_token,omitempty"`   // GitHub API token
	APIKey       string `json:"api_key,omitempty"`        // Static key protecting the HTTP API
	DatabaseURL  string `json:"database_url,omitempty"`   // PostgreSQL connection URL
	Output       string `json:"output,omitempty"`         // Report output path
	UseBrowser   bool   `json:"use_browser,omitempty"`    // Use headless browser for SPA sites
	Verbose      bool   `json:"verbose,omitempty"`        // Print detailed debug information

	// Server
	Port int `json:"port,omitempty"` // HTTP API listen port
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv fills credential fields from environment variables. godotenv loads
// the .env file in main before this runs.
func (c *Config) FromEnv() {
	if c.GeminiAPIKey == "" {
		c.GeminiAPIKey = os.Getenv("GOOGLE_API_KEY")
	}
	if c.GitHubToken == "" {
		c.GitHubToken = os.Getenv("GITHUB_TOKEN")
	}
	if c.APIKey == "" {
		c.APIKey = os.Getenv("API_KEY")
	}
	if c.DatabaseURL == "" {
		c.DatabaseURL = os.Getenv("DATABASE_URL")
	}
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be a valid TCP port")
	}

	// Validate file paths exist (if specified)
	if c.Resume != "" {
		if _, err := os.Stat(c.Resume); os.IsNotExist(err) {
			return fmt.Errorf("config error: resume file not found: %s", c.Resume)
		}
	}
	if c.Requirements != "" {
		if _, err := os.Stat(c.Requirements); os.IsNotExist(err) {
			return fmt.Errorf("config error: requirements file not found: %s", c.Requirements)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty string fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.PortfolioURL == "" {
		result.PortfolioURL = defaults.PortfolioURL
	}
	if result.GitHubURL == "" {
		result.GitHubURL = defaults.GitHubURL
	}
	if result.InstagramHandle == "" {
		result.InstagramHandle = defaults.InstagramHandle
	}
	if result.Resume == "" {
		result.Resume = defaults.Resume
	}
	if result.Requirements == "" {
		result.Requirements = defaults.Requirements
	}
	if result.JobDescription == "" {
		result.JobDescription = defaults.JobDescription
	}
	if result.GeminiAPIKey == "" {
		result.GeminiAPIKey = defaults.GeminiAPIKey
	}
	if result.GitHubToken == "" {
		result.GitHubToken = defaults.GitHubToken
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.Output == "" {
		result.Output = defaults.Output
	}

	// Int fields: use default if zero
	if result.Port == 0 {
		result.Port = defaults.Port
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
