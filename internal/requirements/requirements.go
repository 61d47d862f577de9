// Package requirements loads and validates job-requirements profiles.
package requirements

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/Nitish-kumar7/web-scraping/internal/schemas"
	"github.com/Nitish-kumar7/web-scraping/internal/types"
)

// SchemaPath is the repo-relative location of the profile schema.
const SchemaPath = "schemas/job_requirements.schema.json"

// DefaultFullStack returns the stock requirements profile for a full-stack
// developer position, used when no profile file is supplied.
func DefaultFullStack() types.JobRequirements {
	return types.JobRequirements{
		RequiredSkills: []string{
			"Python", "JavaScript", "HTML", "CSS", "React",
			"Node.js", "Git", "SQL", "REST", "API",
		},
		PreferredSkills: []string{
			"TypeScript", "AWS", "Docker", "MongoDB", "Express.js",
			"Redux", "GraphQL", "CI/CD", "Agile", "DevOps",
		},
		MinExperienceYears: 1,
		MinProjects:        2,
		MinGitHubStars:     5,
		MinGitHubRepos:     3,
		RequiredEducation:  "bachelor",
	}
}

// LoadProfile reads a job-requirements profile from a JSON file, validating
// it against the profile schema when the schema file can be located.
func LoadProfile(path string) (types.JobRequirements, error) {
	var req types.JobRequirements

	data, err := os.ReadFile(path)
	if err != nil {
		return req, fmt.Errorf("failed to read requirements profile: %w", err)
	}

	if schemaPath := schemas.ResolveSchemaPath(SchemaPath); schemaPath != "" {
		schemaContent, err := os.ReadFile(schemaPath)
		if err != nil {
			return req, fmt.Errorf("failed to read profile schema: %w", err)
		}
		if err := schemas.ValidateJSONString(string(schemaContent), string(data)); err != nil {
			return req, fmt.Errorf("invalid requirements profile %s: %w", path, err)
		}
	}

	if err := json.Unmarshal(data, &req); err != nil {
		return req, fmt.Errorf("failed to parse requirements profile: %w", err)
	}

	return req, nil
}
