package schemas

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nitish-kumar7/web-scraping/internal/schemas"
)

func TestJobRequirementsSchema_ValidJSON(t *testing.T) {
	data, err := os.ReadFile("job_requirements.schema.json")
	require.NoError(t, err, "should be able to read schema file")

	var v interface{}
	err = json.Unmarshal(data, &v)
	assert.NoError(t, err, "schema file should be valid JSON")
}

func TestJobRequirementsSchema_AcceptsValidProfile(t *testing.T) {
	schemaContent, err := os.ReadFile("job_requirements.schema.json")
	require.NoError(t, err)

	err = schemas.ValidateJSONString(string(schemaContent), `{
		"required_skills": ["Python", "React"],
		"preferred_skills": ["Docker"],
		"min_experience_years": 2,
		"min_projects": 3,
		"min_github_stars": 10,
		"min_github_repos": 5,
		"required_education": "bachelor"
	}`)
	assert.NoError(t, err)
}

func TestJobRequirementsSchema_RejectsEmptyRequiredSkills(t *testing.T) {
	schemaContent, err := os.ReadFile("job_requirements.schema.json")
	require.NoError(t, err)

	err = schemas.ValidateJSONString(string(schemaContent), `{
		"required_skills": [],
		"min_experience_years": 2,
		"min_projects": 3,
		"min_github_stars": 10,
		"min_github_repos": 5
	}`)
	assert.Error(t, err)
}

func TestJobRequirementsSchema_RejectsUnknownEducation(t *testing.T) {
	schemaContent, err := os.ReadFile("job_requirements.schema.json")
	require.NoError(t, err)

	err = schemas.ValidateJSONString(string(schemaContent), `{
		"required_skills": ["Python"],
		"min_experience_years": 2,
		"min_projects": 3,
		"min_github_stars": 10,
		"min_github_repos": 5,
		"required_education": "bootcamp"
	}`)
	assert.Error(t, err)
}
