package requirements

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultFullStack(t *testing.T) {
	req := DefaultFullStack()

	assert.Contains(t, req.RequiredSkills, "Python")
	assert.Contains(t, req.RequiredSkills, "React")
	assert.Contains(t, req.PreferredSkills, "TypeScript")
	assert.Equal(t, 1, req.MinExperienceYears)
	assert.Equal(t, 2, req.MinProjects)
	assert.Equal(t, 5, req.MinGitHubStars)
	assert.Equal(t, 3, req.MinGitHubRepos)
	assert.Equal(t, "bachelor", req.RequiredEducation)
}

func TestLoadProfile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "profile.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"required_skills": ["Go", "PostgreSQL"],
		"preferred_skills": ["Docker"],
		"min_experience_years": 3,
		"min_projects": 2,
		"min_github_stars": 0,
		"min_github_repos": 1,
		"required_education": "master"
	}`), 0o644))

	req, err := LoadProfile(path)

	require.NoError(t, err)
	assert.Equal(t, []string{"Go", "PostgreSQL"}, req.RequiredSkills)
	assert.Equal(t, 3, req.MinExperienceYears)
	assert.Equal(t, "master", req.RequiredEducation)
}

func TestLoadProfile_FileMissing(t *testing.T) {
	_, err := LoadProfile("/nonexistent/profile.json")
	assert.Error(t, err)
}

func TestLoadProfile_MalformedJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "profile.json")
	require.NoError(t, os.WriteFile(path, []byte(`{not json`), 0o644))

	_, err := LoadProfile(path)
	assert.Error(t, err)
}
