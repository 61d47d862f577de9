package matching

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nitish-kumar7/web-scraping/internal/llm"
	"github.com/Nitish-kumar7/web-scraping/internal/types"
)

type fakeLLMClient struct {
	response string
	err      error
	prompt   string
}

func (f *fakeLLMClient) GenerateContent(_ context.Context, prompt string, _ llm.ModelTier) (string, error) {
	f.prompt = prompt
	return f.response, f.err
}

func (f *fakeLLMClient) GenerateJSON(_ context.Context, prompt string, _ llm.ModelTier) (string, error) {
	f.prompt = prompt
	return f.response, f.err
}

func (f *fakeLLMClient) Close() error { return nil }

func TestGeminiMatcher_ParsesResponse(t *testing.T) {
	client := &fakeLLMClient{response: `{
		"match_score": 82.5,
		"matching_skills": ["Python", "React"],
		"missing_skills": ["Kubernetes"],
		"skill_gaps": ["No container orchestration experience"],
		"recommendations": ["Learn Kubernetes basics"]
	}`}
	req := types.JobRequirements{RequiredSkills: []string{"Python", "React", "Kubernetes"}}

	match, err := NewGeminiMatcher(client).MatchSkills(context.Background(), []string{"python", "reactjs"}, req)

	require.NoError(t, err)
	assert.Equal(t, 82.5, match.Score)
	assert.Equal(t, types.SourceAssisted, match.Source)
	assert.Equal(t, []string{"Python", "React"}, match.MatchingRequiredSkills)
	assert.Equal(t, []string{"Kubernetes"}, match.MissingRequiredSkills)
	assert.Equal(t, []string{"No container orchestration experience"}, match.SkillGaps)
}

func TestGeminiMatcher_NormalizesCandidateSkillsInPrompt(t *testing.T) {
	client := &fakeLLMClient{response: `{"match_score": 50}`}

	_, err := NewGeminiMatcher(client).MatchSkills(context.Background(), []string{"js", "golang"}, types.JobRequirements{})

	require.NoError(t, err)
	assert.Contains(t, client.prompt, "JavaScript")
	assert.Contains(t, client.prompt, "Go")
}

func TestGeminiMatcher_ClampsOutOfRangeScore(t *testing.T) {
	client := &fakeLLMClient{response: `{"match_score": 250}`}

	match, err := NewGeminiMatcher(client).MatchSkills(context.Background(), []string{"Go"}, types.JobRequirements{})

	require.NoError(t, err)
	assert.Equal(t, 100.0, match.Score)
}

func TestGeminiMatcher_RequestFailure(t *testing.T) {
	client := &fakeLLMClient{err: errors.New("deadline exceeded")}

	_, err := NewGeminiMatcher(client).MatchSkills(context.Background(), []string{"Go"}, types.JobRequirements{})

	assert.Error(t, err)
}

func TestGeminiMatcher_MalformedResponse(t *testing.T) {
	client := &fakeLLMClient{response: "not json"}

	_, err := NewGeminiMatcher(client).MatchSkills(context.Background(), []string{"Go"}, types.JobRequirements{})

	assert.Error(t, err)
}
