package resume

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleResume = `Jane Doe
Senior Software Engineer at Example Corp
Email: jane.doe@example.com
Phone: +47 123 456 7890

Skills: Python, React, Docker, PostgreSQL

Education:
Bachelor of Science in Computer Science, Oslo University. Graduated 2018.

Experience:
Senior Software Engineer, Example Corp, 2020-Present
Backend Developer, Startup AS, 2018-2020
`

// failingExtractor always errors, to exercise the parser's error path
type failingExtractor struct{}

func (failingExtractor) ExtractSkills(_ context.Context, _ string) ([]string, error) {
	return nil, errors.New("extractor down")
}

func TestParseText_ExtractsContactDetails(t *testing.T) {
	data, err := NewParser(nil).ParseText(context.Background(), sampleResume)

	require.NoError(t, err)
	assert.Equal(t, "jane.doe@example.com", data.Email)
	assert.Contains(t, data.Phone, "123 456 7890")
}

func TestParseText_ExtractsSkills(t *testing.T) {
	data, err := NewParser(nil).ParseText(context.Background(), sampleResume)

	require.NoError(t, err)
	assert.Contains(t, data.Skills, "Python")
	assert.Contains(t, data.Skills, "React")
	assert.Contains(t, data.Skills, "Docker")
	assert.Contains(t, data.Skills, "PostgreSQL")
	assert.NotContains(t, data.Skills, "Ruby")
}

func TestParseText_ExtractsEducation(t *testing.T) {
	data, err := NewParser(nil).ParseText(context.Background(), sampleResume)

	require.NoError(t, err)
	require.NotEmpty(t, data.Education)

	var degrees []string
	for _, entry := range data.Education {
		degrees = append(degrees, entry.Degree)
	}
	assert.Contains(t, degrees[0], "Bachelor")
}

func TestParseText_ExtractsExperienceTitles(t *testing.T) {
	data, err := NewParser(nil).ParseText(context.Background(), sampleResume)

	require.NoError(t, err)

	var titles []string
	for _, entry := range data.Experience {
		titles = append(titles, entry.Title)
	}
	assert.Contains(t, titles, "Senior Software Engineer")
	assert.Contains(t, titles, "Backend Developer")
}

func TestParseText_EmptyText(t *testing.T) {
	_, err := NewParser(nil).ParseText(context.Background(), "")

	var parseErr *ParseError
	assert.ErrorAs(t, err, &parseErr)
}

func TestParseText_ExtractorFailure(t *testing.T) {
	_, err := NewParser(failingExtractor{}).ParseText(context.Background(), sampleResume)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.ErrorContains(t, err, "extractor down")
}

func TestParseText_NoContactDetails(t *testing.T) {
	data, err := NewParser(nil).ParseText(context.Background(), "Just some text about Go programming")

	require.NoError(t, err)
	assert.Empty(t, data.Email)
	assert.Empty(t, data.Phone)
	assert.NotEmpty(t, data.ParsedAt)
}
