package matching

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nitish-kumar7/web-scraping/internal/types"
)

// staticMatcher is a test double returning a fixed match or error
type staticMatcher struct {
	match *types.SkillMatch
	err   error
}

func (m *staticMatcher) MatchSkills(_ context.Context, _ []string, _ types.JobRequirements) (*types.SkillMatch, error) {
	return m.match, m.err
}

func TestDeterministic_MatchesRequiredAndPreferred(t *testing.T) {
	req := types.JobRequirements{
		RequiredSkills:  []string{"Python", "Go"},
		PreferredSkills: []string{"Docker"},
	}

	match, err := Deterministic{}.MatchSkills(context.Background(), []string{"python", "docker"}, req)

	require.NoError(t, err)
	assert.Equal(t, types.SourceDeterministic, match.Source)
	assert.Equal(t, 50.0, match.RequiredMatchScore)
	assert.Equal(t, 100.0, match.PreferredMatchScore)
	assert.InDelta(t, 65.0, match.Score, 0.001)
}

func TestFallbackMatcher_PrimarySucceeds(t *testing.T) {
	want := &types.SkillMatch{Score: 88, Source: types.SourceAssisted}
	m := &FallbackMatcher{
		Primary:  &staticMatcher{match: want},
		Fallback: &staticMatcher{err: errors.New("must not be called")},
	}

	match, err := m.MatchSkills(context.Background(), []string{"Go"}, types.JobRequirements{})

	require.NoError(t, err)
	assert.Same(t, want, match)
}

func TestFallbackMatcher_FallsBackOnError(t *testing.T) {
	primaryErr := errors.New("model unavailable")
	want := &types.SkillMatch{Score: 42, Source: types.SourceDeterministic}

	var observed error
	m := &FallbackMatcher{
		Primary:    &staticMatcher{err: primaryErr},
		Fallback:   &staticMatcher{match: want},
		OnFallback: func(err error) { observed = err },
	}

	match, err := m.MatchSkills(context.Background(), []string{"Go"}, types.JobRequirements{})

	require.NoError(t, err)
	assert.Same(t, want, match)
	assert.ErrorIs(t, observed, primaryErr)
}

func TestFallbackMatcher_BothFail(t *testing.T) {
	m := &FallbackMatcher{
		Primary:  &staticMatcher{err: errors.New("primary down")},
		Fallback: &staticMatcher{err: errors.New("fallback down")},
	}

	_, err := m.MatchSkills(context.Background(), nil, types.JobRequirements{})

	assert.ErrorContains(t, err, "fallback down")
}
