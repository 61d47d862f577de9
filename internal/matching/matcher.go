// Package matching provides skill-matching strategies. The deterministic
// matcher computes set overlap locally and always succeeds; the Gemini
// matcher asks the model for a judgement call on related skills and can
// fail. FallbackMatcher composes the two so analysis never stalls on the
// model being unavailable.
package matching

import (
	"context"

	"github.com/Nitish-kumar7/web-scraping/internal/types"
)

// Matcher compares candidate skills against job requirements.
type Matcher interface {
	MatchSkills(ctx context.Context, candidateSkills []string, req types.JobRequirements) (*types.SkillMatch, error)
}

// FallbackMatcher tries the primary matcher and falls back to the secondary
// when the primary fails. OnFallback, when set, observes the primary's error.
type FallbackMatcher struct {
	Primary    Matcher
	Fallback   Matcher
	OnFallback func(error)
}

func (m *FallbackMatcher) MatchSkills(ctx context.Context, candidateSkills []string, req types.JobRequirements) (*types.SkillMatch, error) {
	match, err := m.Primary.MatchSkills(ctx, candidateSkills, req)
	if err == nil {
		return match, nil
	}
	if m.OnFallback != nil {
		m.OnFallback(err)
	}
	return m.Fallback.MatchSkills(ctx, candidateSkills, req)
}
