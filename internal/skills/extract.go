package skills

import (
	"context"
	"regexp"
	"sync"
)

// Extractor extracts skill tokens from arbitrary free text.
// Implementations may fail (e.g. a remote model call); callers that need
// guaranteed output compose them with FallbackExtractor.
type Extractor interface {
	ExtractSkills(ctx context.Context, text string) ([]string, error)
}

// commonSkills is the fixed list the pattern extractor scans for.
// Display forms match the canonical vocabulary.
var commonSkills = []string{
	"Python", "Java", "JavaScript", "TypeScript", "C++", "C#", "Ruby", "PHP",
	"HTML", "CSS", "React", "Angular", "Vue", "Node.js", "Django", "Flask",
	"Spring", "Express", "MongoDB", "MySQL", "PostgreSQL", "AWS", "Azure",
	"GCP", "Docker", "Kubernetes", "Git", "Linux", "Agile", "Scrum", "DevOps",
	"CI/CD", "REST", "GraphQL", "API",
}

var (
	skillPatternsOnce sync.Once
	skillPatterns     []*regexp.Regexp
)

// compileSkillPatterns builds one word-boundary pattern per common skill.
func compileSkillPatterns() {
	skillPatterns = make([]*regexp.Regexp, len(commonSkills))
	for i, skill := range commonSkills {
		skillPatterns[i] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(skill) + `\b`)
	}
}

// PatternExtractor extracts skills by matching a fixed list of common
// technical skills against the text. It never fails and serves as the
// guaranteed-success fallback for LLM-backed extraction.
type PatternExtractor struct{}

// NewPatternExtractor creates a pattern-based skill extractor
func NewPatternExtractor() *PatternExtractor {
	return &PatternExtractor{}
}

// ExtractSkills scans the text for known skill names (case-insensitive,
// word-boundary matches). Returns the display forms of the skills found.
func (e *PatternExtractor) ExtractSkills(_ context.Context, text string) ([]string, error) {
	skillPatternsOnce.Do(compileSkillPatterns)

	found := make([]string, 0)
	for i, pattern := range skillPatterns {
		if pattern.MatchString(text) {
			found = append(found, commonSkills[i])
		}
	}
	return found, nil
}

// FallbackExtractor composes a primary extractor that may fail with a
// guaranteed fallback. The fallback is consulted only when the primary
// returns an error; an empty primary result is a valid answer.
type FallbackExtractor struct {
	primary  Extractor
	fallback Extractor
	// OnFallback, if set, is called with the primary's error before falling back
	OnFallback func(err error)
}

// NewFallbackExtractor creates a two-tier extractor
func NewFallbackExtractor(primary, fallback Extractor) *FallbackExtractor {
	return &FallbackExtractor{primary: primary, fallback: fallback}
}

// ExtractSkills tries the primary extractor and falls back on error
func (e *FallbackExtractor) ExtractSkills(ctx context.Context, text string) ([]string, error) {
	found, err := e.primary.ExtractSkills(ctx, text)
	if err == nil {
		return found, nil
	}
	if e.OnFallback != nil {
		e.OnFallback(err)
	}
	return e.fallback.ExtractSkills(ctx, text)
}
