// Package resume extracts structured candidate data from resume text:
// contact details, skills, education, and work experience titles.
package resume

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/Nitish-kumar7/web-scraping/internal/skills"
	"github.com/Nitish-kumar7/web-scraping/internal/types"
)

// ParseError represents an error during resume parsing.
type ParseError struct {
	Message string
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("resume parse error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("resume parse error: %s", e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

var (
	emailRe = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	phoneRe = regexp.MustCompile(`\+?[\d\s-]{10,}`)

	educationRes = []*regexp.Regexp{
		regexp.MustCompile(`(Bachelor|Master|PhD|B\.?Tech|M\.?Tech|B\.?E|M\.?E|B\.?Sc|M\.?Sc)[^.]*`),
		regexp.MustCompile(`University of [^.]*`),
		regexp.MustCompile(`[A-Z][a-z]+ University`),
		regexp.MustCompile(`[A-Z][a-z]+ Institute`),
	}

	experienceRes = []*regexp.Regexp{
		regexp.MustCompile(`(Senior|Junior|Lead)?\s*(Software|Web|Mobile|Full Stack|Frontend|Backend|DevOps|Data|ML|AI)\s*(Engineer|Developer|Architect|Scientist)`),
		regexp.MustCompile(`(Project|Team|Technical)\s*(Manager|Lead|Architect)`),
	}
)

// Parser extracts structured data from plain resume text. The skill
// extractor is injectable so the LLM-backed extractor can be used in
// production while tests run the pattern extractor.
type Parser struct {
	Extractor skills.Extractor
}

// NewParser returns a Parser using the given skill extractor.
// A nil extractor falls back to pattern-based extraction.
func NewParser(extractor skills.Extractor) *Parser {
	if extractor == nil {
		extractor = skills.NewPatternExtractor()
	}
	return &Parser{Extractor: extractor}
}

// ParseText extracts candidate data from resume text.
func (p *Parser) ParseText(ctx context.Context, text string) (*types.ResumeData, error) {
	if text == "" {
		return nil, &ParseError{Message: "empty resume text"}
	}

	found, err := p.Extractor.ExtractSkills(ctx, text)
	if err != nil {
		return nil, &ParseError{Message: "skill extraction failed", Cause: err}
	}

	return &types.ResumeData{
		Email:      emailRe.FindString(text),
		Phone:      phoneRe.FindString(text),
		Skills:     found,
		Education:  extractEducation(text),
		Experience: extractExperience(text),
		RawText:    text,
		ParsedAt:   time.Now().UTC().Format(time.RFC3339),
	}, nil
}

// extractEducation scans for degree and institution phrases.
func extractEducation(text string) []types.EducationEntry {
	seen := make(map[string]bool)
	var entries []types.EducationEntry
	for _, re := range educationRes {
		for _, match := range re.FindAllString(text, -1) {
			if seen[match] {
				continue
			}
			seen[match] = true
			entries = append(entries, types.EducationEntry{Degree: match})
		}
	}
	return entries
}

// extractExperience scans for job title phrases.
func extractExperience(text string) []types.ExperienceEntry {
	seen := make(map[string]bool)
	var entries []types.ExperienceEntry
	for _, re := range experienceRes {
		for _, match := range re.FindAllString(text, -1) {
			if seen[match] {
				continue
			}
			seen[match] = true
			entries = append(entries, types.ExperienceEntry{Title: match})
		}
	}
	return entries
}
