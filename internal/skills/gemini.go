package skills

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Nitish-kumar7/web-scraping/internal/llm"
)

// maxExtractionInput bounds the text sent to the model per extraction call
const maxExtractionInput = 8000

// GeminiExtractor extracts skills from free text using the Gemini model.
// It can fail (network, quota, malformed output) and is normally composed
// with a PatternExtractor via FallbackExtractor.
type GeminiExtractor struct {
	client llm.Client
}

// NewGeminiExtractor creates an LLM-backed skill extractor
func NewGeminiExtractor(client llm.Client) *GeminiExtractor {
	return &GeminiExtractor{client: client}
}

// ExtractSkills asks the model for a JSON array of technical skills found in the text
func (e *GeminiExtractor) ExtractSkills(ctx context.Context, text string) ([]string, error) {
	var sb strings.Builder
	sb.WriteString("Extract technical skills from the following text. Return only a JSON array of skills.\n")
	sb.WriteString("Focus on programming languages, frameworks, tools, and technologies.\n")
	sb.WriteString(`Example output format: ["Python", "React", "AWS"]`)
	sb.WriteString("\n\nText to analyze:\n")
	sb.WriteString(llm.TruncateText(text, maxExtractionInput))

	response, err := e.client.GenerateJSON(ctx, sb.String(), llm.TierLite)
	if err != nil {
		return nil, fmt.Errorf("skill extraction request failed: %w", err)
	}

	var extracted []string
	if err := json.Unmarshal([]byte(llm.CleanJSONBlock(response)), &extracted); err != nil {
		return nil, fmt.Errorf("failed to parse extracted skills: %w", err)
	}

	return extracted, nil
}
