// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/Nitish-kumar7/web-scraping/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintPortfolio outputs a human-readable summary of the scraped portfolio.
func (p *Printer) PrintPortfolio(data *types.PortfolioData) {
	if data == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Title:  %s\n", data.Title))
	sb.WriteString(fmt.Sprintf("URL:    %s\n", data.URL))
	sb.WriteString("\n")

	if len(data.Projects) > 0 {
		sb.WriteString(fmt.Sprintf("Projects (%d):\n", len(data.Projects)))
		count := min(len(data.Projects), maxItemsToShow)
		for i := 0; i < count; i++ {
			proj := data.Projects[i]
			sb.WriteString(fmt.Sprintf("  • %s", proj.Title))
			if len(proj.Technologies) > 0 {
				techs := strings.Join(proj.Technologies, ", ")
				if len(techs) > 30 {
					techs = techs[:27] + "..."
				}
				sb.WriteString(fmt.Sprintf(" [%s]", techs))
			}
			sb.WriteString("\n")
		}
		if len(data.Projects) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(data.Projects)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(data.Skills) > 0 {
		sb.WriteString("Skills:\n")
		skills := strings.Join(data.Skills, ", ")
		if len(skills) > 50 {
			skills = skills[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("  %s\n", skills))
		sb.WriteString("\n")
	}

	if len(data.SocialLinks) > 0 {
		sb.WriteString("Social Links:\n")
		shown := 0
		for platform := range data.SocialLinks {
			if shown >= 3 {
				break
			}
			sb.WriteString(fmt.Sprintf("  • %s\n", platform))
			shown++
		}
		if len(data.SocialLinks) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(data.SocialLinks)-3))
		}
	}

	p.printBox("PORTFOLIO DATA", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintGitHubProfile outputs the aggregated GitHub statistics.
func (p *Printer) PrintGitHubProfile(profile *types.GitHubProfile) {
	if profile == nil {
		return
	}

	var sb strings.Builder
	if profile.Name != "" {
		sb.WriteString(fmt.Sprintf("Name:         %s\n", profile.Name))
	}
	sb.WriteString(fmt.Sprintf("Repositories: %d\n", profile.Repositories))
	sb.WriteString(fmt.Sprintf("Followers:    %d\n", profile.Followers))
	sb.WriteString(fmt.Sprintf("Total Stars:  %d\n", profile.TotalStars))
	sb.WriteString(fmt.Sprintf("Activity:     %.1f", profile.ActivityScore))

	if len(profile.Languages) > 0 {
		sb.WriteString("\n\nLanguages:\n")
		shown := 0
		for lang, n := range profile.Languages {
			if shown >= maxItemsToShow {
				break
			}
			sb.WriteString(fmt.Sprintf("  • %s (%d)\n", lang, n))
			shown++
		}
	}

	p.printBox("GITHUB PROFILE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSkillMatch outputs the skill matching results with matched and
// missing skills.
func (p *Printer) PrintSkillMatch(match *types.SkillMatch) {
	if match == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Match Score:     %.1f%%\n", match.Score))
	sb.WriteString(fmt.Sprintf("Required Match:  %.1f%%\n", match.RequiredMatchScore))
	sb.WriteString(fmt.Sprintf("Preferred Match: %.1f%%\n", match.PreferredMatchScore))
	sb.WriteString(fmt.Sprintf("Source:          %s\n", match.Source))

	if len(match.MatchingRequiredSkills) > 0 {
		sb.WriteString("\nMatched Required:\n")
		count := min(len(match.MatchingRequiredSkills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  ✓ %s\n", match.MatchingRequiredSkills[i]))
		}
		if len(match.MatchingRequiredSkills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(match.MatchingRequiredSkills)-maxItemsToShow))
		}
	}

	if len(match.MissingRequiredSkills) > 0 {
		sb.WriteString("\nMissing Required:\n")
		count := min(len(match.MissingRequiredSkills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  ✗ %s\n", match.MissingRequiredSkills[i]))
		}
		if len(match.MissingRequiredSkills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(match.MissingRequiredSkills)-maxItemsToShow))
		}
	}

	p.printBox("SKILL MATCHING", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintEvaluation outputs the final candidate evaluation with the
// qualification verdict and per-dimension scores.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintEvaluation(score *types.CandidateScore) {
	if score == nil {
		return
	}

	var sb strings.Builder
	verdict := "✗ NOT QUALIFIED"
	if score.IsQualified {
		verdict = "✓ QUALIFIED"
	}
	sb.WriteString(fmt.Sprintf("Overall Score: %.1f / 100   %s\n\n", score.OverallScore, verdict))

	sb.WriteString(fmt.Sprintf("Skill Match:  %5.1f\n", score.SkillMatchScore))
	sb.WriteString(fmt.Sprintf("Experience:   %5.1f\n", score.ExperienceScore))
	sb.WriteString(fmt.Sprintf("Projects:     %5.1f\n", score.ProjectScore))
	sb.WriteString(fmt.Sprintf("GitHub:       %5.1f\n", score.GitHubScore))
	sb.WriteString(fmt.Sprintf("Education:    %5.1f\n", score.EducationScore))

	if len(score.Strengths) > 0 {
		sb.WriteString("\nStrengths:\n")
		count := min(len(score.Strengths), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  + %s\n", score.Strengths[i]))
		}
	}

	if len(score.Weaknesses) > 0 {
		sb.WriteString("\nWeaknesses:\n")
		count := min(len(score.Weaknesses), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  - %s\n", score.Weaknesses[i]))
		}
	}

	if len(score.Recommendations) > 0 {
		sb.WriteString("\nRecommendations:\n")
		count := min(len(score.Recommendations), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", score.Recommendations[i]))
		}
	}

	p.printBox("CANDIDATE EVALUATION", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSummary outputs the rendered plain-text report summary.
func (p *Printer) PrintSummary(summary string) {
	if summary == "" {
		return
	}
	p.printBox("SUMMARY", strings.TrimSuffix(summary, "\n"))
}
