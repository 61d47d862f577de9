// Package skills provides skill vocabulary normalization and free-text skill extraction.
package skills

import "strings"

// skillVocabulary maps lower-cased skill name variants to canonical display forms
var skillVocabulary = map[string]string{
	// Programming languages
	"python":     "Python",
	"javascript": "JavaScript",
	"js":         "JavaScript",
	"typescript": "TypeScript",
	"ts":         "TypeScript",
	"java":       "Java",
	"c++":        "C++",
	"c#":         "C#",
	"ruby":       "Ruby",
	"php":        "PHP",
	"go":         "Go",
	"golang":     "Go",
	"rust":       "Rust",
	"swift":      "Swift",
	"kotlin":     "Kotlin",

	// Web technologies
	"html":       "HTML",
	"css":        "CSS",
	"react":      "React",
	"reactjs":    "React",
	"react.js":   "React",
	"angular":    "Angular",
	"vue":        "Vue.js",
	"vuejs":      "Vue.js",
	"vue.js":     "Vue.js",
	"node":       "Node.js",
	"nodejs":     "Node.js",
	"node.js":    "Node.js",
	"express":    "Express.js",
	"expressjs":  "Express.js",
	"express.js": "Express.js",
	"django":     "Django",
	"flask":      "Flask",
	"spring":     "Spring",
	"laravel":    "Laravel",

	// Databases
	"mysql":         "MySQL",
	"postgres":      "PostgreSQL",
	"postgresql":    "PostgreSQL",
	"mongodb":       "MongoDB",
	"redis":         "Redis",
	"elasticsearch": "Elasticsearch",

	// Cloud & DevOps
	"aws":        "AWS",
	"azure":      "Azure",
	"gcp":        "GCP",
	"docker":     "Docker",
	"kubernetes": "Kubernetes",
	"k8s":        "Kubernetes",
	"jenkins":    "Jenkins",
	"git":        "Git",
	"ci/cd":      "CI/CD",
	"linux":      "Linux",

	// Process & other
	"agile":   "Agile",
	"scrum":   "Scrum",
	"devops":  "DevOps",
	"rest":    "REST",
	"graphql": "GraphQL",
	"api":     "API",
	"sql":     "SQL",
}

// Normalize canonicalizes skill tokens and deduplicates them as a set.
// Lookup is case-insensitive; tokens with no vocabulary entry pass through
// with their original casing. The order of the result is not guaranteed.
func Normalize(skills []string) []string {
	seen := make(map[string]bool, len(skills))
	for _, skill := range skills {
		if canonical, ok := skillVocabulary[strings.ToLower(skill)]; ok {
			seen[canonical] = true
		} else {
			seen[skill] = true
		}
	}

	normalized := make([]string, 0, len(seen))
	for skill := range seen {
		normalized = append(normalized, skill)
	}
	return normalized
}

// Canonical returns the canonical display form of a single skill token,
// or the token unchanged when it has no vocabulary entry.
func Canonical(skill string) string {
	if canonical, ok := skillVocabulary[strings.ToLower(skill)]; ok {
		return canonical
	}
	return skill
}
