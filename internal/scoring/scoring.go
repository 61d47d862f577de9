// Package scoring implements the candidate scoring and aggregation engine:
// five independent dimension scorers, the weighted aggregator with its two
// scoring policies, and the summary renderer. Everything here is a pure
// function over in-memory values; collaborator I/O lives elsewhere.
package scoring

import "math"

// round2 rounds a percentage to 2 decimal places
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// clampScore bounds a dimension score to [0,100]. Scores are capped, not
// rescaled: raw facts exceeding a requirement still yield at most 100.
func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
