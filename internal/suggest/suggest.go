// Package suggest guesses the command a mistyped token was meant to be.
package suggest

import (
	"strings"

	"github.com/xrash/smetrics"
)

// DefaultThreshold is the minimum Jaro-Winkler similarity for a
// suggestion. Below it the caller gets nothing rather than a wild guess.
const DefaultThreshold = 0.80

// Jaro-Winkler parameters: standard boost threshold and prefix scale.
const (
	boostThreshold = 0.7
	prefixSize     = 4
)

// Command returns the known command closest to token, if its similarity
// clears threshold. A non-positive threshold falls back to
// DefaultThreshold. Exact matches are the caller's concern; this is only
// consulted for unrecognized tokens.
func Command(token string, known []string, threshold float64) (string, bool) {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	token = strings.ToLower(strings.TrimSpace(token))
	if token == "" {
		return "", false
	}

	best := ""
	bestScore := 0.0
	for _, candidate := range known {
		score := smetrics.JaroWinkler(token, candidate, boostThreshold, prefixSize)
		if score > bestScore {
			bestScore = score
			best = candidate
		}
	}

	if bestScore < threshold {
		return "", false
	}
	return best, true
}
