// internal/intent/confidence.go
package intent

import "strings"

// Confidence is accumulated in tenths so the bonuses sum exactly.
const (
	baseTenths       = 6
	exactMatchTenths = 2
	actionTenths     = 1
	locativeTenths   = 1

	// MinActionableConfidence is the gate threshold for dispatch.
	MinActionableConfidence = 0.6
)

// Score rates a keyword hit. Each bonus category counts at most once no
// matter how many of its words appear. The result is clamped to [0, 1].
func Score(text, matchedKeyword string) float64 {
	lower := strings.ToLower(text)
	tenths := baseTenths

	if matchedKeyword != "" && strings.Contains(lower, strings.ToLower(matchedKeyword)) {
		tenths += exactMatchTenths
	}
	if containsAny(lower, actionVerbs) {
		tenths += actionTenths
	}
	if containsAny(lower, locativeWords) {
		tenths += locativeTenths
	}

	score := float64(tenths) / 10
	if score > 1 {
		return 1
	}
	if score < 0 {
		return 0
	}
	return score
}

func containsAny(lower string, words []string) bool {
	for _, w := range words {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}
