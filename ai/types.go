package ai

import "strings"

// Audit status values.
const (
	AuditPass = "Pass"
	AuditFail = "Fail"
)

// MinReviewLength is the minimum review length accepted by PrescreenReview.
const MinReviewLength = 15

// Lexicons used to auto-validate clearly safe reviews without an LLM call.
var (
	positiveWords = []string{
		"awesome", "loved", "great", "best", "amazing", "excellent",
		"good", "helpful", "enjoyed", "cool",
	}
	neutralWords = []string{
		"alright", "ok", "okay", "fine", "average", "decent",
		"fair", "middle", "mediocre", "passable",
	}
	severeWords = []string{
		"fuck", "shit", "bitch", "asshole", "idiot", "stupid",
		"jerk", "hate", "terrible", "horrible",
	}
)

// PrescreenReview applies cheap lexical checks before any model call.
// Returns a definitive result and true when no LLM audit is needed:
// too-short reviews fail outright, and reviews containing safe sentiment
// words with no severe words auto-pass.
func PrescreenReview(text string) (AuditResult, bool) {
	if len(text) < MinReviewLength {
		return AuditResult{
			Status: AuditFail,
			Reason: "Review is less than 15 characters long.",
		}, true
	}

	lower := strings.ToLower(text)
	hasSafe := containsAny(lower, positiveWords) || containsAny(lower, neutralWords)
	hasSevere := containsAny(lower, severeWords)

	if hasSafe && !hasSevere {
		return AuditResult{
			Status: AuditPass,
			Reason: "Safe content (Auto-validated)",
		}, true
	}

	return AuditResult{}, false
}

func containsAny(text string, words []string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}
