package mock

import (
	"context"

	"github.com/kaitongg-bit/course-pilot/ai"
)

// MockReviewAuditor is a test double for ai.ReviewAuditor.
// It allows custom behavior injection via function fields.
type MockReviewAuditor struct {
	// AuditFunc is called by Audit if set.
	// If nil, uses the deterministic prescreen rules.
	AuditFunc func(ctx context.Context, reviewText string) (ai.AuditResult, error)

	callCount int
}

// NewMockReviewAuditor creates a mock review auditor with default behavior.
// Note: Returns concrete type to allow test assertions via GetMockAuditor().
func NewMockReviewAuditor() *MockReviewAuditor {
	return &MockReviewAuditor{}
}

// Audit applies the deterministic prescreen rules and passes everything the
// prescreen does not decide. No text reaches a model in tests.
func (m *MockReviewAuditor) Audit(ctx context.Context, reviewText string) (ai.AuditResult, error) {
	m.callCount++

	if m.AuditFunc != nil {
		return m.AuditFunc(ctx, reviewText)
	}

	if result, decided := ai.PrescreenReview(reviewText); decided {
		return result, nil
	}
	return ai.AuditResult{Status: ai.AuditPass, Reason: "Review looks appropriate"}, nil
}

// CallCount returns the number of times Audit was called.
func (m *MockReviewAuditor) CallCount() int {
	return m.callCount
}

// Reset clears the call count and custom functions.
func (m *MockReviewAuditor) Reset() {
	m.callCount = 0
	m.AuditFunc = nil
}
