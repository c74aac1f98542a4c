package mock

import (
	"context"
	"fmt"

	"github.com/kaitongg-bit/course-pilot/core"
)

// MockSummarizer is a test double for ai.Summarizer.
// It allows custom behavior injection via function fields.
type MockSummarizer struct {
	// SummarizeFunc is called by Summarize if set.
	// If nil, uses default templated behavior.
	SummarizeFunc func(ctx context.Context, course *core.Course, profile *core.Profile) (string, error)

	callCount int
}

// NewMockSummarizer creates a mock summarizer with default behavior.
// Note: Returns concrete type to allow test assertions via GetMockSummarizer().
func NewMockSummarizer() *MockSummarizer {
	return &MockSummarizer{}
}

// Summarize produces a deterministic templated summary.
// Default behavior: a two-sentence blurb built from the course name and the
// profile goal, so tests can assert on predictable output.
func (m *MockSummarizer) Summarize(ctx context.Context, course *core.Course, profile *core.Profile) (string, error) {
	m.callCount++

	if m.SummarizeFunc != nil {
		return m.SummarizeFunc(ctx, course, profile)
	}

	goal := "your goals"
	if profile != nil && profile.Goal != "" {
		goal = profile.Goal
	}
	name := "This course"
	if course != nil && course.Name != "" {
		name = course.Name
	}
	return fmt.Sprintf("%s builds directly toward %s. The material maps onto the skills you already want to grow.", name, goal), nil
}

// CallCount returns the number of times Summarize was called.
func (m *MockSummarizer) CallCount() int {
	return m.callCount
}

// Reset clears the call count and custom functions.
func (m *MockSummarizer) Reset() {
	m.callCount = 0
	m.SummarizeFunc = nil
}
