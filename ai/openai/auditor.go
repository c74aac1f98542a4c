package openai

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/kaitongg-bit/course-pilot/ai"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// ReviewAuditor implements ai.ReviewAuditor using OpenAI-compatible chat APIs.
//
// Cheap lexical prescreening (length and sentiment lexicons) runs first; the
// model is only consulted for reviews the prescreen cannot decide.
type ReviewAuditor struct {
	client llms.Model
	logger *slog.Logger
}

// newReviewAuditor is an internal constructor that returns the concrete type.
// Used by Provider to manage the instance.
func newReviewAuditor(config *ai.Config) (*ReviewAuditor, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	client, err := openai.New(
		openai.WithBaseURL(config.GeneratorHost),
		openai.WithToken(config.APIToken),
		openai.WithModel(config.GeneratorModel),
	)
	if err != nil {
		return nil, err
	}

	return &ReviewAuditor{
		client: client,
		logger: slog.Default().With("component", "openai-auditor"),
	}, nil
}

// NewReviewAuditor creates a new review auditor using the provided configuration.
//
// Returns ai.ReviewAuditor interface to enforce abstraction.
func NewReviewAuditor(config *ai.Config) (ai.ReviewAuditor, error) {
	return newReviewAuditor(config)
}

// Audit moderates a review. The caller owns the pass-on-error fallback.
func (a *ReviewAuditor) Audit(ctx context.Context, reviewText string) (ai.AuditResult, error) {
	if result, done := ai.PrescreenReview(reviewText); done {
		return result, nil
	}

	content := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{
				llms.TextPart(auditSystemPrompt),
			},
		},
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(buildAuditPrompt(reviewText)),
			},
		},
	}

	// Try up to 3 times in case of malformed JSON
	var result ai.AuditResult
	var lastErr error
	for attempt := 0; attempt < 3; attempt++ {
		response, err := a.client.GenerateContent(ctx, content,
			llms.WithTemperature(0.0),
			llms.WithMaxTokens(100),
			llms.WithJSONMode())
		if err != nil {
			a.logger.Error("failed to generate audit verdict", "attempt", attempt+1, "err", err)
			return ai.AuditResult{}, err
		}
		if len(response.Choices) < 1 {
			a.logger.Debug("no choices returned from model")
			return ai.AuditResult{}, ErrEmptyCompletion
		}

		responseText := stripCodeFences(response.Choices[0].Content)
		responseText = repairJSON(responseText)

		if err := json.Unmarshal([]byte(responseText), &result); err != nil {
			lastErr = err
			a.logger.Warn("error parsing audit response",
				"attempt", attempt+1,
				"response", responseText,
				"err", err)
			continue
		}
		if result.Status != ai.AuditPass && result.Status != ai.AuditFail {
			lastErr = ErrInvalidVerdict
			a.logger.Warn("unexpected audit status", "attempt", attempt+1, "status", result.Status)
			continue
		}

		// Success
		lastErr = nil
		break
	}

	if lastErr != nil {
		a.logger.Error("failed to parse audit response after retries", "err", lastErr)
		return ai.AuditResult{}, lastErr
	}

	return result, nil
}

// stripCodeFences removes markdown code fences LLMs like to wrap JSON in.
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
