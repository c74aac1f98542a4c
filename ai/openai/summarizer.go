package openai

import (
	"context"
	"log/slog"
	"strings"

	"github.com/kaitongg-bit/course-pilot/ai"
	"github.com/kaitongg-bit/course-pilot/core"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// Summarizer implements ai.Summarizer using OpenAI-compatible chat APIs.
type Summarizer struct {
	client llms.Model
	logger *slog.Logger
}

// newSummarizer is an internal constructor that returns the concrete type.
// Used by Provider to manage the instance.
func newSummarizer(config *ai.Config) (*Summarizer, error) {
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

	return &Summarizer{
		client: client,
		logger: slog.Default().With("component", "openai-summarizer"),
	}, nil
}

// NewSummarizer creates a new summarizer using the provided configuration.
//
// Returns ai.Summarizer interface to enforce abstraction.
func NewSummarizer(config *ai.Config) (ai.Summarizer, error) {
	return newSummarizer(config)
}

// Summarize generates a personalized course recommendation.
// The caller is responsible for the description fallback on error.
func (s *Summarizer) Summarize(ctx context.Context, course *core.Course, profile *core.Profile) (string, error) {
	content := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{
				llms.TextPart(summarySystemPrompt),
			},
		},
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(buildSummaryPrompt(course, profile)),
			},
		},
	}

	response, err := s.client.GenerateContent(ctx, content,
		llms.WithTemperature(0.7),
		llms.WithMaxTokens(300))
	if err != nil {
		s.logger.Error("failed to generate summary", "course", course.Code, "err", err)
		return "", err
	}
	if len(response.Choices) < 1 {
		s.logger.Debug("no choices returned from model", "course", course.Code)
		return "", ErrEmptyCompletion
	}

	summary := strings.TrimSpace(response.Choices[0].Content)
	summary = trimWrappingQuotes(summary)
	return summary, nil
}
