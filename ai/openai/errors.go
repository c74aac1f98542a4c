package openai

import "errors"

var (
	// ErrEmptyCompletion is returned when the model returns no choices.
	ErrEmptyCompletion = errors.New("model returned no completion")

	// ErrInvalidVerdict is returned when an audit response parses but does
	// not carry a Pass/Fail status.
	ErrInvalidVerdict = errors.New("invalid audit verdict")
)
