package llm

import "errors"

var (
	// ErrMissingAPIKey indicates no completion API key is configured.
	// Raised on first use, never retried.
	ErrMissingAPIKey = errors.New("completion api key is not configured (set FETE_LLM_API_KEY)")

	// ErrEmptyResponse indicates the completion endpoint returned no text.
	ErrEmptyResponse = errors.New("completion returned an empty response")

	// ErrTimeout indicates the completion request exceeded the configured timeout.
	ErrTimeout = errors.New("completion request timed out")
)
