package generation

import (
	"errors"
	"fmt"
	"time"
)

// Common errors returned by the generation pipeline.
var (
	// ErrInvalidConfig is returned when the completion client configuration
	// is invalid. Missing credentials surface as this error at construction
	// time, making a misconfigured provider a startup-fatal condition.
	ErrInvalidConfig = errors.New("invalid completion client configuration")

	// ErrProviderTimeout is returned when the provider does not answer
	// within the configured timeout. Timeouts are never retried inside the
	// pipeline; the whole generation request fails.
	ErrProviderTimeout = errors.New("completion provider timed out")

	// ErrProvider is returned when the provider answers with a non-success
	// HTTP status. Wrapped by ProviderError which carries diagnostics.
	ErrProvider = errors.New("completion provider request failed")

	// ErrMalformedOutput is returned when the structured extractor exhausts
	// all repair attempts. Wrapped by MalformedOutputError.
	ErrMalformedOutput = errors.New("malformed structured output from model")

	// ErrGenerationFailed is returned when a generation produced no usable
	// result (e.g. a daily plan with zero surviving entries).
	ErrGenerationFailed = errors.New("generation produced no usable result")
)

// TimeoutError reports a provider call that exceeded its deadline. It always
// carries the configured timeout so callers and logs can see what budget was
// blown, not just that one was.
type TimeoutError struct {
	Timeout time.Duration
}

// Error implements the error interface for TimeoutError.
func (e *TimeoutError) Error() string {
	return fmt.Sprintf("completion provider timed out after %s", e.Timeout)
}

// Unwrap makes errors.Is(err, ErrProviderTimeout) work.
func (e *TimeoutError) Unwrap() error {
	return ErrProviderTimeout
}

// NewTimeoutError creates a TimeoutError for the given configured timeout.
func NewTimeoutError(timeout time.Duration) *TimeoutError {
	return &TimeoutError{Timeout: timeout}
}

// ProviderError reports a non-success HTTP status from the provider,
// carrying the status code and response body for diagnostics.
type ProviderError struct {
	StatusCode int
	Body       string
}

// Error implements the error interface for ProviderError.
func (e *ProviderError) Error() string {
	return fmt.Sprintf("completion provider returned status %d: %s", e.StatusCode, e.Body)
}

// Unwrap makes errors.Is(err, ErrProvider) work.
func (e *ProviderError) Unwrap() error {
	return ErrProvider
}

// NewProviderError creates a ProviderError from a response status and body.
func NewProviderError(statusCode int, body string) *ProviderError {
	return &ProviderError{StatusCode: statusCode, Body: body}
}

// malformedOutputSnippetLen is how much of the offending text a
// MalformedOutputError keeps for diagnostics.
const malformedOutputSnippetLen = 200

// MalformedOutputError reports text that could not be recovered into a
// structured object. It carries the parser's error message and the first
// 200 characters of the attempted text.
type MalformedOutputError struct {
	ParseErr error
	Snippet  string
}

// Error implements the error interface for MalformedOutputError.
func (e *MalformedOutputError) Error() string {
	return fmt.Sprintf("failed to parse model response as JSON: %v. Response: %s",
		e.ParseErr, e.Snippet)
}

// Unwrap makes errors.Is(err, ErrMalformedOutput) work.
func (e *MalformedOutputError) Unwrap() error {
	return ErrMalformedOutput
}

// NewMalformedOutputError creates a MalformedOutputError for the given parse
// failure, truncating the attempted text to the diagnostic snippet length.
func NewMalformedOutputError(parseErr error, attempted string) *MalformedOutputError {
	snippet := attempted
	if len(snippet) > malformedOutputSnippetLen {
		snippet = snippet[:malformedOutputSnippetLen]
	}
	return &MalformedOutputError{ParseErr: parseErr, Snippet: snippet}
}
