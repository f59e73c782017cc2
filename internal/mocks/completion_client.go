package mocks

import (
	"context"
	"sync"

	"github.com/shahid1330/careerPilot-AI/internal/generation"
)

// MockCompletionClient implements generation.CompletionClient for testing
type MockCompletionClient struct {
	// CompleteFn allows test cases to mock the Complete behavior
	CompleteFn func(ctx context.Context, prompt string, opts generation.CompletionOptions) (string, error)

	// CompleteJSONFn allows test cases to mock the CompleteJSON behavior
	CompleteJSONFn func(ctx context.Context, prompt string, opts generation.CompletionOptions) (map[string]any, error)

	// Default response values
	Text string
	JSON map[string]any
	Err  error

	// Call tracking for verification
	Calls struct {
		// mu protects the call tracking state for concurrent test cases
		mu sync.Mutex

		// Count tracks how many times a completion was requested
		Count int

		// Prompts contains all prompts passed to completion calls
		Prompts []string

		// Opts contains all options passed to completion calls
		Opts []generation.CompletionOptions
	}
}

// Ensure MockCompletionClient implements the interface
var _ generation.CompletionClient = (*MockCompletionClient)(nil)

// Complete implements the generation.CompletionClient interface
func (m *MockCompletionClient) Complete(
	ctx context.Context,
	prompt string,
	opts generation.CompletionOptions,
) (string, error) {
	m.track(prompt, opts)

	if m.CompleteFn != nil {
		return m.CompleteFn(ctx, prompt, opts)
	}

	return m.Text, m.Err
}

// CompleteJSON implements the generation.CompletionClient interface
func (m *MockCompletionClient) CompleteJSON(
	ctx context.Context,
	prompt string,
	opts generation.CompletionOptions,
) (map[string]any, error) {
	m.track(prompt, opts)

	if m.CompleteJSONFn != nil {
		return m.CompleteJSONFn(ctx, prompt, opts)
	}

	if m.Err != nil {
		return nil, m.Err
	}
	return m.JSON, nil
}

func (m *MockCompletionClient) track(prompt string, opts generation.CompletionOptions) {
	m.Calls.mu.Lock()
	m.Calls.Count++
	m.Calls.Prompts = append(m.Calls.Prompts, prompt)
	m.Calls.Opts = append(m.Calls.Opts, opts)
	m.Calls.mu.Unlock()
}

// NewMockCompletionClientWithJSON creates a mock that returns the given object
func NewMockCompletionClientWithJSON(data map[string]any) *MockCompletionClient {
	return &MockCompletionClient{JSON: data}
}

// NewMockCompletionClientWithError creates a mock that returns the given error
func NewMockCompletionClientWithError(err error) *MockCompletionClient {
	return &MockCompletionClient{Err: err}
}
