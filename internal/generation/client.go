package generation

import "context"

// CompletionOptions tune a single completion call. Zero values mean "use the
// client's configured defaults".
type CompletionOptions struct {
	// Temperature is the sampling temperature (0-2, higher = more random).
	Temperature float64

	// MaxTokens caps the number of output tokens for this call.
	MaxTokens int
}

// CompletionClient defines the boundary to a remote text-generation
// provider. Implementations send a single-turn, non-streaming exchange and
// enforce an independent timeout per call so a slow provider never blocks
// other in-flight requests.
type CompletionClient interface {
	// Complete sends the prompt as the sole user message and returns the
	// first completion's content, whitespace-trimmed but otherwise verbatim.
	//
	// Returns ErrProviderTimeout (as a TimeoutError) when the configured
	// timeout elapses, and ErrProvider (as a ProviderError) on a non-success
	// HTTP status.
	Complete(ctx context.Context, prompt string, opts CompletionOptions) (string, error)

	// CompleteJSON calls Complete and recovers a structured object from the
	// returned text via the extractor's repair cascade.
	//
	// Returns ErrMalformedOutput (as a MalformedOutputError) when no repair
	// strategy yields a parseable object.
	CompleteJSON(ctx context.Context, prompt string, opts CompletionOptions) (map[string]any, error)
}
