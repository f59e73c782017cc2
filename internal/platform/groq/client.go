// Package groq provides a generation.CompletionClient backed by an
// OpenAI-compatible chat-completions endpoint (Groq's hosted models).
package groq

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/shahid1330/careerPilot-AI/internal/config"
	"github.com/shahid1330/careerPilot-AI/internal/generation"
)

// DefaultBaseURL is the Groq chat-completions endpoint used when the
// configuration does not override it.
const DefaultBaseURL = "https://api.groq.com/openai/v1/chat/completions"

// Client implements generation.CompletionClient against an OpenAI-compatible
// chat-completions API. Each call is a single-turn, non-streaming POST with
// its own timeout, so one slow provider round trip never blocks other
// in-flight requests.
type Client struct {
	logger     *slog.Logger
	httpClient *http.Client

	apiKey          string
	model           string
	baseURL         string
	timeout         time.Duration
	maxOutputTokens int
	temperature     float64
}

// Ensure Client implements generation.CompletionClient
var _ generation.CompletionClient = (*Client)(nil)

// chatMessage is one message of the chat-completions request body.
type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatRequest is the wire format of the completion request.
type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
	TopP        int           `json:"top_p"`
	Stream      bool          `json:"stream"`
}

// chatResponse is the subset of the provider response we consume.
type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// NewClient creates a completion client from the LLM configuration.
// A missing credential fails here, at construction, so a misconfigured
// provider is caught at process start rather than on the first request.
func NewClient(logger *slog.Logger, cfg config.LLMConfig) (*Client, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: API key cannot be empty", generation.ErrInvalidConfig)
	}

	if cfg.ModelName == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", generation.ErrInvalidConfig)
	}

	if cfg.TimeoutSeconds <= 0 {
		return nil, fmt.Errorf("%w: timeout must be positive", generation.ErrInvalidConfig)
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Client{
		logger:          logger.With(slog.String("component", "groq_client")),
		httpClient:      &http.Client{},
		apiKey:          cfg.APIKey,
		model:           cfg.ModelName,
		baseURL:         baseURL,
		timeout:         time.Duration(cfg.TimeoutSeconds) * time.Second,
		maxOutputTokens: cfg.MaxOutputTokens,
		temperature:     cfg.Temperature,
	}, nil
}

// Complete implements generation.CompletionClient.Complete
// It sends the prompt as the sole user message and returns the first
// completion's content, whitespace-trimmed.
func (c *Client) Complete(
	ctx context.Context,
	prompt string,
	opts generation.CompletionOptions,
) (string, error) {
	log := c.logger

	temperature := c.temperature
	if opts.Temperature > 0 {
		temperature = opts.Temperature
	}

	maxTokens := c.maxOutputTokens
	if opts.MaxTokens > 0 {
		maxTokens = opts.MaxTokens
	}

	body, err := json.Marshal(chatRequest{
		Model:       c.model,
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
		Temperature: temperature,
		MaxTokens:   maxTokens,
		TopP:        1,
		Stream:      false,
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode completion request: %w", err)
	}

	// Independent timeout per call.
	callCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(callCtx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build completion request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	log.DebugContext(ctx, "sending completion request",
		slog.String("model", c.model),
		slog.Int("prompt_length", len(prompt)),
		slog.Int("max_tokens", maxTokens))

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || callCtx.Err() == context.DeadlineExceeded {
			log.WarnContext(ctx, "completion request timed out",
				slog.Duration("timeout", c.timeout))
			return "", generation.NewTimeoutError(c.timeout)
		}
		return "", fmt.Errorf("completion request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read completion response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.WarnContext(ctx, "completion provider returned error status",
			slog.Int("status_code", resp.StatusCode))
		return "", generation.NewProviderError(resp.StatusCode, string(respBody))
	}

	var parsed chatResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("failed to decode completion response: %w", err)
	}

	if len(parsed.Choices) == 0 {
		return "", generation.NewProviderError(resp.StatusCode, "response contained no choices")
	}

	log.DebugContext(ctx, "completion request succeeded",
		slog.Duration("elapsed", time.Since(start)),
		slog.Int("response_length", len(parsed.Choices[0].Message.Content)))

	return strings.TrimSpace(parsed.Choices[0].Message.Content), nil
}

// CompleteJSON implements generation.CompletionClient.CompleteJSON
// It delegates to Complete and then runs the extractor's repair cascade
// over the returned text.
func (c *Client) CompleteJSON(
	ctx context.Context,
	prompt string,
	opts generation.CompletionOptions,
) (map[string]any, error) {
	text, err := c.Complete(ctx, prompt, opts)
	if err != nil {
		return nil, err
	}

	parsed, err := generation.ExtractJSON(text)
	if err != nil {
		c.logger.WarnContext(ctx, "failed to extract JSON from completion",
			slog.String("error", err.Error()))
		return nil, err
	}

	return parsed, nil
}
