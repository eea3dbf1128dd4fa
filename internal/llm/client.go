package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// Client calls an OpenAI-compatible chat-completions endpoint (OpenAI, Ollama,
// LM Studio, vLLM, etc.).
type Client struct {
	url    string       // e.g. "https://api.openai.com" or "http://localhost:11434"
	model  string       // e.g. "gpt-4o"
	apiKey string       // empty for local endpoints
	client *http.Client // reused across calls
}

// Compile-time check: *Client satisfies the Completer interface.
var _ Completer = (*Client)(nil)

// NewClient creates a client for the given endpoint. The timeout bounds each
// completion call; request contexts cancel earlier.
func NewClient(url, model, apiKey string, timeout time.Duration) *Client {
	return &Client{
		url:    url,
		model:  model,
		apiKey: apiKey,
		client: &http.Client{Timeout: timeout},
	}
}

type chatRequest struct {
	Model          string          `json:"model"`
	Messages       []chatMessage   `json:"messages"`
	Temperature    float64         `json:"temperature"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Complete sends a single chat-completion request and returns the raw text
// content of the first choice.
func (c *Client) Complete(ctx context.Context, prompt string, opts Options) (string, error) {
	var messages []chatMessage
	if opts.System != "" {
		messages = append(messages, chatMessage{Role: "system", Content: opts.System})
	}
	messages = append(messages, chatMessage{Role: "user", Content: prompt})

	reqBody := chatRequest{
		Model:       c.model,
		Messages:    messages,
		Temperature: opts.Temperature,
	}
	if opts.JSONOnly {
		reqBody.ResponseFormat = &responseFormat{Type: "json_object"}
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url+"/v1/chat/completions", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			// Request was cancelled or timed out upstream; surface the
			// context error so callers can tell it apart.
			return "", &ProviderError{Reason: "request cancelled", Wrapped: ctx.Err()}
		}
		return "", &ProviderError{Reason: "request failed", Wrapped: redact(err)}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		// fall through
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return "", &ProviderError{Status: resp.StatusCode, Reason: "unauthorized"}
	case resp.StatusCode == http.StatusTooManyRequests:
		return "", &ProviderError{Status: resp.StatusCode, Reason: "rate limited"}
	default:
		return "", &ProviderError{Status: resp.StatusCode, Reason: "unexpected status"}
	}

	var chatResp chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return "", &ProviderError{Status: resp.StatusCode, Reason: "undecodable response"}
	}

	if len(chatResp.Choices) == 0 {
		return "", &ProviderError{Status: resp.StatusCode, Reason: "no choices returned"}
	}

	content := chatResp.Choices[0].Message.Content
	if content == "" {
		return "", &ProviderError{Status: resp.StatusCode, Reason: "empty content"}
	}

	return content, nil
}

// Ping checks provider reachability without generating anything. Used by the
// admin health endpoint.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url+"/v1/models", nil)
	if err != nil {
		return err
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return &ProviderError{Reason: "request failed", Wrapped: redact(err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &ProviderError{Status: resp.StatusCode, Reason: "unexpected status"}
	}
	return nil
}

// redact strips url.Error internals that may embed the API key in query
// params; the wrapped error keeps only the operation name.
func redact(err error) error {
	return errors.New(errKind(err))
}

func errKind(err error) string {
	var netErr interface{ Timeout() bool }
	if errors.As(err, &netErr) && netErr.Timeout() {
		return "timeout"
	}
	return "connection error"
}
