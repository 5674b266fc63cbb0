// Package openai implements chat and content generation through the
// OpenAI chat completions API.
package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"omnidesk/internal/domain"
	"omnidesk/internal/domain/models"
)

const (
	// DefaultBaseURL is the default OpenAI API endpoint
	DefaultBaseURL = "https://api.openai.com/v1/chat/completions"
	// DefaultTimeout is the default HTTP timeout for OpenAI requests.
	// Generations can run long; the request context can cancel earlier.
	DefaultTimeout = 120 * time.Second
	// DefaultModel is used when a request does not name one
	DefaultModel = "gpt-4o-mini"
)

// Client calls the OpenAI chat completions API.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new OpenAI client.
func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: DefaultBaseURL,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
	}
}

// NewClientWithConfig creates an OpenAI client with custom configuration.
func NewClientWithConfig(apiKey, baseURL string, timeout time.Duration) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Complete sends the conversation and returns the assistant's reply.
// Implements the ChatCompleter interface used by the chat service.
func (c *Client) Complete(ctx context.Context, model string, messages []models.ChatMessage) (string, error) {
	if model == "" {
		model = DefaultModel
	}

	apiMessages := make([]apiMessage, len(messages))
	for i, m := range messages {
		apiMessages[i] = apiMessage{Role: m.Role, Content: m.Content}
	}

	payload := completionRequest{
		Model:    model,
		Messages: apiMessages,
	}

	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(payloadBytes))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &domain.UpstreamError{Upstream: "openai", Message: err.Error()}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", &domain.UpstreamError{
			Upstream: "openai",
			Status:   resp.StatusCode,
			Message:  upstreamMessage(body),
		}
	}

	var completion completionResponse
	if err := json.Unmarshal(body, &completion); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}

	if len(completion.Choices) == 0 {
		return "", &domain.UpstreamError{Upstream: "openai", Message: "response contained no choices"}
	}

	return completion.Choices[0].Message.Content, nil
}

// CompletePrompt is a single-shot helper for generation routes: one
// system instruction, one user prompt, one reply.
func (c *Client) CompletePrompt(ctx context.Context, model, system, prompt string) (string, error) {
	messages := []models.ChatMessage{
		{Role: models.RoleSystem, Content: system},
		{Role: models.RoleUser, Content: prompt},
	}
	return c.Complete(ctx, model, messages)
}

// upstreamMessage pulls the error message out of an OpenAI error body,
// falling back to the raw body.
func upstreamMessage(body []byte) string {
	var errResp struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error.Message != "" {
		return errResp.Error.Message
	}
	return string(body)
}

type apiMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type completionRequest struct {
	Model    string       `json:"model"`
	Messages []apiMessage `json:"messages"`
}

type completionResponse struct {
	Choices []struct {
		Message apiMessage `json:"message"`
	} `json:"choices"`
}
