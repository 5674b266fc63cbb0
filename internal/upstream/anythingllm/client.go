// Package anythingllm implements CRM workspace querying through the
// AnythingLLM API.
package anythingllm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"omnidesk/internal/domain"
)

// DefaultTimeout is the default HTTP timeout for workspace queries
const DefaultTimeout = 60 * time.Second

// QueryResult is a workspace's answer with the documents it cited.
type QueryResult struct {
	Answer  string
	Sources []string
}

// Client calls an AnythingLLM instance.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a new AnythingLLM client for the given instance.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
	}
}

// NewClientWithConfig creates an AnythingLLM client with a custom timeout.
func NewClientWithConfig(baseURL, apiKey string, timeout time.Duration) *Client {
	c := NewClient(baseURL, apiKey)
	c.httpClient.Timeout = timeout
	return c
}

// Query sends a question to a workspace in query mode (retrieval only,
// no chat history) and returns its answer.
func (c *Client) Query(ctx context.Context, workspaceSlug, question string) (*QueryResult, error) {
	payload := map[string]interface{}{
		"message": question,
		"mode":    "query",
	}

	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/api/v1/workspace/%s/chat", c.baseURL, workspaceSlug)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payloadBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &domain.UpstreamError{Upstream: "anythingllm", Message: err.Error()}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &domain.UpstreamError{
			Upstream: "anythingllm",
			Status:   resp.StatusCode,
			Message:  string(body),
		}
	}

	var chatResp chatResponse
	if err := json.Unmarshal(body, &chatResp); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	if chatResp.Error != "" {
		return nil, &domain.UpstreamError{Upstream: "anythingllm", Message: chatResp.Error}
	}

	sources := make([]string, 0, len(chatResp.Sources))
	for _, s := range chatResp.Sources {
		if s.Title != "" {
			sources = append(sources, s.Title)
		}
	}

	return &QueryResult{
		Answer:  chatResp.TextResponse,
		Sources: sources,
	}, nil
}

// chatResponse represents the response from the workspace chat endpoint
type chatResponse struct {
	TextResponse string `json:"textResponse"`
	Error        string `json:"error,omitempty"`
	Sources      []struct {
		Title string `json:"title"`
	} `json:"sources"`
}
