// Package gemini implements chat and website generation through the
// Google Gemini API using the official genai SDK.
package gemini

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"omnidesk/internal/domain"
	"omnidesk/internal/domain/models"
)

// DefaultModel is used when a request does not name one
const DefaultModel = "gemini-2.0-flash"

// Client wraps the genai SDK client.
type Client struct {
	client *genai.Client
}

// NewClient creates a new Gemini client.
func NewClient(ctx context.Context, apiKey string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	return &Client{client: client}, nil
}

// Complete sends the conversation and returns the model's reply.
// Implements the ChatCompleter interface used by the chat service.
func (c *Client) Complete(ctx context.Context, model string, messages []models.ChatMessage) (string, error) {
	if model == "" {
		model = DefaultModel
	}

	var config *genai.GenerateContentConfig
	var contents []*genai.Content

	for _, m := range messages {
		switch m.Role {
		case models.RoleSystem:
			// Gemini takes system text as a config field, not a turn
			config = &genai.GenerateContentConfig{
				SystemInstruction: genai.NewContentFromText(m.Content, genai.RoleUser),
			}
		case models.RoleAssistant:
			contents = append(contents, genai.NewContentFromText(m.Content, genai.RoleModel))
		default:
			contents = append(contents, genai.NewContentFromText(m.Content, genai.RoleUser))
		}
	}

	resp, err := c.client.Models.GenerateContent(ctx, model, contents, config)
	if err != nil {
		return "", &domain.UpstreamError{Upstream: "gemini", Message: err.Error()}
	}

	text := resp.Text()
	if text == "" {
		return "", &domain.UpstreamError{Upstream: "gemini", Message: "response contained no text"}
	}

	return text, nil
}

// CompletePrompt is a single-shot helper for generation routes.
func (c *Client) CompletePrompt(ctx context.Context, model, system, prompt string) (string, error) {
	messages := []models.ChatMessage{
		{Role: models.RoleSystem, Content: system},
		{Role: models.RoleUser, Content: prompt},
	}
	return c.Complete(ctx, model, messages)
}
