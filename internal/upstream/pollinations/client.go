// Package pollinations implements image and text-to-speech generation
// through the Pollinations.ai API. Both endpoints are plain GETs that
// return raw bytes.
package pollinations

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"omnidesk/internal/domain"
)

const (
	// DefaultImageBaseURL is the default image generation endpoint
	DefaultImageBaseURL = "https://image.pollinations.ai"
	// DefaultTextBaseURL is the default text/audio generation endpoint
	DefaultTextBaseURL = "https://text.pollinations.ai"
	// DefaultTimeout is the default HTTP timeout. Image generation is
	// slow; the request context can cancel earlier.
	DefaultTimeout = 120 * time.Second

	// DefaultImageModel is the image model used when none is named
	DefaultImageModel = "flux"
	// DefaultVoice is the TTS voice used when none is named
	DefaultVoice = "nova"

	// maxMediaBytes caps how much generated media is read into memory
	maxMediaBytes = 32 << 20
)

// Client calls the Pollinations.ai generation endpoints.
type Client struct {
	imageBaseURL string
	textBaseURL  string
	httpClient   *http.Client
}

// NewClient creates a new Pollinations client. imageBaseURL falls back
// to the public endpoint when empty.
func NewClient(imageBaseURL string) *Client {
	if imageBaseURL == "" {
		imageBaseURL = DefaultImageBaseURL
	}
	return &Client{
		imageBaseURL: imageBaseURL,
		textBaseURL:  DefaultTextBaseURL,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
	}
}

// NewClientWithConfig creates a Pollinations client with custom endpoints.
func NewClientWithConfig(imageBaseURL, textBaseURL string, timeout time.Duration) *Client {
	return &Client{
		imageBaseURL: imageBaseURL,
		textBaseURL:  textBaseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// GenerateImage renders the prompt and returns the image bytes with
// their content type.
func (c *Client) GenerateImage(ctx context.Context, prompt, model string, width, height int) ([]byte, string, error) {
	if model == "" {
		model = DefaultImageModel
	}
	if width <= 0 {
		width = 1024
	}
	if height <= 0 {
		height = 1024
	}

	query := url.Values{}
	query.Set("model", model)
	query.Set("width", strconv.Itoa(width))
	query.Set("height", strconv.Itoa(height))
	query.Set("nologo", "true")

	endpoint := fmt.Sprintf("%s/prompt/%s?%s", c.imageBaseURL, url.PathEscape(prompt), query.Encode())

	return c.fetch(ctx, endpoint)
}

// GenerateAudio speaks the text and returns the audio bytes with their
// content type.
func (c *Client) GenerateAudio(ctx context.Context, text, voice string) ([]byte, string, error) {
	if voice == "" {
		voice = DefaultVoice
	}

	query := url.Values{}
	query.Set("model", "openai-audio")
	query.Set("voice", voice)

	endpoint := fmt.Sprintf("%s/%s?%s", c.textBaseURL, url.PathEscape(text), query.Encode())

	return c.fetch(ctx, endpoint)
}

func (c *Client) fetch(ctx context.Context, endpoint string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, "", &domain.UpstreamError{Upstream: "pollinations", Message: err.Error()}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, "", &domain.UpstreamError{
			Upstream: "pollinations",
			Status:   resp.StatusCode,
			Message:  string(body),
		}
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxMediaBytes))
	if err != nil {
		return nil, "", fmt.Errorf("failed to read response: %w", err)
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	return data, contentType, nil
}
