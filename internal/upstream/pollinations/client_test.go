package pollinations

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"omnidesk/internal/domain"
)

func TestClient_GenerateImage(t *testing.T) {
	var gotPath string
	var gotQuery map[string][]string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "image/jpeg")
		_, _ = w.Write([]byte("jpeg-bytes"))
	}))
	defer server.Close()

	client := NewClientWithConfig(server.URL, server.URL, 5*time.Second)

	data, contentType, err := client.GenerateImage(context.Background(), "a red fox", "flux", 512, 768)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	if !bytes.Equal(data, []byte("jpeg-bytes")) {
		t.Errorf("data = %q", data)
	}
	if contentType != "image/jpeg" {
		t.Errorf("content type = %q", contentType)
	}
	if gotPath != "/prompt/a red fox" {
		t.Errorf("path = %q, want escaped prompt path", gotPath)
	}
	if gotQuery["model"][0] != "flux" || gotQuery["width"][0] != "512" || gotQuery["height"][0] != "768" {
		t.Errorf("query = %v", gotQuery)
	}
	if gotQuery["nologo"][0] != "true" {
		t.Errorf("nologo = %v", gotQuery["nologo"])
	}
}

func TestClient_GenerateImageDefaults(t *testing.T) {
	var gotQuery map[string][]string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		_, _ = w.Write([]byte("x"))
	}))
	defer server.Close()

	client := NewClientWithConfig(server.URL, server.URL, 5*time.Second)

	if _, _, err := client.GenerateImage(context.Background(), "p", "", 0, 0); err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	if gotQuery["model"][0] != DefaultImageModel {
		t.Errorf("model = %v, want %s", gotQuery["model"], DefaultImageModel)
	}
	if gotQuery["width"][0] != "1024" || gotQuery["height"][0] != "1024" {
		t.Errorf("size = %vx%v, want 1024x1024", gotQuery["width"], gotQuery["height"])
	}
}

func TestClient_GenerateAudio(t *testing.T) {
	var gotPath string
	var gotQuery map[string][]string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "audio/mpeg")
		_, _ = w.Write([]byte("mp3"))
	}))
	defer server.Close()

	client := NewClientWithConfig(server.URL, server.URL, 5*time.Second)

	_, contentType, err := client.GenerateAudio(context.Background(), "hello world", "")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	if contentType != "audio/mpeg" {
		t.Errorf("content type = %q", contentType)
	}
	if gotPath != "/hello world" {
		t.Errorf("path = %q", gotPath)
	}
	if gotQuery["model"][0] != "openai-audio" || gotQuery["voice"][0] != DefaultVoice {
		t.Errorf("query = %v", gotQuery)
	}
}

func TestClient_GenerateImageUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte("rate limited"))
	}))
	defer server.Close()

	client := NewClientWithConfig(server.URL, server.URL, 5*time.Second)

	_, _, err := client.GenerateImage(context.Background(), "p", "", 0, 0)
	var upErr *domain.UpstreamError
	if !errors.As(err, &upErr) {
		t.Fatalf("error type = %T, want *domain.UpstreamError", err)
	}
	if upErr.Status != http.StatusTooManyRequests {
		t.Errorf("status = %d, want 429", upErr.Status)
	}
}
