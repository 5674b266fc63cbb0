package anythingllm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"omnidesk/internal/domain"
)

func TestClient_Query(t *testing.T) {
	var gotPath, gotAuth string
	var gotBody map[string]interface{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)

		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"textResponse": "You have 12 open deals.",
			"sources": []map[string]interface{}{
				{"title": "deals-q3.csv"},
				{"title": ""},
				{"title": "pipeline.md"},
			},
		})
	}))
	defer server.Close()

	client := NewClientWithConfig(server.URL, "llm-key", 5*time.Second)

	result, err := client.Query(context.Background(), "acme-crm", "How many open deals?")
	if err != nil {
		t.Fatalf("query failed: %v", err)
	}

	if gotPath != "/api/v1/workspace/acme-crm/chat" {
		t.Errorf("path = %q, want workspace chat endpoint", gotPath)
	}
	if gotAuth != "Bearer llm-key" {
		t.Errorf("Authorization = %q, want bearer key", gotAuth)
	}
	if gotBody["mode"] != "query" {
		t.Errorf("mode = %v, want query", gotBody["mode"])
	}
	if gotBody["message"] != "How many open deals?" {
		t.Errorf("message = %v", gotBody["message"])
	}

	if result.Answer != "You have 12 open deals." {
		t.Errorf("answer = %q", result.Answer)
	}
	// Empty titles are dropped
	if len(result.Sources) != 2 || result.Sources[0] != "deals-q3.csv" || result.Sources[1] != "pipeline.md" {
		t.Errorf("sources = %v", result.Sources)
	}
}

func TestClient_QueryWorkspaceError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"textResponse": "",
			"error":        "Workspace has no embedded documents",
		})
	}))
	defer server.Close()

	client := NewClientWithConfig(server.URL, "k", 5*time.Second)

	_, err := client.Query(context.Background(), "empty", "anything")
	if err == nil {
		t.Fatal("expected error")
	}

	var upErr *domain.UpstreamError
	if !errors.As(err, &upErr) {
		t.Fatalf("error type = %T, want *domain.UpstreamError", err)
	}
	if upErr.Message != "Workspace has no embedded documents" {
		t.Errorf("message = %q", upErr.Message)
	}
}

func TestClient_QueryHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClientWithConfig(server.URL, "k", 5*time.Second)

	_, err := client.Query(context.Background(), "slug", "q")
	var upErr *domain.UpstreamError
	if !errors.As(err, &upErr) {
		t.Fatalf("error type = %T, want *domain.UpstreamError", err)
	}
	if upErr.Status != http.StatusBadGateway {
		t.Errorf("status = %d, want 502", upErr.Status)
	}
}
