package serper

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

func TestClient_Search(t *testing.T) {
	var gotKey string
	var gotBody map[string]interface{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("X-API-KEY")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)

		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"organic": []map[string]interface{}{
				{"title": "The Go Programming Language", "link": "https://go.dev", "snippet": "Build simple software", "position": 1},
				{"title": "Go wiki", "link": "https://go.dev/wiki", "snippet": "Community wiki", "position": 2},
			},
		})
	}))
	defer server.Close()

	client := NewClientWithConfig("test-key", server.URL, 5*time.Second)

	results, err := client.Search(context.Background(), "golang", 5)
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}

	if gotKey != "test-key" {
		t.Errorf("X-API-KEY = %q, want %q", gotKey, "test-key")
	}
	if gotBody["q"] != "golang" {
		t.Errorf("query = %v, want golang", gotBody["q"])
	}
	if gotBody["num"] != float64(5) {
		t.Errorf("num = %v, want 5", gotBody["num"])
	}

	if len(results) != 2 {
		t.Fatalf("results = %d, want 2", len(results))
	}
	if results[0].Title != "The Go Programming Language" || results[0].Position != 1 {
		t.Errorf("unexpected first result: %+v", results[0])
	}
}

func TestClient_SearchClampsMaxResults(t *testing.T) {
	var gotNum float64

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]interface{}
		_ = json.NewDecoder(r.Body).Decode(&body)
		gotNum = body["num"].(float64)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"organic": []interface{}{}})
	}))
	defer server.Close()

	client := NewClientWithConfig("k", server.URL, 5*time.Second)

	if _, err := client.Search(context.Background(), "q", 0); err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if gotNum != 10 {
		t.Errorf("default num = %v, want 10", gotNum)
	}

	if _, err := client.Search(context.Background(), "q", 100); err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if gotNum != 20 {
		t.Errorf("clamped num = %v, want 20", gotNum)
	}
}

func TestClient_SearchUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"message":"invalid api key"}`))
	}))
	defer server.Close()

	client := NewClientWithConfig("bad", server.URL, 5*time.Second)

	_, err := client.Search(context.Background(), "golang", 5)
	if err == nil {
		t.Fatal("expected error")
	}

	var upErr *domain.UpstreamError
	if !errors.As(err, &upErr) {
		t.Fatalf("error type = %T, want *domain.UpstreamError", err)
	}
	if upErr.Upstream != "serper" || upErr.Status != http.StatusForbidden {
		t.Errorf("unexpected upstream error: %+v", upErr)
	}
}
