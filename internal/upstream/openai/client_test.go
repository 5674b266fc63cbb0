package openai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"omnidesk/internal/domain"
	"omnidesk/internal/domain/models"
)

func TestClient_Complete(t *testing.T) {
	var gotAuth string
	var gotReq completionRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewDecoder(r.Body).Decode(&gotReq)

		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"role": "assistant", "content": "Hello there"}},
			},
		})
	}))
	defer server.Close()

	client := NewClientWithConfig("sk-test", server.URL, 5*time.Second)

	reply, err := client.Complete(context.Background(), "gpt-4o-mini", []models.ChatMessage{
		{Role: models.RoleSystem, Content: "Be brief"},
		{Role: models.RoleUser, Content: "Hi"},
	})
	if err != nil {
		t.Fatalf("complete failed: %v", err)
	}

	if reply != "Hello there" {
		t.Errorf("reply = %q, want %q", reply, "Hello there")
	}
	if gotAuth != "Bearer sk-test" {
		t.Errorf("Authorization = %q, want bearer key", gotAuth)
	}
	if gotReq.Model != "gpt-4o-mini" {
		t.Errorf("model = %q, want gpt-4o-mini", gotReq.Model)
	}
	if len(gotReq.Messages) != 2 || gotReq.Messages[0].Role != models.RoleSystem {
		t.Errorf("unexpected messages: %+v", gotReq.Messages)
	}
}

func TestClient_CompleteDefaultsModel(t *testing.T) {
	var gotReq completionRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&gotReq)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"content": "ok"}},
			},
		})
	}))
	defer server.Close()

	client := NewClientWithConfig("k", server.URL, 5*time.Second)

	if _, err := client.Complete(context.Background(), "", nil); err != nil {
		t.Fatalf("complete failed: %v", err)
	}
	if gotReq.Model != DefaultModel {
		t.Errorf("model = %q, want %q", gotReq.Model, DefaultModel)
	}
}

func TestClient_CompleteExtractsUpstreamErrorMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"message":"Incorrect API key provided"}}`))
	}))
	defer server.Close()

	client := NewClientWithConfig("bad", server.URL, 5*time.Second)

	_, err := client.Complete(context.Background(), "gpt-4o-mini", nil)
	if err == nil {
		t.Fatal("expected error")
	}

	var upErr *domain.UpstreamError
	if !errors.As(err, &upErr) {
		t.Fatalf("error type = %T, want *domain.UpstreamError", err)
	}
	if upErr.Message != "Incorrect API key provided" {
		t.Errorf("message = %q, want extracted upstream message", upErr.Message)
	}
	if upErr.Status != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", upErr.Status)
	}
}

func TestClient_CompleteEmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"choices": []interface{}{}})
	}))
	defer server.Close()

	client := NewClientWithConfig("k", server.URL, 5*time.Second)

	_, err := client.Complete(context.Background(), "gpt-4o-mini", nil)
	if err == nil {
		t.Fatal("expected error for empty choices")
	}
}

func TestClient_CompletePromptBuildsMessages(t *testing.T) {
	var gotReq completionRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&gotReq)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"content": "deck"}},
			},
		})
	}))
	defer server.Close()

	client := NewClientWithConfig("k", server.URL, 5*time.Second)

	if _, err := client.CompletePrompt(context.Background(), "gpt-4o", "system text", "user text"); err != nil {
		t.Fatalf("complete failed: %v", err)
	}

	if len(gotReq.Messages) != 2 {
		t.Fatalf("messages = %d, want 2", len(gotReq.Messages))
	}
	if gotReq.Messages[0].Role != models.RoleSystem || gotReq.Messages[0].Content != "system text" {
		t.Errorf("unexpected system message: %+v", gotReq.Messages[0])
	}
	if gotReq.Messages[1].Role != models.RoleUser || gotReq.Messages[1].Content != "user text" {
		t.Errorf("unexpected user message: %+v", gotReq.Messages[1])
	}
}
