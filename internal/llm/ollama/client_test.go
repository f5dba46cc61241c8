package ollama

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestNewClientRequiresModel(t *testing.T) {
	if _, err := NewClient("http://localhost:11434", "", 0); err == nil {
		t.Fatalf("expected error for empty model")
	}
}

func TestCompleteRoundTrip(t *testing.T) {
	var gotReq chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/chat" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("decode request: %v", err)
		}
		_ = json.NewEncoder(w).Encode(chatResponse{
			Message: chatMessage{Role: "assistant", Content: `{"summary":"s"}`},
		})
	}))
	t.Cleanup(srv.Close)

	client, err := NewClient(srv.URL, "llama3.1", 5*time.Second)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	out, err := client.Complete(context.Background(), "system", "user text")
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if out != `{"summary":"s"}` {
		t.Fatalf("out = %q", out)
	}
	if gotReq.Stream {
		t.Fatalf("expected stream=false")
	}
	if gotReq.Format != "json" {
		t.Fatalf("format = %q", gotReq.Format)
	}
	if len(gotReq.Messages) != 2 || gotReq.Messages[0].Role != "system" {
		t.Fatalf("messages = %+v", gotReq.Messages)
	}
}

func TestCompleteNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not found", http.StatusNotFound)
	}))
	t.Cleanup(srv.Close)

	client, err := NewClient(srv.URL, "llama3.1", time.Second)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	if _, err := client.Complete(context.Background(), "s", "u"); err == nil {
		t.Fatalf("expected error")
	}
}
