package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func completionsServer(t *testing.T, status int, content string, capture *chatRequest) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if capture != nil {
			if err := json.NewDecoder(r.Body).Decode(capture); err != nil {
				t.Errorf("failed to decode request: %v", err)
			}
		}
		w.WriteHeader(status)
		if status == http.StatusOK {
			json.NewEncoder(w).Encode(map[string]any{
				"choices": []map[string]any{
					{"message": map[string]any{"content": content}},
				},
			})
		}
	}))
}

func TestComplete(t *testing.T) {
	var captured chatRequest
	srv := completionsServer(t, http.StatusOK, `{"ok":true}`, &captured)
	defer srv.Close()

	c := NewClient(srv.URL, "gpt-4o", "sk-test", 5*time.Second)

	got, err := c.Complete(context.Background(), "hello", Options{
		System:   "You are a test.",
		JSONOnly: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != `{"ok":true}` {
		t.Errorf("unexpected content %q", got)
	}

	if captured.Model != "gpt-4o" {
		t.Errorf("expected model gpt-4o, got %q", captured.Model)
	}
	if len(captured.Messages) != 2 || captured.Messages[0].Role != "system" {
		t.Errorf("expected system+user messages, got %+v", captured.Messages)
	}
	if captured.ResponseFormat == nil || captured.ResponseFormat.Type != "json_object" {
		t.Errorf("expected json_object response format, got %+v", captured.ResponseFormat)
	}
}

func TestComplete_ProviderStatuses(t *testing.T) {
	tests := []struct {
		name   string
		status int
		reason string
	}{
		{"unauthorized", http.StatusUnauthorized, "unauthorized"},
		{"rate limited", http.StatusTooManyRequests, "rate limited"},
		{"server error", http.StatusInternalServerError, "unexpected status"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := completionsServer(t, tt.status, "", nil)
			defer srv.Close()

			c := NewClient(srv.URL, "gpt-4o", "", 5*time.Second)
			_, err := c.Complete(context.Background(), "hello", Options{})

			var perr *ProviderError
			if !errors.As(err, &perr) {
				t.Fatalf("expected ProviderError, got %v", err)
			}
			if perr.Status != tt.status {
				t.Errorf("expected status %d, got %d", tt.status, perr.Status)
			}
			if perr.Reason != tt.reason {
				t.Errorf("expected reason %q, got %q", tt.reason, perr.Reason)
			}
		})
	}
}

func TestComplete_EmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"choices": []any{}})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "gpt-4o", "", 5*time.Second)
	_, err := c.Complete(context.Background(), "hello", Options{})

	var perr *ProviderError
	if !errors.As(err, &perr) {
		t.Fatalf("expected ProviderError, got %v", err)
	}
}

func TestComplete_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "gpt-4o", "", 5*time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := c.Complete(ctx, "hello", Options{})

	var perr *ProviderError
	if !errors.As(err, &perr) {
		t.Fatalf("expected ProviderError, got %v", err)
	}
}

func TestPing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/models" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "gpt-4o", "", 5*time.Second)
	if err := c.Ping(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
