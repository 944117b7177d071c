package gemini

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func newTestService(t *testing.T, handler http.HandlerFunc) (*Service, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	svc := NewService("test-key", "gemini-2.5-flash", time.Second)
	svc.endpoint = server.URL
	return svc, server
}

func TestGenerateContent(t *testing.T) {
	svc, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.URL.Path, "gemini-2.5-flash:generateContent") {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if r.URL.Query().Get("key") != "test-key" {
			t.Error("API key not passed")
		}

		var payload struct {
			Contents []struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"contents"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatalf("failed to decode request: %v", err)
		}
		if len(payload.Contents) != 1 || payload.Contents[0].Parts[0].Text != "classifique isto" {
			t.Errorf("unexpected payload: %+v", payload)
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates": [{"content": {"parts": [{"text": "Produtivo"}]}}]}`))
	})

	got, err := svc.GenerateContent(context.Background(), "classifique isto")
	if err != nil {
		t.Fatalf("GenerateContent() error: %v", err)
	}
	if got != "Produtivo" {
		t.Errorf("GenerateContent() = %q, want %q", got, "Produtivo")
	}
}

func TestGenerateContentAPIError(t *testing.T) {
	svc, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error": {"message": "quota exceeded"}}`))
	})

	_, err := svc.GenerateContent(context.Background(), "prompt")
	if err == nil {
		t.Fatal("GenerateContent() error = nil, want API error")
	}
	if !strings.Contains(err.Error(), "429") {
		t.Errorf("GenerateContent() error = %v, want status code surfaced", err)
	}
}

func TestGenerateContentNoCandidates(t *testing.T) {
	svc, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates": []}`))
	})

	_, err := svc.GenerateContent(context.Background(), "prompt")
	if err == nil {
		t.Fatal("GenerateContent() error = nil, want no-content error")
	}
}

func TestGenerateContentContextCancellation(t *testing.T) {
	svc, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(`{}`))
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	if _, err := svc.GenerateContent(ctx, "prompt"); err == nil {
		t.Fatal("GenerateContent() error = nil, want context deadline error")
	}
}
