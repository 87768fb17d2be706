// Learnloop - Personal Learning Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/learnloop

package completion

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"google.golang.org/genai"

	"github.com/tomtom215/learnloop/internal/config"
)

func ollamaConfig(url string) *config.CompletionConfig {
	return &config.CompletionConfig{
		Provider:        ProviderOllama,
		Model:           "llama3.2",
		BaseURL:         url,
		Timeout:         5 * time.Second,
		Temperature:     0.3,
		MaxOutputTokens: 64,
	}
}

func TestOllamaClient_Complete(t *testing.T) {
	var got ollamaGenerateRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/generate" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		body, _ := io.ReadAll(r.Body)
		if err := json.Unmarshal(body, &got); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"response":"flexbox tutorial\ncss grid\nhtml project","done":true}`))
	}))
	defer srv.Close()

	c := NewOllamaClient(ollamaConfig(srv.URL + "/"))
	text, err := c.Complete(context.Background(), "give me terms")
	if err != nil {
		t.Fatalf("Complete() error = %v", err)
	}
	if !strings.Contains(text, "css grid") {
		t.Errorf("Complete() = %q", text)
	}
	if got.Stream {
		t.Error("request should disable streaming")
	}
	if got.Model != "llama3.2" || got.Prompt != "give me terms" {
		t.Errorf("request = %+v", got)
	}
	if got.Options.NumPredict != 64 {
		t.Errorf("num_predict = %d, want 64", got.Options.NumPredict)
	}
}

func TestOllamaClient_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
		wantMsg string
	}{
		{"server error", http.StatusInternalServerError, `model crashed`, nil, "status 500"},
		{"error field", http.StatusOK, `{"error":"model not found"}`, nil, "model not found"},
		{"empty response", http.StatusOK, `{"response":"  ","done":true}`, ErrEmptyCompletion, ""},
		{"bad json", http.StatusOK, `{not json`, nil, "decoding response"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := NewOllamaClient(ollamaConfig(srv.URL)).Complete(context.Background(), "p")
			if err == nil {
				t.Fatal("Complete() expected error")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantMsg != "" && !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error = %q, want it to contain %q", err, tt.wantMsg)
			}
		})
	}
}

func TestOllamaClient_ContextTimeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	if _, err := NewOllamaClient(ollamaConfig(srv.URL)).Complete(ctx, "p"); err == nil {
		t.Fatal("Complete() expected deadline error")
	}
}

func TestGeminiClient_Complete(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.URL.Path, "gemini-test:generateContent") {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":"one\ntwo\nthree"}]},"finishReason":"STOP"}]}`))
	}))
	defer srv.Close()

	ctx := context.Background()
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      "test-key",
		Backend:     genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{BaseURL: srv.URL + "/"},
	})
	if err != nil {
		t.Fatalf("genai.NewClient() error = %v", err)
	}

	g := newGeminiClient(client, &config.CompletionConfig{Model: "gemini-test", Temperature: 0.5, MaxOutputTokens: 32})
	text, err := g.Complete(ctx, "prompt")
	if err != nil {
		t.Fatalf("Complete() error = %v", err)
	}
	if text != "one\ntwo\nthree" {
		t.Errorf("Complete() = %q", text)
	}
}

func TestNew(t *testing.T) {
	ctx := context.Background()

	c, err := New(ctx, ollamaConfig("http://localhost:11434"))
	if err != nil {
		t.Fatalf("New(ollama) error = %v", err)
	}
	if _, ok := c.(*OllamaClient); !ok {
		t.Errorf("New(ollama) = %T, want *OllamaClient", c)
	}

	if _, err := New(ctx, &config.CompletionConfig{Provider: ProviderGemini}); err == nil {
		t.Error("New(gemini) without key should fail")
	}
	if _, err := New(ctx, &config.CompletionConfig{Provider: "other"}); err == nil {
		t.Error("New(other) should fail")
	}
}
