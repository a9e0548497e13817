// Package improve tests for the remote-with-fallback strategy.
package improve

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/poyhsiao/notekeep/internal/rewrite"
)

// TestImprove_openAISuccess verifies the remote result is used when the
// provider answers.
func TestImprove_openAISuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("request path = %q, want /chat/completions", r.URL.Path)
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer test-key" {
			t.Errorf("Authorization = %q, want bearer token", auth)
		}

		var req openAIRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decoding request: %v", err)
		}
		if len(req.Messages) != 2 || req.Messages[1].Content != "I recieved teh mesage" {
			t.Errorf("messages = %+v, want system prompt plus user text", req.Messages)
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"content":"I received the message."}}]}`))
	}))
	defer server.Close()

	im := NewImprover(&Config{
		Provider:    ProviderOpenAI,
		APIEndpoint: server.URL,
		APIKey:      "test-key",
		ModelName:   "gpt-4o-mini",
	})

	got := im.Improve("I recieved teh mesage", rewrite.ActionGrammar)
	if got != "I received the message." {
		t.Errorf("Improve() = %q, want the remote result", got)
	}
}

// TestImprove_remoteFailureFallsBack verifies any provider failure degrades
// to the local engine, with the same output shape.
func TestImprove_remoteFailureFallsBack(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	}))
	defer server.Close()

	im := NewImprover(&Config{
		Provider:    ProviderOpenAI,
		APIEndpoint: server.URL,
		APIKey:      "test-key",
	})

	got := im.Improve("I recieved teh mesage", rewrite.ActionGrammar)
	want := "I received the message."
	if got != want {
		t.Errorf("Improve() fallback = %q, want %q", got, want)
	}
}

// TestImprove_unreachableEndpointFallsBack verifies a closed endpoint also
// degrades cleanly.
func TestImprove_unreachableEndpointFallsBack(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	im := NewImprover(&Config{
		Provider:    ProviderOpenAI,
		APIEndpoint: server.URL,
		APIKey:      "test-key",
	})

	got := im.Improve("teh plan", rewrite.ActionGrammar)
	if got != "The plan." {
		t.Errorf("Improve() = %q, want local fallback output", got)
	}
}

// TestImprove_noProviderUsesLocal verifies a nil config is local-only.
func TestImprove_noProviderUsesLocal(t *testing.T) {
	im := NewImprover(nil)

	got := im.Improve("i dunno", rewrite.ActionGrammar)
	if got != "I dunno." {
		t.Errorf("Improve() = %q, want local output", got)
	}
}

// TestImprove_ollama verifies the Ollama request and response shapes.
func TestImprove_ollama(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/generate" {
			t.Errorf("request path = %q, want /api/generate", r.URL.Path)
		}
		var req ollamaRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decoding request: %v", err)
		}
		if req.Stream {
			t.Error("request asked for streaming")
		}
		if !strings.Contains(req.Prompt, "simple") && !strings.Contains(req.Prompt, "Simplify") {
			t.Errorf("prompt = %q, want the simplify instruction", req.Prompt)
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"response":"use the tool"}`))
	}))
	defer server.Close()

	im := NewImprover(&Config{
		Provider:    ProviderOllama,
		APIEndpoint: server.URL,
		ModelName:   "llama3",
	})

	got := im.Improve("utilize the tool", rewrite.ActionSimplify)
	if got != "use the tool" {
		t.Errorf("Improve() = %q, want the Ollama result", got)
	}
}

// TestImprove_apiErrorBodyFallsBack verifies an in-body API error object
// counts as a failure.
func TestImprove_apiErrorBodyFallsBack(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"error":{"message":"quota exceeded","type":"rate_limit"}}`))
	}))
	defer server.Close()

	im := NewImprover(&Config{
		Provider:    ProviderOpenAI,
		APIEndpoint: server.URL,
		APIKey:      "test-key",
	})

	got := im.Improve("teh plan", rewrite.ActionGrammar)
	if got != "The plan." {
		t.Errorf("Improve() = %q, want local fallback output", got)
	}
}

// TestImprove_emptyText verifies empty input short-circuits.
func TestImprove_emptyText(t *testing.T) {
	im := NewImprover(nil)
	if got := im.Improve("", rewrite.ActionGrammar); got != "" {
		t.Errorf("Improve(empty) = %q, want empty", got)
	}
}

// TestLocal_skipsRemote verifies Local never touches the network.
func TestLocal_skipsRemote(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer server.Close()

	im := NewImprover(&Config{
		Provider:    ProviderOpenAI,
		APIEndpoint: server.URL,
		APIKey:      "test-key",
	})

	if got := im.Local("teh plan", rewrite.ActionGrammar); got != "The plan." {
		t.Errorf("Local() = %q, want %q", got, "The plan.")
	}
	if called {
		t.Error("Local() made a network call")
	}
}
