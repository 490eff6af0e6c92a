package llm

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

func newFakeProvider(t *testing.T, content string, capture *map[string]any) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/chat/completions") {
			t.Errorf("unexpected path %q", r.URL.Path)
		}

		body, _ := io.ReadAll(r.Body)
		if capture != nil {
			if err := json.Unmarshal(body, capture); err != nil {
				t.Errorf("request body is not JSON: %v", err)
			}
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "chatcmpl-test",
			"object": "chat.completion",
			"model": "test-model",
			"choices": [
				{"index": 0, "message": {"role": "assistant", "content": ` + mustQuote(content) + `}, "finish_reason": "stop"}
			]
		}`))
	}))
}

func mustQuote(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}

func newTestClient(baseURL, model string) *Client {
	return NewClient(openai.NewClient(
		option.WithAPIKey("test-key"),
		option.WithBaseURL(baseURL),
		option.WithMaxRetries(0),
	), model)
}

func TestGenerateText(t *testing.T) {
	var captured map[string]any
	server := newFakeProvider(t, "Bonjour", &captured)
	defer server.Close()

	client := newTestClient(server.URL, "test-model")

	out, err := client.GenerateText(context.Background(), "translate this")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "Bonjour" {
		t.Errorf("got %q, want %q", out, "Bonjour")
	}

	if captured["model"] != "test-model" {
		t.Errorf("model = %v, want test-model", captured["model"])
	}

	messages, ok := captured["messages"].([]any)
	if !ok || len(messages) != 1 {
		t.Fatalf("want exactly one message, got %v", captured["messages"])
	}
	msg := messages[0].(map[string]any)
	if msg["role"] != "user" {
		t.Errorf("role = %v, want user", msg["role"])
	}
	if msg["content"] != "translate this" {
		t.Errorf("content = %v, want the prompt verbatim", msg["content"])
	}
}

func TestGenerateFromImage(t *testing.T) {
	var captured map[string]any
	server := newFakeProvider(t, "Hello", &captured)
	defer server.Close()

	client := newTestClient(server.URL, "test-model")

	out, err := client.GenerateFromImage(context.Background(), "read and translate", "image/jpeg", "/9j/4AAQ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "Hello" {
		t.Errorf("got %q, want %q", out, "Hello")
	}

	messages := captured["messages"].([]any)
	if len(messages) != 1 {
		t.Fatalf("want exactly one message, got %d", len(messages))
	}

	parts, ok := messages[0].(map[string]any)["content"].([]any)
	if !ok || len(parts) != 2 {
		t.Fatalf("want two content parts, got %v", messages[0])
	}

	text := parts[0].(map[string]any)
	if text["type"] != "text" {
		t.Errorf("first part type = %v, want text", text["type"])
	}

	image := parts[1].(map[string]any)
	if image["type"] != "image_url" {
		t.Fatalf("second part type = %v, want image_url", image["type"])
	}
	url := image["image_url"].(map[string]any)["url"].(string)
	if url != "data:image/jpeg;base64,/9j/4AAQ" {
		t.Errorf("image url = %q, want mime-typed data URI", url)
	}
}

func TestGenerateText_NoChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": "chatcmpl-test", "object": "chat.completion", "model": "test-model", "choices": []}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, "test-model")

	_, err := client.GenerateText(context.Background(), "translate this")
	if err == nil {
		t.Fatal("expected error when the provider returns no choices")
	}
}

func TestGenerateText_ProviderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": {"message": "rate limited"}}`, http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := newTestClient(server.URL, "test-model")

	_, err := client.GenerateText(context.Background(), "translate this")
	if err == nil {
		t.Fatal("expected error for non-2xx provider response")
	}
}
