package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mfalcone/typed/core/schema"
)

func testSchema() *schema.Schema {
	return schema.New(
		schema.Field{Name: "sentiment", Enum: []string{"positive", "negative", "neutral"}, Required: true},
		schema.Field{Name: "urgency", Enum: []string{"low", "medium", "high"}, Required: true},
	)
}

func completionBody(content string) string {
	resp := response{
		ID:    "chatcmpl-test",
		Model: "gpt-4o-mini",
		Choices: []choice{
			{Message: message{Role: "assistant", Content: content}, FinishReason: "stop"},
		},
		Usage: usage{PromptTokens: 10, CompletionTokens: 5, TotalTokens: 15},
	}
	encoded, _ := json.Marshal(resp)
	return string(encoded)
}

func TestComplete(t *testing.T) {
	var captured request
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("path = %q, want /chat/completions", r.URL.Path)
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer test-key" {
			t.Errorf("Authorization = %q, want Bearer test-key", auth)
		}
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Errorf("failed to decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		if _, err := w.Write([]byte(completionBody(`{"sentiment":"positive","urgency":"high"}`))); err != nil {
			t.Errorf("failed to write response: %v", err)
		}
	}))
	defer server.Close()

	client := New().
		WithAPIKey("test-key").
		WithBaseURL(server.URL).
		WithModel("gpt-4o-mini")

	content, err := client.Complete(context.Background(), "classify this", testSchema())
	if err != nil {
		t.Fatalf("Complete() error = %v", err)
	}
	if content != `{"sentiment":"positive","urgency":"high"}` {
		t.Errorf("Complete() = %q", content)
	}

	if captured.Model != "gpt-4o-mini" {
		t.Errorf("request model = %q, want gpt-4o-mini", captured.Model)
	}
	if len(captured.Messages) != 1 || captured.Messages[0].Content != "classify this" {
		t.Errorf("request messages = %+v", captured.Messages)
	}
	if captured.ResponseFormat == nil || captured.ResponseFormat.Type != "json_schema" {
		t.Fatalf("request response_format = %+v, want json_schema", captured.ResponseFormat)
	}
	if captured.ResponseFormat.JSONSchema == nil || captured.ResponseFormat.JSONSchema.Schema["type"] != "object" {
		t.Errorf("request schema = %+v, want object schema", captured.ResponseFormat.JSONSchema)
	}
}

func TestComplete_NoSchemaOmitsResponseFormat(t *testing.T) {
	var captured request
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Errorf("failed to decode request: %v", err)
		}
		if _, err := w.Write([]byte(completionBody(`"plain text"`))); err != nil {
			t.Errorf("failed to write response: %v", err)
		}
	}))
	defer server.Close()

	client := New().WithAPIKey("test-key").WithBaseURL(server.URL)
	if _, err := client.Complete(context.Background(), "hello", nil); err != nil {
		t.Fatalf("Complete() error = %v", err)
	}
	if captured.ResponseFormat != nil {
		t.Errorf("request response_format = %+v, want omitted", captured.ResponseFormat)
	}
}

func TestComplete_RepairsFencedContent(t *testing.T) {
	fenced := "```json\n{\"sentiment\": \"positive\", \"urgency\": \"high\"}\n```"
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := w.Write([]byte(completionBody(fenced))); err != nil {
			t.Errorf("failed to write response: %v", err)
		}
	}))
	defer server.Close()

	client := New().WithAPIKey("test-key").WithBaseURL(server.URL)
	content, err := client.Complete(context.Background(), "classify this", testSchema())
	if err != nil {
		t.Fatalf("Complete() error = %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal([]byte(content), &decoded); err != nil {
		t.Fatalf("Complete() content is not valid JSON after repair: %v (content: %s)", err, content)
	}
	if decoded["sentiment"] != "positive" {
		t.Errorf("Complete() content = %v", decoded)
	}
}

func TestComplete_Errors(t *testing.T) {
	t.Run("missing API key", func(t *testing.T) {
		client := New().WithAPIKey("")
		_, err := client.Complete(context.Background(), "hello", nil)
		if err == nil || !strings.Contains(err.Error(), "API key") {
			t.Errorf("Complete() error = %v, want API key error", err)
		}
	})

	t.Run("non-2xx status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"error":"rate limited"}`, http.StatusTooManyRequests)
		}))
		defer server.Close()

		client := New().WithAPIKey("test-key").WithBaseURL(server.URL)
		_, err := client.Complete(context.Background(), "hello", nil)
		if err == nil || !strings.Contains(err.Error(), "non-2xx status 429") {
			t.Errorf("Complete() error = %v, want non-2xx error", err)
		}
	})

	t.Run("no choices", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, err := w.Write([]byte(`{"id":"x","choices":[]}`)); err != nil {
				t.Errorf("failed to write response: %v", err)
			}
		}))
		defer server.Close()

		client := New().WithAPIKey("test-key").WithBaseURL(server.URL)
		_, err := client.Complete(context.Background(), "hello", nil)
		if err == nil || !strings.Contains(err.Error(), "no choices") {
			t.Errorf("Complete() error = %v, want no choices error", err)
		}
	})

	t.Run("context cancellation", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			<-r.Context().Done()
		}))
		defer server.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		client := New().WithAPIKey("test-key").WithBaseURL(server.URL)
		_, err := client.Complete(ctx, "hello", nil)
		if err == nil {
			t.Error("Complete() expected error for cancelled context")
		}
	})
}
