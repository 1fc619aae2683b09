package openai

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/mfalcone/typed/core/parse"
	"github.com/mfalcone/typed/core/schema"
	"github.com/mfalcone/typed/internal/utils"
)

const (
	defaultBaseURL          = "https://api.openai.com/v1"
	defaultModel            = "gpt-4o-mini"
	chatCompletionsEndpoint = "/chat/completions"
)

// Client is a thin wrapper around the OpenAI-compatible chat-completions API,
// used only to produce raw JSON text for the deserialization core. It imposes
// no protocol on consumers beyond "prompt in, JSON text out".
type Client struct {
	apiKey  string
	baseURL string
	model   string
	client  *http.Client
}

// New creates a client configured from the environment: OPENAI_API_KEY,
// OPENAI_API_BASE_URL (any OpenAI-compatible endpoint, defaults to the public
// API) and OPENAI_MODEL (the model or deployment name).
func New() *Client {
	baseURL := os.Getenv("OPENAI_API_BASE_URL")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	model := os.Getenv("OPENAI_MODEL")
	if model == "" {
		model = defaultModel
	}

	return &Client{
		apiKey:  os.Getenv("OPENAI_API_KEY"),
		baseURL: baseURL,
		model:   model,
		client:  &http.Client{},
	}
}

// WithAPIKey sets the API key for the client
func (c *Client) WithAPIKey(apiKey string) *Client {
	c.apiKey = apiKey
	return c
}

// WithBaseURL sets the base URL for the API
func (c *Client) WithBaseURL(baseURL string) *Client {
	c.baseURL = baseURL
	return c
}

// WithModel sets the model or deployment name
func (c *Client) WithModel(model string) *Client {
	c.model = model
	return c
}

// WithHttpClient sets a custom HTTP client
func (c *Client) WithHttpClient(httpClient *http.Client) *Client {
	c.client = httpClient
	return c
}

// Complete sends a single-turn prompt and returns the model's raw content.
// When s is non-nil its JSON Schema form is attached as a strict
// response_format, steering the model toward the schema's field set.
//
// Model output is passed through [parse.Repair] before being returned, so
// code-fenced or lightly damaged JSON reaches the strict deserialization
// paths already cleaned up. Semantic validation stays downstream.
func (c *Client) Complete(ctx context.Context, prompt string, s *schema.Schema) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("API key is not set")
	}

	req := request{
		Model:    c.model,
		Messages: []message{{Role: "user", Content: prompt}},
	}
	if s != nil {
		req.ResponseFormat = &responseFormat{
			Type: "json_schema",
			JSONSchema: &jsonSchemaFormat{
				Name:   "response",
				Strict: utils.Ptr(true),
				Schema: s.JSONSchema(),
			},
		}
	}

	httpResponse, resp, err := utils.DoPostSync[response](ctx, c.client, c.baseURL+chatCompletionsEndpoint, c.apiKey, req)
	if err != nil {
		return "", err
	}

	if resp == nil {
		return "", fmt.Errorf("empty response from API: %s", httpResponse.Status)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices in response")
	}

	content := resp.Choices[0].Message.Content
	slog.Debug("completion received",
		"model", resp.Model,
		"finish_reason", resp.Choices[0].FinishReason,
		"total_tokens", resp.Usage.TotalTokens,
		"content_preview", utils.TruncateString(content, 120),
	)

	return parse.Repair(content), nil
}
