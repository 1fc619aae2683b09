package openai

// message is a single chat message in a completion request.
type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// jsonSchemaFormat names and carries the JSON Schema sent to constrain the
// model's output.
type jsonSchemaFormat struct {
	Name   string         `json:"name"`
	Strict *bool          `json:"strict,omitempty"`
	Schema map[string]any `json:"schema"`
}

// responseFormat selects the structured-output mode of the completions API.
type responseFormat struct {
	Type       string            `json:"type"`
	JSONSchema *jsonSchemaFormat `json:"json_schema,omitempty"`
}

// request is the chat-completions request body.
type request struct {
	Model          string          `json:"model"`
	Messages       []message       `json:"messages"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

// choice is one candidate completion.
type choice struct {
	Index        int     `json:"index"`
	Message      message `json:"message"`
	FinishReason string  `json:"finish_reason"`
}

// usage reports token consumption for a completion.
type usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// response is the chat-completions response body.
type response struct {
	ID      string   `json:"id"`
	Model   string   `json:"model"`
	Choices []choice `json:"choices"`
	Usage   usage    `json:"usage"`
}
