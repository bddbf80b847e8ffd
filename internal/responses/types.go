// Package responses defines the wire schema for the /v1/responses
// endpoint and assembles response documents shaped like the OpenAI
// Responses API.
package responses

// Request is the decoded POST /v1/responses body.
type Request struct {
	// Model is the requested model identifier (e.g. "gpt-4.1").
	Model string `json:"model"`
	// Input may be a string, an array of items, or absent. It is
	// coerced to a single string by NormalizeInput.
	Input any `json:"input"`
	// Temperature and TopP are echoed back; nil means "not sent" and
	// defaults to 1.0 in the response.
	Temperature *float64 `json:"temperature,omitempty"`
	TopP        *float64 `json:"top_p,omitempty"`
}

// Response is the full response document. The shape is constant across
// calls; only the text, identifiers, timestamp, and usage counts vary.
// Fields typed `any` and left nil serialize as explicit JSON nulls, the
// way the upstream API sends them.
type Response struct {
	ID                 string         `json:"id"`
	Object             string         `json:"object"`
	CreatedAt          int64          `json:"created_at"`
	Status             string         `json:"status"`
	Error              any            `json:"error"`
	IncompleteDetails  any            `json:"incomplete_details"`
	Instructions       any            `json:"instructions"`
	MaxOutputTokens    any            `json:"max_output_tokens"`
	Model              string         `json:"model"`
	Output             []OutputItem   `json:"output"`
	ParallelToolCalls  bool           `json:"parallel_tool_calls"`
	PreviousResponseID any            `json:"previous_response_id"`
	Reasoning          Reasoning      `json:"reasoning"`
	Store              bool           `json:"store"`
	Temperature        float64        `json:"temperature"`
	Text               TextSettings   `json:"text"`
	ToolChoice         string         `json:"tool_choice"`
	Tools              []any          `json:"tools"`
	TopP               float64        `json:"top_p"`
	Truncation         string         `json:"truncation"`
	Usage              Usage          `json:"usage"`
	User               any            `json:"user"`
	Metadata           map[string]any `json:"metadata"`
}

// OutputItem is the single assistant message carried in Output. Type is
// always "message", Status "completed", Role "assistant".
type OutputItem struct {
	Type    string        `json:"type"`
	ID      string        `json:"id"`
	Status  string        `json:"status"`
	Role    string        `json:"role"`
	Content []ContentPart `json:"content"`
}

// ContentPart holds the generated text. Type is always "output_text"
// and Annotations always empty.
type ContentPart struct {
	Type        string `json:"type"`
	Text        string `json:"text"`
	Annotations []any  `json:"annotations"`
}

// Reasoning mirrors the API's reasoning block; both fields are null here.
type Reasoning struct {
	Effort  any `json:"effort"`
	Summary any `json:"summary"`
}

// TextSettings mirrors the API's text output settings.
type TextSettings struct {
	Format TextFormat `json:"format"`
}

// TextFormat is always {"type":"text"}.
type TextFormat struct {
	Type string `json:"type"`
}

// Usage reports whitespace-token counts, not real tokenizer output.
type Usage struct {
	InputTokens         int                 `json:"input_tokens"`
	InputTokensDetails  InputTokensDetails  `json:"input_tokens_details"`
	OutputTokens        int                 `json:"output_tokens"`
	OutputTokensDetails OutputTokensDetails `json:"output_tokens_details"`
	TotalTokens         int                 `json:"total_tokens"`
}

type InputTokensDetails struct {
	CachedTokens int `json:"cached_tokens"`
}

type OutputTokensDetails struct {
	ReasoningTokens int `json:"reasoning_tokens"`
}

// HealthResponse is the GET /v1/health body.
type HealthResponse struct {
	Status string `json:"status"`
}

// ErrorResponse is returned for unparseable request bodies.
type ErrorResponse struct {
	Error string `json:"error"`
}
