package responses

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultModel is assumed when the request omits a model name.
const DefaultModel = "gpt-4.1"

// modelSuffix tags the echoed model the way the upstream API versions
// its snapshots.
const modelSuffix = "-2025-04-14"

const defaultSampling = 1.0

// NormalizeInput coerces the request's input field to a single string.
// Arrays are stringified element-wise and joined with single spaces;
// absent input becomes the empty string; anything else is stringified
// directly.
func NormalizeInput(input any) string {
	switch v := input.(type) {
	case nil:
		return ""
	case string:
		return v
	case []any:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			parts = append(parts, stringify(item))
		}
		return strings.Join(parts, " ")
	default:
		return stringify(v)
	}
}

func stringify(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// Build assembles the complete response document for one call. Only the
// identifiers, timestamp, text, and usage counts vary between calls;
// everything else is fixed so clients can rely on the shape.
func Build(req Request, inputText, generatedText string) Response {
	model := req.Model
	if model == "" {
		model = DefaultModel
	}

	inputTokens := len(strings.Fields(inputText))
	outputTokens := len(strings.Fields(generatedText))

	return Response{
		ID:                "resp_" + newHexID(),
		Object:            "response",
		CreatedAt:         time.Now().Unix(),
		Status:            "completed",
		Model:             model + modelSuffix,
		Output: []OutputItem{{
			Type:   "message",
			ID:     "msg_" + newHexID(),
			Status: "completed",
			Role:   "assistant",
			Content: []ContentPart{{
				Type:        "output_text",
				Text:        generatedText,
				Annotations: []any{},
			}},
		}},
		ParallelToolCalls: false,
		Reasoning:         Reasoning{},
		Store:             true,
		Temperature:       samplingOrDefault(req.Temperature),
		Text:              TextSettings{Format: TextFormat{Type: "text"}},
		ToolChoice:        "auto",
		Tools:             []any{},
		TopP:              samplingOrDefault(req.TopP),
		Truncation:        "disabled",
		Usage: Usage{
			InputTokens:  inputTokens,
			OutputTokens: outputTokens,
			TotalTokens:  inputTokens + outputTokens,
		},
		Metadata: map[string]any{},
	}
}

// newHexID returns 32 lowercase hex characters, matching uuid4().hex.
func newHexID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

func samplingOrDefault(v *float64) float64 {
	if v == nil {
		return defaultSampling
	}
	return *v
}
