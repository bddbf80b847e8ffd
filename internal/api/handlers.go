// Package api implements the HTTP handlers for the mock endpoint.
package api

import (
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/fablemock/fable/internal/observability"
	"github.com/fablemock/fable/internal/responses"
	"github.com/fablemock/fable/internal/story"
)

// Handlers serves the mock Responses API.
type Handlers struct {
	logger *zap.Logger
	audit  *observability.AuditLogger
}

// NewHandlers creates the handler set. audit may be nil when the audit
// trail is disabled.
func NewHandlers(logger *zap.Logger, audit *observability.AuditLogger) *Handlers {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handlers{logger: logger, audit: audit}
}

// Health handles GET /v1/health.
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, responses.HealthResponse{Status: "ok"})
}

// Responses handles POST /v1/responses. It never fails past decoding:
// the synthesized story is a pure function of the request body.
func (h *Handlers) Responses(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var req responses.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("rejected request body", zap.Error(err))
		if h.audit != nil {
			h.audit.LogRequestRejected("/v1/responses", err)
		}
		writeJSON(w, http.StatusBadRequest, responses.ErrorResponse{Error: "invalid JSON payload"})
		return
	}

	start := time.Now()
	_, span := observability.StartSynthesisSpan(r.Context(), req.Model)
	defer span.End()

	inputText := responses.NormalizeInput(req.Input)
	subject := story.ExtractSubject(inputText)
	generated := story.Compose(subject)
	resp := responses.Build(req, inputText, generated)

	elapsed := time.Since(start)
	observability.RecordSynthesis(span, subject, resp.Usage.InputTokens, resp.Usage.OutputTokens, elapsed)
	observability.RecordUsage(resp.Usage.InputTokens, resp.Usage.OutputTokens)
	if subject == story.DefaultSubject || subject == "" {
		observability.RecordSubjectFallback()
	}
	if h.audit != nil {
		h.audit.LogResponseServed(resp.ID, resp.Model, subject, resp.Usage.InputTokens, resp.Usage.OutputTokens, elapsed)
	}
	h.logger.Debug("served response",
		zap.String("id", resp.ID),
		zap.String("model", resp.Model),
		zap.String("subject", subject),
		zap.Int("total_tokens", resp.Usage.TotalTokens),
	)

	writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
