package observability

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// AuditEventType categorizes audit events.
type AuditEventType string

const (
	AuditEventServerStart     AuditEventType = "server.start"
	AuditEventServerStop      AuditEventType = "server.stop"
	AuditEventResponseServed  AuditEventType = "response.served"
	AuditEventRequestRejected AuditEventType = "request.rejected"
)

// AuditEvent represents a single audit log entry.
type AuditEvent struct {
	Timestamp   time.Time              `json:"timestamp"`
	EventType   AuditEventType         `json:"event_type"`
	SessionID   string                 `json:"session_id"`
	Success     bool                   `json:"success"`
	Duration    time.Duration          `json:"duration_ms,omitempty"`
	Message     string                 `json:"message,omitempty"`
	Details     map[string]interface{} `json:"details,omitempty"`
	ErrorDetail string                 `json:"error_detail,omitempty"`
}

// AuditLogger writes a JSONL trail of what the server handed out, so a
// test run can be reconstructed after the fact.
type AuditLogger struct {
	mu        sync.Mutex
	writer    io.Writer
	closer    io.Closer
	sessionID string
	enabled   bool
}

// AuditConfig configures the audit logger.
type AuditConfig struct {
	Enabled    bool
	OutputPath string // File path or "stdout"/"stderr"
	SessionID  string
}

// DefaultAuditConfig returns default audit configuration.
func DefaultAuditConfig() *AuditConfig {
	return &AuditConfig{
		Enabled:    true,
		OutputPath: "stdout",
	}
}

// NewAuditLogger creates a new audit logger.
func NewAuditLogger(config *AuditConfig) (*AuditLogger, error) {
	if config == nil {
		config = DefaultAuditConfig()
	}

	var writer io.Writer
	var closer io.Closer
	switch config.OutputPath {
	case "stdout", "":
		writer = os.Stdout
	case "stderr":
		writer = os.Stderr
	default:
		f, err := os.OpenFile(config.OutputPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return nil, fmt.Errorf("open audit log: %w", err)
		}
		writer = f
		closer = f
	}

	sessionID := config.SessionID
	if sessionID == "" {
		sessionID = fmt.Sprintf("session-%d", time.Now().UnixNano())
	}

	return &AuditLogger{
		writer:    writer,
		closer:    closer,
		sessionID: sessionID,
		enabled:   config.Enabled,
	}, nil
}

// Log writes an audit event.
func (l *AuditLogger) Log(event *AuditEvent) error {
	if !l.enabled {
		return nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}
	if event.SessionID == "" {
		event.SessionID = l.sessionID
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal audit event: %w", err)
	}

	_, err = fmt.Fprintf(l.writer, "%s\n", data)
	return err
}

// LogServerStart logs server startup.
func (l *AuditLogger) LogServerStart(addr string) {
	l.Log(&AuditEvent{
		EventType: AuditEventServerStart,
		Success:   true,
		Message:   fmt.Sprintf("Server listening on %s", addr),
		Details: map[string]interface{}{
			"addr": addr,
		},
	})
}

// LogServerStop logs server shutdown.
func (l *AuditLogger) LogServerStop(uptime time.Duration) {
	l.Log(&AuditEvent{
		EventType: AuditEventServerStop,
		Success:   true,
		Duration:  uptime,
		Message:   "Server stopped",
	})
}

// LogResponseServed logs one synthesized response.
func (l *AuditLogger) LogResponseServed(responseID, model, subject string, inputTokens, outputTokens int, duration time.Duration) {
	l.Log(&AuditEvent{
		EventType: AuditEventResponseServed,
		Success:   true,
		Duration:  duration,
		Message:   fmt.Sprintf("Served %s", responseID),
		Details: map[string]interface{}{
			"response_id":   responseID,
			"model":         model,
			"subject":       subject,
			"input_tokens":  inputTokens,
			"output_tokens": outputTokens,
			"total_tokens":  inputTokens + outputTokens,
		},
	})
}

// LogRequestRejected logs a request that failed to decode.
func (l *AuditLogger) LogRequestRejected(route string, err error) {
	l.Log(&AuditEvent{
		EventType:   AuditEventRequestRejected,
		Success:     false,
		Message:     fmt.Sprintf("Rejected request to %s", route),
		ErrorDetail: err.Error(),
		Details: map[string]interface{}{
			"route": route,
		},
	})
}

// Close releases the underlying file, if any.
func (l *AuditLogger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closer != nil {
		return l.closer.Close()
	}
	return nil
}
