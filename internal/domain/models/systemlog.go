package models

import "time"

// Log levels accepted by the ingestion endpoint.
const (
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"
)

// SystemLog is a client-submitted log entry. Context is free-form JSON
// stored as JSONB.
type SystemLog struct {
	ID        string                 `json:"id"`
	Level     string                 `json:"level"`
	Message   string                 `json:"message"`
	Context   map[string]interface{} `json:"context,omitempty"`
	UserID    *string                `json:"user_id,omitempty"`
	CreatedAt time.Time              `json:"created_at"`
}
