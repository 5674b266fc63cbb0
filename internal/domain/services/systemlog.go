package services

import (
	"context"

	"omnidesk/internal/domain/models"
)

// IngestLogRequest is a client-submitted log entry
type IngestLogRequest struct {
	UserID  *string                `json:"-"`
	Level   string                 `json:"level"`
	Message string                 `json:"message"`
	Context map[string]interface{} `json:"context"`
}

// SystemLogService defines log ingestion and retrieval
type SystemLogService interface {
	Ingest(ctx context.Context, req *IngestLogRequest) (*models.SystemLog, error)
	ListRecent(ctx context.Context, level string, limit int) ([]models.SystemLog, error)
}
