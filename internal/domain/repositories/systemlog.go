package repositories

import (
	"context"

	"omnidesk/internal/domain/models"
)

// SystemLogRepository defines data access for ingested log entries
type SystemLogRepository interface {
	Create(ctx context.Context, entry *models.SystemLog) error

	// ListRecent returns the most recent entries, optionally filtered by
	// level (empty string means all levels).
	ListRecent(ctx context.Context, level string, limit int) ([]models.SystemLog, error)
}
