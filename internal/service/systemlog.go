package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"omnidesk/internal/config"
	"omnidesk/internal/domain"
	"omnidesk/internal/domain/models"
	"omnidesk/internal/domain/repositories"
	"omnidesk/internal/domain/services"
)

const (
	defaultLogLimit = 100
	maxLogLimit     = 500
)

// systemLogService implements the SystemLogService interface
type systemLogService struct {
	logRepo repositories.SystemLogRepository
	logger  *slog.Logger
}

// NewSystemLogService creates a new system log service
func NewSystemLogService(logRepo repositories.SystemLogRepository, logger *slog.Logger) services.SystemLogService {
	return &systemLogService{
		logRepo: logRepo,
		logger:  logger,
	}
}

// Ingest stores a client-submitted log entry
func (s *systemLogService) Ingest(ctx context.Context, req *services.IngestLogRequest) (*models.SystemLog, error) {
	if err := s.validateRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	entry := &models.SystemLog{
		UserID:    req.UserID,
		Level:     req.Level,
		Message:   req.Message,
		Context:   req.Context,
		CreatedAt: time.Now(),
	}

	if err := s.logRepo.Create(ctx, entry); err != nil {
		return nil, err
	}

	return entry, nil
}

// ListRecent returns the newest entries, optionally filtered by level
func (s *systemLogService) ListRecent(ctx context.Context, level string, limit int) ([]models.SystemLog, error) {
	if level != "" {
		if err := validation.Validate(level, validation.In(
			models.LogLevelDebug, models.LogLevelInfo, models.LogLevelWarn, models.LogLevelError,
		)); err != nil {
			return nil, fmt.Errorf("%w: level %v", domain.ErrValidation, err)
		}
	}

	if limit <= 0 {
		limit = defaultLogLimit
	}
	if limit > maxLogLimit {
		limit = maxLogLimit
	}

	return s.logRepo.ListRecent(ctx, level, limit)
}

func (s *systemLogService) validateRequest(req *services.IngestLogRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.Level, validation.Required, validation.In(
			models.LogLevelDebug, models.LogLevelInfo, models.LogLevelWarn, models.LogLevelError,
		)),
		validation.Field(&req.Message, validation.Required, validation.Length(1, config.MaxLogMessageLength)),
	)
}
