package repositories

import (
	"context"

	"omnidesk/internal/domain/models"
)

// LeadRepository defines data access for leads
type LeadRepository interface {
	Create(ctx context.Context, lead *models.Lead) error
	GetByID(ctx context.Context, id string) (*models.Lead, error)

	// ListByAgent retrieves leads captured by an agent, newest first
	ListByAgent(ctx context.Context, agentID string) ([]models.Lead, error)

	// UpdateStatus updates a lead's pipeline status
	UpdateStatus(ctx context.Context, id, status string) (*models.Lead, error)
}
