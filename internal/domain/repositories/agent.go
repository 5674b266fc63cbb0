package repositories

import (
	"context"

	"omnidesk/internal/domain/models"
)

// AgentRepository defines data access for agents
type AgentRepository interface {
	Create(ctx context.Context, agent *models.Agent) error

	// GetByID retrieves an agent regardless of owner. Used by the public
	// lead-capture endpoint to confirm the agent exists.
	GetByID(ctx context.Context, id string) (*models.Agent, error)

	// List retrieves all agents owned by a user, newest first
	List(ctx context.Context, userID string) ([]models.Agent, error)
}
