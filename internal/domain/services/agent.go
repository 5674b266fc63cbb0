package services

import (
	"context"

	"omnidesk/internal/domain/models"
)

// CreateAgentRequest represents a request to create an agent
type CreateAgentRequest struct {
	UserID         string `json:"-"`
	Name           string `json:"name"`
	WelcomeMessage string `json:"welcome_message"`
	WorkspaceSlug  string `json:"workspace_slug"`
}

// AgentService defines business logic operations for agents
type AgentService interface {
	CreateAgent(ctx context.Context, req *CreateAgentRequest) (*models.Agent, error)
	GetAgent(ctx context.Context, id, userID string) (*models.Agent, error)
	ListAgents(ctx context.Context, userID string) ([]models.Agent, error)
}
