package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"omnidesk/internal/config"
	"omnidesk/internal/domain"
	"omnidesk/internal/domain/models"
	"omnidesk/internal/domain/repositories"
	"omnidesk/internal/domain/services"
)

// agentService implements the AgentService interface
type agentService struct {
	agentRepo repositories.AgentRepository
	logger    *slog.Logger
}

// NewAgentService creates a new agent service
func NewAgentService(agentRepo repositories.AgentRepository, logger *slog.Logger) services.AgentService {
	return &agentService{
		agentRepo: agentRepo,
		logger:    logger,
	}
}

// CreateAgent creates a new agent
func (s *agentService) CreateAgent(ctx context.Context, req *services.CreateAgentRequest) (*models.Agent, error) {
	if err := s.validateCreateRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	agent := &models.Agent{
		UserID:         req.UserID,
		Name:           strings.TrimSpace(req.Name),
		WelcomeMessage: strings.TrimSpace(req.WelcomeMessage),
		WorkspaceSlug:  strings.TrimSpace(req.WorkspaceSlug),
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}

	if err := s.agentRepo.Create(ctx, agent); err != nil {
		return nil, err
	}

	s.logger.Info("agent created",
		"id", agent.ID,
		"name", agent.Name,
		"user_id", req.UserID,
	)

	return agent, nil
}

// GetAgent retrieves an agent owned by the user
func (s *agentService) GetAgent(ctx context.Context, id, userID string) (*models.Agent, error) {
	agent, err := s.agentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Hide other users' agents rather than acknowledging them
	if agent.UserID != userID {
		return nil, fmt.Errorf("agent %s: %w", id, domain.ErrNotFound)
	}

	return agent, nil
}

// ListAgents retrieves all agents for a user
func (s *agentService) ListAgents(ctx context.Context, userID string) ([]models.Agent, error) {
	return s.agentRepo.List(ctx, userID)
}

func (s *agentService) validateCreateRequest(req *services.CreateAgentRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.UserID, validation.Required),
		validation.Field(&req.Name, validation.Required, validation.Length(1, config.MaxNameLength)),
		validation.Field(&req.WorkspaceSlug, validation.Length(0, config.MaxNameLength)),
	)
}
