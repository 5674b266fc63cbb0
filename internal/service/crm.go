package service

import (
	"context"
	"fmt"
	"log/slog"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"omnidesk/internal/config"
	"omnidesk/internal/domain"
	"omnidesk/internal/domain/repositories"
	"omnidesk/internal/domain/services"
	"omnidesk/internal/upstream/anythingllm"
)

// WorkspaceQuerier asks a CRM workspace a question. Satisfied by the
// AnythingLLM client.
type WorkspaceQuerier interface {
	Query(ctx context.Context, workspaceSlug, question string) (*anythingllm.QueryResult, error)
}

// crmService implements the CRMService interface
type crmService struct {
	agentRepo repositories.AgentRepository
	workspace WorkspaceQuerier
	logger    *slog.Logger
}

// NewCRMService creates a new CRM service
func NewCRMService(
	agentRepo repositories.AgentRepository,
	workspace WorkspaceQuerier,
	logger *slog.Logger,
) services.CRMService {
	return &crmService{
		agentRepo: agentRepo,
		workspace: workspace,
		logger:    logger,
	}
}

// Query forwards a question to the agent's CRM workspace
func (s *crmService) Query(ctx context.Context, userID string, req *services.CRMQueryRequest) (*services.CRMQueryResponse, error) {
	if err := s.validateRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	agent, err := s.agentRepo.GetByID(ctx, req.AgentID)
	if err != nil {
		return nil, err
	}

	if agent.UserID != userID {
		return nil, fmt.Errorf("agent %s: %w", req.AgentID, domain.ErrForbidden)
	}

	if agent.WorkspaceSlug == "" {
		return nil, fmt.Errorf("%w: agent has no CRM workspace configured", domain.ErrValidation)
	}

	result, err := s.workspace.Query(ctx, agent.WorkspaceSlug, req.Question)
	if err != nil {
		return nil, err
	}

	s.logger.Info("crm query answered",
		"agent_id", req.AgentID,
		"workspace", agent.WorkspaceSlug,
	)

	return &services.CRMQueryResponse{
		Answer:  result.Answer,
		Sources: result.Sources,
	}, nil
}

func (s *crmService) validateRequest(req *services.CRMQueryRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.AgentID, validation.Required, is.UUID),
		validation.Field(&req.Question, validation.Required, validation.Length(1, config.MaxMessageLength)),
	)
}
