package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"omnidesk/internal/config"
	"omnidesk/internal/domain"
	"omnidesk/internal/domain/models"
	"omnidesk/internal/domain/repositories"
	"omnidesk/internal/domain/services"
)

// leadService implements the LeadService interface
type leadService struct {
	leadRepo  repositories.LeadRepository
	agentRepo repositories.AgentRepository
	logger    *slog.Logger
}

// NewLeadService creates a new lead service
func NewLeadService(
	leadRepo repositories.LeadRepository,
	agentRepo repositories.AgentRepository,
	logger *slog.Logger,
) services.LeadService {
	return &leadService{
		leadRepo:  leadRepo,
		agentRepo: agentRepo,
		logger:    logger,
	}
}

// CreateLead handles a lead-capture widget submission. The agent must
// exist; the lead always starts as status "new", source "widget".
func (s *leadService) CreateLead(ctx context.Context, req *services.CreateLeadRequest) (*models.Lead, error) {
	if err := s.validateCreateRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	// Email format gets its own message so the widget can show it verbatim.
	// EmailFormat rather than Email: the widget accepts short domains like a@b.com.
	if err := validation.Validate(req.Email, is.EmailFormat); err != nil {
		return nil, fmt.Errorf("%w: Invalid email format", domain.ErrValidation)
	}

	// Confirm the agent exists before inserting
	if _, err := s.agentRepo.GetByID(ctx, req.AgentID); err != nil {
		return nil, err
	}

	lead := &models.Lead{
		AgentID:        req.AgentID,
		Name:           strings.TrimSpace(req.Name),
		Email:          strings.TrimSpace(req.Email),
		InitialMessage: strings.TrimSpace(req.InitialMessage),
		Status:         models.LeadStatusNew,
		Source:         models.LeadSourceWidget,
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}

	if err := s.leadRepo.Create(ctx, lead); err != nil {
		return nil, err
	}

	s.logger.Info("lead captured",
		"id", lead.ID,
		"agent_id", lead.AgentID,
		"email", lead.Email,
	)

	return lead, nil
}

// ListLeads returns leads for an agent owned by the user
func (s *leadService) ListLeads(ctx context.Context, agentID, userID string) ([]models.Lead, error) {
	agent, err := s.agentRepo.GetByID(ctx, agentID)
	if err != nil {
		return nil, err
	}

	if agent.UserID != userID {
		return nil, fmt.Errorf("agent %s: %w", agentID, domain.ErrForbidden)
	}

	return s.leadRepo.ListByAgent(ctx, agentID)
}

// UpdateStatus moves a lead through the pipeline
func (s *leadService) UpdateStatus(ctx context.Context, id, userID string, req *services.UpdateLeadStatusRequest) (*models.Lead, error) {
	if err := s.validateStatus(req.Status); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	lead, err := s.leadRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Only the agent's owner may work its leads
	agent, err := s.agentRepo.GetByID(ctx, lead.AgentID)
	if err != nil {
		return nil, err
	}
	if agent.UserID != userID {
		return nil, fmt.Errorf("lead %s: %w", id, domain.ErrForbidden)
	}

	updated, err := s.leadRepo.UpdateStatus(ctx, id, req.Status)
	if err != nil {
		return nil, err
	}

	s.logger.Info("lead status updated", "id", id, "status", req.Status)

	return updated, nil
}

func (s *leadService) validateCreateRequest(req *services.CreateLeadRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, config.MaxNameLength)),
		validation.Field(&req.Email, validation.Required),
		validation.Field(&req.AgentID, validation.Required, is.UUID),
		validation.Field(&req.InitialMessage, validation.Length(0, config.MaxMessageLength)),
	)
}

func (s *leadService) validateStatus(status string) error {
	return validation.Validate(status,
		validation.Required,
		validation.In(
			models.LeadStatusNew,
			models.LeadStatusContacted,
			models.LeadStatusQualified,
			models.LeadStatusClosed,
		),
	)
}
