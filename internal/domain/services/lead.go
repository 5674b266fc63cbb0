package services

import (
	"context"

	"omnidesk/internal/domain/models"
)

// CreateLeadRequest is the lead-capture widget payload. No user ID:
// the endpoint is public.
type CreateLeadRequest struct {
	AgentID        string `json:"agent_id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	InitialMessage string `json:"initial_message"`
}

// UpdateLeadStatusRequest updates a lead's pipeline status
type UpdateLeadStatusRequest struct {
	Status string `json:"status"`
}

// LeadService defines business logic operations for leads
type LeadService interface {
	// CreateLead validates the widget payload, confirms the agent exists
	// and inserts the lead with status "new" and source "widget".
	CreateLead(ctx context.Context, req *CreateLeadRequest) (*models.Lead, error)

	// ListLeads returns leads for an agent owned by the user
	ListLeads(ctx context.Context, agentID, userID string) ([]models.Lead, error)

	// UpdateStatus moves a lead through the pipeline
	UpdateStatus(ctx context.Context, id, userID string, req *UpdateLeadStatusRequest) (*models.Lead, error)
}
