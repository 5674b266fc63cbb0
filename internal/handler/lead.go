package handler

import (
	"log/slog"
	"net/http"

	"omnidesk/internal/domain/services"
	"omnidesk/internal/httputil"
)

// LeadHandler handles lead HTTP requests
type LeadHandler struct {
	leadService services.LeadService
	logger      *slog.Logger
}

// NewLeadHandler creates a new lead handler
func NewLeadHandler(leadService services.LeadService, logger *slog.Logger) *LeadHandler {
	return &LeadHandler{
		leadService: leadService,
		logger:      logger,
	}
}

// CreateLead captures a lead from the public chat widget
// POST /api/leads (unauthenticated)
func (h *LeadHandler) CreateLead(w http.ResponseWriter, r *http.Request) {
	var req services.CreateLeadRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	lead, err := h.leadService.CreateLead(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	// The widget contract documents a 200 here, not a 201
	httputil.RespondSuccess(w, http.StatusOK, map[string]interface{}{
		"lead": lead,
	})
}

// ListLeads retrieves leads captured by one of the user's agents
// GET /api/leads?agent_id=:id
func (h *LeadHandler) ListLeads(w http.ResponseWriter, r *http.Request) {
	userID := httputil.GetUserID(r)

	agentID := r.URL.Query().Get("agent_id")
	if agentID == "" {
		httputil.RespondError(w, http.StatusBadRequest, "agent_id is required")
		return
	}

	leads, err := h.leadService.ListLeads(r.Context(), agentID, userID)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondSuccess(w, http.StatusOK, map[string]interface{}{
		"leads": leads,
	})
}

// UpdateLeadStatus moves a lead through the pipeline
// PATCH /api/leads/{id}
func (h *LeadHandler) UpdateLeadStatus(w http.ResponseWriter, r *http.Request) {
	userID := httputil.GetUserID(r)

	var req services.UpdateLeadStatusRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	lead, err := h.leadService.UpdateStatus(r.Context(), r.PathValue("id"), userID, &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondSuccess(w, http.StatusOK, map[string]interface{}{
		"lead": lead,
	})
}
