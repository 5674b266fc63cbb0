package handler

import (
	"log/slog"
	"net/http"

	"omnidesk/internal/domain/services"
	"omnidesk/internal/httputil"
)

// CRMHandler handles CRM query HTTP requests
type CRMHandler struct {
	crmService services.CRMService
	logger     *slog.Logger
}

// NewCRMHandler creates a new CRM handler
func NewCRMHandler(crmService services.CRMService, logger *slog.Logger) *CRMHandler {
	return &CRMHandler{
		crmService: crmService,
		logger:     logger,
	}
}

// Query asks the agent's CRM workspace a question
// POST /api/crm/query
func (h *CRMHandler) Query(w http.ResponseWriter, r *http.Request) {
	userID := httputil.GetUserID(r)

	var req services.CRMQueryRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp, err := h.crmService.Query(r.Context(), userID, &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondSuccess(w, http.StatusOK, map[string]interface{}{
		"answer":  resp.Answer,
		"sources": resp.Sources,
	})
}
