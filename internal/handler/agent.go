package handler

import (
	"log/slog"
	"net/http"

	"omnidesk/internal/domain/services"
	"omnidesk/internal/httputil"
)

// AgentHandler handles agent HTTP requests
// Follows Clean Architecture: handlers only communicate with services, never repositories
type AgentHandler struct {
	agentService services.AgentService
	logger       *slog.Logger
}

// NewAgentHandler creates a new agent handler
func NewAgentHandler(agentService services.AgentService, logger *slog.Logger) *AgentHandler {
	return &AgentHandler{
		agentService: agentService,
		logger:       logger,
	}
}

// CreateAgent creates a new support agent
// POST /api/agents
func (h *AgentHandler) CreateAgent(w http.ResponseWriter, r *http.Request) {
	userID := httputil.GetUserID(r)

	var req services.CreateAgentRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	req.UserID = userID

	agent, err := h.agentService.CreateAgent(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondSuccess(w, http.StatusCreated, map[string]interface{}{
		"agent": agent,
	})
}

// GetAgent retrieves an agent by ID
// GET /api/agents/{id}
func (h *AgentHandler) GetAgent(w http.ResponseWriter, r *http.Request) {
	userID := httputil.GetUserID(r)

	agent, err := h.agentService.GetAgent(r.Context(), r.PathValue("id"), userID)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondSuccess(w, http.StatusOK, map[string]interface{}{
		"agent": agent,
	})
}

// ListAgents retrieves the user's agents
// GET /api/agents
func (h *AgentHandler) ListAgents(w http.ResponseWriter, r *http.Request) {
	userID := httputil.GetUserID(r)

	agents, err := h.agentService.ListAgents(r.Context(), userID)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondSuccess(w, http.StatusOK, map[string]interface{}{
		"agents": agents,
	})
}
