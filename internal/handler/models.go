package handler

import (
	"net/http"

	"omnidesk/internal/capabilities"
	"omnidesk/internal/httputil"
)

// ModelsHandler serves the model capabilities registry
type ModelsHandler struct {
	registry *capabilities.Registry
}

// NewModelsHandler creates a new models handler
func NewModelsHandler(registry *capabilities.Registry) *ModelsHandler {
	return &ModelsHandler{registry: registry}
}

// GetCapabilities returns every provider's models and capabilities
// GET /api/models/capabilities
func (h *ModelsHandler) GetCapabilities(w http.ResponseWriter, r *http.Request) {
	httputil.RespondSuccess(w, http.StatusOK, map[string]interface{}{
		"providers": h.registry.ListProviders(),
	})
}
