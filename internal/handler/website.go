package handler

import (
	"log/slog"
	"net/http"

	"omnidesk/internal/domain/services"
	"omnidesk/internal/httputil"
)

// WebsiteHandler handles website builder HTTP requests
type WebsiteHandler struct {
	websiteService services.WebsiteService
	logger         *slog.Logger
}

// NewWebsiteHandler creates a new website handler
func NewWebsiteHandler(websiteService services.WebsiteService, logger *slog.Logger) *WebsiteHandler {
	return &WebsiteHandler{
		websiteService: websiteService,
		logger:         logger,
	}
}

// Generate produces a single-page site for a prompt without saving it
// POST /api/websites/generate
func (h *WebsiteHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req services.GenerateWebsiteRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	site, err := h.websiteService.Generate(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondSuccess(w, http.StatusOK, map[string]interface{}{
		"website": site,
	})
}

// Save persists a generated site
// POST /api/websites
func (h *WebsiteHandler) Save(w http.ResponseWriter, r *http.Request) {
	userID := httputil.GetUserID(r)

	var req services.SaveWebsiteRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	req.UserID = userID

	website, err := h.websiteService.Save(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondSuccess(w, http.StatusCreated, map[string]interface{}{
		"website": website,
	})
}

// Get retrieves a website by ID
// GET /api/websites/{id}
func (h *WebsiteHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID := httputil.GetUserID(r)

	website, err := h.websiteService.Get(r.Context(), r.PathValue("id"), userID)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondSuccess(w, http.StatusOK, map[string]interface{}{
		"website": website,
	})
}

// List retrieves the user's websites
// GET /api/websites
func (h *WebsiteHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := httputil.GetUserID(r)

	websites, err := h.websiteService.List(r.Context(), userID)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondSuccess(w, http.StatusOK, map[string]interface{}{
		"websites": websites,
	})
}

// Publish marks a website as publicly served
// POST /api/websites/{id}/publish
func (h *WebsiteHandler) Publish(w http.ResponseWriter, r *http.Request) {
	userID := httputil.GetUserID(r)

	website, err := h.websiteService.Publish(r.Context(), r.PathValue("id"), userID)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondSuccess(w, http.StatusOK, map[string]interface{}{
		"website": website,
	})
}
