package handler

import (
	"log/slog"
	"net/http"

	"omnidesk/internal/domain/services"
	"omnidesk/internal/httputil"
)

// PresentationHandler handles presentation HTTP requests
type PresentationHandler struct {
	presentationService services.PresentationService
	logger              *slog.Logger
}

// NewPresentationHandler creates a new presentation handler
func NewPresentationHandler(presentationService services.PresentationService, logger *slog.Logger) *PresentationHandler {
	return &PresentationHandler{
		presentationService: presentationService,
		logger:              logger,
	}
}

// Generate produces a markdown slide deck for a topic without saving it
// POST /api/presentations/generate
func (h *PresentationHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req services.GeneratePresentationRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	deck, err := h.presentationService.Generate(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondSuccess(w, http.StatusOK, map[string]interface{}{
		"presentation": deck,
	})
}

// Save persists a generated deck
// POST /api/presentations
func (h *PresentationHandler) Save(w http.ResponseWriter, r *http.Request) {
	userID := httputil.GetUserID(r)

	var req services.SavePresentationRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	req.UserID = userID

	presentation, err := h.presentationService.Save(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondSuccess(w, http.StatusCreated, map[string]interface{}{
		"presentation": presentation,
	})
}

// Get retrieves a presentation by ID
// GET /api/presentations/{id}
func (h *PresentationHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID := httputil.GetUserID(r)

	presentation, err := h.presentationService.Get(r.Context(), r.PathValue("id"), userID)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondSuccess(w, http.StatusOK, map[string]interface{}{
		"presentation": presentation,
	})
}

// List retrieves the user's presentations
// GET /api/presentations
func (h *PresentationHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := httputil.GetUserID(r)

	presentations, err := h.presentationService.List(r.Context(), userID)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondSuccess(w, http.StatusOK, map[string]interface{}{
		"presentations": presentations,
	})
}

// Delete removes a presentation
// DELETE /api/presentations/{id}
func (h *PresentationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := httputil.GetUserID(r)

	if err := h.presentationService.Delete(r.Context(), r.PathValue("id"), userID); err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondSuccess(w, http.StatusOK, map[string]interface{}{
		"deleted": true,
	})
}
