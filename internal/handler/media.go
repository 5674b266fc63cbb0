package handler

import (
	"log/slog"
	"net/http"

	"omnidesk/internal/domain/services"
	"omnidesk/internal/httputil"
)

// MediaHandler handles image and audio generation HTTP requests
type MediaHandler struct {
	mediaService services.MediaService
	logger       *slog.Logger
}

// NewMediaHandler creates a new media handler
func NewMediaHandler(mediaService services.MediaService, logger *slog.Logger) *MediaHandler {
	return &MediaHandler{
		mediaService: mediaService,
		logger:       logger,
	}
}

// GenerateImage renders a prompt and stores the result
// POST /api/images/generate
func (h *MediaHandler) GenerateImage(w http.ResponseWriter, r *http.Request) {
	userID := httputil.GetUserID(r)

	var req services.GenerateImageRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	req.UserID = userID

	img, err := h.mediaService.GenerateImage(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondSuccess(w, http.StatusCreated, map[string]interface{}{
		"image": img,
	})
}

// ListImages retrieves the user's generated images
// GET /api/images
func (h *MediaHandler) ListImages(w http.ResponseWriter, r *http.Request) {
	userID := httputil.GetUserID(r)

	images, err := h.mediaService.ListImages(r.Context(), userID)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondSuccess(w, http.StatusOK, map[string]interface{}{
		"images": images,
	})
}

// GenerateAudio speaks a text and stores the result
// POST /api/audio/generate
func (h *MediaHandler) GenerateAudio(w http.ResponseWriter, r *http.Request) {
	userID := httputil.GetUserID(r)

	var req services.GenerateAudioRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	req.UserID = userID

	audio, err := h.mediaService.GenerateAudio(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondSuccess(w, http.StatusCreated, map[string]interface{}{
		"audio": audio,
	})
}

// ListAudio retrieves the user's generated audio clips
// GET /api/audio
func (h *MediaHandler) ListAudio(w http.ResponseWriter, r *http.Request) {
	userID := httputil.GetUserID(r)

	audio, err := h.mediaService.ListAudio(r.Context(), userID)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondSuccess(w, http.StatusOK, map[string]interface{}{
		"audio": audio,
	})
}
