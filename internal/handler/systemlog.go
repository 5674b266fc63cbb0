package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"omnidesk/internal/domain/services"
	"omnidesk/internal/httputil"
)

// SystemLogHandler handles client log ingestion HTTP requests
type SystemLogHandler struct {
	logService services.SystemLogService
	logger     *slog.Logger
}

// NewSystemLogHandler creates a new system log handler
func NewSystemLogHandler(logService services.SystemLogService, logger *slog.Logger) *SystemLogHandler {
	return &SystemLogHandler{
		logService: logService,
		logger:     logger,
	}
}

// Ingest stores a client-submitted log entry
// POST /api/logs
func (h *SystemLogHandler) Ingest(w http.ResponseWriter, r *http.Request) {
	userID := httputil.GetUserID(r)

	var req services.IngestLogRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if userID != "" {
		req.UserID = &userID
	}

	entry, err := h.logService.Ingest(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondSuccess(w, http.StatusCreated, map[string]interface{}{
		"log": entry,
	})
}

// ListRecent retrieves the newest log entries
// GET /api/logs?level=error&limit=50
func (h *SystemLogHandler) ListRecent(w http.ResponseWriter, r *http.Request) {
	level := r.URL.Query().Get("level")

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			httputil.RespondError(w, http.StatusBadRequest, "limit must be an integer")
			return
		}
		limit = parsed
	}

	logs, err := h.logService.ListRecent(r.Context(), level, limit)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondSuccess(w, http.StatusOK, map[string]interface{}{
		"logs": logs,
	})
}
