package handler

import (
	"errors"
	"net/http"
	"strings"

	"omnidesk/internal/domain"
	"omnidesk/internal/httputil"
)

// handleError converts domain errors to HTTP responses
func handleError(w http.ResponseWriter, err error) {
	var httpErr domain.HTTPError
	if errors.As(err, &httpErr) {
		httputil.RespondError(w, httpErr.StatusCode(), upstreamMessage(httpErr))
		return
	}

	switch {
	case errors.Is(err, domain.ErrValidation):
		httputil.RespondError(w, http.StatusBadRequest, validationMessage(err))
	case errors.Is(err, domain.ErrNotFound):
		httputil.RespondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrConflict):
		httputil.RespondError(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		httputil.RespondError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, domain.ErrForbidden):
		httputil.RespondError(w, http.StatusForbidden, err.Error())
	default:
		httputil.RespondError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// validationMessage strips the sentinel prefix so clients see
// "Invalid email format" rather than "validation failed: Invalid email format"
func validationMessage(err error) string {
	return strings.TrimPrefix(err.Error(), domain.ErrValidation.Error()+": ")
}

// upstreamMessage prefixes the upstream's own message with a stable
// "<upstream> request failed" marker so callers can see which
// collaborator failed and why
func upstreamMessage(err domain.HTTPError) string {
	var upErr *domain.UpstreamError
	if errors.As(err, &upErr) {
		if upErr.Message == "" {
			return upErr.Upstream + " request failed"
		}
		return upErr.Upstream + " request failed: " + upErr.Message
	}
	return err.Error()
}
