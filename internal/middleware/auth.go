package middleware

import (
	"net/http"
	"strings"

	"omnidesk/internal/auth"
	"omnidesk/internal/httputil"
)

// isPublic reports whether a request may skip authentication: the
// health check, and the embeddable lead-capture widget endpoint, which
// runs on third-party pages with no session. Only the widget's POST is
// public on /api/leads; listing leads requires a session.
func isPublic(r *http.Request) bool {
	if r.URL.Path == "/health" {
		return true
	}
	return r.URL.Path == "/api/leads" && r.Method == http.MethodPost
}

// Auth validates the bearer token on every non-public request and puts
// the authenticated user ID into the request context.
func Auth(verifier auth.JWTVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublic(r) {
				next.ServeHTTP(w, r)
				return
			}

			header := r.Header.Get("Authorization")
			if header == "" {
				httputil.RespondError(w, http.StatusUnauthorized, "missing authorization header")
				return
			}

			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				httputil.RespondError(w, http.StatusUnauthorized, "invalid authorization header")
				return
			}

			claims, err := verifier.VerifyToken(token)
			if err != nil {
				httputil.RespondError(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}

			next.ServeHTTP(w, httputil.WithUserID(r, claims.GetUserID()))
		})
	}
}
