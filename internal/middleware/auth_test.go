package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang-jwt/jwt/v5"

	"omnidesk/internal/domain/models"
	"omnidesk/internal/httputil"
)

// stubVerifier accepts exactly one token
type stubVerifier struct {
	token  string
	userID string
}

func (s *stubVerifier) VerifyToken(tokenString string) (*models.SupabaseClaims, error) {
	if tokenString != s.token {
		return nil, errors.New("invalid token")
	}
	return &models.SupabaseClaims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: s.userID},
		Role:             "authenticated",
	}, nil
}

func (s *stubVerifier) Close() error { return nil }

func newAuthedHandler(t *testing.T) http.Handler {
	t.Helper()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-User-ID", httputil.GetUserID(r))
		w.WriteHeader(http.StatusOK)
	})
	return Auth(&stubVerifier{token: "good-token", userID: "user-1"})(next)
}

func TestAuth_MissingHeader(t *testing.T) {
	handler := newAuthedHandler(t)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/projects", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"success":false`) {
		t.Errorf("body = %s, want failure envelope", rec.Body.String())
	}
}

func TestAuth_InvalidToken(t *testing.T) {
	handler := newAuthedHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/projects", nil)
	req.Header.Set("Authorization", "Bearer forged")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestAuth_MalformedHeader(t *testing.T) {
	handler := newAuthedHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/projects", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestAuth_ValidTokenSetsUserID(t *testing.T) {
	handler := newAuthedHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/projects", nil)
	req.Header.Set("Authorization", "Bearer good-token")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
	if got := rec.Header().Get("X-User-ID"); got != "user-1" {
		t.Errorf("user ID = %q, want user-1", got)
	}
}

func TestAuth_PublicRoutes(t *testing.T) {
	handler := newAuthedHandler(t)

	tests := []struct {
		name   string
		method string
		path   string
		want   int
	}{
		{"health check", http.MethodGet, "/health", http.StatusOK},
		{"widget lead capture", http.MethodPost, "/api/leads", http.StatusOK},
		{"lead listing still protected", http.MethodGet, "/api/leads", http.StatusUnauthorized},
		{"lead update still protected", http.MethodPatch, "/api/leads/abc", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))

			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d", rec.Code, tt.want)
			}
		})
	}
}
