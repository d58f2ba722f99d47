// internal/api/handler/auth.go
package handler

import (
	"log/slog"
	"net/http"
)

// AuthHandler holds the authentication endpoints. The only route today is
// a health-check stub; real authentication is not implemented.
type AuthHandler struct {
	logger *slog.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(logger *slog.Logger) *AuthHandler {
	return &AuthHandler{logger: logger}
}

// Test handles GET /api/auth/test with a static confirmation string.
func (h *AuthHandler) Test(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("API de autenticação funcionando!"))
}
