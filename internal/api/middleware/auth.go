package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/phrazzld/lifetrack-api/internal/api/shared"
	"github.com/phrazzld/lifetrack-api/internal/redact"
	"github.com/phrazzld/lifetrack-api/internal/session"
)

// AuthMiddleware resolves the session for each request: it verifies the
// bearer token and places the owner id in the request context.
type AuthMiddleware struct {
	verifier session.TokenVerifier
}

// NewAuthMiddleware creates an AuthMiddleware around a token verifier.
func NewAuthMiddleware(verifier session.TokenVerifier) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier}
}

// Authenticate validates the Authorization header and adds the owner id to
// the request context for authorized requests.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Authorization header required")
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid authorization format")
			return
		}

		ownerID, err := m.verifier.VerifyToken(r.Context(), parts[1])
		if err != nil {
			switch {
			case errors.Is(err, session.ErrExpiredToken):
				shared.RespondWithError(w, r, http.StatusUnauthorized, "Token expired")
			case errors.Is(err, session.ErrInvalidToken):
				shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid token")
			default:
				slog.Error("failed to verify token", "error", redact.Error(err))
				shared.RespondWithError(w, r, http.StatusInternalServerError, "Authentication error")
			}
			return
		}

		ctx := context.WithValue(r.Context(), shared.OwnerIDContextKey, ownerID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
