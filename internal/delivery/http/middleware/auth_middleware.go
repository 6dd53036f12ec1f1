package middleware

import (
	"context"
	"net/http"
	"strings"

	"go-healthcare-records/internal/domain/entity"
	"go-healthcare-records/internal/service"
	"go-healthcare-records/pkg/apperror"
	"go-healthcare-records/pkg/response"
)

type contextKey string

const (
	IdentityKey contextKey = "identity"
	TokenKey    contextKey = "token"
)

type AuthMiddleware struct {
	sessions service.SessionAuthority
}

func NewAuthMiddleware(sessions service.SessionAuthority) *AuthMiddleware {
	return &AuthMiddleware{
		sessions: sessions,
	}
}

func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			response.Unauthorized(w, "Authorization header is required")
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
			response.Unauthorized(w, "Invalid authorization header format")
			return
		}

		token := parts[1]

		identity, err := m.sessions.Resolve(r.Context(), token)
		if err != nil {
			if apperror.KindOf(err) == apperror.KindUnauthorized {
				response.Unauthorized(w, apperror.MessageOf(err, "Invalid token"))
				return
			}
			response.InternalServerError(w, "Failed to validate token")
			return
		}

		ctx := context.WithValue(r.Context(), IdentityKey, *identity)
		ctx = context.WithValue(ctx, TokenKey, token)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetIdentityFromContext extracts the caller identity from context
func GetIdentityFromContext(ctx context.Context) (entity.Identity, bool) {
	identity, ok := ctx.Value(IdentityKey).(entity.Identity)
	return identity, ok
}

// GetTokenFromContext extracts the bearer token from context
func GetTokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(TokenKey).(string)
	return token, ok
}
