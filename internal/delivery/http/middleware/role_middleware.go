package middleware

import (
	"net/http"

	"go-healthcare-records/internal/domain/entity"
	"go-healthcare-records/pkg/response"
)

// RequireRole creates a middleware that checks if the caller has any of the required roles.
// It must run after AuthMiddleware.Authenticate.
func RequireRole(message string, allowedRoles ...entity.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := GetIdentityFromContext(r.Context())
			if !ok {
				response.Unauthorized(w, "Role information not found")
				return
			}

			allowed := false
			for _, role := range allowedRoles {
				if identity.Role == role {
					allowed = true
					break
				}
			}

			if !allowed {
				response.Forbidden(w, message)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireDoctor is a convenience middleware for doctor-only endpoints
func RequireDoctor(next http.Handler) http.Handler {
	return RequireRole("Access denied", entity.RoleDoctor)(next)
}

// RequirePatient is a convenience middleware for patient-only endpoints
func RequirePatient(next http.Handler) http.Handler {
	return RequireRole("Only patients can book appointments", entity.RolePatient)(next)
}
