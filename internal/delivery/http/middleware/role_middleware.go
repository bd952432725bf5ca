package middleware

import (
	"net/http"

	"github.com/sleepysheepppp/hospital-management/internal/domain/entity"
	"github.com/sleepysheepppp/hospital-management/pkg/response"
)

// RequireRole creates a middleware that checks if the user has any of the
// required roles. Role is read from context (set by AuthMiddleware from JWT
// claims, resolved once at login).
func RequireRole(allowedRoleIDs ...int) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			roleID, ok := GetRoleIDFromContext(r.Context())
			if !ok {
				response.RedirectTo(w, http.StatusUnauthorized, "Role information not found", "/login")
				return
			}

			for _, allowedRoleID := range allowedRoleIDs {
				if roleID == allowedRoleID {
					next.ServeHTTP(w, r)
					return
				}
			}

			// Wrong role: redirect to login without disclosing why
			response.RedirectTo(w, http.StatusForbidden, "", "/login")
		})
	}
}

// RequireAdmin is a convenience middleware for administrator-only endpoints
func RequireAdmin(next http.Handler) http.Handler {
	return RequireRole(entity.RoleIDAdmin)(next)
}

// RequireFrontDesk is a convenience middleware for front-desk-only endpoints
func RequireFrontDesk(next http.Handler) http.Handler {
	return RequireRole(entity.RoleIDFrontDesk)(next)
}

// RequireDoctor is a convenience middleware for doctor-only endpoints
func RequireDoctor(next http.Handler) http.Handler {
	return RequireRole(entity.RoleIDDoctor)(next)
}

// RequirePatient is a convenience middleware for patient-only endpoints
func RequirePatient(next http.Handler) http.Handler {
	return RequireRole(entity.RoleIDPatient)(next)
}
