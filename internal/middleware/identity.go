package middleware

import (
	"net/http"

	"kirana-be/internal/utils"
)

// StaffIdentityMiddleware resolves the acting staff member from the
// X-Staff-ID header and threads it through the request context. A
// single-operator shop that never sends the header falls back to the
// configured default identity.
func StaffIdentityMiddleware(defaultStaffID string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			staffID := r.Header.Get("X-Staff-ID")
			if staffID == "" {
				staffID = defaultStaffID
			}

			ctx := utils.SetStaffContext(r.Context(), staffID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
