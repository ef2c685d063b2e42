package middleware

import (
	"net/http"
	"strings"

	"github.com/fitgym/fgms/internal/services/users"
)

// RequireAuth is the gate in front of every member-facing operation:
// verify the bearer token, stash the identity on the context, or reject
// with a 401. Verification is stateless; there is no session lookup.
func (m *Middleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString := ""

		authHeader := r.Header.Get("Authorization")
		if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
		}

		if tokenString == "" {
			m.apiError(w, "No token, authorization denied", http.StatusUnauthorized)
			return
		}

		claims, err := m.TokenSvc.ValidateToken(tokenString)
		if err != nil {
			m.apiError(w, "Token is not valid", http.StatusUnauthorized)
			return
		}

		userCtx := users.UserContextValue{
			ID:    claims.ID,
			Email: claims.Email,
			Role:  claims.Role,
		}

		next.ServeHTTP(w, r.WithContext(users.NewContextWithUser(r.Context(), &userCtx)))
	})
}

func (m *Middleware) RequireRole(requiredRole string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := users.FromContext(r.Context())
			if !ok {
				m.apiError(w, "No token, authorization denied", http.StatusUnauthorized)
				return
			}

			if claims.Role != requiredRole {
				m.apiError(w, "Insufficient permissions", http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
