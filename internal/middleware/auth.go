package middleware

import (
	"context"
	"net/http"
	"strings"

	"joblane-backend/internal/models"
	"joblane-backend/internal/token"
	"joblane-backend/utils/response"
)

type contextKey string

const UserContextKey contextKey = "user"

const bearerPrefix = "Bearer "

type Auth struct {
	tokens *token.Manager
}

func NewAuth(tokens *token.Manager) *Auth {
	return &Auth{tokens: tokens}
}

// RequireAuth verifies the bearer token and stores the decoded claims in the
// request context. A missing token is a 401; a token that fails verification
// is a 403, matching the split the frontend depends on.
func (m *Auth) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if !strings.HasPrefix(authHeader, bearerPrefix) {
			response.Error(w, http.StatusUnauthorized, "Unauthorized: No token provided")
			return
		}

		claims, err := m.tokens.Parse(strings.TrimPrefix(authHeader, bearerPrefix))
		if err != nil {
			response.Error(w, http.StatusForbidden, "Forbidden: Invalid token")
			return
		}

		ctx := context.WithValue(r.Context(), UserContextKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin composes RequireAuth with the admin role gate.
func (m *Auth) RequireAdmin(next http.Handler) http.Handler {
	return m.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims := GetUserFromContext(r.Context())
		if claims == nil || claims.Role != models.RoleAdmin {
			response.Error(w, http.StatusForbidden, "Access denied: Admins only")
			return
		}
		next.ServeHTTP(w, r)
	}))
}

func GetUserFromContext(ctx context.Context) *token.Claims {
	claims, ok := ctx.Value(UserContextKey).(*token.Claims)
	if !ok {
		return nil
	}
	return claims
}
