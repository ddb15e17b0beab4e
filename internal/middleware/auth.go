package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"food-ordering-backend/internal/auth"
)

type contextKey string

const principalKey contextKey = "principal"

// Principal is the authenticated identity attached to the request context
type Principal struct {
	Username string
	Role     string
}

// PrincipalFrom extracts the authenticated principal from the context
func PrincipalFrom(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalKey).(Principal)
	return p, ok
}

// RequireRole validates the bearer token and checks the caller's role.
// Missing or malformed header and invalid or expired tokens get 401;
// a valid token with the wrong role gets 403.
func RequireRole(tokens *auth.TokenManager, role string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" || !strings.HasPrefix(header, "Bearer ") {
				writeAuthError(w, http.StatusUnauthorized, "authorization header required")
				return
			}

			username, tokenRole, err := tokens.Parse(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				writeAuthError(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}

			if tokenRole != role {
				writeAuthError(w, http.StatusForbidden, "admin access required")
				return
			}

			ctx := context.WithValue(r.Context(), principalKey, Principal{Username: username, Role: tokenRole})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func writeAuthError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}
