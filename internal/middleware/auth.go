package middleware

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/focusflow/focusflow/internal/ctxkeys"
	"github.com/focusflow/focusflow/internal/service"
)

// Auth resolves the bearer token and adds the user id to the context.
// Requests without an Authorization header pass through unauthenticated;
// RequireAuth rejects them at the route. A header that is present but
// malformed or unresolvable is rejected here.
func Auth(authService *service.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				next.ServeHTTP(w, r)
				return
			}

			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok {
				unauthorized(w, "Authentication required")
				return
			}

			userID, err := authService.ResolveToken(token)
			if err != nil {
				unauthorized(w, "Invalid token")
				return
			}

			ctx := ctxkeys.WithUserID(r.Context(), userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAuth ensures the request carries an authenticated user id
func RequireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if ctxkeys.UserID(r.Context()) == 0 {
			unauthorized(w, "Authentication required")
			return
		}

		next.ServeHTTP(w, r)
	}
}

func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
