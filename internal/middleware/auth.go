package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/dyslexiaid/dyslexiaid-go/internal/auth"
)

type contextKey string

const userIDKey contextKey = "userID"

// JWTAuth returns middleware that validates a Bearer token from the
// Authorization header and exposes the decoded user ID to handlers.
func JWTAuth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				writeJSONError(w, http.StatusForbidden, "No token provided")
				return
			}

			token, found := strings.CutPrefix(authHeader, "Bearer ")
			if !found || token == "" {
				writeJSONError(w, http.StatusForbidden, "No token provided")
				return
			}

			claims, err := auth.ValidateToken(token, secret)
			if err != nil {
				writeJSONError(w, http.StatusForbidden, "Invalid or expired token")
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, claims.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ContextWithUserID returns a context carrying the given user ID, as the
// session guard would have set it.
func ContextWithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// UserIDFromContext extracts the authenticated user ID from the request context.
func UserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
