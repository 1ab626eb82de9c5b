// Package middleware provides HTTP middleware for authentication,
// request logging, CORS, and metrics.
package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/spliteasy/spliteasy/internal/auth"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

const (
	// UserIDKey is the context key for the authenticated user ID.
	UserIDKey contextKey = "user_id"
	// EmailKey is the context key for the authenticated user's email.
	EmailKey contextKey = "email"
)

// GetUserID extracts the authenticated user ID from the context.
// Returns empty string if not found.
func GetUserID(ctx context.Context) string {
	userID, _ := ctx.Value(UserIDKey).(string)
	return userID
}

// GetEmail extracts the authenticated user's email from the context.
// Returns empty string if not found.
func GetEmail(ctx context.Context) string {
	email, _ := ctx.Value(EmailKey).(string)
	return email
}

// RequireAuth wraps a handler so it only runs for requests carrying a
// valid bearer token. The token is read from the Authorization header,
// validated, and the user's identity is added to the request context.
// Missing, malformed, and expired tokens are rejected with 401 before
// any business logic runs.
func RequireAuth(jwtManager *auth.JWTManager, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			unauthorized(w, "authorization token required")
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			unauthorized(w, "invalid authorization header")
			return
		}

		claims, err := jwtManager.Validate(parts[1])
		if err != nil {
			unauthorized(w, "invalid or expired token")
			return
		}

		ctx := context.WithValue(r.Context(), UserIDKey, claims.UserID)
		ctx = context.WithValue(ctx, EmailKey, claims.Email)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func unauthorized(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
