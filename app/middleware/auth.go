package middleware

import (
	"context"
	"net/http"
	"strings"

	"bloglist/app/auth"
)

type contextKey int

const (
	tokenKey contextKey = iota
	userIDKey
)

const bearerPrefix = "bearer "

// BearerToken stores the token of an "Authorization: Bearer <token>" header
// in the request context. It never rejects a request.
func BearerToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if len(header) >= len(bearerPrefix) && strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
			r = r.WithContext(context.WithValue(r.Context(), tokenKey, header[len(bearerPrefix):]))
		}
		next.ServeHTTP(w, r)
	})
}

// TokenFromContext returns the raw bearer token, or "" if none was sent
func TokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(tokenKey).(string)
	return token
}

// WithUserID returns a copy of ctx carrying the authenticated user id
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// UserIDFromContext returns the authenticated user id, or "" if the request
// is anonymous
func UserIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(userIDKey).(string)
	return id
}

// RequireAuth rejects requests without a valid token with 401. On success the
// token's user id is stored in the request context.
func RequireAuth(tokens auth.TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, err := tokens.ValidateToken(TokenFromContext(r.Context()))
			if err != nil {
				writeError(w, http.StatusUnauthorized, auth.ErrInvalidToken.Error())
				return
			}
			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), claims.UserID)))
		})
	}
}

// OptionalAuth verifies the token like RequireAuth but lets anonymous and
// invalid requests through without a user id.
func OptionalAuth(tokens auth.TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if claims, err := tokens.ValidateToken(TokenFromContext(r.Context())); err == nil {
				r = r.WithContext(WithUserID(r.Context(), claims.UserID))
			}
			next.ServeHTTP(w, r)
		})
	}
}
