package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/ryazanov/inkstudio/internal/service"
)

type contextKey int

const (
	contextKeyUserID contextKey = iota
	contextKeyPayload
)

// Identity extracts the caller identity from the X-User-Id header and passes
// it to the context. Requests without a parsable identity get 401.
func Identity() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			val := r.Header.Get("X-User-Id")
			if val == "" {
				http.Error(w, "authorization required", http.StatusUnauthorized)
				return
			}

			userID, err := strconv.ParseUint(val, 10, 64)
			if err != nil {
				http.Error(w, "authorization required", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), contextKeyUserID, userID)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Auth verifies the auth token from the X-Auth-Token header and passes its
// payload to the context.
func Auth(ts service.TokenService) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString := r.Header.Get("X-Auth-Token")
			if tokenString == "" {
				http.Error(w, "authorization required", http.StatusUnauthorized)
				return
			}

			payload, err := ts.VerifyToken(tokenString)
			if err != nil {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), contextKeyPayload, payload)
			ctx = context.WithValue(ctx, contextKeyUserID, payload.UserID)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserIDFromContext extracts the caller id stored by Identity or Auth
func UserIDFromContext(ctx context.Context) (uint64, bool) {
	userID, ok := ctx.Value(contextKeyUserID).(uint64)
	return userID, ok
}

// WithUserID returns a context carrying the caller id
func WithUserID(ctx context.Context, userID uint64) context.Context {
	return context.WithValue(ctx, contextKeyUserID, userID)
}
