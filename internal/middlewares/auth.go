package middlewares

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/avoronov/digital-library/internal/logger"
)

// Tokener defines the minimal interface needed by the middleware
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	Validate(ctx context.Context, tokenString string) error
}

// writeJSONError writes an error response in the same shape the handlers
// use, so middleware rejections look no different to clients.
func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

// AuthMiddleware rejects requests that do not carry a valid bearer token.
// Who the caller is stays with the handlers; this gate only answers whether
// the token itself is good.
func AuthMiddleware(tokener Tokener) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			token, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Warnw("request without usable token", "path", r.URL.Path, "err", err)
				w.Header().Set("WWW-Authenticate", "Bearer")
				writeJSONError(w, http.StatusUnauthorized, "Authorization required")
				return
			}

			if err := tokener.Validate(ctx, token); err != nil {
				logger.Log.Warnw("token rejected", "path", r.URL.Path, "err", err)
				w.Header().Set("WWW-Authenticate", "Bearer")
				writeJSONError(w, http.StatusUnauthorized, "Authorization required")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
