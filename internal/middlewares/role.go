package middlewares

import (
	"context"
	"net/http"

	"github.com/avoronov/digital-library/internal/jwt"
	"github.com/avoronov/digital-library/internal/logger"
	"github.com/avoronov/digital-library/internal/models"
)

// ClaimsTokener defines the minimal interface needed by the role middleware
type ClaimsTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// RequireLibrarian returns a middleware that only lets requests through
// when the token carries the librarian role.
func RequireLibrarian(tokener ClaimsTokener) func(http.Handler) http.Handler {
	return requireRole(tokener, models.RoleLibrarian)
}

// RequireReader returns a middleware that only lets requests through
// when the token carries the reader role.
func RequireReader(tokener ClaimsTokener) func(http.Handler) http.Handler {
	return requireRole(tokener, models.RoleReader)
}

func requireRole(tokener ClaimsTokener, role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Warnw("request without usable token", "path", r.URL.Path, "err", err)
				writeJSONError(w, http.StatusUnauthorized, "Authorization required")
				return
			}

			claims, err := tokener.GetClaims(ctx, tokenString)
			if err != nil {
				logger.Log.Warnw("token rejected", "path", r.URL.Path, "err", err)
				writeJSONError(w, http.StatusUnauthorized, "Authorization required")
				return
			}

			if claims.Role != role {
				logger.Log.Warnw("forbidden", "user_id", claims.UserID, "role", claims.Role, "required", role)
				writeJSONError(w, http.StatusForbidden, "Insufficient permissions")
				return
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
