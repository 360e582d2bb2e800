package middlewares

import (
	"context"
	"net/http"

	"github.com/jmoiron/sqlx"

	"github.com/avoronov/digital-library/internal/logger"
)

type txKey struct{}

// GetTxFromContext returns the transaction opened for this request, or nil
// outside TxMiddleware. Repositories use it to pick their executor.
func GetTxFromContext(ctx context.Context) *sqlx.Tx {
	tx, _ := ctx.Value(txKey{}).(*sqlx.Tx)
	return tx
}

// TxMiddleware opens one transaction per request and commits it after the
// handler returns. A borrow touches both the availability counter and the
// borrow records table; one transaction keeps the two in step when either
// write fails.
func TxMiddleware(db *sqlx.DB) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reqID := RequestIDFromContext(r.Context())

			tx, err := db.Beginx()
			if err != nil {
				logger.Log.Errorw("begin transaction", "request_id", reqID, "error", err)
				writeJSONError(w, http.StatusInternalServerError, "Internal server error")
				return
			}

			defer func() {
				if rec := recover(); rec != nil {
					if rbErr := tx.Rollback(); rbErr != nil {
						logger.Log.Errorw("rollback after panic", "request_id", reqID, "error", rbErr)
					}
					panic(rec)
				}
			}()

			next.ServeHTTP(w, r.WithContext(
				context.WithValue(r.Context(), txKey{}, tx),
			))

			if err := tx.Commit(); err != nil {
				logger.Log.Errorw("commit transaction", "request_id", reqID, "error", err)
				writeJSONError(w, http.StatusInternalServerError, "Internal server error")
			}
		})
	}
}
