package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/avoronov/digital-library/internal/logger"
	"github.com/avoronov/digital-library/internal/models"
)

// OverviewProvider defines the interface that the service must implement.
type OverviewProvider interface {
	Overview(ctx context.Context) (models.LibraryStats, []models.BookDB, error)
}

// OverviewResponse represents the public landing page data
// swagger:model OverviewResponse
type OverviewResponse struct {
	// Library counters
	Stats models.LibraryStats `json:"stats"`

	// Most recently added books
	RecentBooks []models.BookDB `json:"recent_books"`
}

// OverviewErrorResponse represents an error response for the overview
// swagger:model OverviewErrorResponse
type OverviewErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`
}

// NewOverviewHandler returns an HTTP handler for the public library overview.
// @Summary Library overview
// @Description Returns the library counters and the most recently added books
// @Tags stats
// @Produce json
// @Success 200 {object} handlers.OverviewResponse "Library overview"
// @Failure 500 {object} handlers.OverviewErrorResponse "Internal server error"
// @Router /overview [get]
func NewOverviewHandler(svc OverviewProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, recent, err := svc.Overview(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to build overview", "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(OverviewErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(OverviewResponse{
			Stats:       stats,
			RecentBooks: recent,
		})
	}
}
