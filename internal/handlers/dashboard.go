package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/avoronov/digital-library/internal/logger"
	"github.com/avoronov/digital-library/internal/models"
)

// DashboardProvider defines the interface that the service must implement.
type DashboardProvider interface {
	Dashboard(ctx context.Context) (models.LibraryStats, []models.BorrowRecordDetail, []models.BorrowRecordDetail, error)
}

// DashboardResponse represents the librarian dashboard data
// swagger:model DashboardResponse
type DashboardResponse struct {
	// Library counters
	Stats models.LibraryStats `json:"stats"`

	// Most recent borrow records
	RecentLoans []models.BorrowRecordDetail `json:"recent_loans"`

	// Currently overdue borrow records
	OverdueLoans []models.BorrowRecordDetail `json:"overdue_loans"`
}

// DashboardErrorResponse represents an error response for the dashboard
// swagger:model DashboardErrorResponse
type DashboardErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`
}

// NewDashboardHandler returns an HTTP handler for the librarian dashboard.
// @Summary Librarian dashboard
// @Description Returns the library counters, the most recent borrow records and every currently overdue record.
// @Tags stats
// @Produce json
// @Success 200 {object} handlers.DashboardResponse "Dashboard data"
// @Failure 401 {object} handlers.DashboardErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.DashboardErrorResponse "Librarian role required"
// @Failure 500 {object} handlers.DashboardErrorResponse "Internal server error"
// @Router /dashboard [get]
// @Security BearerAuth
func NewDashboardHandler(svc DashboardProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, recent, overdue, err := svc.Dashboard(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to build dashboard", "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(DashboardErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(DashboardResponse{
			Stats:        stats,
			RecentLoans:  recent,
			OverdueLoans: overdue,
		})
	}
}
