package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/avoronov/digital-library/internal/logger"
	"github.com/avoronov/digital-library/internal/models"
	"github.com/avoronov/digital-library/internal/services"
)

// AllLoanLister defines the interface that the service must implement.
type AllLoanLister interface {
	AllLoans(ctx context.Context, status string) ([]models.BorrowRecordDetail, error)
}

// LoanListResponse represents the librarian view of all borrow records
// swagger:model LoanListResponse
type LoanListResponse struct {
	// Borrow records, newest first, with book and borrower details
	Records []models.BorrowRecordDetail `json:"records"`

	// Number of records returned
	// default: 3
	Total int `json:"total"`
}

// LoanListErrorResponse represents an error response for the record listing
// swagger:model LoanListErrorResponse
type LoanListErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`
}

// NewLoanListHandler returns an HTTP handler for listing all borrow records.
// @Summary List all borrow records
// @Description Returns every borrow record with book and borrower details, optionally filtered by derived status.
// @Tags lending
// @Produce json
// @Param status query string false "Status filter: active, overdue or returned"
// @Success 200 {object} handlers.LoanListResponse "Borrow records"
// @Failure 400 {object} handlers.LoanListErrorResponse "Unknown status"
// @Failure 401 {object} handlers.LoanListErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.LoanListErrorResponse "Librarian role required"
// @Router /loans [get]
// @Security BearerAuth
func NewLoanListHandler(svc AllLoanLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := r.URL.Query().Get("status")

		records, err := svc.AllLoans(r.Context(), status)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrValidation):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(LoanListErrorResponse{Error: err.Error()})
			default:
				logger.Log.Errorw("failed to list borrow records", "status", status, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(LoanListErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(LoanListResponse{
			Records: records,
			Total:   len(records),
		})
	}
}
