package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/avoronov/digital-library/internal/jwt"
	"github.com/avoronov/digital-library/internal/logger"
	"github.com/avoronov/digital-library/internal/models"
)

// MyLoansTokener defines only the methods needed by this handler.
type MyLoansTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// LoanLister defines the interface that the service must implement.
type LoanLister interface {
	MyLoans(ctx context.Context, userID uuid.UUID) (active, overdue, returned []models.BorrowRecordDetail, err error)
}

// MyLoansResponse represents the caller's borrow records grouped by status
// swagger:model MyLoansResponse
type MyLoansResponse struct {
	// Open records that are not yet due, newest first
	Active []models.BorrowRecordDetail `json:"active"`

	// Open records past their due date, most overdue first
	Overdue []models.BorrowRecordDetail `json:"overdue"`

	// Closed records, most recently returned first
	Returned []models.BorrowRecordDetail `json:"returned"`
}

// MyLoansErrorResponse represents an error response for the loan listing
// swagger:model MyLoansErrorResponse
type MyLoansErrorResponse struct {
	// Error message
	// default: Unauthorized
	Error string `json:"error"`
}

// NewMyLoansHandler returns an HTTP handler for the caller's borrow records.
// @Summary My borrowed books
// @Description Returns the caller's borrow records grouped into active, overdue and returned.
// @Tags lending
// @Produce json
// @Success 200 {object} handlers.MyLoansResponse "Borrow records grouped by status"
// @Failure 401 {object} handlers.MyLoansErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.MyLoansErrorResponse "Internal server error"
// @Router /loans/my [get]
// @Security BearerAuth
func NewMyLoansHandler(svc LoanLister, tokenGetter MyLoansTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
		if err != nil {
			logger.Log.Errorw("failed to get token from request", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(MyLoansErrorResponse{Error: "Unauthorized"})
			return
		}

		claims, err := tokenGetter.GetClaims(ctx, tokenStr)
		if err != nil {
			logger.Log.Errorw("failed to get claims from token", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(MyLoansErrorResponse{Error: "Unauthorized"})
			return
		}

		active, overdue, returned, err := svc.MyLoans(ctx, claims.UserID)
		if err != nil {
			logger.Log.Errorw("failed to list loans", "userID", claims.UserID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(MyLoansErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(MyLoansResponse{
			Active:   active,
			Overdue:  overdue,
			Returned: returned,
		})
	}
}
