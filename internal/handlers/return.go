package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/avoronov/digital-library/internal/jwt"
	"github.com/avoronov/digital-library/internal/logger"
	"github.com/avoronov/digital-library/internal/models"
	"github.com/avoronov/digital-library/internal/services"
)

// ReturnTokener defines only the methods needed by this handler.
type ReturnTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// Returner defines the interface that the service must implement.
type Returner interface {
	ReturnBook(ctx context.Context, recordID, actorID uuid.UUID) (*models.BorrowRecordDB, error)
}

// ReturnResponse represents a successful return response
// swagger:model ReturnResponse
type ReturnResponse struct {
	// Success message
	// default: Book returned successfully
	Message string `json:"message"`

	// The closed borrow record
	Record *models.BorrowRecordDB `json:"record"`
}

// ReturnErrorResponse represents an error response for returning
// swagger:model ReturnErrorResponse
type ReturnErrorResponse struct {
	// Error message
	// default: This book has already been returned
	Error string `json:"error"`
}

// NewReturnHandler returns an HTTP handler for returning a borrowed book.
// @Summary Return a book
// @Description Closes an open borrow record and puts the copy back on the shelf. Only the record's owner or a librarian may return it.
// @Tags lending
// @Produce json
// @Param recordID path string true "Borrow record ID"
// @Success 200 {object} handlers.ReturnResponse "Borrow record closed"
// @Failure 400 {object} handlers.ReturnErrorResponse "Invalid record id"
// @Failure 401 {object} handlers.ReturnErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ReturnErrorResponse "Not the owner of this borrow record"
// @Failure 404 {object} handlers.ReturnErrorResponse "Borrow record not found"
// @Failure 409 {object} handlers.ReturnErrorResponse "This book has already been returned"
// @Router /loans/{recordID}/return [post]
// @Security BearerAuth
func NewReturnHandler(svc Returner, tokenGetter ReturnTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		recordID, err := uuid.Parse(chi.URLParam(r, "recordID"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ReturnErrorResponse{Error: "Invalid record id"})
			return
		}

		tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
		if err != nil {
			logger.Log.Errorw("failed to get token from request", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ReturnErrorResponse{Error: "Unauthorized"})
			return
		}

		claims, err := tokenGetter.GetClaims(ctx, tokenStr)
		if err != nil {
			logger.Log.Errorw("failed to get claims from token", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ReturnErrorResponse{Error: "Unauthorized"})
			return
		}

		record, err := svc.ReturnBook(ctx, recordID, claims.UserID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrRecordNotFound), errors.Is(err, services.ErrUserNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ReturnErrorResponse{Error: "Borrow record not found"})
			case errors.Is(err, services.ErrForbidden):
				w.WriteHeader(http.StatusForbidden)
				json.NewEncoder(w).Encode(ReturnErrorResponse{Error: "Not the owner of this borrow record"})
			case errors.Is(err, services.ErrAlreadyReturned):
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(ReturnErrorResponse{Error: "This book has already been returned"})
			default:
				logger.Log.Errorw("failed to return book", "recordID", recordID, "actorID", claims.UserID, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ReturnErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ReturnResponse{
			Message: "Book returned successfully",
			Record:  record,
		})
	}
}
