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

// BorrowTokener defines only the methods needed by this handler.
type BorrowTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// Borrower defines the interface that the service must implement.
type Borrower interface {
	BorrowBook(ctx context.Context, userID, bookID uuid.UUID) (*models.BorrowRecordDB, error)
}

// BorrowResponse represents a successful borrow response
// swagger:model BorrowResponse
type BorrowResponse struct {
	// Success message
	// default: Book borrowed successfully
	Message string `json:"message"`

	// The created borrow record with the due date
	Record *models.BorrowRecordDB `json:"record"`
}

// BorrowErrorResponse represents an error response for borrowing
// swagger:model BorrowErrorResponse
type BorrowErrorResponse struct {
	// Error message
	// default: No copies of this book are currently available
	Error string `json:"error"`
}

// NewBorrowHandler returns an HTTP handler for borrowing a book.
// @Summary Borrow a book
// @Description Takes one copy off the shelf and opens a borrow record due 14 days from now.
// @Tags lending
// @Produce json
// @Param bookID path string true "Book ID"
// @Success 201 {object} handlers.BorrowResponse "Borrow record created"
// @Failure 400 {object} handlers.BorrowErrorResponse "Invalid book id"
// @Failure 401 {object} handlers.BorrowErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.BorrowErrorResponse "Reader role required"
// @Failure 404 {object} handlers.BorrowErrorResponse "Book not found"
// @Failure 409 {object} handlers.BorrowErrorResponse "No copies of this book are currently available"
// @Router /books/{bookID}/borrow [post]
// @Security BearerAuth
func NewBorrowHandler(svc Borrower, tokenGetter BorrowTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		bookID, err := uuid.Parse(chi.URLParam(r, "bookID"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(BorrowErrorResponse{Error: "Invalid book id"})
			return
		}

		tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
		if err != nil {
			logger.Log.Errorw("failed to get token from request", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(BorrowErrorResponse{Error: "Unauthorized"})
			return
		}

		claims, err := tokenGetter.GetClaims(ctx, tokenStr)
		if err != nil {
			logger.Log.Errorw("failed to get claims from token", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(BorrowErrorResponse{Error: "Unauthorized"})
			return
		}

		record, err := svc.BorrowBook(ctx, claims.UserID, bookID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrBookNotFound), errors.Is(err, services.ErrUserNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(BorrowErrorResponse{Error: "Book not found"})
			case errors.Is(err, services.ErrForbidden):
				w.WriteHeader(http.StatusForbidden)
				json.NewEncoder(w).Encode(BorrowErrorResponse{Error: "Only readers can borrow books"})
			case errors.Is(err, services.ErrBookUnavailable):
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(BorrowErrorResponse{Error: "No copies of this book are currently available"})
			default:
				logger.Log.Errorw("failed to borrow book", "userID", claims.UserID, "bookID", bookID, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(BorrowErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(BorrowResponse{
			Message: "Book borrowed successfully",
			Record:  record,
		})
	}
}
