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

// BookTokener defines only the methods needed by this handler.
type BookTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// BookProvider defines the interface that the service must implement.
type BookProvider interface {
	GetBook(ctx context.Context, bookID, userID uuid.UUID, role string) (*models.BookDB, bool, error)
}

// BookResponse represents a single book with borrow context for the caller
// swagger:model BookResponse
type BookResponse struct {
	// The requested book
	Book *models.BookDB `json:"book"`

	// Whether the caller currently has this book out on loan
	// default: false
	UserHasBorrowed bool `json:"user_has_borrowed"`
}

// BookErrorResponse represents an error response for a single book lookup
// swagger:model BookErrorResponse
type BookErrorResponse struct {
	// Error message
	// default: Book not found
	Error string `json:"error"`
}

// NewBookGetHandler returns an HTTP handler for fetching one book.
// @Summary Get a book
// @Description Returns one book by id. For readers the response also reports whether the caller currently has it out on loan.
// @Tags catalog
// @Produce json
// @Param bookID path string true "Book ID"
// @Success 200 {object} handlers.BookResponse "The book"
// @Failure 400 {object} handlers.BookErrorResponse "Invalid book id"
// @Failure 401 {object} handlers.BookErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.BookErrorResponse "Book not found"
// @Router /books/{bookID} [get]
// @Security BearerAuth
func NewBookGetHandler(svc BookProvider, tokenGetter BookTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		bookID, err := uuid.Parse(chi.URLParam(r, "bookID"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(BookErrorResponse{
				Error: "Invalid book id",
			})
			return
		}

		tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
		if err != nil {
			logger.Log.Errorw("failed to get token from request", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(BookErrorResponse{Error: "Unauthorized"})
			return
		}

		claims, err := tokenGetter.GetClaims(ctx, tokenStr)
		if err != nil {
			logger.Log.Errorw("failed to get claims from token", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(BookErrorResponse{Error: "Unauthorized"})
			return
		}

		book, hasBorrowed, err := svc.GetBook(ctx, bookID, claims.UserID, claims.Role)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrBookNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(BookErrorResponse{
					Error: "Book not found",
				})
			default:
				logger.Log.Errorw("failed to get book", "bookID", bookID, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(BookErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(BookResponse{
			Book:            book,
			UserHasBorrowed: hasBorrowed,
		})
	}
}
