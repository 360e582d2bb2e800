package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/avoronov/digital-library/internal/logger"
	"github.com/avoronov/digital-library/internal/services"
)

// BookDeleter defines the interface that the service must implement.
type BookDeleter interface {
	DeleteBook(ctx context.Context, bookID uuid.UUID) error
}

// DeleteBookResponse represents a successful book deletion response
// swagger:model DeleteBookResponse
type DeleteBookResponse struct {
	// Success message
	// default: Book deleted successfully
	Message string `json:"message"`
}

// DeleteBookErrorResponse represents an error response for book deletion
// swagger:model DeleteBookErrorResponse
type DeleteBookErrorResponse struct {
	// Error message
	// default: Book has open borrow records
	Error string `json:"error"`
}

// NewBookDeleteHandler returns an HTTP handler for removing a book.
// @Summary Delete a book
// @Description Removes a book from the catalog. Refused while any borrow record for the book is still open.
// @Tags catalog
// @Produce json
// @Param bookID path string true "Book ID"
// @Success 200 {object} handlers.DeleteBookResponse "Book deleted"
// @Failure 400 {object} handlers.DeleteBookErrorResponse "Invalid book id"
// @Failure 401 {object} handlers.DeleteBookErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.DeleteBookErrorResponse "Librarian role required"
// @Failure 404 {object} handlers.DeleteBookErrorResponse "Book not found"
// @Failure 409 {object} handlers.DeleteBookErrorResponse "Book has open borrow records"
// @Router /books/{bookID} [delete]
// @Security BearerAuth
func NewBookDeleteHandler(svc BookDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bookID, err := uuid.Parse(chi.URLParam(r, "bookID"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(DeleteBookErrorResponse{Error: "Invalid book id"})
			return
		}

		if err := svc.DeleteBook(r.Context(), bookID); err != nil {
			switch {
			case errors.Is(err, services.ErrBookNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(DeleteBookErrorResponse{Error: "Book not found"})
			case errors.Is(err, services.ErrBookInUse):
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(DeleteBookErrorResponse{Error: "Book has open borrow records"})
			default:
				logger.Log.Errorw("failed to delete book", "bookID", bookID, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(DeleteBookErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(DeleteBookResponse{
			Message: "Book deleted successfully",
		})
	}
}
