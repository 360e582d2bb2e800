package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/avoronov/digital-library/internal/logger"
	"github.com/avoronov/digital-library/internal/models"
	"github.com/avoronov/digital-library/internal/services"
)

// BookUpdater defines the interface that the service must implement.
type BookUpdater interface {
	UpdateBook(ctx context.Context, book models.BookDB) (*models.BookDB, error)
}

// UpdateBookRequest represents the JSON body for editing a book
// swagger:model UpdateBookRequest
type UpdateBookRequest struct {
	// Title
	// required: true
	// default: The Great Gatsby
	Title string `json:"title"`

	// Author
	// required: true
	// default: F. Scott Fitzgerald
	Author string `json:"author"`

	// ISBN, 10 or 13 digits, separators allowed
	// required: true
	// default: 978-0-7432-7356-5
	ISBN string `json:"isbn"`

	// Category
	// required: true
	// default: Fiction
	Category string `json:"category"`

	// Description
	Description string `json:"description"`

	// Cover image reference
	// default: default_book.jpg
	CoverImage string `json:"cover_image"`

	// Publication year
	// required: true
	// default: 1925
	PublicationYear int `json:"publication_year"`

	// Total copies, between 1 and 1000 and never below the copies out on loan
	// required: true
	// default: 6
	TotalCopies int `json:"total_copies"`
}

// UpdateBookResponse represents a successful book update response
// swagger:model UpdateBookResponse
type UpdateBookResponse struct {
	// Success message
	// default: Book updated successfully
	Message string `json:"message"`

	// The updated book
	Book *models.BookDB `json:"book"`
}

// UpdateBookErrorResponse represents an error response for book updates
// swagger:model UpdateBookErrorResponse
type UpdateBookErrorResponse struct {
	// Error message
	// default: Book not found
	Error string `json:"error"`
}

// NewBookUpdateHandler returns an HTTP handler for editing a book.
// @Summary Update a book
// @Description Validates and updates a book. Copies out on loan are preserved: the new availability is the new total minus the borrowed count, and the update is refused when that would go negative.
// @Tags catalog
// @Accept json
// @Produce json
// @Param bookID path string true "Book ID"
// @Param updateBookRequest body handlers.UpdateBookRequest true "New book fields"
// @Success 200 {object} handlers.UpdateBookResponse "Book updated"
// @Failure 400 {object} handlers.UpdateBookErrorResponse "Invalid request body or failed validation"
// @Failure 401 {object} handlers.UpdateBookErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.UpdateBookErrorResponse "Librarian role required"
// @Failure 404 {object} handlers.UpdateBookErrorResponse "Book not found"
// @Failure 409 {object} handlers.UpdateBookErrorResponse "A book with this ISBN already exists"
// @Router /books/{bookID} [put]
// @Security BearerAuth
func NewBookUpdateHandler(svc BookUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bookID, err := uuid.Parse(chi.URLParam(r, "bookID"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(UpdateBookErrorResponse{Error: "Invalid book id"})
			return
		}

		var req UpdateBookRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode update book request", "error", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(UpdateBookErrorResponse{Error: "Invalid request body"})
			return
		}

		book, err := svc.UpdateBook(r.Context(), models.BookDB{
			BookID:          bookID,
			Title:           req.Title,
			Author:          req.Author,
			ISBN:            req.ISBN,
			Category:        req.Category,
			Description:     req.Description,
			CoverImage:      req.CoverImage,
			PublicationYear: req.PublicationYear,
			TotalCopies:     req.TotalCopies,
		})
		if err != nil {
			switch {
			case errors.Is(err, services.ErrValidation):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(UpdateBookErrorResponse{Error: err.Error()})
			case errors.Is(err, services.ErrBookNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(UpdateBookErrorResponse{Error: "Book not found"})
			case errors.Is(err, services.ErrBookAlreadyExists):
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(UpdateBookErrorResponse{Error: "A book with this ISBN already exists"})
			default:
				logger.Log.Errorw("failed to update book", "bookID", bookID, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(UpdateBookErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(UpdateBookResponse{
			Message: "Book updated successfully",
			Book:    book,
		})
	}
}
