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

// BookCreator defines the interface that the service must implement.
type BookCreator interface {
	AddBook(ctx context.Context, book models.BookDB) (*models.BookDB, error)
}

// CreateBookRequest represents the JSON body for adding a book
// swagger:model CreateBookRequest
type CreateBookRequest struct {
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

	// Total copies, between 1 and 1000
	// required: true
	// default: 5
	TotalCopies int `json:"total_copies"`
}

// CreateBookResponse represents a successful book creation response
// swagger:model CreateBookResponse
type CreateBookResponse struct {
	// Success message
	// default: Book added successfully
	Message string `json:"message"`

	// The created book
	Book *models.BookDB `json:"book"`
}

// CreateBookErrorResponse represents an error response for book creation
// swagger:model CreateBookErrorResponse
type CreateBookErrorResponse struct {
	// Error message
	// default: A book with this ISBN already exists
	Error string `json:"error"`
}

// NewBookCreateHandler returns an HTTP handler for adding a book to the catalog.
// @Summary Add a book
// @Description Validates and creates a new book. ISBN must be unique after stripping separators. All copies start available.
// @Tags catalog
// @Accept json
// @Produce json
// @Param createBookRequest body handlers.CreateBookRequest true "Book to add"
// @Success 201 {object} handlers.CreateBookResponse "Book added"
// @Failure 400 {object} handlers.CreateBookErrorResponse "Invalid request body or failed validation"
// @Failure 401 {object} handlers.CreateBookErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.CreateBookErrorResponse "Librarian role required"
// @Failure 409 {object} handlers.CreateBookErrorResponse "A book with this ISBN already exists"
// @Router /books [post]
// @Security BearerAuth
func NewBookCreateHandler(svc BookCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateBookRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode create book request", "error", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(CreateBookErrorResponse{Error: "Invalid request body"})
			return
		}

		book, err := svc.AddBook(r.Context(), models.BookDB{
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
				json.NewEncoder(w).Encode(CreateBookErrorResponse{Error: err.Error()})
			case errors.Is(err, services.ErrBookAlreadyExists):
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(CreateBookErrorResponse{Error: "A book with this ISBN already exists"})
			default:
				logger.Log.Errorw("failed to add book", "title", req.Title, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(CreateBookErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(CreateBookResponse{
			Message: "Book added successfully",
			Book:    book,
		})
	}
}
