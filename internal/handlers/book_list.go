package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/avoronov/digital-library/internal/logger"
	"github.com/avoronov/digital-library/internal/models"
)

// CatalogLister defines the interface that the service must implement.
type CatalogLister interface {
	ListBooks(ctx context.Context, filter models.BookFilter) ([]models.BookDB, int, error)
}

// BookListResponse represents one catalog page
// swagger:model BookListResponse
type BookListResponse struct {
	// Books matching the filter
	Books []models.BookDB `json:"books"`

	// Total number of matches across all pages
	// default: 8
	Total int `json:"total"`

	// Requested page, 0 when unpaginated
	// default: 0
	Page int `json:"page"`

	// Requested page size, 0 when unpaginated
	// default: 0
	PerPage int `json:"per_page"`
}

// BookListErrorResponse represents an error response for the catalog listing
// swagger:model BookListErrorResponse
type BookListErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`
}

// NewBookListHandler returns an HTTP handler for browsing the catalog.
// @Summary Browse the catalog
// @Description Lists books with optional free-text search over title, author and ISBN, category and availability filters, sorting and pagination
// @Tags catalog
// @Produce json
// @Param search query string false "Free-text search over title, author and ISBN"
// @Param category query string false "Category filter"
// @Param available query bool false "Only books with at least one available copy"
// @Param sort query string false "Sort order: title, author, year or newest"
// @Param page query int false "Page number, 1-based"
// @Param per_page query int false "Page size, 0 for all"
// @Success 200 {object} handlers.BookListResponse "Catalog page"
// @Failure 401 {object} handlers.BookListErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.BookListErrorResponse "Internal server error"
// @Router /books [get]
// @Security BearerAuth
func NewBookListHandler(svc CatalogLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		filter := models.BookFilter{
			Search:   q.Get("search"),
			Category: q.Get("category"),
			SortBy:   q.Get("sort"),
		}
		if v := q.Get("available"); v == "true" || v == "1" {
			filter.AvailableOnly = true
		}
		if v := q.Get("page"); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n > 0 {
				filter.Page = n
			}
		}
		if v := q.Get("per_page"); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n > 0 {
				filter.PerPage = n
			}
		}

		books, total, err := svc.ListBooks(r.Context(), filter)
		if err != nil {
			logger.Log.Errorw("failed to list books", "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(BookListErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(BookListResponse{
			Books:   books,
			Total:   total,
			Page:    filter.Page,
			PerPage: filter.PerPage,
		})
	}
}
