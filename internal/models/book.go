package models

import (
	"time"

	"github.com/google/uuid"
)

// Categories lists the book categories offered by the catalog.
var Categories = []string{
	"Fiction",
	"Non-Fiction",
	"Science",
	"Technology",
	"History",
	"Biography",
	"Mystery",
	"Romance",
	"Fantasy",
	"Self-Help",
	"Business",
	"Literature",
}

// BookFilter carries the optional catalog browse filters.
type BookFilter struct {
	Search        string // matches title, author or ISBN, case-insensitive
	Category      string
	AvailableOnly bool
	SortBy        string // title, author, year or newest; defaults to title
	Page          int    // 1-based; 0 means first page
	PerPage       int    // 0 means no pagination
}

// BookDB represents a book record in the database
type BookDB struct {
	BookID          uuid.UUID `json:"id" db:"id"`                             // Primary key
	Title           string    `json:"title" db:"title"`                       // Book title
	Author          string    `json:"author" db:"author"`                     // Book author
	ISBN            string    `json:"isbn" db:"isbn"`                         // Normalized ISBN (10 or 13 digits)
	Category        string    `json:"category" db:"category"`                 // Category name
	Description     string    `json:"description" db:"description"`           // Free-form description
	CoverImage      string    `json:"cover_image" db:"cover_image"`           // Cover image URL
	PublicationYear int       `json:"publication_year" db:"publication_year"` // Year of publication
	TotalCopies     int       `json:"total_copies" db:"total_copies"`         // Copies owned by the library
	AvailableCopies int       `json:"available_copies" db:"available_copies"` // Copies currently on the shelf
	CreatedAt       time.Time `json:"created_at" db:"created_at"`             // Creation timestamp
	UpdatedAt       time.Time `json:"updated_at" db:"updated_at"`             // Last update timestamp
}

// IsAvailable reports whether at least one copy can be borrowed.
func (b *BookDB) IsAvailable() bool {
	return b.AvailableCopies > 0
}

// BorrowedCopies returns the number of copies currently out on loan.
func (b *BookDB) BorrowedCopies() int {
	return b.TotalCopies - b.AvailableCopies
}

// ValidCategory reports whether the given category is one of the known
// catalog categories.
func ValidCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}
