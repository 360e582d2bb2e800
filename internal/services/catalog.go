package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/avoronov/digital-library/internal/logger"
	"github.com/avoronov/digital-library/internal/models"
	"github.com/avoronov/digital-library/internal/validation"
)

var (
	ErrBookNotFound      = errors.New("book not found")
	ErrBookAlreadyExists = errors.New("a book with this ISBN already exists")
	ErrBookInUse         = errors.New("book has open borrow records")
)

// Catalog field limits
const (
	maxTitleLen        = 200
	maxAuthorLen       = 100
	maxDescriptionLen  = 1000
	maxCopies          = 1000
	minPublicationYear = 1000
)

// BookReader defines catalog read operations.
type BookReader interface {
	List(ctx context.Context, filter models.BookFilter) ([]models.BookDB, int, error)
	GetByID(ctx context.Context, bookID uuid.UUID) (*models.BookDB, error)
	GetByISBN(ctx context.Context, isbn string) (*models.BookDB, error)
}

// BookWriter defines catalog write operations.
type BookWriter interface {
	Create(ctx context.Context, book models.BookDB) (*models.BookDB, error)
	Update(ctx context.Context, book models.BookDB) (*models.BookDB, error)
	Delete(ctx context.Context, bookID uuid.UUID) (int64, error)
}

// OpenLoanReader reports open borrow records.
type OpenLoanReader interface {
	HasOpenRecord(ctx context.Context, userID, bookID uuid.UUID) (bool, error)
	OpenCountByBook(ctx context.Context, bookID uuid.UUID) (int, error)
}

// StatsInvalidator drops cached library statistics after a mutation.
type StatsInvalidator interface {
	Invalidate(ctx context.Context) error
}

// CatalogService handles book browsing and librarian catalog management.
type CatalogService struct {
	readRepo  BookReader
	writeRepo BookWriter
	loanRepo  OpenLoanReader
	cacheRepo StatsInvalidator
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(readRepo BookReader, writeRepo BookWriter, loanRepo OpenLoanReader, cacheRepo StatsInvalidator) *CatalogService {
	return &CatalogService{
		readRepo:  readRepo,
		writeRepo: writeRepo,
		loanRepo:  loanRepo,
		cacheRepo: cacheRepo,
	}
}

// validateBook checks the catalog fields and normalizes the ISBN in place.
// An ISBN-13 checksum mismatch is logged but does not fail validation.
func validateBook(book *models.BookDB) error {
	if book.Title == "" || len(book.Title) > maxTitleLen {
		return fmt.Errorf("%w: title is required and must be at most %d characters", ErrValidation, maxTitleLen)
	}
	if book.Author == "" || len(book.Author) > maxAuthorLen {
		return fmt.Errorf("%w: author is required and must be at most %d characters", ErrValidation, maxAuthorLen)
	}
	if len(book.Description) > maxDescriptionLen {
		return fmt.Errorf("%w: description must be at most %d characters", ErrValidation, maxDescriptionLen)
	}
	if !models.ValidCategory(book.Category) {
		return fmt.Errorf("%w: unknown category %q", ErrValidation, book.Category)
	}
	if book.TotalCopies < 1 || book.TotalCopies > maxCopies {
		return fmt.Errorf("%w: total copies must be between 1 and %d", ErrValidation, maxCopies)
	}
	maxYear := time.Now().Year() + 1
	if book.PublicationYear < minPublicationYear || book.PublicationYear > maxYear {
		return fmt.Errorf("%w: publication year must be between %d and %d", ErrValidation, minPublicationYear, maxYear)
	}

	isbn := validation.NormalizeISBN(book.ISBN)
	if !validation.ValidISBN(isbn) {
		return fmt.Errorf("%w: isbn must contain 10 or 13 digits", ErrValidation)
	}
	book.ISBN = isbn
	if !validation.ISBN13ChecksumOK(isbn) {
		logger.Log.Warnw("isbn checksum mismatch", "isbn", isbn)
	}

	return nil
}

// invalidateStats drops the cached statistics after a catalog change.
func (svc *CatalogService) invalidateStats(ctx context.Context) {
	if err := svc.cacheRepo.Invalidate(ctx); err != nil {
		logger.Log.Errorw("failed to invalidate stats cache", "err", err)
	}
}

// ListBooks returns one catalog page matching the filter plus the total
// number of matches.
func (svc *CatalogService) ListBooks(ctx context.Context, filter models.BookFilter) ([]models.BookDB, int, error) {
	books, total, err := svc.readRepo.List(ctx, filter)
	if err != nil {
		logger.Log.Errorw("failed to list books", "err", err)
		return nil, 0, err
	}
	return books, total, nil
}

// GetBook returns a single book. For readers it also reports whether the
// caller currently has an open borrow record for it.
func (svc *CatalogService) GetBook(ctx context.Context, bookID, userID uuid.UUID, role string) (*models.BookDB, bool, error) {
	book, err := svc.readRepo.GetByID(ctx, bookID)
	if err != nil {
		logger.Log.Errorw("failed to get book", "bookID", bookID, "err", err)
		return nil, false, err
	}
	if book == nil {
		return nil, false, ErrBookNotFound
	}

	hasBorrowed := false
	if role == models.RoleReader {
		hasBorrowed, err = svc.loanRepo.HasOpenRecord(ctx, userID, bookID)
		if err != nil {
			logger.Log.Errorw("failed to check open record", "userID", userID, "bookID", bookID, "err", err)
			return nil, false, err
		}
	}

	return book, hasBorrowed, nil
}

// AddBook validates and creates a new book. All copies start available.
func (svc *CatalogService) AddBook(ctx context.Context, book models.BookDB) (*models.BookDB, error) {
	if err := validateBook(&book); err != nil {
		return nil, err
	}

	existing, err := svc.readRepo.GetByISBN(ctx, book.ISBN)
	if err != nil {
		logger.Log.Errorw("failed to check isbn exists", "isbn", book.ISBN, "err", err)
		return nil, err
	}
	if existing != nil {
		logger.Log.Errorw("book already exists", "isbn", book.ISBN)
		return nil, ErrBookAlreadyExists
	}

	book.AvailableCopies = book.TotalCopies

	created, err := svc.writeRepo.Create(ctx, book)
	if err != nil {
		logger.Log.Errorw("failed to create book", "title", book.Title, "err", err)
		return nil, err
	}

	svc.invalidateStats(ctx)

	return created, nil
}

// UpdateBook validates and updates a book. Copies currently out on loan are
// preserved: available = new total - borrowed, and the update is refused
// when the new total drops below the borrowed count.
func (svc *CatalogService) UpdateBook(ctx context.Context, book models.BookDB) (*models.BookDB, error) {
	current, err := svc.readRepo.GetByID(ctx, book.BookID)
	if err != nil {
		logger.Log.Errorw("failed to get book", "bookID", book.BookID, "err", err)
		return nil, err
	}
	if current == nil {
		return nil, ErrBookNotFound
	}

	if err := validateBook(&book); err != nil {
		return nil, err
	}

	if book.ISBN != current.ISBN {
		existing, err := svc.readRepo.GetByISBN(ctx, book.ISBN)
		if err != nil {
			logger.Log.Errorw("failed to check isbn exists", "isbn", book.ISBN, "err", err)
			return nil, err
		}
		if existing != nil {
			return nil, ErrBookAlreadyExists
		}
	}

	borrowed := current.BorrowedCopies()
	if book.TotalCopies < borrowed {
		return nil, fmt.Errorf("%w: cannot reduce total copies below the %d currently borrowed", ErrValidation, borrowed)
	}
	book.AvailableCopies = book.TotalCopies - borrowed

	updated, err := svc.writeRepo.Update(ctx, book)
	if err != nil {
		logger.Log.Errorw("failed to update book", "bookID", book.BookID, "err", err)
		return nil, err
	}
	if updated == nil {
		return nil, ErrBookNotFound
	}

	svc.invalidateStats(ctx)

	return updated, nil
}

// DeleteBook removes a book from the catalog. Deletion is refused while any
// borrow record for the book is still open.
func (svc *CatalogService) DeleteBook(ctx context.Context, bookID uuid.UUID) error {
	open, err := svc.loanRepo.OpenCountByBook(ctx, bookID)
	if err != nil {
		logger.Log.Errorw("failed to count open records", "bookID", bookID, "err", err)
		return err
	}
	if open > 0 {
		logger.Log.Errorw("book has open borrow records", "bookID", bookID, "open", open)
		return ErrBookInUse
	}

	rows, err := svc.writeRepo.Delete(ctx, bookID)
	if err != nil {
		logger.Log.Errorw("failed to delete book", "bookID", bookID, "err", err)
		return err
	}
	if rows == 0 {
		return ErrBookNotFound
	}

	svc.invalidateStats(ctx)

	return nil
}
