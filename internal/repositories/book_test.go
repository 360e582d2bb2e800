package repositories

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/avoronov/digital-library/internal/models"
)

func seedBook(t *testing.T, repo *BookWriteRepository, title, author, isbn, category string, total int) *models.BookDB {
	t.Helper()

	book, err := repo.Create(context.Background(), models.BookDB{
		Title:           title,
		Author:          author,
		ISBN:            isbn,
		Category:        category,
		PublicationYear: 2020,
		TotalCopies:     total,
		AvailableCopies: total,
	})
	assert.NoError(t, err)
	assert.NotNil(t, book)
	return book
}

func TestBookWriteRepository_CreateAndGet(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	writeRepo := NewBookWriteRepository(db, nil)
	readRepo := NewBookReadRepository(db)
	ctx := context.Background()

	created := seedBook(t, writeRepo, "The Go Programming Language", "Alan Donovan", "9780134190440", "Technology", 3)
	assert.NotEqual(t, uuid.Nil, created.BookID)
	assert.Equal(t, 3, created.AvailableCopies)

	t.Run("GetByID", func(t *testing.T) {
		book, err := readRepo.GetByID(ctx, created.BookID)
		assert.NoError(t, err)
		assert.NotNil(t, book)
		assert.Equal(t, "The Go Programming Language", book.Title)
	})

	t.Run("GetByID_NotFound", func(t *testing.T) {
		book, err := readRepo.GetByID(ctx, uuid.New())
		assert.NoError(t, err)
		assert.Nil(t, book)
	})

	t.Run("GetByISBN", func(t *testing.T) {
		book, err := readRepo.GetByISBN(ctx, "9780134190440")
		assert.NoError(t, err)
		assert.NotNil(t, book)
		assert.Equal(t, created.BookID, book.BookID)
	})

	t.Run("GetByISBN_NotFound", func(t *testing.T) {
		book, err := readRepo.GetByISBN(ctx, "0000000000")
		assert.NoError(t, err)
		assert.Nil(t, book)
	})

	t.Run("DuplicateISBN", func(t *testing.T) {
		_, err := writeRepo.Create(ctx, models.BookDB{
			Title: "Copycat", Author: "Nobody", ISBN: "9780134190440",
			Category: "Literature", TotalCopies: 1, AvailableCopies: 1,
		})
		assert.Error(t, err)
	})
}

func TestBookReadRepository_List(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	writeRepo := NewBookWriteRepository(db, nil)
	readRepo := NewBookReadRepository(db)
	ctx := context.Background()

	seedBook(t, writeRepo, "Dune", "Frank Herbert", "9780441172719", "Fiction", 2)
	seedBook(t, writeRepo, "The Hobbit", "J.R.R. Tolkien", "9780547928227", "Fantasy", 1)
	taken := seedBook(t, writeRepo, "1984", "George Orwell", "9780451524935", "Fiction", 1)

	// Take the only copy of 1984 off the shelf
	rows, err := writeRepo.DecrementAvailable(ctx, taken.BookID)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), rows)

	t.Run("All", func(t *testing.T) {
		books, total, err := readRepo.List(ctx, models.BookFilter{})
		assert.NoError(t, err)
		assert.Equal(t, 3, total)
		assert.Len(t, books, 3)
		// default sort is title ascending
		assert.Equal(t, "1984", books[0].Title)
		assert.Equal(t, "Dune", books[1].Title)
		assert.Equal(t, "The Hobbit", books[2].Title)
	})

	t.Run("SearchByTitle", func(t *testing.T) {
		books, total, err := readRepo.List(ctx, models.BookFilter{Search: "dune"})
		assert.NoError(t, err)
		assert.Equal(t, 1, total)
		assert.Len(t, books, 1)
		assert.Equal(t, "Dune", books[0].Title)
	})

	t.Run("SearchByAuthor", func(t *testing.T) {
		books, total, err := readRepo.List(ctx, models.BookFilter{Search: "tolkien"})
		assert.NoError(t, err)
		assert.Equal(t, 1, total)
		assert.Len(t, books, 1)
		assert.Equal(t, "The Hobbit", books[0].Title)
	})

	t.Run("SearchByISBN", func(t *testing.T) {
		books, total, err := readRepo.List(ctx, models.BookFilter{Search: "9780441172719"})
		assert.NoError(t, err)
		assert.Equal(t, 1, total)
		assert.Len(t, books, 1)
		assert.Equal(t, "Dune", books[0].Title)
	})

	t.Run("Category", func(t *testing.T) {
		books, total, err := readRepo.List(ctx, models.BookFilter{Category: "Fiction"})
		assert.NoError(t, err)
		assert.Equal(t, 2, total)
		assert.Len(t, books, 2)
	})

	t.Run("AvailableOnly", func(t *testing.T) {
		books, total, err := readRepo.List(ctx, models.BookFilter{AvailableOnly: true})
		assert.NoError(t, err)
		assert.Equal(t, 2, total)
		for _, b := range books {
			assert.Greater(t, b.AvailableCopies, 0)
		}
	})

	t.Run("SearchAndCategory", func(t *testing.T) {
		books, total, err := readRepo.List(ctx, models.BookFilter{Search: "george", Category: "Fiction"})
		assert.NoError(t, err)
		assert.Equal(t, 1, total)
		assert.Len(t, books, 1)
		assert.Equal(t, "1984", books[0].Title)
	})

	t.Run("SortByAuthor", func(t *testing.T) {
		books, _, err := readRepo.List(ctx, models.BookFilter{SortBy: "author"})
		assert.NoError(t, err)
		assert.Len(t, books, 3)
		assert.Equal(t, "Frank Herbert", books[0].Author)
		assert.Equal(t, "George Orwell", books[1].Author)
		assert.Equal(t, "J.R.R. Tolkien", books[2].Author)
	})

	t.Run("Pagination", func(t *testing.T) {
		books, total, err := readRepo.List(ctx, models.BookFilter{Page: 2, PerPage: 2})
		assert.NoError(t, err)
		assert.Equal(t, 3, total)
		assert.Len(t, books, 1)
		assert.Equal(t, "The Hobbit", books[0].Title)
	})

	t.Run("NoMatch", func(t *testing.T) {
		books, total, err := readRepo.List(ctx, models.BookFilter{Search: "no such book"})
		assert.NoError(t, err)
		assert.Equal(t, 0, total)
		assert.Len(t, books, 0)
	})
}

func TestBookWriteRepository_Update(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	writeRepo := NewBookWriteRepository(db, nil)
	ctx := context.Background()

	book := seedBook(t, writeRepo, "Old Title", "Old Author", "9780306406157", "Fiction", 2)

	book.Title = "New Title"
	book.TotalCopies = 5
	book.AvailableCopies = 5

	updated, err := writeRepo.Update(ctx, *book)
	assert.NoError(t, err)
	assert.NotNil(t, updated)
	assert.Equal(t, "New Title", updated.Title)
	assert.Equal(t, 5, updated.TotalCopies)
	assert.Equal(t, 5, updated.AvailableCopies)

	t.Run("NotFound", func(t *testing.T) {
		ghost := *book
		ghost.BookID = uuid.New()
		updated, err := writeRepo.Update(ctx, ghost)
		assert.NoError(t, err)
		assert.Nil(t, updated)
	})
}

func TestBookWriteRepository_Delete(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	writeRepo := NewBookWriteRepository(db, nil)
	readRepo := NewBookReadRepository(db)
	ctx := context.Background()

	book := seedBook(t, writeRepo, "Ephemeral", "Nobody", "0306406152", "Literature", 1)

	rows, err := writeRepo.Delete(ctx, book.BookID)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), rows)

	gone, err := readRepo.GetByID(ctx, book.BookID)
	assert.NoError(t, err)
	assert.Nil(t, gone)

	rows, err = writeRepo.Delete(ctx, book.BookID)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), rows)
}

func TestBookWriteRepository_AvailabilityCounters(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	writeRepo := NewBookWriteRepository(db, nil)
	readRepo := NewBookReadRepository(db)
	ctx := context.Background()

	book := seedBook(t, writeRepo, "Contended", "Somebody", "9780132350884", "Technology", 1)

	// First decrement takes the last copy
	rows, err := writeRepo.DecrementAvailable(ctx, book.BookID)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), rows)

	// Second decrement finds no free copy: the guard refuses it
	rows, err = writeRepo.DecrementAvailable(ctx, book.BookID)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), rows)

	current, err := readRepo.GetByID(ctx, book.BookID)
	assert.NoError(t, err)
	assert.Equal(t, 0, current.AvailableCopies)

	// Increment puts the copy back
	rows, err = writeRepo.IncrementAvailable(ctx, book.BookID)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), rows)

	// Another increment is clamped at total_copies
	rows, err = writeRepo.IncrementAvailable(ctx, book.BookID)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), rows)

	current, err = readRepo.GetByID(ctx, book.BookID)
	assert.NoError(t, err)
	assert.Equal(t, 1, current.AvailableCopies)
	assert.Equal(t, 1, current.TotalCopies)
}

func TestBookReadRepository_RecentAndCounts(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	writeRepo := NewBookWriteRepository(db, nil)
	readRepo := NewBookReadRepository(db)
	ctx := context.Background()

	seedBook(t, writeRepo, "First", "A", "1111111111", "Fiction", 2)
	seedBook(t, writeRepo, "Second", "B", "2222222222", "Fiction", 3)
	seedBook(t, writeRepo, "Third", "C", "3333333333", "Fiction", 1)

	recent, err := readRepo.Recent(ctx, 2)
	assert.NoError(t, err)
	assert.Len(t, recent, 2)

	titles, copies, err := readRepo.Counts(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 3, titles)
	assert.Equal(t, 6, copies)
}
