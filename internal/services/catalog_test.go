package services_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/avoronov/digital-library/internal/models"
	"github.com/avoronov/digital-library/internal/services"
)

func TestCatalogService_ListBooks(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockBookReader(ctrl)
	mockWriter := services.NewMockBookWriter(ctrl)
	mockLoans := services.NewMockOpenLoanReader(ctrl)
	mockCache := services.NewMockStatsInvalidator(ctrl)

	svc := services.NewCatalogService(mockReader, mockWriter, mockLoans, mockCache)

	filter := models.BookFilter{Search: "orwell", Category: "Fiction"}
	want := []models.BookDB{{BookID: uuid.New(), Title: "1984"}}

	t.Run("success", func(t *testing.T) {
		mockReader.EXPECT().List(gomock.Any(), filter).Return(want, 1, nil)

		books, total, err := svc.ListBooks(context.Background(), filter)
		assert.NoError(t, err)
		assert.Equal(t, 1, total)
		assert.Equal(t, want, books)
	})

	t.Run("repository error", func(t *testing.T) {
		errDB := errors.New("db error")
		mockReader.EXPECT().List(gomock.Any(), filter).Return(nil, 0, errDB)

		books, total, err := svc.ListBooks(context.Background(), filter)
		assert.ErrorIs(t, err, errDB)
		assert.Zero(t, total)
		assert.Nil(t, books)
	})
}

func TestCatalogService_GetBook(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockBookReader(ctrl)
	mockWriter := services.NewMockBookWriter(ctrl)
	mockLoans := services.NewMockOpenLoanReader(ctrl)
	mockCache := services.NewMockStatsInvalidator(ctrl)

	svc := services.NewCatalogService(mockReader, mockWriter, mockLoans, mockCache)

	bookID := uuid.New()
	userID := uuid.New()
	book := &models.BookDB{BookID: bookID, Title: "Sapiens"}

	t.Run("reader with open record", func(t *testing.T) {
		mockReader.EXPECT().GetByID(gomock.Any(), bookID).Return(book, nil)
		mockLoans.EXPECT().HasOpenRecord(gomock.Any(), userID, bookID).Return(true, nil)

		got, hasBorrowed, err := svc.GetBook(context.Background(), bookID, userID, models.RoleReader)
		assert.NoError(t, err)
		assert.Equal(t, book, got)
		assert.True(t, hasBorrowed)
	})

	t.Run("reader without open record", func(t *testing.T) {
		mockReader.EXPECT().GetByID(gomock.Any(), bookID).Return(book, nil)
		mockLoans.EXPECT().HasOpenRecord(gomock.Any(), userID, bookID).Return(false, nil)

		_, hasBorrowed, err := svc.GetBook(context.Background(), bookID, userID, models.RoleReader)
		assert.NoError(t, err)
		assert.False(t, hasBorrowed)
	})

	t.Run("librarian skips open record check", func(t *testing.T) {
		mockReader.EXPECT().GetByID(gomock.Any(), bookID).Return(book, nil)

		_, hasBorrowed, err := svc.GetBook(context.Background(), bookID, userID, models.RoleLibrarian)
		assert.NoError(t, err)
		assert.False(t, hasBorrowed)
	})

	t.Run("book not found", func(t *testing.T) {
		mockReader.EXPECT().GetByID(gomock.Any(), bookID).Return(nil, nil)

		got, _, err := svc.GetBook(context.Background(), bookID, userID, models.RoleReader)
		assert.ErrorIs(t, err, services.ErrBookNotFound)
		assert.Nil(t, got)
	})

	t.Run("open record check error", func(t *testing.T) {
		errDB := errors.New("db error")
		mockReader.EXPECT().GetByID(gomock.Any(), bookID).Return(book, nil)
		mockLoans.EXPECT().HasOpenRecord(gomock.Any(), userID, bookID).Return(false, errDB)

		_, _, err := svc.GetBook(context.Background(), bookID, userID, models.RoleReader)
		assert.ErrorIs(t, err, errDB)
	})
}

func TestCatalogService_AddBook(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockBookReader(ctrl)
	mockWriter := services.NewMockBookWriter(ctrl)
	mockLoans := services.NewMockOpenLoanReader(ctrl)
	mockCache := services.NewMockStatsInvalidator(ctrl)

	svc := services.NewCatalogService(mockReader, mockWriter, mockLoans, mockCache)

	t.Run("success normalizes isbn and fills availability", func(t *testing.T) {
		input := models.BookDB{
			Title:           "Python Programming",
			Author:          "John Smith",
			ISBN:            "978-1-234-56789-7",
			Category:        "Technology",
			Description:     "A comprehensive guide to Python programming.",
			PublicationYear: 2023,
			TotalCopies:     5,
		}
		normalized := input
		normalized.ISBN = "9781234567897"
		normalized.AvailableCopies = 5

		mockReader.EXPECT().GetByISBN(gomock.Any(), "9781234567897").Return(nil, nil)
		mockWriter.EXPECT().Create(gomock.Any(), normalized).Return(&normalized, nil)
		mockCache.EXPECT().Invalidate(gomock.Any()).Return(nil)

		created, err := svc.AddBook(context.Background(), input)
		assert.NoError(t, err)
		assert.Equal(t, "9781234567897", created.ISBN)
		assert.Equal(t, 5, created.AvailableCopies)
	})

	t.Run("checksum mismatch is advisory only", func(t *testing.T) {
		input := models.BookDB{
			Title:           "Some Book",
			Author:          "Someone",
			ISBN:            "9780306406150",
			Category:        "Fiction",
			PublicationYear: 2020,
			TotalCopies:     1,
		}
		saved := input
		saved.AvailableCopies = 1

		mockReader.EXPECT().GetByISBN(gomock.Any(), "9780306406150").Return(nil, nil)
		mockWriter.EXPECT().Create(gomock.Any(), saved).Return(&saved, nil)
		mockCache.EXPECT().Invalidate(gomock.Any()).Return(nil)

		created, err := svc.AddBook(context.Background(), input)
		assert.NoError(t, err)
		assert.NotNil(t, created)
	})

	t.Run("duplicate isbn", func(t *testing.T) {
		input := models.BookDB{
			Title:           "1984",
			Author:          "George Orwell",
			ISBN:            "9780451524935",
			Category:        "Fiction",
			PublicationYear: 1949,
			TotalCopies:     5,
		}

		mockReader.EXPECT().
			GetByISBN(gomock.Any(), "9780451524935").
			Return(&models.BookDB{BookID: uuid.New()}, nil)

		created, err := svc.AddBook(context.Background(), input)
		assert.ErrorIs(t, err, services.ErrBookAlreadyExists)
		assert.Nil(t, created)
	})

	validBook := func() models.BookDB {
		return models.BookDB{
			Title:           "Valid Title",
			Author:          "Valid Author",
			ISBN:            "9780306406157",
			Category:        "Fiction",
			PublicationYear: 2020,
			TotalCopies:     3,
		}
	}

	invalid := []struct {
		name   string
		mutate func(*models.BookDB)
	}{
		{"empty title", func(b *models.BookDB) { b.Title = "" }},
		{"title too long", func(b *models.BookDB) { b.Title = strings.Repeat("x", 201) }},
		{"empty author", func(b *models.BookDB) { b.Author = "" }},
		{"description too long", func(b *models.BookDB) { b.Description = strings.Repeat("x", 1001) }},
		{"unknown category", func(b *models.BookDB) { b.Category = "Poetry" }},
		{"zero copies", func(b *models.BookDB) { b.TotalCopies = 0 }},
		{"too many copies", func(b *models.BookDB) { b.TotalCopies = 1001 }},
		{"year too early", func(b *models.BookDB) { b.PublicationYear = 999 }},
		{"year in the future", func(b *models.BookDB) { b.PublicationYear = time.Now().Year() + 2 }},
		{"isbn too short", func(b *models.BookDB) { b.ISBN = "12345" }},
		{"isbn with letters", func(b *models.BookDB) { b.ISBN = "030640615X" }},
	}

	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			book := validBook()
			tt.mutate(&book)

			created, err := svc.AddBook(context.Background(), book)
			assert.ErrorIs(t, err, services.ErrValidation)
			assert.Nil(t, created)
		})
	}
}

func TestCatalogService_UpdateBook(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockBookReader(ctrl)
	mockWriter := services.NewMockBookWriter(ctrl)
	mockLoans := services.NewMockOpenLoanReader(ctrl)
	mockCache := services.NewMockStatsInvalidator(ctrl)

	svc := services.NewCatalogService(mockReader, mockWriter, mockLoans, mockCache)

	bookID := uuid.New()
	// 2 of 5 copies are out on loan
	current := &models.BookDB{
		BookID:          bookID,
		Title:           "Sapiens",
		Author:          "Yuval Noah Harari",
		ISBN:            "9780062316097",
		Category:        "History",
		PublicationYear: 2011,
		TotalCopies:     5,
		AvailableCopies: 3,
	}

	t.Run("success preserves borrowed copies", func(t *testing.T) {
		input := *current
		input.TotalCopies = 10
		input.ISBN = "978-0-06-231609-7"

		expected := input
		expected.ISBN = "9780062316097"
		expected.AvailableCopies = 8

		mockReader.EXPECT().GetByID(gomock.Any(), bookID).Return(current, nil)
		mockWriter.EXPECT().Update(gomock.Any(), expected).Return(&expected, nil)
		mockCache.EXPECT().Invalidate(gomock.Any()).Return(nil)

		updated, err := svc.UpdateBook(context.Background(), input)
		assert.NoError(t, err)
		assert.Equal(t, 10, updated.TotalCopies)
		assert.Equal(t, 8, updated.AvailableCopies)
	})

	t.Run("refuses to drop total below borrowed", func(t *testing.T) {
		input := *current
		input.TotalCopies = 1

		mockReader.EXPECT().GetByID(gomock.Any(), bookID).Return(current, nil)

		updated, err := svc.UpdateBook(context.Background(), input)
		assert.ErrorIs(t, err, services.ErrValidation)
		assert.Nil(t, updated)
	})

	t.Run("book not found", func(t *testing.T) {
		input := *current
		mockReader.EXPECT().GetByID(gomock.Any(), bookID).Return(nil, nil)

		updated, err := svc.UpdateBook(context.Background(), input)
		assert.ErrorIs(t, err, services.ErrBookNotFound)
		assert.Nil(t, updated)
	})

	t.Run("new isbn already taken", func(t *testing.T) {
		input := *current
		input.ISBN = "9780451524935"

		mockReader.EXPECT().GetByID(gomock.Any(), bookID).Return(current, nil)
		mockReader.EXPECT().
			GetByISBN(gomock.Any(), "9780451524935").
			Return(&models.BookDB{BookID: uuid.New()}, nil)

		updated, err := svc.UpdateBook(context.Background(), input)
		assert.ErrorIs(t, err, services.ErrBookAlreadyExists)
		assert.Nil(t, updated)
	})

	t.Run("row vanished during update", func(t *testing.T) {
		input := *current

		mockReader.EXPECT().GetByID(gomock.Any(), bookID).Return(current, nil)
		mockWriter.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil, nil)

		updated, err := svc.UpdateBook(context.Background(), input)
		assert.ErrorIs(t, err, services.ErrBookNotFound)
		assert.Nil(t, updated)
	})
}

func TestCatalogService_DeleteBook(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockBookReader(ctrl)
	mockWriter := services.NewMockBookWriter(ctrl)
	mockLoans := services.NewMockOpenLoanReader(ctrl)
	mockCache := services.NewMockStatsInvalidator(ctrl)

	svc := services.NewCatalogService(mockReader, mockWriter, mockLoans, mockCache)

	bookID := uuid.New()

	t.Run("success", func(t *testing.T) {
		mockLoans.EXPECT().OpenCountByBook(gomock.Any(), bookID).Return(0, nil)
		mockWriter.EXPECT().Delete(gomock.Any(), bookID).Return(int64(1), nil)
		mockCache.EXPECT().Invalidate(gomock.Any()).Return(nil)

		err := svc.DeleteBook(context.Background(), bookID)
		assert.NoError(t, err)
	})

	t.Run("refused while records are open", func(t *testing.T) {
		mockLoans.EXPECT().OpenCountByBook(gomock.Any(), bookID).Return(2, nil)

		err := svc.DeleteBook(context.Background(), bookID)
		assert.ErrorIs(t, err, services.ErrBookInUse)
	})

	t.Run("book not found", func(t *testing.T) {
		mockLoans.EXPECT().OpenCountByBook(gomock.Any(), bookID).Return(0, nil)
		mockWriter.EXPECT().Delete(gomock.Any(), bookID).Return(int64(0), nil)

		err := svc.DeleteBook(context.Background(), bookID)
		assert.ErrorIs(t, err, services.ErrBookNotFound)
	})

	t.Run("open count error", func(t *testing.T) {
		errDB := errors.New("db error")
		mockLoans.EXPECT().OpenCountByBook(gomock.Any(), bookID).Return(0, errDB)

		err := svc.DeleteBook(context.Background(), bookID)
		assert.ErrorIs(t, err, errDB)
	})
}
