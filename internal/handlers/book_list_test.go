package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avoronov/digital-library/internal/models"
)

func TestBookListHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockCatalogLister(ctrl)
	handler := NewBookListHandler(mockSvc)

	books := []models.BookDB{
		{BookID: uuid.New(), Title: "1984", Author: "George Orwell", Category: "Fiction"},
		{BookID: uuid.New(), Title: "The Great Gatsby", Author: "F. Scott Fitzgerald", Category: "Fiction"},
	}

	t.Run("all filters parsed from the query", func(t *testing.T) {
		mockSvc.EXPECT().
			ListBooks(gomock.Any(), models.BookFilter{
				Search:        "george",
				Category:      "Fiction",
				AvailableOnly: true,
				SortBy:        "year",
				Page:          2,
				PerPage:       12,
			}).
			Return(books[:1], 13, nil)

		req := httptest.NewRequest(http.MethodGet,
			"/books?search=george&category=Fiction&available=true&sort=year&page=2&per_page=12", nil)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp BookListResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, 13, resp.Total)
		assert.Equal(t, 2, resp.Page)
		assert.Equal(t, 12, resp.PerPage)
		require.Len(t, resp.Books, 1)
		assert.Equal(t, "1984", resp.Books[0].Title)
	})

	t.Run("no query means no filters", func(t *testing.T) {
		mockSvc.EXPECT().
			ListBooks(gomock.Any(), models.BookFilter{}).
			Return(books, 2, nil)

		req := httptest.NewRequest(http.MethodGet, "/books", nil)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp BookListResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, 2, resp.Total)
		assert.Len(t, resp.Books, 2)
	})

	t.Run("non-numeric pagination is ignored", func(t *testing.T) {
		mockSvc.EXPECT().
			ListBooks(gomock.Any(), models.BookFilter{}).
			Return(books, 2, nil)

		req := httptest.NewRequest(http.MethodGet, "/books?page=abc&per_page=-5", nil)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("internal error", func(t *testing.T) {
		mockSvc.EXPECT().
			ListBooks(gomock.Any(), models.BookFilter{}).
			Return(nil, 0, errors.New("db error"))

		req := httptest.NewRequest(http.MethodGet, "/books", nil)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)

		var resp BookListErrorResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "Internal server error", resp.Error)
	})
}
