package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avoronov/digital-library/internal/models"
	"github.com/avoronov/digital-library/internal/services"
)

func TestBookCreateHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockBookCreator(ctrl)
	handler := NewBookCreateHandler(mockSvc)

	reqBody := CreateBookRequest{
		Title:           "The Great Gatsby",
		Author:          "F. Scott Fitzgerald",
		ISBN:            "978-0-7432-7356-5",
		Category:        "Fiction",
		Description:     "A classic novel of the Jazz Age.",
		CoverImage:      "default_book.jpg",
		PublicationYear: 1925,
		TotalCopies:     6,
	}
	asModel := models.BookDB{
		Title:           reqBody.Title,
		Author:          reqBody.Author,
		ISBN:            reqBody.ISBN,
		Category:        reqBody.Category,
		Description:     reqBody.Description,
		CoverImage:      reqBody.CoverImage,
		PublicationYear: reqBody.PublicationYear,
		TotalCopies:     reqBody.TotalCopies,
	}

	post := func(body []byte) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/books", bytes.NewReader(body))
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		return rr
	}

	t.Run("success", func(t *testing.T) {
		created := asModel
		created.BookID = uuid.New()
		created.ISBN = "9780743273565"
		created.AvailableCopies = created.TotalCopies

		mockSvc.EXPECT().AddBook(gomock.Any(), asModel).Return(&created, nil)

		body, _ := json.Marshal(reqBody)
		rr := post(body)

		assert.Equal(t, http.StatusCreated, rr.Code)

		var resp CreateBookResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "Book added successfully", resp.Message)
		assert.Equal(t, "9780743273565", resp.Book.ISBN)
		assert.Equal(t, 6, resp.Book.AvailableCopies)
	})

	t.Run("validation error", func(t *testing.T) {
		mockSvc.EXPECT().
			AddBook(gomock.Any(), gomock.Any()).
			Return(nil, fmt.Errorf("%w: total copies must be between 1 and 1000", services.ErrValidation))

		body, _ := json.Marshal(reqBody)
		rr := post(body)

		assert.Equal(t, http.StatusBadRequest, rr.Code)

		var resp CreateBookErrorResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "validation failed: total copies must be between 1 and 1000", resp.Error)
	})

	t.Run("duplicate isbn", func(t *testing.T) {
		mockSvc.EXPECT().
			AddBook(gomock.Any(), gomock.Any()).
			Return(nil, services.ErrBookAlreadyExists)

		body, _ := json.Marshal(reqBody)
		rr := post(body)

		assert.Equal(t, http.StatusConflict, rr.Code)

		var resp CreateBookErrorResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "A book with this ISBN already exists", resp.Error)
	})

	t.Run("invalid json", func(t *testing.T) {
		rr := post([]byte("{invalid json}"))

		assert.Equal(t, http.StatusBadRequest, rr.Code)

		var resp CreateBookErrorResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "Invalid request body", resp.Error)
	})

	t.Run("internal server error", func(t *testing.T) {
		mockSvc.EXPECT().
			AddBook(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("db error"))

		body, _ := json.Marshal(reqBody)
		rr := post(body)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}
