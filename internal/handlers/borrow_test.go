package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/avoronov/digital-library/internal/jwt"
	"github.com/avoronov/digital-library/internal/models"
	"github.com/avoronov/digital-library/internal/services"
)

func TestBorrowHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTokenGetter := NewMockBorrowTokener(ctrl)
	mockBorrower := NewMockBorrower(ctrl)

	userID := uuid.New()
	bookID := uuid.New()
	token := "valid-token"
	claims := &jwt.Claims{UserID: userID, Username: "john_doe", Role: models.RoleReader}

	now := time.Now().UTC()
	record := &models.BorrowRecordDB{
		RecordID:   uuid.New(),
		UserID:     userID,
		BookID:     bookID,
		BorrowedAt: now,
		DueAt:      now.Add(models.LoanPeriod),
	}

	tests := []struct {
		name                string
		url                 string
		setupMocks          func()
		expectedStatus      int
		expectedResponseKey string // "record" or "error"
	}{
		{
			name: "successful borrow",
			url:  "/books/" + bookID.String() + "/borrow",
			setupMocks: func() {
				mockTokenGetter.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return(token, nil)
				mockTokenGetter.EXPECT().GetClaims(gomock.Any(), token).
					Return(claims, nil)
				mockBorrower.EXPECT().BorrowBook(gomock.Any(), userID, bookID).
					Return(record, nil)
			},
			expectedStatus:      http.StatusCreated,
			expectedResponseKey: "record",
		},
		{
			name:                "invalid book id",
			url:                 "/books/not-a-uuid/borrow",
			setupMocks:          func() {},
			expectedStatus:      http.StatusBadRequest,
			expectedResponseKey: "error",
		},
		{
			name: "unauthorized missing token",
			url:  "/books/" + bookID.String() + "/borrow",
			setupMocks: func() {
				mockTokenGetter.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("", errors.New("no token"))
			},
			expectedStatus:      http.StatusUnauthorized,
			expectedResponseKey: "error",
		},
		{
			name: "book not found",
			url:  "/books/" + bookID.String() + "/borrow",
			setupMocks: func() {
				mockTokenGetter.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return(token, nil)
				mockTokenGetter.EXPECT().GetClaims(gomock.Any(), token).
					Return(claims, nil)
				mockBorrower.EXPECT().BorrowBook(gomock.Any(), userID, bookID).
					Return(nil, services.ErrBookNotFound)
			},
			expectedStatus:      http.StatusNotFound,
			expectedResponseKey: "error",
		},
		{
			name: "librarians cannot borrow",
			url:  "/books/" + bookID.String() + "/borrow",
			setupMocks: func() {
				mockTokenGetter.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return(token, nil)
				mockTokenGetter.EXPECT().GetClaims(gomock.Any(), token).
					Return(claims, nil)
				mockBorrower.EXPECT().BorrowBook(gomock.Any(), userID, bookID).
					Return(nil, services.ErrForbidden)
			},
			expectedStatus:      http.StatusForbidden,
			expectedResponseKey: "error",
		},
		{
			name: "no copies available",
			url:  "/books/" + bookID.String() + "/borrow",
			setupMocks: func() {
				mockTokenGetter.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return(token, nil)
				mockTokenGetter.EXPECT().GetClaims(gomock.Any(), token).
					Return(claims, nil)
				mockBorrower.EXPECT().BorrowBook(gomock.Any(), userID, bookID).
					Return(nil, services.ErrBookUnavailable)
			},
			expectedStatus:      http.StatusConflict,
			expectedResponseKey: "error",
		},
		{
			name: "internal server error",
			url:  "/books/" + bookID.String() + "/borrow",
			setupMocks: func() {
				mockTokenGetter.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return(token, nil)
				mockTokenGetter.EXPECT().GetClaims(gomock.Any(), token).
					Return(claims, nil)
				mockBorrower.EXPECT().BorrowBook(gomock.Any(), userID, bookID).
					Return(nil, errors.New("db error"))
			},
			expectedStatus:      http.StatusInternalServerError,
			expectedResponseKey: "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMocks()

			r := chi.NewRouter()
			r.Post("/books/{bookID}/borrow", NewBorrowHandler(mockBorrower, mockTokenGetter))

			req := httptest.NewRequest(http.MethodPost, tt.url, nil)
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)

			var body map[string]interface{}
			err := json.NewDecoder(rr.Body).Decode(&body)
			assert.NoError(t, err)

			_, ok := body[tt.expectedResponseKey]
			assert.True(t, ok, "response should contain key %s", tt.expectedResponseKey)
		})
	}
}
