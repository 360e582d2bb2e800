package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avoronov/digital-library/internal/jwt"
	"github.com/avoronov/digital-library/internal/models"
)

func TestMyLoansHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTokenGetter := NewMockMyLoansTokener(ctrl)
	mockLister := NewMockLoanLister(ctrl)

	handler := NewMyLoansHandler(mockLister, mockTokenGetter)

	userID := uuid.New()
	token := "valid-token"
	claims := &jwt.Claims{UserID: userID, Username: "jane_smith", Role: models.RoleReader}

	now := time.Now().UTC()
	detail := func(title, status string, dueAt time.Time) models.BorrowRecordDetail {
		return models.BorrowRecordDetail{
			BorrowRecordDB: models.BorrowRecordDB{
				RecordID:   uuid.New(),
				UserID:     userID,
				BookID:     uuid.New(),
				BorrowedAt: dueAt.Add(-models.LoanPeriod),
				DueAt:      dueAt,
			},
			BookTitle:  title,
			BookAuthor: "Test Author",
			Status:     status,
		}
	}

	t.Run("successful listing", func(t *testing.T) {
		active := []models.BorrowRecordDetail{detail("Clean Code", models.StatusActive, now.Add(10*24*time.Hour))}
		overdue := []models.BorrowRecordDetail{detail("1984", models.StatusOverdue, now.Add(-3*24*time.Hour))}
		returned := []models.BorrowRecordDetail{detail("Sapiens", models.StatusReturned, now.Add(-20*24*time.Hour))}

		mockTokenGetter.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
			Return(token, nil)
		mockTokenGetter.EXPECT().GetClaims(gomock.Any(), token).
			Return(claims, nil)
		mockLister.EXPECT().MyLoans(gomock.Any(), userID).
			Return(active, overdue, returned, nil)

		req := httptest.NewRequest(http.MethodGet, "/loans/my", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp MyLoansResponse
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		require.Len(t, resp.Active, 1)
		require.Len(t, resp.Overdue, 1)
		require.Len(t, resp.Returned, 1)
		assert.Equal(t, "Clean Code", resp.Active[0].BookTitle)
		assert.Equal(t, models.StatusActive, resp.Active[0].Status)
		assert.Equal(t, "1984", resp.Overdue[0].BookTitle)
		assert.Equal(t, models.StatusOverdue, resp.Overdue[0].Status)
		assert.Equal(t, "Sapiens", resp.Returned[0].BookTitle)
		assert.Equal(t, models.StatusReturned, resp.Returned[0].Status)
	})

	t.Run("no loans yet", func(t *testing.T) {
		mockTokenGetter.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
			Return(token, nil)
		mockTokenGetter.EXPECT().GetClaims(gomock.Any(), token).
			Return(claims, nil)
		mockLister.EXPECT().MyLoans(gomock.Any(), userID).
			Return(nil, nil, nil, nil)

		req := httptest.NewRequest(http.MethodGet, "/loans/my", nil)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp MyLoansResponse
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Empty(t, resp.Active)
		assert.Empty(t, resp.Overdue)
		assert.Empty(t, resp.Returned)
	})

	t.Run("unauthorized", func(t *testing.T) {
		mockTokenGetter.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
			Return("", errors.New("no token"))

		req := httptest.NewRequest(http.MethodGet, "/loans/my", nil)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("internal server error", func(t *testing.T) {
		mockTokenGetter.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
			Return(token, nil)
		mockTokenGetter.EXPECT().GetClaims(gomock.Any(), token).
			Return(claims, nil)
		mockLister.EXPECT().MyLoans(gomock.Any(), userID).
			Return(nil, nil, nil, errors.New("db error"))

		req := httptest.NewRequest(http.MethodGet, "/loans/my", nil)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)

		var body map[string]string
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
		assert.Equal(t, "Internal server error", body["error"])
	})
}
