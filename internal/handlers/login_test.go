package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avoronov/digital-library/internal/services"
)

func postLogin(t *testing.T, h http.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(body))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestLoginHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockLoginer(ctrl)
	handler := NewLoginHandler(mockSvc)

	t.Run("login by username", func(t *testing.T) {
		mockSvc.EXPECT().
			Login(gomock.Any(), "john_doe", "student123").
			Return("JWT_TOKEN", nil)

		body, _ := json.Marshal(LoginRequest{Identifier: "john_doe", Password: "student123"})
		rr := postLogin(t, handler, string(body))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "Bearer JWT_TOKEN", rr.Header().Get("Authorization"))

		var resp LoginResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "JWT_TOKEN", resp.Token)
	})

	t.Run("login by email", func(t *testing.T) {
		mockSvc.EXPECT().
			Login(gomock.Any(), "john@student.com", "student123").
			Return("JWT_TOKEN", nil)

		body, _ := json.Marshal(LoginRequest{Identifier: "john@student.com", Password: "student123"})
		rr := postLogin(t, handler, string(body))

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		rr := postLogin(t, handler, "{not json")

		assert.Equal(t, http.StatusBadRequest, rr.Code)

		var resp LoginErrorResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "invalid request body", resp.Error)
	})

	t.Run("missing credentials", func(t *testing.T) {
		body, _ := json.Marshal(LoginRequest{Identifier: "john_doe"})
		rr := postLogin(t, handler, string(body))

		assert.Equal(t, http.StatusBadRequest, rr.Code)

		var resp LoginErrorResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "Username and password are required", resp.Error)
	})

	t.Run("unknown user", func(t *testing.T) {
		mockSvc.EXPECT().
			Login(gomock.Any(), "ghost", "whatever1").
			Return("", services.ErrUserDoesNotExist)

		body, _ := json.Marshal(LoginRequest{Identifier: "ghost", Password: "whatever1"})
		rr := postLogin(t, handler, string(body))

		assert.Equal(t, http.StatusUnauthorized, rr.Code)

		var resp LoginErrorResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "Invalid username or password", resp.Error)
	})

	t.Run("wrong password", func(t *testing.T) {
		mockSvc.EXPECT().
			Login(gomock.Any(), "john_doe", "wrongpass").
			Return("", services.ErrInvalidCredentials)

		body, _ := json.Marshal(LoginRequest{Identifier: "john_doe", Password: "wrongpass"})
		rr := postLogin(t, handler, string(body))

		// same message as an unknown user, the cause is not disclosed
		assert.Equal(t, http.StatusUnauthorized, rr.Code)

		var resp LoginErrorResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "Invalid username or password", resp.Error)
	})

	t.Run("internal error", func(t *testing.T) {
		mockSvc.EXPECT().
			Login(gomock.Any(), "john_doe", "student123").
			Return("", errors.New("database error"))

		body, _ := json.Marshal(LoginRequest{Identifier: "john_doe", Password: "student123"})
		rr := postLogin(t, handler, string(body))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)

		var resp LoginErrorResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "Internal server error", resp.Error)
	})
}
