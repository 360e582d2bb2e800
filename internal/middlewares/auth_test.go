package middlewares

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("missing token", func(t *testing.T) {
		tokener := NewMockTokener(ctrl)
		tokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
			Return("", errors.New("authorization header required"))

		nextCalled := false
		h := AuthMiddleware(tokener)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			nextCalled = true
		}))

		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/books", nil))

		assert.False(t, nextCalled)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Equal(t, "Bearer", rr.Header().Get("WWW-Authenticate"))

		var body map[string]string
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.Equal(t, "Authorization required", body["error"])
	})

	t.Run("expired token", func(t *testing.T) {
		tokener := NewMockTokener(ctrl)
		tokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
			Return("stale-token", nil)
		tokener.EXPECT().Validate(gomock.Any(), "stale-token").
			Return(errors.New("token is expired"))

		nextCalled := false
		h := AuthMiddleware(tokener)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			nextCalled = true
		}))

		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/loans/my", nil))

		assert.False(t, nextCalled)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("valid token passes through", func(t *testing.T) {
		tokener := NewMockTokener(ctrl)
		tokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
			Return("reader-token", nil)
		tokener.EXPECT().Validate(gomock.Any(), "reader-token").
			Return(nil)

		nextCalled := false
		h := AuthMiddleware(tokener)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			nextCalled = true
			w.WriteHeader(http.StatusOK)
		}))

		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/books", nil))

		assert.True(t, nextCalled)
		assert.Equal(t, http.StatusOK, rr.Code)
	})
}
