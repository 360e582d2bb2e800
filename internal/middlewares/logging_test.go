package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestLoggingMiddleware_AssignsRequestID(t *testing.T) {
	var ctxID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctxID = RequestIDFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/books?search=orwell", nil)
	LoggingMiddleware(zap.NewNop().Sugar())(next).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.NotEmpty(t, ctxID)
	assert.Equal(t, ctxID, rr.Header().Get("X-Request-ID"))
}

func TestLoggingMiddleware_KeepsClientRequestID(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})

	req := httptest.NewRequest(http.MethodGet, "/overview", nil)
	req.Header.Set("X-Request-ID", "client-supplied-id")
	rr := httptest.NewRecorder()
	LoggingMiddleware(zap.NewNop().Sugar())(next).ServeHTTP(rr, req)

	assert.Equal(t, "client-supplied-id", rr.Header().Get("X-Request-ID"))
	assert.Equal(t, "ok", rr.Body.String())
}

func TestLoggingMiddleware_PreservesHandlerResponse(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"error":"no copies of this book are available"}`))
	})

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/books/abc/borrow", nil)
	LoggingMiddleware(zap.NewNop().Sugar())(next).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.JSONEq(t, `{"error":"no copies of this book are available"}`, rr.Body.String())
}
