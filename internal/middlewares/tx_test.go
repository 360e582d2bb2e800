package middlewares

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTxDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "sqlmock"), mock
}

func TestTxMiddleware(t *testing.T) {
	t.Run("commits after the handler and exposes the tx", func(t *testing.T) {
		sqlxDB, mock := newTxDB(t)
		mock.ExpectBegin()
		mock.ExpectCommit()

		var seenTx *sqlx.Tx
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seenTx = GetTxFromContext(r.Context())
			w.WriteHeader(http.StatusCreated)
		})

		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/books/abc/borrow", nil)
		TxMiddleware(sqlxDB)(next).ServeHTTP(rr, req)

		assert.NotNil(t, seenTx)
		assert.Equal(t, http.StatusCreated, rr.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("begin failure ends the request with a JSON 500", func(t *testing.T) {
		sqlxDB, _ := newTxDB(t)
		sqlxDB.Close() // Beginx has nothing to begin on

		nextCalled := false
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			nextCalled = true
		})

		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/books", nil)
		TxMiddleware(sqlxDB)(next).ServeHTTP(rr, req)

		assert.False(t, nextCalled)
		assert.Equal(t, http.StatusInternalServerError, rr.Code)

		var body map[string]string
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.Equal(t, "Internal server error", body["error"])
	})

	t.Run("commit failure reports a 500", func(t *testing.T) {
		sqlxDB, mock := newTxDB(t)
		mock.ExpectBegin()
		mock.ExpectCommit().WillReturnError(sql.ErrConnDone)

		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/books/abc", nil)
		TxMiddleware(sqlxDB)(next).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("panic rolls the transaction back and propagates", func(t *testing.T) {
		sqlxDB, mock := newTxDB(t)
		mock.ExpectBegin()
		mock.ExpectRollback()

		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			panic("boom")
		})

		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/loans/abc/return", nil)
		assert.Panics(t, func() {
			TxMiddleware(sqlxDB)(next).ServeHTTP(rr, req)
		})
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGetTxFromContext_OutsideMiddleware(t *testing.T) {
	assert.Nil(t, GetTxFromContext(context.Background()))
}
