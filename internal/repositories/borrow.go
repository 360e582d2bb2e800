package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/avoronov/digital-library/internal/logger"
	"github.com/avoronov/digital-library/internal/models"
)

const (
	borrowRecordsTable = "borrow_records"
	usersTable         = "users"
)

// BorrowReadRepository handles borrow record read operations
type BorrowReadRepository struct {
	db *sqlx.DB
}

func NewBorrowReadRepository(db *sqlx.DB) *BorrowReadRepository {
	return &BorrowReadRepository{db: db}
}

// GetByID returns the borrow record with the given id, or nil when it
// does not exist.
func (r *BorrowReadRepository) GetByID(ctx context.Context, recordID uuid.UUID) (*models.BorrowRecordDB, error) {
	const query = `
		SELECT id, user_id, book_id, borrowed_at, due_at, returned_at
		FROM borrow_records
		WHERE id = $1
	`

	var record models.BorrowRecordDB
	err := r.db.GetContext(ctx, &record, query, recordID)

	logger.Log.Infow("db query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{recordID},
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &record, nil
}

// ListByUser returns all of a user's borrow records joined with book
// details, open loans first, newest first within each group.
func (r *BorrowReadRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.BorrowRecordDetail, error) {
	const query = `
		SELECT br.id, br.user_id, br.book_id, br.borrowed_at, br.due_at, br.returned_at,
		       b.title AS book_title, b.author AS book_author
		FROM borrow_records br
		JOIN books b ON b.id = br.book_id
		WHERE br.user_id = $1
		ORDER BY (br.returned_at IS NULL) DESC, br.borrowed_at DESC
	`

	var records []models.BorrowRecordDetail
	err := r.db.SelectContext(ctx, &records, query, userID)

	logger.Log.Infow("db query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", len(records),
		"error", err,
	)

	return records, err
}

// ListAll returns borrow records across all users joined with book and
// borrower details, optionally narrowed to one derived status. The status
// filter is translated into timestamp predicates so it always agrees with
// the derivation rule.
func (r *BorrowReadRepository) ListAll(ctx context.Context, status string, now time.Time) ([]models.BorrowRecordDetail, error) {
	ds := goqu.Dialect(dialectPostgres).
		From(goqu.T(borrowRecordsTable).As("br")).
		Join(goqu.T(booksTable).As("b"), goqu.On(goqu.I("b.id").Eq(goqu.I("br.book_id")))).
		Join(goqu.T(usersTable).As("u"), goqu.On(goqu.I("u.id").Eq(goqu.I("br.user_id")))).
		Select(
			goqu.I("br.id"), goqu.I("br.user_id"), goqu.I("br.book_id"),
			goqu.I("br.borrowed_at"), goqu.I("br.due_at"), goqu.I("br.returned_at"),
			goqu.I("b.title").As("book_title"), goqu.I("b.author").As("book_author"),
			goqu.I("u.username").As("username"),
		).
		Order(goqu.I("br.borrowed_at").Desc())

	switch status {
	case models.StatusActive:
		ds = ds.Where(goqu.I("br.returned_at").IsNull(), goqu.I("br.due_at").Gte(now))
	case models.StatusOverdue:
		ds = ds.Where(goqu.I("br.returned_at").IsNull(), goqu.I("br.due_at").Lt(now))
	case models.StatusReturned:
		ds = ds.Where(goqu.I("br.returned_at").IsNotNull())
	}

	query, args, err := ds.Prepared(true).ToSQL()
	if err != nil {
		return nil, err
	}

	var records []models.BorrowRecordDetail
	err = r.db.SelectContext(ctx, &records, query, args...)

	logger.Log.Infow("db query",
		"query", query,
		"args", args,
		"result", len(records),
		"error", err,
	)

	return records, err
}

// Recent returns the latest borrow records with book and borrower details
// for the librarian dashboard.
func (r *BorrowReadRepository) Recent(ctx context.Context, limit int) ([]models.BorrowRecordDetail, error) {
	const query = `
		SELECT br.id, br.user_id, br.book_id, br.borrowed_at, br.due_at, br.returned_at,
		       b.title AS book_title, b.author AS book_author,
		       u.username AS username
		FROM borrow_records br
		JOIN books b ON b.id = br.book_id
		JOIN users u ON u.id = br.user_id
		ORDER BY br.borrowed_at DESC
		LIMIT $1
	`

	var records []models.BorrowRecordDetail
	err := r.db.SelectContext(ctx, &records, query, limit)

	logger.Log.Infow("db query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{limit},
		"result", len(records),
		"error", err,
	)

	return records, err
}

// CountsAt returns how many records derive to each status at the given
// instant.
func (r *BorrowReadRepository) CountsAt(ctx context.Context, now time.Time) (active, overdue, returned int, err error) {
	const query = `
		SELECT
			COUNT(*) FILTER (WHERE returned_at IS NULL AND due_at >= $1),
			COUNT(*) FILTER (WHERE returned_at IS NULL AND due_at < $1),
			COUNT(*) FILTER (WHERE returned_at IS NOT NULL)
		FROM borrow_records
	`

	row := r.db.QueryRowxContext(ctx, query, now)
	err = row.Scan(&active, &overdue, &returned)

	logger.Log.Infow("db query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{now},
		"result", []any{active, overdue, returned},
		"error", err,
	)

	return active, overdue, returned, err
}

// HasOpenRecord reports whether the user currently has the book out.
func (r *BorrowReadRepository) HasOpenRecord(ctx context.Context, userID, bookID uuid.UUID) (bool, error) {
	const query = `
		SELECT EXISTS(
			SELECT 1 FROM borrow_records
			WHERE user_id = $1 AND book_id = $2 AND returned_at IS NULL
		)
	`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, userID, bookID)

	logger.Log.Infow("db query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, bookID},
		"result", exists,
		"error", err,
	)

	return exists, err
}

// OpenCountByBook returns how many copies of the book are currently out.
// Used to refuse deleting a book with open loans.
func (r *BorrowReadRepository) OpenCountByBook(ctx context.Context, bookID uuid.UUID) (int, error) {
	const query = `
		SELECT COUNT(*) FROM borrow_records
		WHERE book_id = $1 AND returned_at IS NULL
	`

	var count int
	err := r.db.GetContext(ctx, &count, query, bookID)

	logger.Log.Infow("db query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{bookID},
		"result", count,
		"error", err,
	)

	return count, err
}

// BorrowWriteRepository handles borrow record write operations
type BorrowWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewBorrowWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *BorrowWriteRepository {
	return &BorrowWriteRepository{db: db, txGetter: txGetter}
}

func (r *BorrowWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}
	return executor
}

// Create inserts a new open borrow record and returns it.
func (r *BorrowWriteRepository) Create(ctx context.Context, userID, bookID uuid.UUID, borrowedAt, dueAt time.Time) (*models.BorrowRecordDB, error) {
	const query = `
		INSERT INTO borrow_records (id, user_id, book_id, borrowed_at, due_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, user_id, book_id, borrowed_at, due_at, returned_at
	`

	args := []any{uuid.New(), userID, bookID, borrowedAt, dueAt}

	var record models.BorrowRecordDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &record, query, args...)

	logger.Log.Infow("db query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, bookID, borrowedAt, dueAt},
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &record, nil
}

// SetReturned closes an open record. The guard makes a second return a
// no-op; zero rows affected means the record was already closed.
func (r *BorrowWriteRepository) SetReturned(ctx context.Context, recordID uuid.UUID, returnedAt time.Time) (int64, error) {
	const query = `
		UPDATE borrow_records
		SET returned_at = $2
		WHERE id = $1 AND returned_at IS NULL
	`

	res, err := r.executor(ctx).ExecContext(ctx, query, recordID, returnedAt)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("db query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{recordID, returnedAt},
		"result", rowsAffected,
		"error", err,
	)

	return rowsAffected, err
}
