package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect import
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/avoronov/digital-library/internal/logger"
	"github.com/avoronov/digital-library/internal/models"
)

const (
	booksTable         = "books"
	colTitle           = "title"
	colAuthor          = "author"
	colISBN            = "isbn"
	colCategory        = "category"
	colAvailableCopies = "available_copies"
	colPublicationYear = "publication_year"
	colCreatedAt       = "created_at"
	dialectPostgres    = "postgres"
)

var bookColumns = []any{
	"id", "title", "author", "isbn", "category", "description", "cover_image",
	"publication_year", "total_copies", "available_copies", "created_at", "updated_at",
}

// sortColumns maps the browse sort keys onto table columns.
var sortColumns = map[string]string{
	"title":  colTitle,
	"author": colAuthor,
	"year":   colPublicationYear,
	"newest": colCreatedAt,
}

// BookReadRepository handles catalog read operations
type BookReadRepository struct {
	db *sqlx.DB
}

func NewBookReadRepository(db *sqlx.DB) *BookReadRepository {
	return &BookReadRepository{db: db}
}

// List returns one page of the catalog matching the filter plus the total
// number of matching books. The query is assembled dynamically because
// every filter is optional.
func (r *BookReadRepository) List(ctx context.Context, filter models.BookFilter) ([]models.BookDB, int, error) {
	base := goqu.Dialect(dialectPostgres).From(booksTable)

	var conds []exp.Expression
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		conds = append(conds, goqu.Or(
			goqu.C(colTitle).ILike(pattern),
			goqu.C(colAuthor).ILike(pattern),
			goqu.C(colISBN).ILike(pattern),
		))
	}
	if filter.Category != "" {
		conds = append(conds, goqu.C(colCategory).Eq(filter.Category))
	}
	if filter.AvailableOnly {
		conds = append(conds, goqu.C(colAvailableCopies).Gt(0))
	}
	if len(conds) > 0 {
		base = base.Where(conds...)
	}

	countSQL, countArgs, err := base.Select(goqu.COUNT("*")).Prepared(true).ToSQL()
	if err != nil {
		return nil, 0, err
	}

	var total int
	if err := r.db.GetContext(ctx, &total, countSQL, countArgs...); err != nil {
		logger.Log.Infow("db query", "query", countSQL, "args", countArgs, "error", err)
		return nil, 0, err
	}

	sortCol, ok := sortColumns[filter.SortBy]
	if !ok {
		sortCol = colTitle
	}
	order := goqu.I(sortCol).Asc()
	if filter.SortBy == "newest" {
		order = goqu.I(sortCol).Desc()
	}

	ds := base.Select(bookColumns...).Order(order)
	if filter.PerPage > 0 {
		page := filter.Page
		if page < 1 {
			page = 1
		}
		ds = ds.Limit(uint(filter.PerPage)).Offset(uint((page - 1) * filter.PerPage))
	}

	listSQL, listArgs, err := ds.Prepared(true).ToSQL()
	if err != nil {
		return nil, 0, err
	}

	var books []models.BookDB
	err = r.db.SelectContext(ctx, &books, listSQL, listArgs...)

	logger.Log.Infow("db query",
		"query", listSQL,
		"args", listArgs,
		"result", len(books),
		"error", err,
	)

	if err != nil {
		return nil, 0, err
	}

	return books, total, nil
}

// GetByID returns the book with the given id, or nil when it does not exist.
func (r *BookReadRepository) GetByID(ctx context.Context, bookID uuid.UUID) (*models.BookDB, error) {
	const query = `
		SELECT id, title, author, isbn, category, description, cover_image,
		       publication_year, total_copies, available_copies, created_at, updated_at
		FROM books
		WHERE id = $1
	`

	var book models.BookDB
	err := r.db.GetContext(ctx, &book, query, bookID)

	logger.Log.Infow("db query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{bookID},
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &book, nil
}

// GetByISBN returns the book holding the given normalized ISBN, or nil.
// Used for the uniqueness check when adding a book.
func (r *BookReadRepository) GetByISBN(ctx context.Context, isbn string) (*models.BookDB, error) {
	const query = `
		SELECT id, title, author, isbn, category, description, cover_image,
		       publication_year, total_copies, available_copies, created_at, updated_at
		FROM books
		WHERE isbn = $1
	`

	var book models.BookDB
	err := r.db.GetContext(ctx, &book, query, isbn)

	logger.Log.Infow("db query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{isbn},
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &book, nil
}

// Recent returns the most recently added books, newest first.
func (r *BookReadRepository) Recent(ctx context.Context, limit int) ([]models.BookDB, error) {
	const query = `
		SELECT id, title, author, isbn, category, description, cover_image,
		       publication_year, total_copies, available_copies, created_at, updated_at
		FROM books
		ORDER BY created_at DESC
		LIMIT $1
	`

	var books []models.BookDB
	err := r.db.SelectContext(ctx, &books, query, limit)

	logger.Log.Infow("db query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{limit},
		"result", len(books),
		"error", err,
	)

	return books, err
}

// Counts returns the number of distinct titles and the number of copies
// owned by the library.
func (r *BookReadRepository) Counts(ctx context.Context) (titles, copies int, err error) {
	const query = `SELECT COUNT(*), COALESCE(SUM(total_copies), 0) FROM books`

	row := r.db.QueryRowxContext(ctx, query)
	err = row.Scan(&titles, &copies)

	logger.Log.Infow("db query",
		"query", query,
		"result", []any{titles, copies},
		"error", err,
	)

	return titles, copies, err
}

// BookWriteRepository handles catalog write operations
type BookWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewBookWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *BookWriteRepository {
	return &BookWriteRepository{db: db, txGetter: txGetter}
}

func (r *BookWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}
	return executor
}

// Create inserts a new book with all copies available and returns it.
func (r *BookWriteRepository) Create(ctx context.Context, book models.BookDB) (*models.BookDB, error) {
	const query = `
		INSERT INTO books (id, title, author, isbn, category, description, cover_image,
		                   publication_year, total_copies, available_copies, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())
		RETURNING id, title, author, isbn, category, description, cover_image,
		          publication_year, total_copies, available_copies, created_at, updated_at
	`

	args := []any{
		uuid.New(), book.Title, book.Author, book.ISBN, book.Category,
		book.Description, book.CoverImage, book.PublicationYear,
		book.TotalCopies, book.AvailableCopies,
	}

	var created models.BookDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &created, query, args...)

	logger.Log.Infow("db query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{book.Title, book.ISBN, book.TotalCopies},
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &created, nil
}

// Update rewrites the book's descriptive fields and copy counters and
// returns the updated row, or nil when the book does not exist.
func (r *BookWriteRepository) Update(ctx context.Context, book models.BookDB) (*models.BookDB, error) {
	const query = `
		UPDATE books
		SET title = $2, author = $3, isbn = $4, category = $5, description = $6,
		    cover_image = $7, publication_year = $8, total_copies = $9,
		    available_copies = $10, updated_at = NOW()
		WHERE id = $1
		RETURNING id, title, author, isbn, category, description, cover_image,
		          publication_year, total_copies, available_copies, created_at, updated_at
	`

	args := []any{
		book.BookID, book.Title, book.Author, book.ISBN, book.Category,
		book.Description, book.CoverImage, book.PublicationYear,
		book.TotalCopies, book.AvailableCopies,
	}

	var updated models.BookDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &updated, query, args...)

	logger.Log.Infow("db query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{book.BookID, book.Title, book.TotalCopies, book.AvailableCopies},
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &updated, nil
}

// Delete removes the book and reports how many rows went away.
// The caller must first verify no copies are still out.
func (r *BookWriteRepository) Delete(ctx context.Context, bookID uuid.UUID) (int64, error) {
	const query = `DELETE FROM books WHERE id = $1`

	res, err := r.executor(ctx).ExecContext(ctx, query, bookID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("db query",
		"query", query,
		"args", []any{bookID},
		"result", rowsAffected,
		"error", err,
	)

	return rowsAffected, err
}

// DecrementAvailable takes one copy off the shelf. The guard keeps the
// counter from going negative when two borrows race for the last copy;
// zero rows affected means no copy was free.
func (r *BookWriteRepository) DecrementAvailable(ctx context.Context, bookID uuid.UUID) (int64, error) {
	const query = `
		UPDATE books
		SET available_copies = available_copies - 1, updated_at = NOW()
		WHERE id = $1 AND available_copies > 0
	`

	res, err := r.executor(ctx).ExecContext(ctx, query, bookID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("db query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{bookID},
		"result", rowsAffected,
		"error", err,
	)

	return rowsAffected, err
}

// IncrementAvailable puts one copy back on the shelf, clamped so the
// counter never exceeds total_copies.
func (r *BookWriteRepository) IncrementAvailable(ctx context.Context, bookID uuid.UUID) (int64, error) {
	const query = `
		UPDATE books
		SET available_copies = LEAST(available_copies + 1, total_copies), updated_at = NOW()
		WHERE id = $1
	`

	res, err := r.executor(ctx).ExecContext(ctx, query, bookID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("db query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{bookID},
		"result", rowsAffected,
		"error", err,
	)

	return rowsAffected, err
}
