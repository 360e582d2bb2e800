package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"github.com/segmentio/kafka-go"

	"github.com/avoronov/digital-library/internal/logger"
	"github.com/avoronov/digital-library/internal/models"
)

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrBookUnavailable = errors.New("no copies of this book are available")
	ErrRecordNotFound  = errors.New("borrow record not found")
	ErrAlreadyReturned = errors.New("this book has already been returned")
	ErrForbidden       = errors.New("operation not allowed for this user")
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// AccountReader looks up users for lending checks.
type AccountReader interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
}

// BookGetter looks up a single book.
type BookGetter interface {
	GetByID(ctx context.Context, bookID uuid.UUID) (*models.BookDB, error)
}

// AvailabilityWriter adjusts the number of copies on the shelf.
type AvailabilityWriter interface {
	DecrementAvailable(ctx context.Context, bookID uuid.UUID) (int64, error) // Takes one copy off the shelf
	IncrementAvailable(ctx context.Context, bookID uuid.UUID) (int64, error) // Puts one copy back on the shelf
}

// BorrowReader defines read operations for borrow records.
type BorrowReader interface {
	GetByID(ctx context.Context, recordID uuid.UUID) (*models.BorrowRecordDB, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.BorrowRecordDetail, error)
	ListAll(ctx context.Context, status string, now time.Time) ([]models.BorrowRecordDetail, error)
}

// BorrowWriter defines write operations for borrow records.
type BorrowWriter interface {
	Create(ctx context.Context, userID, bookID uuid.UUID, borrowedAt, dueAt time.Time) (*models.BorrowRecordDB, error)
	SetReturned(ctx context.Context, recordID uuid.UUID, returnedAt time.Time) (int64, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// LendingService handles borrowing and returning books and publishes loan
// events to Kafka.
type LendingService struct {
	userRepo    AccountReader
	bookRepo    BookGetter
	availRepo   AvailabilityWriter
	readRepo    BorrowReader
	writeRepo   BorrowWriter
	cacheRepo   StatsInvalidator
	kafkaWriter KafkaWriter
}

// NewLendingService creates a new LendingService.
func NewLendingService(
	userRepo AccountReader,
	bookRepo BookGetter,
	availRepo AvailabilityWriter,
	readRepo BorrowReader,
	writeRepo BorrowWriter,
	cacheRepo StatsInvalidator,
	kafkaWriter KafkaWriter,
) *LendingService {
	return &LendingService{
		userRepo:    userRepo,
		bookRepo:    bookRepo,
		availRepo:   availRepo,
		readRepo:    readRepo,
		writeRepo:   writeRepo,
		cacheRepo:   cacheRepo,
		kafkaWriter: kafkaWriter,
	}
}

// publishLoanEvent publishes a borrow or return event to Kafka.
func (s *LendingService) publishLoanEvent(ctx context.Context, record *models.BorrowRecordDB, operation string) {
	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "record_id", record.RecordID)
		return
	}

	event := models.LoanEvent{
		EventID:   uuid.NewString(),
		Timestamp: time.Now().Unix(),
		RecordID:  record.RecordID.String(),
		UserID:    record.UserID.String(),
		BookID:    record.BookID.String(),
		Operation: operation,
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal loan event for Kafka", "record_id", record.RecordID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.EventID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish loan event to Kafka", "record_id", record.RecordID, "error", err)
	} else {
		logger.Log.Infow("Loan event published to Kafka", "record_id", record.RecordID, "operation", operation)
	}
}

// invalidateStats drops the cached statistics after a lending change.
func (s *LendingService) invalidateStats(ctx context.Context) {
	if err := s.cacheRepo.Invalidate(ctx); err != nil {
		logger.Log.Errorw("failed to invalidate stats cache", "err", err)
	}
}

// BorrowBook takes one copy of the book off the shelf and opens a borrow
// record due 14 days from now. The decrement and the insert run in the same
// request transaction, so a failed insert puts the copy back.
func (s *LendingService) BorrowBook(ctx context.Context, userID, bookID uuid.UUID) (*models.BorrowRecordDB, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "userID", userID, "error", err)
		return nil, err
	}
	if user == nil {
		logger.Log.Errorw("user not found", "userID", userID)
		return nil, ErrUserNotFound
	}
	if user.IsLibrarian() {
		logger.Log.Errorw("only readers can borrow books", "userID", userID)
		return nil, ErrForbidden
	}

	book, err := s.bookRepo.GetByID(ctx, bookID)
	if err != nil {
		logger.Log.Errorw("failed to get book", "bookID", bookID, "error", err)
		return nil, err
	}
	if book == nil {
		logger.Log.Errorw("book not found", "bookID", bookID)
		return nil, ErrBookNotFound
	}

	rows, err := s.availRepo.DecrementAvailable(ctx, bookID)
	if err != nil {
		logger.Log.Errorw("failed to decrement availability", "bookID", bookID, "error", err)
		return nil, err
	}
	if rows == 0 {
		logger.Log.Errorw("no copies available", "bookID", bookID)
		return nil, ErrBookUnavailable
	}

	now := time.Now().UTC()
	record, err := s.writeRepo.Create(ctx, userID, bookID, now, now.Add(models.LoanPeriod))
	if err != nil {
		logger.Log.Errorw("failed to create borrow record", "userID", userID, "bookID", bookID, "error", err)
		return nil, err
	}

	s.invalidateStats(ctx)
	s.publishLoanEvent(ctx, record, models.LoanOpBorrow)

	return record, nil
}

// ReturnBook closes an open borrow record and puts the copy back on the
// shelf. Only the record's owner or a librarian may return it.
func (s *LendingService) ReturnBook(ctx context.Context, recordID, actorID uuid.UUID) (*models.BorrowRecordDB, error) {
	record, err := s.readRepo.GetByID(ctx, recordID)
	if err != nil {
		logger.Log.Errorw("failed to get borrow record", "recordID", recordID, "error", err)
		return nil, err
	}
	if record == nil {
		logger.Log.Errorw("borrow record not found", "recordID", recordID)
		return nil, ErrRecordNotFound
	}
	if record.ReturnedAt != nil {
		return nil, ErrAlreadyReturned
	}

	actor, err := s.userRepo.GetByID(ctx, actorID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "userID", actorID, "error", err)
		return nil, err
	}
	if actor == nil {
		return nil, ErrUserNotFound
	}
	if record.UserID != actorID && !actor.IsLibrarian() {
		logger.Log.Errorw("return denied", "recordID", recordID, "actorID", actorID)
		return nil, ErrForbidden
	}

	now := time.Now().UTC()
	rows, err := s.writeRepo.SetReturned(ctx, recordID, now)
	if err != nil {
		logger.Log.Errorw("failed to close borrow record", "recordID", recordID, "error", err)
		return nil, err
	}
	if rows == 0 {
		// lost a race with another return of the same record
		return nil, ErrAlreadyReturned
	}

	if _, err := s.availRepo.IncrementAvailable(ctx, record.BookID); err != nil {
		logger.Log.Errorw("failed to restore availability", "bookID", record.BookID, "error", err)
		return nil, err
	}

	record.ReturnedAt = &now

	s.invalidateStats(ctx)
	s.publishLoanEvent(ctx, record, models.LoanOpReturn)

	return record, nil
}

// MyLoans returns the caller's borrow records grouped by derived status.
// Active loans keep the newest-first query order, overdue loans are sorted
// by due date so the most overdue come first, returned loans by return date
// descending.
func (s *LendingService) MyLoans(ctx context.Context, userID uuid.UUID) (active, overdue, returned []models.BorrowRecordDetail, err error) {
	records, err := s.readRepo.ListByUser(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list borrow records", "userID", userID, "error", err)
		return nil, nil, nil, err
	}

	now := time.Now().UTC()
	for i := range records {
		records[i].Status = records[i].StatusAt(now)
		switch records[i].Status {
		case models.StatusActive:
			active = append(active, records[i])
		case models.StatusOverdue:
			overdue = append(overdue, records[i])
		default:
			returned = append(returned, records[i])
		}
	}

	sort.Slice(overdue, func(i, j int) bool {
		return overdue[i].DueAt.Before(overdue[j].DueAt)
	})
	sort.Slice(returned, func(i, j int) bool {
		return returned[i].ReturnedAt.After(*returned[j].ReturnedAt)
	})

	return active, overdue, returned, nil
}

// AllLoans returns every borrow record, optionally filtered by derived
// status. An empty status means all records.
func (s *LendingService) AllLoans(ctx context.Context, status string) ([]models.BorrowRecordDetail, error) {
	switch status {
	case "", models.StatusActive, models.StatusOverdue, models.StatusReturned:
	default:
		return nil, fmt.Errorf("%w: unknown status %q", ErrValidation, status)
	}

	now := time.Now().UTC()
	records, err := s.readRepo.ListAll(ctx, status, now)
	if err != nil {
		logger.Log.Errorw("failed to list borrow records", "status", status, "error", err)
		return nil, err
	}

	for i := range records {
		records[i].Status = records[i].StatusAt(now)
	}

	return records, nil
}
