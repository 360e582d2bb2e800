package models

import (
	"time"

	"github.com/google/uuid"
)

// LoanPeriod is how long a borrowed book may be kept before it is due.
const LoanPeriod = 14 * 24 * time.Hour

// Borrow record statuses. A record never stores its status: it is derived
// from the timestamps each time it is read.
const (
	StatusActive   = "active"
	StatusOverdue  = "overdue"
	StatusReturned = "returned"
)

// BorrowRecordDB represents a borrow record in the database
type BorrowRecordDB struct {
	RecordID   uuid.UUID  `json:"id" db:"id"`                   // Primary key
	UserID     uuid.UUID  `json:"user_id" db:"user_id"`         // Borrower
	BookID     uuid.UUID  `json:"book_id" db:"book_id"`         // Borrowed book
	BorrowedAt time.Time  `json:"borrowed_at" db:"borrowed_at"` // When the loan started
	DueAt      time.Time  `json:"due_at" db:"due_at"`           // When the book is due back
	ReturnedAt *time.Time `json:"returned_at" db:"returned_at"` // When the book came back, nil while out
}

// StatusAt derives the record's status as of the given instant.
// A returned record stays returned even if it came back late.
func (r *BorrowRecordDB) StatusAt(now time.Time) string {
	if r.ReturnedAt != nil {
		return StatusReturned
	}
	if now.After(r.DueAt) {
		return StatusOverdue
	}
	return StatusActive
}

// IsOpen reports whether the book is still out on this record.
func (r *BorrowRecordDB) IsOpen() bool {
	return r.ReturnedAt == nil
}

// DaysOverdue returns how many whole days past due the record is at the
// given instant, or 0 if it is not overdue.
func (r *BorrowRecordDB) DaysOverdue(now time.Time) int {
	if r.StatusAt(now) != StatusOverdue {
		return 0
	}
	return int(now.Sub(r.DueAt).Hours() / 24)
}

// BorrowRecordDetail is a borrow record joined with the book it references
// and, for librarian views, the borrower. Status carries the derived status
// and is filled in by the caller, never read from the database.
type BorrowRecordDetail struct {
	BorrowRecordDB
	BookTitle  string `json:"book_title" db:"book_title"`       // Title of the borrowed book
	BookAuthor string `json:"book_author" db:"book_author"`     // Author of the borrowed book
	Username   string `json:"username,omitempty" db:"username"` // Borrower, set on librarian listings only
	Status     string `json:"status" db:"-"`                    // Derived status at read time
}
