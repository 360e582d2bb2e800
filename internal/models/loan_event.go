package models

// Loan event operations
const (
	LoanOpBorrow = "borrow"
	LoanOpReturn = "return"
)

// LoanEvent represents a lending event published to the event feed,
// including the record, user, book and operation type.
type LoanEvent struct {
	EventID   string `json:"event_id"`  // EventID is a unique identifier for the event.
	Timestamp int64  `json:"timestamp"` // Timestamp is the Unix timestamp (in seconds) when the event occurred.
	RecordID  string `json:"record_id"` // RecordID is the identifier of the borrow record involved.
	UserID    string `json:"user_id"`   // UserID is the identifier of the user who borrowed or returned.
	BookID    string `json:"book_id"`   // BookID is the identifier of the book involved.
	Operation string `json:"operation"` // Operation describes the event type, e.g., "borrow" or "return".
}
