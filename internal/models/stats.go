package models

// LibraryStats holds aggregate counters shown on the public overview
// and the librarian dashboard.
type LibraryStats struct {
	TotalBooks    int `json:"total_books"`    // Distinct titles in the catalog
	TotalCopies   int `json:"total_copies"`   // Physical copies owned
	TotalReaders  int `json:"total_readers"`  // Registered reader accounts
	ActiveLoans   int `json:"active_loans"`   // Open borrow records
	OverdueLoans  int `json:"overdue_loans"`  // Open records past their due date
	ReturnedLoans int `json:"returned_loans"` // Closed borrow records
}
