package models

import (
	"time"

	"github.com/google/uuid"
)

// User roles
const (
	RoleReader    = "reader"
	RoleLibrarian = "librarian"
)

// UserDB represents a user record in the database
type UserDB struct {
	UserID       uuid.UUID `json:"id" db:"id"`                 // Primary key
	Username     string    `json:"username" db:"username"`     // Unique username
	Email        string    `json:"email" db:"email"`           // Unique user email
	PasswordHash string    `json:"-" db:"password_hash"`       // Hashed password
	Role         string    `json:"role" db:"role"`             // Role: reader or librarian
	CreatedAt    time.Time `json:"created_at" db:"created_at"` // Creation timestamp
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"` // Last update timestamp
}

// IsLibrarian reports whether the user has the librarian role.
func (u *UserDB) IsLibrarian() bool {
	return u.Role == RoleLibrarian
}
