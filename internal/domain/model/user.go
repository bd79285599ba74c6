package model

import (
	"errors"
	"strings"
)

// User is an account created lazily on first authenticated request.
// HistoryRecord.UserEmail references users by email (weak reference; deleting
// a user does not cascade to histories).
type User struct {
	ID    int64  `json:"id"    db:"id"`
	Name  string `json:"name"  db:"name"`
	Email string `json:"email" db:"email"`
}

// CreateUserRequest represents a lazy user creation request.
type CreateUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Validate validates the CreateUserRequest fields.
func (r *CreateUserRequest) Validate() error {
	email := strings.TrimSpace(r.Email)
	if email == "" {
		return errors.New("email is required")
	}
	if !strings.Contains(email, "@") {
		return errors.New("email must be a valid address")
	}
	return nil
}
