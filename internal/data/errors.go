package data

import "errors"

// Shared sentinel errors for data-layer repositories.
var (
	// ErrHistoryNotFound is returned when no history record matches the lookup.
	ErrHistoryNotFound = errors.New("history record not found")
	// ErrUserNotFound is returned when no user matches the lookup.
	ErrUserNotFound = errors.New("user not found")
)
