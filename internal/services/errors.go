package services

import "errors"

// Persistence outcome kinds. Handlers branch on these instead of on
// datastore-specific error codes.
var (
	ErrNotFound        = errors.New("user profile not found")
	ErrDuplicateUserID = errors.New("user profile already exists for this userId")
)
