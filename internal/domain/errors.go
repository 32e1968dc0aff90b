package domain

import "errors"

// Validation errors
var (
	ErrInvalidRating = errors.New("rating must be between 1 and 5")
	ErrEmptyTitle    = errors.New("content title is required")
)
