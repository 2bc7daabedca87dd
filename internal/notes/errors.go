package notes

import "errors"

// ErrInvalidInput is returned when required fields are missing or malformed.
var ErrInvalidInput = errors.New("all fields are required")

// ErrNotFound is returned when no note matches, or when the store holds no
// notes at all.
var ErrNotFound = errors.New("note not found")

// ErrDuplicateTitle is returned when a title collides with another note's.
// Titles are unique across the whole store, not per user.
var ErrDuplicateTitle = errors.New("note with same title already exists")
