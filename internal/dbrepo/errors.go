package dbrepo

import "errors"

// Sentinel errors surfaced to handlers, which map them onto the HTTP
// error taxonomy.
var (
	ErrNotFound          = errors.New("record not found")
	ErrDuplicateEmail    = errors.New("Email already exists")
	ErrNoUpdatableFields = errors.New("No valid fields to update")
)
