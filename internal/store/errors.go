package store

import "errors"

var (
	// ErrNotFound is returned when no record in the collection carries the requested id.
	ErrNotFound = errors.New("document not found")
)
