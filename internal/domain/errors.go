package domain

import "errors"

var (
	// ErrNotFound is returned when no message has the requested id
	ErrNotFound = errors.New("message not found")

	// ErrDuplicateID is returned when two messages share an id
	ErrDuplicateID = errors.New("duplicate message id")

	// ErrInvalidStatus is returned for status or filter names outside the known set
	ErrInvalidStatus = errors.New("invalid status")
)
