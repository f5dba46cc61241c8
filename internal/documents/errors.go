package documents

import "errors"

var (
	// ErrNotFound is returned for absent documents and for documents owned
	// by another user; callers cannot tell the two apart.
	ErrNotFound = errors.New("document not found")

	// ErrInvalidInput marks upload validation failures.
	ErrInvalidInput = errors.New("invalid input")
)
