package store

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates an operation referenced a book ID that is not
// in the collection.
var ErrNotFound = errors.New("book not found")

// ValidationError indicates malformed input to a store operation.
// No state is mutated when one is returned.
type ValidationError struct {
	Field  string // Offending field or argument name
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// StorageError indicates the data file could not be read or written.
// Read-time storage errors are fatal for the invocation; write-time
// errors leave the in-memory state ahead of disk and must be surfaced.
type StorageError struct {
	Op   string // load, save
	Path string
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// IsNotFound returns true if the error indicates a missing book.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidation returns true if the error is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsStorage returns true if the error is a StorageError.
func IsStorage(err error) bool {
	var se *StorageError
	return errors.As(err, &se)
}
