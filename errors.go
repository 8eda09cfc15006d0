package markbook

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyBook is returned when a mutation targets the top record of a
	// book that has no records.
	ErrEmptyBook = errors.New("no student record")
)

// DeserializationError indicates that transport-format text could not be
// parsed back into a Book.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type DeserializationError struct {
	Input string
	cause error
}

func (e *DeserializationError) Error() string {
	return fmt.Sprintf("failed deserializing %s: %v", e.Input, e.cause)
}

func (e *DeserializationError) Unwrap() error { return e.cause }

// SnapshotFormatError indicates a snapshot blob whose header names an
// unknown codec or compression, or whose framing is malformed.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type SnapshotFormatError struct {
	Detail string
	cause  error
}

func (e *SnapshotFormatError) Error() string {
	return fmt.Sprintf("invalid snapshot: %s", e.Detail)
}

func (e *SnapshotFormatError) Unwrap() error { return e.cause }
