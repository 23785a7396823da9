package adapter

import "errors"

var (
	// ErrResultNotFound is returned by result backends when no result is
	// stored under the requested task identifier.
	ErrResultNotFound = errors.New("task result not found")

	// ErrEmptyTopic is returned when a publish call names no topic and the
	// producer has no default topic configured either.
	ErrEmptyTopic = errors.New("no topic provided")
)
