package pagination

import "errors"

// Validation errors returned by the page-arithmetic functions.
// Callers should match against them with [errors.Is].
var (
	// ErrInvalidLimit is returned when a limit is zero or negative.
	ErrInvalidLimit = errors.New("limit must be a positive integer")

	// ErrInvalidOffset is returned when an offset is negative.
	ErrInvalidOffset = errors.New("offset must be a non-negative integer")

	// ErrInvalidTotalElements is returned when a total-elements count is
	// negative.
	ErrInvalidTotalElements = errors.New("total elements must be a non-negative integer")
)
