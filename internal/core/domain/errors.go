package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrTransport indicates a content store call failed at the
	// network or protocol layer. Adapters wrap it with detail.
	ErrTransport = errors.New("content store request failed")

	// ErrWeekNotFound indicates a query for a week bucket that was
	// never populated by the last classification run.
	ErrWeekNotFound = errors.New("week not found")

	// ErrInvalidPolicy indicates an unsupported week-numbering policy name.
	ErrInvalidPolicy = errors.New("invalid week policy")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidCursor indicates a paginated source repeated a cursor
	// while claiming more pages exist.
	ErrInvalidCursor = errors.New("pagination cursor repeated")
)
