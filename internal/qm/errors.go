package qm

import "errors"

var (
	// ErrInvalidInput is returned when the minterm list violates the input
	// contract: it is empty, holds a negative value, a duplicate, or is not
	// sorted ascending.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnreachableState reports an internal invariant violation, such as a
	// prime implicant that covers none of the input minterms.
	ErrUnreachableState = errors.New("unreachable state")
)
