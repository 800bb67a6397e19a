package escrow

import (
	"github.com/iov-one/custody/errors"
)

// Escrow package takes 1000-1010 error code range.
var (
	// ErrInvalidTimeout is returned when a timeout period is not positive.
	ErrInvalidTimeout = errors.Register(1000, "invalid timeout period")

	// ErrAlreadyFunded is returned when an operation requires a record that
	// did not receive funds yet.
	ErrAlreadyFunded = errors.Register(1001, "escrow already funded")

	// ErrNotFunded is returned when an operation requires a funded record.
	ErrNotFunded = errors.Register(1002, "escrow not funded")

	// ErrTimeoutNotReached is returned when the seller attempts to release
	// funds before the timeout period elapsed.
	ErrTimeoutNotReached = errors.Register(1003, "timeout not reached")
)
