package errors

// Root errors shared by all extensions. Codes below 100 are reserved for
// this package. Code 1 is reported for any error not wrapping one of these.
var (
	// ErrUnauthorized is returned when the signers of a transaction may
	// not perform the requested operation.
	ErrUnauthorized = Register(2, "unauthorized")

	// ErrNotFound is returned when a referenced record, route or query
	// path does not exist.
	ErrNotFound = Register(3, "not found")

	// ErrModel is returned when a record loaded from the store is not of
	// the expected type.
	ErrModel = Register(5, "invalid model")

	// ErrDuplicate is returned when a record with the same key exists.
	ErrDuplicate = Register(6, "duplicate")

	// ErrHuman is returned on a code path that correct wiring never
	// reaches, like registering the same route twice.
	ErrHuman = Register(7, "coding error")

	// ErrImmutable is returned when a write targets a read only view.
	ErrImmutable = Register(8, "cannot be modified")

	// ErrEmpty is returned when a required value is missing.
	ErrEmpty = Register(9, "value is empty")

	// ErrState is returned when a record is not in a state that allows
	// the operation.
	ErrState = Register(10, "invalid state")

	// ErrType is returned when a value is not of the expected type.
	ErrType = Register(11, "invalid type")

	// ErrAmount is returned for zero or otherwise unusable amounts.
	ErrAmount = Register(12, "invalid amount")

	// ErrInsufficientAmount is returned when a wallet holds less than a
	// transfer requires.
	ErrInsufficientAmount = Register(13, "insufficient amount")

	// ErrInput is returned for malformed input of any kind.
	ErrInput = Register(14, "invalid input")

	// ErrOverflow is returned when a result does not fit its type.
	ErrOverflow = Register(16, "an operation cannot be completed due to value overflow")

	// ErrDatabase is returned when the underlying storage fails.
	ErrDatabase = Register(17, "database error")

	// ErrPanic is returned for a recovered panic. Its details are never
	// shown outside of debug mode.
	ErrPanic = Register(111222, "panic")
)
