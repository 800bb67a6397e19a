package errors

import (
	"fmt"
)

const (
	// SuccessABCICode is the response code of a successful call.
	SuccessABCICode uint32 = 0

	// internalABCICode is reported for errors that wrap no registered
	// root error. Their message is hidden outside of debug mode.
	internalABCICode uint32 = 1
	internalABCILog         = "internal error"
)

// ABCIInfo returns the response code and log for err. Outside of debug
// mode only registered errors keep their message, and a recovered panic is
// reduced to its root description. In debug mode the log holds the full
// error with its stack trace.
func ABCIInfo(err error, debug bool) (uint32, string) {
	if errIsNil(err) {
		return SuccessABCICode, ""
	}
	code := abciCode(err)
	switch {
	case debug:
		return code, fmt.Sprintf("%+v", err)
	case code == internalABCICode:
		return code, internalABCILog
	case code == ErrPanic.code:
		return code, ErrPanic.desc
	default:
		return code, err.Error()
	}
}

// abciCode returns the code of the first error in the chain of err that
// carries one.
func abciCode(err error) uint32 {
	for !errIsNil(err) {
		if c, ok := err.(interface{ ABCICode() uint32 }); ok {
			return c.ABCICode()
		}
		next, ok := err.(causer)
		if !ok {
			break
		}
		err = next.Cause()
	}
	return internalABCICode
}

// FromABCICode returns the root error registered for code, or nil. Clients
// use it to turn a response code back into an error they can test with Is.
func FromABCICode(code uint32) *Error {
	return registered[code]
}
