package errors

import (
	"fmt"
	"io"
	"reflect"

	"github.com/pkg/errors"
)

// registered maps every code to its root error. Code 1 is kept for
// internal errors and can never be registered.
var registered = map[uint32]*Error{
	internalABCICode: nil,
}

// Register declares a root error with a code unique across all
// extensions. It panics when the code is taken, so call it only from
// package level variable declarations.
func Register(code uint32, description string) *Error {
	if prev, ok := registered[code]; ok {
		name := "(reserved)"
		if prev != nil {
			name = prev.desc
		}
		panic(fmt.Sprintf("error code %d is already registered: %q", code, name))
	}
	e := &Error{code: code, desc: description}
	registered[code] = e
	return e
}

// Error is a root error. Each error returned by a handler should wrap one
// of them, so clients can tell the kind of failure from the response code.
type Error struct {
	code uint32
	desc string
}

func (e Error) Error() string {
	return e.desc
}

func (e Error) ABCICode() uint32 {
	return e.code
}

// New returns an error of this kind with an additional description.
func (e *Error) New(description string) error {
	return Wrap(e, description)
}

// Newf is New with formatting.
func (e *Error) Newf(format string, args ...interface{}) error {
	return Wrap(e, fmt.Sprintf(format, args...))
}

// Is reports whether err is of this kind, unwrapping it as deep as
// needed. A nil kind matches only a nil error.
func (e *Error) Is(err error) bool {
	if e == nil {
		return errIsNil(err)
	}
	for err != nil {
		if err == e {
			return true
		}
		c, ok := err.(causer)
		if !ok {
			return false
		}
		err = c.Cause()
	}
	return false
}

// Wrap adds description to err. The innermost wrap records the stack
// trace. Wrapping nil returns nil. An error that wraps no root error is
// reported to clients as an internal error.
func Wrap(err error, description string) error {
	if err == nil {
		return nil
	}
	if stackTrace(err) == nil {
		err = errors.WithStack(err)
	}
	return &wrappedError{msg: description, parent: err}
}

// Wrapf is Wrap with formatting.
func Wrapf(err error, format string, args ...interface{}) error {
	return Wrap(err, fmt.Sprintf(format, args...))
}

type wrappedError struct {
	msg    string
	parent error
}

func (e *wrappedError) Error() string {
	return e.msg + ": " + e.parent.Error()
}

func (e *wrappedError) Cause() error {
	return e.parent
}

// Format prints the message for %s and %v. %+v adds the stack trace.
func (e *wrappedError) Format(s fmt.State, verb rune) {
	io.WriteString(s, e.Error())
	if verb != 'v' || !s.Flag('+') {
		return
	}
	if st := stackTrace(e); st != nil {
		fmt.Fprintf(s, "%+v", st)
	}
}

// Recover turns a panic into an ErrPanic assigned to err. It must be
// called with defer.
func Recover(err *error) {
	if r := recover(); r != nil {
		*err = Wrapf(ErrPanic, "%v", r)
	}
}

type causer interface {
	Cause() error
}

type stackTracer interface {
	error
	StackTrace() errors.StackTrace
}

// stackTrace returns the outermost stack trace found in the chain of err.
func stackTrace(err error) errors.StackTrace {
	for err != nil {
		if st, ok := err.(stackTracer); ok {
			return st.StackTrace()
		}
		c, ok := err.(causer)
		if !ok {
			return nil
		}
		err = c.Cause()
	}
	return nil
}

// errIsNil also catches a nil pointer stored in a non nil interface.
func errIsNil(err error) bool {
	if err == nil {
		return true
	}
	if v := reflect.ValueOf(err); v.Kind() == reflect.Ptr {
		return v.IsNil()
	}
	return false
}
