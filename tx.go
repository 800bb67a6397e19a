package custody

import (
	"reflect"

	"github.com/iov-one/custody/errors"
)

// Msg is a request to change the state, like creating or releasing an
// escrow. Who sent it is carried by the Tx wrapping it.
type Msg interface {
	// Path selects the handler of the message. It has the form
	// "<extension>/<action>" and matches [0-9A-Za-z_\-/]+.
	Path() string

	// Validate checks everything that can be checked without reading
	// the store.
	Validate() error
}

// Marshaller is anything with a binary form.
type Marshaller interface {
	Marshal() ([]byte, error)
}

// Persistent is a Marshaller that can also be loaded back. Unmarshal
// usually needs a pointer receiver, which is why it is separate.
type Persistent interface {
	Marshaller
	Unmarshal([]byte) error
}

// Tx is what clients submit: a single message together with whatever the
// decorators need to authenticate it.
type Tx interface {
	Persistent
	GetMsg() (Msg, error)
}

// TxDecoder parses the raw bytes of a transaction.
type TxDecoder func(raw []byte) (Tx, error)

// GetPath returns the path of the message, or "(missing)" when the
// transaction holds none.
func GetPath(tx Tx) string {
	if msg, err := tx.GetMsg(); err == nil && msg != nil {
		return msg.Path()
	}
	return "(missing)"
}

// LoadMsg copies the message of tx into destination, which must point to
// the concrete message type, and validates it.
func LoadMsg(tx Tx, destination interface{}) error {
	msg, err := tx.GetMsg()
	if err != nil {
		return errors.Wrap(err, "cannot get transaction message")
	}
	if msg == nil {
		return errors.Wrap(errors.ErrInput, "nil message")
	}

	dest := reflect.ValueOf(destination)
	if dest.Kind() != reflect.Ptr {
		return errors.Wrapf(errors.ErrType, "destination %T is not a pointer", destination)
	}
	src := reflect.Indirect(reflect.ValueOf(msg))
	if !src.Type().AssignableTo(dest.Elem().Type()) {
		return errors.Wrapf(errors.ErrType, "%T cannot be loaded into %T", msg, destination)
	}
	dest.Elem().Set(src)

	if err := msg.Validate(); err != nil {
		return errors.Wrap(err, "invalid message")
	}
	return nil
}
