package custody

import (
	"encoding/json"
)

// Handler processes the messages of one or more paths, for example
// funding or releasing an escrow.
type Handler interface {
	Checker
	Deliverer
}

// Checker validates a transaction against the mempool state. It must not
// have side effects outside of store.
type Checker interface {
	Check(ctx Context, store KVStore, tx Tx) (*CheckResult, error)
}

// Deliverer executes a transaction included in a block.
type Deliverer interface {
	Deliver(ctx Context, store KVStore, tx Tx) (*DeliverResult, error)
}

// Decorator runs around a handler, for example to verify signatures or to
// recover from a panic. It decides whether next is called at all.
type Decorator interface {
	Check(ctx Context, store KVStore, tx Tx, next Checker) (*CheckResult, error)
	Deliver(ctx Context, store KVStore, tx Tx, next Deliverer) (*DeliverResult, error)
}

// Registry binds handlers to message paths.
type Registry interface {
	// Handle routes every message with the path of the given message to
	// the handler.
	Handle(Msg, Handler)
}

// CheckResult is returned by a successful check. Failures are reported
// through the error return only.
type CheckResult struct {
	// Data is a machine readable result, for example a created id.
	Data []byte
	Log  string
	// GasAllocated is the upper bound of work the tx may do.
	GasAllocated int64
}

// DeliverResult is returned by a successful delivery.
type DeliverResult struct {
	// Data is a machine readable result, for example a created id.
	Data    []byte
	Log     string
	GasUsed int64
}

// Options is the app_state of the genesis file. Every extension owns the
// top level key it reads from.
type Options map[string]json.RawMessage

// ReadOptions decodes the JSON under key into obj. A missing key leaves
// obj untouched.
func (o Options) ReadOptions(key string, obj interface{}) error {
	raw, ok := o[key]
	if !ok || len(raw) == 0 {
		return nil
	}
	return json.Unmarshal(raw, obj)
}

// Initializer writes the genesis state of an extension.
type Initializer interface {
	FromGenesis(Options, KVStore) error
}

// ChainInitializers returns an initializer running all of inits in order.
// It stops at the first failure.
func ChainInitializers(inits ...Initializer) Initializer {
	return initializers(inits)
}

type initializers []Initializer

func (all initializers) FromGenesis(opts Options, db KVStore) error {
	for _, init := range all {
		if err := init.FromGenesis(opts, db); err != nil {
			return err
		}
	}
	return nil
}
