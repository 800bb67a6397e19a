package app

import (
	"reflect"

	"github.com/iov-one/custody"
)

// Decorators is an ordered list of decorators waiting for the handler
// they wrap.
type Decorators struct {
	chain []custody.Decorator
}

// ChainDecorators starts a decorator stack. The first decorator given is
// the outermost one and sees every transaction first.
//
//	app.ChainDecorators(
//	  utils.NewLogging(),
//	  utils.NewRecovery(),
//	  sigs.NewDecorator(),
//	  utils.NewSavepoint().OnDeliver(),
//	).WithHandler(router)
func ChainDecorators(chain ...custody.Decorator) Decorators {
	return Decorators{}.Chain(chain...)
}

// Chain returns a copy of d with chain appended. Nil decorators are left
// out so optional ones can be passed unconditionally.
func (d Decorators) Chain(chain ...custody.Decorator) Decorators {
	all := append([]custody.Decorator(nil), d.chain...)
	for _, dec := range chain {
		if dec == nil {
			continue
		}
		if v := reflect.ValueOf(dec); v.Kind() == reflect.Ptr && v.IsNil() {
			continue
		}
		all = append(all, dec)
	}
	return Decorators{chain: all}
}

// WithHandler closes the stack around h.
func (d Decorators) WithHandler(h custody.Handler) custody.Handler {
	for i := len(d.chain) - 1; i >= 0; i-- {
		h = decorated{dec: d.chain[i], next: h}
	}
	return h
}

// decorated is a handler that runs dec around next.
type decorated struct {
	dec  custody.Decorator
	next custody.Handler
}

var _ custody.Handler = decorated{}

func (d decorated) Check(ctx custody.Context, db custody.KVStore, tx custody.Tx) (*custody.CheckResult, error) {
	return d.dec.Check(ctx, db, tx, d.next)
}

func (d decorated) Deliver(ctx custody.Context, db custody.KVStore, tx custody.Tx) (*custody.DeliverResult, error) {
	return d.dec.Deliver(ctx, db, tx, d.next)
}
