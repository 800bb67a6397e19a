package app

import (
	"context"
	"testing"

	"github.com/iov-one/custody"
	"github.com/iov-one/custody/custodytest"
	"github.com/iov-one/custody/custodytest/assert"
	"github.com/iov-one/custody/errors"
	"github.com/iov-one/custody/store"
	"github.com/iov-one/custody/x/utils"
)

func TestChain(t *testing.T) {
	d1 := &custodytest.Decorator{}
	d2 := &custodytest.Decorator{}
	d3 := &custodytest.Decorator{}
	h := &custodytest.Handler{}

	stack := ChainDecorators(
		d1,
		utils.NewLogging(),
		utils.NewRecovery(),
		d2,
		heightPanic(6),
		d3,
	).WithHandler(h)

	bg := context.Background()
	db := store.MemStore()
	tx := &custodytest.Tx{Msg: &custodytest.Msg{RoutePath: "escrow/create"}}

	_, err := stack.Check(bg, db, tx)
	assert.Nil(t, err)
	_, err = stack.Deliver(custody.WithHeight(bg, 4), db, tx)
	assert.Nil(t, err)

	assert.Equal(t, 2, d1.CallCount())
	assert.Equal(t, 2, d2.CallCount())
	assert.Equal(t, 2, d3.CallCount())
	assert.Equal(t, 2, h.CallCount())

	// trigger a panic below the recovery decorator
	ctx := custody.WithHeight(bg, 8)
	_, err = stack.Check(ctx, db, tx)
	assert.IsErr(t, errors.ErrPanic, err)
	_, err = stack.Deliver(ctx, db, tx)
	assert.IsErr(t, errors.ErrPanic, err)

	assert.Equal(t, 4, d1.CallCount())
	assert.Equal(t, 4, d2.CallCount())
	// the panic happens before d3 is reached
	assert.Equal(t, 2, d3.CallCount())
	assert.Equal(t, 2, h.CallCount())
}

func TestChainSkipsNil(t *testing.T) {
	var nilDecorator *custodytest.Decorator
	h := &custodytest.Handler{}
	stack := ChainDecorators(nil, nilDecorator).Chain(nil).WithHandler(h)

	_, err := stack.Deliver(context.Background(), store.MemStore(), &custodytest.Tx{})
	assert.Nil(t, err)
	assert.Equal(t, 1, h.CallCount())
}

// heightPanic panics when the block height is above the given value.
type heightPanic int64

func (p heightPanic) Check(ctx custody.Context, db custody.KVStore, tx custody.Tx, next custody.Checker) (*custody.CheckResult, error) {
	if h, _ := custody.GetHeight(ctx); h > int64(p) {
		panic("too high")
	}
	return next.Check(ctx, db, tx)
}

func (p heightPanic) Deliver(ctx custody.Context, db custody.KVStore, tx custody.Tx, next custody.Deliverer) (*custody.DeliverResult, error) {
	if h, _ := custody.GetHeight(ctx); h > int64(p) {
		panic("too high")
	}
	return next.Deliver(ctx, db, tx)
}
