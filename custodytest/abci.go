package custodytest

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/iov-one/custody"
	"github.com/iov-one/custody/errors"
	abci "github.com/tendermint/tendermint/abci/types"
)

// Tester is implemented by both *testing.T and *testing.B. Use it instead of
// the pointer type to allow notation to accept both objects.
type Tester interface {
	Helper()
	Errorf(string, ...interface{})
	Fatalf(string, ...interface{})
	Logf(string, ...interface{})
}

// Runner provides a translation layer between an ABCI interface and a
// custody application. It takes care of serializing transactions and
// creating blocks with a controlled wall clock time.
type Runner struct {
	chainID string
	height  int64
	now     time.Time
	t       Tester
	app     abci.Application
}

// NewRunner creates a Runner instance that can be used to process deliver
// and check transaction requests using the custody API. Blocks are created
// starting at the given time.
func NewRunner(t Tester, app abci.Application, chainID string, start time.Time) *Runner {
	return &Runner{
		chainID: chainID,
		now:     start,
		t:       t,
		app:     app,
	}
}

// App is the view of the runner available inside of a block.
type App interface {
	DeliverTx(custody.Tx) (*custody.DeliverResult, error)
	CheckTx(custody.Tx) error
}

var _ App = (*Runner)(nil)

// InitChain serialize to JSON given genesis and loads it. As with a node,
// the genesis is loaded before the first block, which commits it.
func (r *Runner) InitChain(genesis interface{}) {
	r.t.Helper()

	raw, err := json.MarshalIndent(genesis, "", "  ")
	if err != nil {
		r.t.Fatalf("cannot JSON serialize genesis: %s", err)
	}

	r.app.InitChain(abci.RequestInitChain{
		Time:          r.now,
		ChainId:       r.chainID,
		AppStateBytes: raw,
	})
	changed := r.InBlock(func(App) error { return nil })
	if !changed {
		r.t.Fatalf("genesis did not change the state")
	}
}

// CheckTx translates given transaction into ABCI interface and executes.
func (r *Runner) CheckTx(tx custody.Tx) error {
	raw, err := tx.Marshal()
	if err != nil {
		return errors.Wrap(err, "cannot marshal transaction")
	}
	if resp := r.app.CheckTx(raw); resp.Code != errors.SuccessABCICode {
		return custody.ResponseError(resp.Code, resp.Log)
	}
	return nil
}

// DeliverTx translates given transaction into ABCI interface and executes.
// A failed response is returned as the registered root error for its code.
func (r *Runner) DeliverTx(tx custody.Tx) (*custody.DeliverResult, error) {
	raw, err := tx.Marshal()
	if err != nil {
		return nil, errors.Wrap(err, "cannot marshal transaction")
	}
	return custody.ParseDeliverOrError(r.app.DeliverTx(raw))
}

// Advance moves the clock used for the next block forward.
func (r *Runner) Advance(d time.Duration) {
	r.now = r.now.Add(d)
}

// Height returns the height of the last created block.
func (r *Runner) Height() int64 {
	return r.height
}

// InBlock begins a block and runs given function. All transactions executed
// withing given function are part of newly created block. Upon success the
// block is finished and changes commited.
// InBlock returns true if the application state was modified.
//
// Any failure is ending the test instantly.
func (r *Runner) InBlock(executeTx func(App) error) bool {
	r.t.Helper()

	r.height++
	initialHash := r.app.Info(abci.RequestInfo{}).LastBlockAppHash

	r.app.BeginBlock(abci.RequestBeginBlock{
		Header: abci.Header{
			ChainID: r.chainID,
			Height:  r.height,
			Time:    r.now,
		},
	})

	if err := executeTx(r); err != nil {
		r.t.Fatalf("operation failed with %+v", err)
	}

	r.app.EndBlock(abci.RequestEndBlock{Height: r.height})

	finalHash := r.app.Commit().Data
	return !bytes.Equal(initialHash, finalHash)
}

// Query returns the raw value the given path handler returns for the key.
func (r *Runner) Query(path string, key []byte) ([]byte, error) {
	resp := r.app.Query(abci.RequestQuery{
		Path: path,
		Data: key,
	})
	if resp.Code != errors.SuccessABCICode {
		return nil, custody.ResponseError(resp.Code, resp.Log)
	}
	return resp.Value, nil
}
