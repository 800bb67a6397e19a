package custody_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/iov-one/custody"
	"github.com/iov-one/custody/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateErrorResult(t *testing.T) {
	cases := map[string]struct {
		err  error
		code uint32
		log  string
	}{
		"stdlib error is redacted": {
			err:  fmt.Errorf("base"),
			code: 1,
			log:  "internal error",
		},
		"registered error": {
			err:  errors.ErrUnauthorized.New("nonce"),
			code: errors.ErrUnauthorized.ABCICode(),
			log:  "nonce: unauthorized",
		},
		"wrapped registered error": {
			err:  errors.Wrap(errors.ErrNotFound.New("escrow"), "load"),
			code: errors.ErrNotFound.ABCICode(),
			log:  "load: escrow: not found",
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			dres := custody.DeliverTxError(tc.err, false)
			assert.Equal(t, tc.code, dres.Code)
			assert.True(t, dres.IsErr())
			assert.True(t, strings.HasSuffix(dres.Log, tc.log), dres.Log)
			assert.True(t, strings.HasPrefix(dres.Log, "cannot deliver tx"), dres.Log)

			cres := custody.CheckTxError(tc.err, false)
			assert.Equal(t, tc.code, cres.Code)
			assert.True(t, cres.IsErr())
			assert.True(t, strings.HasSuffix(cres.Log, tc.log), cres.Log)
			assert.True(t, strings.HasPrefix(cres.Log, "cannot check tx"), cres.Log)
		})
	}
}

func TestDebugShowsInternalError(t *testing.T) {
	res := custody.DeliverTxError(fmt.Errorf("secret detail"), true)
	assert.Equal(t, uint32(1), res.Code)
	assert.Contains(t, res.Log, "secret detail")
}

func TestOrError(t *testing.T) {
	dres := custody.DeliverOrError(&custody.DeliverResult{Data: []byte("ok"), GasUsed: 7}, nil, false)
	assert.False(t, dres.IsErr())
	assert.Equal(t, []byte("ok"), dres.Data)
	assert.Equal(t, int64(7), dres.GasUsed)

	cres := custody.CheckOrError(&custody.CheckResult{Log: "fine", GasAllocated: 50}, nil, false)
	assert.False(t, cres.IsErr())
	assert.Equal(t, "fine", cres.Log)
	assert.Equal(t, int64(50), cres.GasWanted)

	cres = custody.CheckOrError(nil, errors.ErrState.New("done"), false)
	assert.Equal(t, errors.ErrState.ABCICode(), cres.Code)
}

func TestParseDeliverOrError(t *testing.T) {
	ok := custody.DeliverOrError(&custody.DeliverResult{Data: []byte{1, 2}}, nil, false)
	res, err := custody.ParseDeliverOrError(ok)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2}, res.Data)

	failed := custody.DeliverOrError(nil, errors.ErrInsufficientAmount.New("balance"), false)
	_, err = custody.ParseDeliverOrError(failed)
	require.Error(t, err)
	assert.True(t, errors.ErrInsufficientAmount.Is(err))

	_, err = custody.ParseDeliverOrError(custody.DeliverTxError(fmt.Errorf("x"), false))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "code 1")
}
