package utils

import (
	"bytes"
	"context"
	"testing"

	"github.com/iov-one/custody"
	"github.com/iov-one/custody/custodytest"
	"github.com/iov-one/custody/errors"
	"github.com/iov-one/custody/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tendermint/tendermint/libs/log"
)

func TestLogging(t *testing.T) {
	var buf bytes.Buffer
	ctx := custody.WithLogger(context.Background(), log.NewTMLogger(&buf))
	ctx = custody.WithHeight(ctx, 42)
	tx := &custodytest.Tx{Msg: &custodytest.Msg{RoutePath: "escrow/release"}}
	db := store.MemStore()

	h := &custodytest.Handler{DeliverResult: custody.DeliverResult{Log: "released"}}
	_, err := NewLogging().Deliver(ctx, db, tx, h)
	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "released")
	assert.Contains(t, out, "path=escrow/release")
	assert.Contains(t, out, "height=42")

	buf.Reset()
	h = &custodytest.Handler{DeliverErr: errors.ErrUnauthorized.New("not the buyer")}
	_, err = NewLogging().Deliver(ctx, db, tx, h)
	assert.True(t, errors.ErrUnauthorized.Is(err))
	assert.Contains(t, buf.String(), "not the buyer")
}
