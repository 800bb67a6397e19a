package app

import (
	"encoding/json"
	"testing"

	"github.com/iov-one/custody"
	"github.com/iov-one/custody/custodytest"
	"github.com/iov-one/custody/store"
	"github.com/iov-one/custody/x/cash"
	"github.com/iov-one/custody/x/escrow"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenInitOptions(t *testing.T) {
	addr := custodytest.RandomAddr(t)
	raw, err := GenInitOptions([]string{addr.String()})
	require.NoError(t, err)

	var opts custody.Options
	require.NoError(t, json.Unmarshal(raw, &opts))

	db := store.MemStore()
	require.NoError(t, Initializers().FromGenesis(opts, db))

	amount, err := CashControl().Balance(db, addr)
	require.NoError(t, err)
	assert.Equal(t, DefaultTokens, amount)

	var accounts []cash.GenesisAccount
	require.NoError(t, opts.ReadOptions("cash", &accounts))
	require.Len(t, accounts, 1)
	assert.Equal(t, addr, accounts[0].Address)

	var conf custody.Options
	require.NoError(t, opts.ReadOptions("conf", &conf))
	var escrowConf escrow.Configuration
	require.NoError(t, conf.ReadOptions(escrow.BucketName, &escrowConf))
	assert.Equal(t, escrow.DefaultConfiguration(), escrowConf)
}

func TestGenInitOptionsGeneratesKey(t *testing.T) {
	raw, err := GenInitOptions(nil)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"cash"`)

	_, err = GenInitOptions([]string{"not-an-address"})
	assert.Error(t, err)
}
