package escrow

import (
	"testing"

	"github.com/iov-one/custody/custodytest/assert"
	"github.com/iov-one/custody/store/iavl"
)

// Cancel and a full payout empty wallets. The emptied state must still
// commit to the tree.
func TestEmptiedWalletsCommit(t *testing.T) {
	commit := iavl.NewMemCommitStore()
	defer commit.Close()

	f := newFixture(t)
	cache := commit.CacheWrap()
	f.db = cache
	assert.Nil(t, f.cash.CoinMint(cache, f.buyer, initialTokens))

	addr := f.create(nil)
	_, err := f.ctrl.Cancel(at(5), cache, addr, f.buyer)
	assert.Nil(t, err)

	assert.Nil(t, f.cash.MoveCoins(cache, f.buyer, f.seller, initialTokens))
	assert.Nil(t, cache.Write())

	_, err = commit.Commit()
	assert.Nil(t, err)

	f.db = commit.Adapter()
	assert.Equal(t, uint64(0), f.balance(addr))
	assert.Equal(t, uint64(0), f.balance(f.buyer))
	assert.Equal(t, uint64(initialTokens), f.balance(f.seller))
}
