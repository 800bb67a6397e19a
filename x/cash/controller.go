package cash

import (
	"github.com/iov-one/custody"
	"github.com/iov-one/custody/errors"
)

// Balancer reads the amount of tokens held by an address.
type Balancer interface {
	Balance(custody.ReadOnlyKVStore, custody.Address) (uint64, error)
}

// CoinMover moves tokens between two addresses. No authorization is
// performed, callers must ensure the source agreed.
type CoinMover interface {
	MoveCoins(db custody.KVStore, src, dest custody.Address, amount uint64) error
}

// CoinMinter creates new tokens.
type CoinMinter interface {
	CoinMint(db custody.KVStore, dest custody.Address, amount uint64) error
}

// Controller is the functionality needed by cash.Handler and other
// extensions that hold tokens.
type Controller interface {
	Balancer
	CoinMover
	CoinMinter
}

// BaseController is the default implementation of the Controller.
type BaseController struct {
	bucket Bucket
}

var _ Controller = BaseController{}

// NewController returns a controller working on given bucket.
func NewController(bucket Bucket) BaseController {
	return BaseController{bucket: bucket}
}

// Balance returns the amount of tokens held by given address. ErrNotFound
// is returned for an address that has no wallet, which includes a wallet
// that was emptied.
func (c BaseController) Balance(db custody.ReadOnlyKVStore, addr custody.Address) (uint64, error) {
	w, err := c.bucket.Get(db, addr)
	if err != nil {
		return 0, err
	}
	if w == nil {
		return 0, errors.Wrapf(errors.ErrNotFound, "wallet %s", addr)
	}
	return w.Amount(), nil
}

// MoveCoins moves the given amount from src to dest.
// If src doesn't exist, or doesn't have sufficient
// coins, it fails. Moving zero tokens is a no-op.
func (c BaseController) MoveCoins(db custody.KVStore, src, dest custody.Address, amount uint64) error {
	if amount == 0 {
		return nil
	}
	if err := src.Validate(); err != nil {
		return errors.Wrap(err, "src")
	}
	if err := dest.Validate(); err != nil {
		return errors.Wrap(err, "dest")
	}

	sender, err := c.bucket.Get(db, src)
	if err != nil {
		return err
	}
	if sender == nil {
		return errors.Wrapf(ErrEmptyAccount, "%s", src)
	}
	if src.Equals(dest) {
		if sender.Amount() < amount {
			return errors.Wrapf(errors.ErrInsufficientAmount, "balance %d, required %d", sender.Amount(), amount)
		}
		return nil
	}

	recipient, err := c.bucket.GetOrCreate(db, dest)
	if err != nil {
		return err
	}
	// Both changes are validated before anything is written.
	if err := sender.Subtract(amount); err != nil {
		return err
	}
	if err := recipient.Add(amount); err != nil {
		return err
	}

	if err := c.bucket.Save(db, sender); err != nil {
		return err
	}
	return c.bucket.Save(db, recipient)
}

// CoinMint attempts to add the given amount of coins to
// the destination address. Fails if it overflows the wallet.
func (c BaseController) CoinMint(db custody.KVStore, dest custody.Address, amount uint64) error {
	recipient, err := c.bucket.GetOrCreate(db, dest)
	if err != nil {
		return err
	}
	if err := recipient.Add(amount); err != nil {
		return err
	}
	return c.bucket.Save(db, recipient)
}
