package cash

import (
	"math"

	"github.com/iov-one/custody"
	"github.com/iov-one/custody/errors"
	"github.com/iov-one/custody/orm"
)

// BucketName prefixes every wallet key.
const BucketName = "cash"

// Balance is the amount of tokens held by a wallet.
type Balance struct {
	Amount uint64 `json:"amount"`
}

var _ orm.CloneableData = (*Balance)(nil)

func (b *Balance) Marshal() ([]byte, error) {
	return cdc.MarshalBinaryBare(b)
}

func (b *Balance) Unmarshal(raw []byte) error {
	return cdc.UnmarshalBinaryBare(raw, b)
}

// Validate is always successful, any unsigned amount is valid.
func (b *Balance) Validate() error {
	return nil
}

func (b *Balance) Copy() orm.CloneableData {
	return &Balance{Amount: b.Amount}
}

// Wallet is the balance of one address, as kept in the cash bucket.
type Wallet struct {
	key   []byte
	value *Balance
}

var _ orm.Object = (*Wallet)(nil)

func NewWallet(key custody.Address, amount uint64) *Wallet {
	return &Wallet{key: key, value: &Balance{Amount: amount}}
}

func (w Wallet) Key() []byte {
	return w.key
}

func (w *Wallet) SetKey(key []byte) {
	w.key = key
}

func (w Wallet) Value() custody.Persistent {
	return w.value
}

// Validate requires the key to be an address.
func (w Wallet) Validate() error {
	if err := custody.Address(w.key).Validate(); err != nil {
		return errors.Wrap(err, "wallet address")
	}
	return w.value.Validate()
}

func (w *Wallet) Clone() orm.Object {
	c := NewWallet(nil, w.value.Amount)
	if len(w.key) != 0 {
		c.key = append([]byte(nil), w.key...)
	}
	return c
}

func (w Wallet) Amount() uint64 {
	return w.value.Amount
}

// Add fails with ErrOverflow rather than wrap around.
func (w *Wallet) Add(amount uint64) error {
	if amount > math.MaxUint64-w.value.Amount {
		return errors.Wrap(errors.ErrOverflow, "wallet balance")
	}
	w.value.Amount += amount
	return nil
}

// Subtract fails with ErrInsufficientAmount when the balance is lower
// than amount.
func (w *Wallet) Subtract(amount uint64) error {
	if amount > w.value.Amount {
		return errors.Wrapf(errors.ErrInsufficientAmount, "balance %d, required %d", w.value.Amount, amount)
	}
	w.value.Amount -= amount
	return nil
}

// Bucket stores wallets by address.
type Bucket struct {
	orm.Bucket
}

func NewBucket() Bucket {
	return Bucket{
		Bucket: orm.NewBucket(BucketName, NewWallet(nil, 0)),
	}
}

// Get returns the wallet stored under the address or nil.
func (b Bucket) Get(db custody.ReadOnlyKVStore, key custody.Address) (*Wallet, error) {
	obj, err := b.Bucket.Get(db, key)
	if err != nil {
		return nil, err
	}
	if obj == nil {
		return nil, nil
	}
	w, ok := obj.(*Wallet)
	if !ok {
		return nil, errors.Wrapf(errors.ErrType, "%T", obj)
	}
	return w, nil
}

// Save writes the wallet. An empty wallet is removed instead, its zero
// balance encodes to no bytes at all.
func (b Bucket) Save(db custody.KVStore, value *Wallet) error {
	if value.Amount() == 0 {
		if err := value.Validate(); err != nil {
			return err
		}
		return b.Bucket.Delete(db, value.Key())
	}
	return b.Bucket.Save(db, value)
}

// GetOrCreate returns an unsaved empty wallet for an unknown address.
func (b Bucket) GetOrCreate(db custody.KVStore, key custody.Address) (*Wallet, error) {
	wallet, err := b.Get(db, key)
	if err != nil {
		return nil, err
	}
	if wallet == nil {
		wallet = NewWallet(key, 0)
	}
	return wallet, nil
}
