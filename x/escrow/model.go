package escrow

import (
	"encoding/binary"

	"github.com/iov-one/custody"
	"github.com/iov-one/custody/errors"
	"github.com/iov-one/custody/orm"
)

// BucketName is where escrow records are stored.
const BucketName = "escrow"

// addrSize is the size of every party address stored in a record.
const addrSize = 20

// RecordSize is the length of a serialized record. Storage reserve is
// computed for this size.
const RecordSize = addrSize + // buyer
	addrSize + // seller
	1 + addrSize + // arbiter presence and arbiter
	8 + // amount
	8 + // created at
	8 + // timeout period
	1 + // state
	1 // bump

// Escrow is a single custody record.
type Escrow struct {
	Buyer  custody.Address `json:"buyer"`
	Seller custody.Address `json:"seller"`
	// Arbiter is optional. Nil means there is no arbiter.
	Arbiter       custody.Address      `json:"arbiter,omitempty"`
	Amount        uint64               `json:"amount"`
	CreatedAt     custody.UnixTime     `json:"created_at"`
	TimeoutPeriod custody.UnixDuration `json:"timeout_period"`
	State         State                `json:"state"`
	// Bump is the salt that makes the record address reproducible.
	Bump uint8 `json:"bump"`
}

var _ orm.Model = (*Escrow)(nil)

// Validate ensures the record can be persisted.
func (e *Escrow) Validate() error {
	if err := e.Buyer.Validate(); err != nil {
		return errors.Wrap(err, "buyer")
	}
	if err := e.Seller.Validate(); err != nil {
		return errors.Wrap(err, "seller")
	}
	if e.Arbiter != nil {
		if err := e.Arbiter.Validate(); err != nil {
			return errors.Wrap(err, "arbiter")
		}
	}
	if e.Amount == 0 {
		return errors.Wrap(errors.ErrAmount, "amount must be greater than zero")
	}
	if e.TimeoutPeriod <= 0 {
		return errors.Wrap(ErrInvalidTimeout, "timeout period must be greater than zero")
	}
	if err := e.CreatedAt.Validate(); err != nil {
		return errors.Wrap(err, "created at")
	}
	if e.State == Cancelled {
		return errors.Wrap(errors.ErrState, "cancelled record cannot be stored")
	}
	return e.State.Validate()
}

// Copy returns a deep copy of this record.
func (e *Escrow) Copy() orm.CloneableData {
	return &Escrow{
		Buyer:         e.Buyer.Clone(),
		Seller:        e.Seller.Clone(),
		Arbiter:       e.Arbiter.Clone(),
		Amount:        e.Amount,
		CreatedAt:     e.CreatedAt,
		TimeoutPeriod: e.TimeoutPeriod,
		State:         e.State,
		Bump:          e.Bump,
	}
}

// TimeoutReached returns true if at least the timeout period elapsed between
// the record creation and given time.
func (e *Escrow) TimeoutReached(now custody.UnixTime) bool {
	return now.Since(e.CreatedAt) >= e.TimeoutPeriod
}

// HasArbiter returns true if given address is the record arbiter.
func (e *Escrow) HasArbiter(addr custody.Address) bool {
	return e.Arbiter != nil && e.Arbiter.Equals(addr)
}

// Marshal writes the record using a fixed size little endian layout.
func (e *Escrow) Marshal() ([]byte, error) {
	if len(e.Buyer) != addrSize || len(e.Seller) != addrSize {
		return nil, errors.Wrap(errors.ErrModel, "party address size")
	}
	if e.Arbiter != nil && len(e.Arbiter) != addrSize {
		return nil, errors.Wrap(errors.ErrModel, "arbiter address size")
	}

	raw := make([]byte, RecordSize)
	off := 0
	off += copy(raw[off:], e.Buyer)
	off += copy(raw[off:], e.Seller)
	if e.Arbiter != nil {
		raw[off] = 1
		copy(raw[off+1:], e.Arbiter)
	}
	off += 1 + addrSize
	binary.LittleEndian.PutUint64(raw[off:], e.Amount)
	off += 8
	binary.LittleEndian.PutUint64(raw[off:], uint64(e.CreatedAt))
	off += 8
	binary.LittleEndian.PutUint64(raw[off:], uint64(e.TimeoutPeriod))
	off += 8
	raw[off] = byte(e.State)
	raw[off+1] = e.Bump
	return raw, nil
}

// Unmarshal loads the record from its fixed size layout.
func (e *Escrow) Unmarshal(raw []byte) error {
	if len(raw) != RecordSize {
		return errors.Wrapf(errors.ErrInput, "record size %d, want %d", len(raw), RecordSize)
	}
	off := 0
	buyer := append(custody.Address(nil), raw[off:off+addrSize]...)
	off += addrSize
	seller := append(custody.Address(nil), raw[off:off+addrSize]...)
	off += addrSize

	var arbiter custody.Address
	switch raw[off] {
	case 0:
	case 1:
		arbiter = append(custody.Address(nil), raw[off+1:off+1+addrSize]...)
	default:
		return errors.Wrapf(errors.ErrInput, "arbiter presence flag %d", raw[off])
	}
	off += 1 + addrSize

	amount := binary.LittleEndian.Uint64(raw[off:])
	off += 8
	createdAt := int64(binary.LittleEndian.Uint64(raw[off:]))
	off += 8
	timeout := int64(binary.LittleEndian.Uint64(raw[off:]))
	off += 8
	state := State(raw[off])
	if err := state.Validate(); err != nil {
		return err
	}

	*e = Escrow{
		Buyer:         buyer,
		Seller:        seller,
		Arbiter:       arbiter,
		Amount:        amount,
		CreatedAt:     custody.UnixTime(createdAt),
		TimeoutPeriod: custody.UnixDuration(timeout),
		State:         state,
		Bump:          raw[off+1],
	}
	return nil
}

// Bucket stores escrow records under their derived address.
type Bucket struct {
	orm.ModelBucket
}

// NewBucket returns a bucket for escrow records.
func NewBucket() Bucket {
	return Bucket{
		ModelBucket: orm.NewModelBucket(BucketName, &Escrow{}),
	}
}

// Load returns the record stored under given address. ErrNotFound is
// returned if there is none.
func (b Bucket) Load(db custody.ReadOnlyKVStore, addr custody.Address) (*Escrow, error) {
	var e Escrow
	if err := b.One(db, addr, &e); err != nil {
		return nil, err
	}
	return &e, nil
}
