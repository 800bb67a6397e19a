package escrow

import (
	"github.com/iov-one/custody"
	"github.com/iov-one/custody/errors"
	"github.com/iov-one/custody/x/cash"
)

// Controller manages escrow records and the funds they hold. Every method
// completes all checks before the first write.
type Controller struct {
	cash   cash.Controller
	bucket Bucket
}

// NewController returns a controller that moves funds using given cash
// controller.
func NewController(cashctrl cash.Controller, bucket Bucket) *Controller {
	return &Controller{
		cash:   cashctrl,
		bucket: bucket,
	}
}

// CreateRequest describes a new record.
type CreateRequest struct {
	Buyer         custody.Address
	Seller        custody.Address
	Arbiter       custody.Address
	Amount        uint64
	TimeoutPeriod custody.UnixDuration
}

// CheckCreate validates a create request against the current state and
// returns the record that would be stored together with its address.
func (c *Controller) CheckCreate(ctx custody.Context, db custody.ReadOnlyKVStore, req CreateRequest) (custody.Address, *Escrow, error) {
	if req.Amount == 0 {
		return nil, nil, errors.Wrap(errors.ErrAmount, "amount must be greater than zero")
	}
	if req.TimeoutPeriod <= 0 {
		return nil, nil, errors.Wrap(ErrInvalidTimeout, "timeout period must be greater than zero")
	}
	now, err := blockNow(ctx)
	if err != nil {
		return nil, nil, err
	}
	addr, bump, err := DeriveAddress(req.Buyer, req.Seller)
	if err != nil {
		return nil, nil, err
	}

	switch prev, err := c.bucket.Load(db, addr); {
	case err == nil:
		if prev.State.IsActive() {
			return nil, nil, errors.Wrapf(errors.ErrDuplicate, "escrow %s is %s", addr, prev.State)
		}
	case errors.ErrNotFound.Is(err):
	default:
		return nil, nil, errors.Wrap(err, "cannot load escrow")
	}

	e := &Escrow{
		Buyer:         req.Buyer.Clone(),
		Seller:        req.Seller.Clone(),
		Arbiter:       effectiveArbiter(req.Buyer, req.Arbiter).Clone(),
		Amount:        req.Amount,
		CreatedAt:     now,
		TimeoutPeriod: req.TimeoutPeriod,
		State:         Created,
		Bump:          bump,
	}
	if err := e.Validate(); err != nil {
		return nil, nil, err
	}
	return addr, e, nil
}

// Create stores a new record and charges the buyer the storage reserve.
// A released or refunded record at the same address is replaced and the
// buyer pays only what is missing from its reserve.
func (c *Controller) Create(ctx custody.Context, db custody.KVStore, req CreateRequest) (custody.Address, *Escrow, error) {
	addr, e, err := c.CheckCreate(ctx, db, req)
	if err != nil {
		return nil, nil, err
	}
	reserve, err := recordReserve(db)
	if err != nil {
		return nil, nil, err
	}
	held, err := c.balance(db, addr)
	if err != nil {
		return nil, nil, err
	}
	if reserve > held {
		if err := c.cash.MoveCoins(db, e.Buyer, addr, reserve-held); err != nil {
			return nil, nil, errors.Wrap(err, "cannot pay storage reserve")
		}
	}
	if err := c.bucket.Put(db, addr, e); err != nil {
		return nil, nil, errors.Wrap(err, "cannot store escrow")
	}
	custody.GetLogger(ctx).Info("escrow created",
		"escrow", addr, "amount", e.Amount, "timeout", e.TimeoutPeriod)
	return addr, e, nil
}

// Check loads the record and authorizes caller to perform given action on
// it. Nothing is written.
func (c *Controller) Check(ctx custody.Context, db custody.ReadOnlyKVStore, action Action, addr, caller custody.Address) (*Escrow, error) {
	now, err := blockNow(ctx)
	if err != nil {
		return nil, err
	}
	e, err := c.bucket.Load(db, addr)
	if err != nil {
		return nil, errors.Wrap(err, "cannot load escrow")
	}
	if err := Authorize(e, action, caller, now); err != nil {
		return nil, err
	}
	return e, nil
}

// Fund moves the record amount from the buyer to the record.
func (c *Controller) Fund(ctx custody.Context, db custody.KVStore, addr, caller custody.Address) (*Escrow, error) {
	e, err := c.Check(ctx, db, ActionFund, addr, caller)
	if err != nil {
		return nil, err
	}
	if err := c.cash.MoveCoins(db, e.Buyer, addr, e.Amount); err != nil {
		return nil, errors.Wrap(err, "cannot fund escrow")
	}
	e.State = Funded
	if err := c.bucket.Put(db, addr, e); err != nil {
		return nil, errors.Wrap(err, "cannot store escrow")
	}
	custody.GetLogger(ctx).Info("escrow funded", "escrow", addr, "amount", e.Amount)
	return e, nil
}

// Release pays everything above the reserve to the seller. It returns the
// amount transferred.
func (c *Controller) Release(ctx custody.Context, db custody.KVStore, addr, caller custody.Address) (uint64, error) {
	e, err := c.Check(ctx, db, ActionRelease, addr, caller)
	if err != nil {
		return 0, err
	}
	return c.payOut(ctx, db, addr, e, e.Seller, Released)
}

// Refund pays everything above the reserve back to the buyer. It returns
// the amount transferred.
func (c *Controller) Refund(ctx custody.Context, db custody.KVStore, addr, caller custody.Address) (uint64, error) {
	e, err := c.Check(ctx, db, ActionRefund, addr, caller)
	if err != nil {
		return 0, err
	}
	return c.payOut(ctx, db, addr, e, e.Buyer, Refunded)
}

func (c *Controller) payOut(ctx custody.Context, db custody.KVStore, addr custody.Address, e *Escrow, to custody.Address, final State) (uint64, error) {
	reserve, err := recordReserve(db)
	if err != nil {
		return 0, err
	}
	held, err := c.balance(db, addr)
	if err != nil {
		return 0, err
	}
	amount := transferable(held, reserve)
	if err := c.cash.MoveCoins(db, addr, to, amount); err != nil {
		return 0, errors.Wrap(err, "cannot pay out")
	}
	e.State = final
	if err := c.bucket.Put(db, addr, e); err != nil {
		return 0, errors.Wrap(err, "cannot store escrow")
	}
	custody.GetLogger(ctx).Info("escrow "+final.String(),
		"escrow", addr, "to", to, "amount", amount)
	return amount, nil
}

// Cancel removes a record that was never funded and returns everything it
// holds to the buyer. It returns the amount transferred.
func (c *Controller) Cancel(ctx custody.Context, db custody.KVStore, addr, caller custody.Address) (uint64, error) {
	e, err := c.Check(ctx, db, ActionCancel, addr, caller)
	if err != nil {
		return 0, err
	}
	held, err := c.balance(db, addr)
	if err != nil {
		return 0, err
	}
	if err := c.cash.MoveCoins(db, addr, e.Buyer, held); err != nil {
		return 0, errors.Wrap(err, "cannot return reserve")
	}
	if err := c.bucket.Delete(db, addr); err != nil {
		return 0, errors.Wrap(err, "cannot delete escrow")
	}
	custody.GetLogger(ctx).Info("escrow cancelled", "escrow", addr, "to", e.Buyer, "amount", held)
	return held, nil
}

// State returns a snapshot of the record stored under given address.
func (c *Controller) State(db custody.ReadOnlyKVStore, addr custody.Address) (*Escrow, error) {
	return c.bucket.Load(db, addr)
}

// Held returns the amount of tokens held by the record address.
func (c *Controller) Held(db custody.ReadOnlyKVStore, addr custody.Address) (uint64, error) {
	return c.balance(db, addr)
}

func (c *Controller) balance(db custody.ReadOnlyKVStore, addr custody.Address) (uint64, error) {
	amount, err := c.cash.Balance(db, addr)
	if errors.ErrNotFound.Is(err) {
		return 0, nil
	}
	return amount, err
}

// effectiveArbiter drops an arbiter equal to the buyer, it grants nothing
// the buyer does not have.
func effectiveArbiter(buyer, arbiter custody.Address) custody.Address {
	if arbiter != nil && arbiter.Equals(buyer) {
		return nil
	}
	return arbiter
}

// blockNow returns the block time declared in the context.
func blockNow(ctx custody.Context) (custody.UnixTime, error) {
	now, ok := custody.BlockUnixTime(ctx)
	if !ok {
		return 0, errors.Wrap(errors.ErrHuman, "block time not present in context")
	}
	return now, nil
}
