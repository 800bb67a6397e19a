package escrow

import (
	"encoding/binary"

	"github.com/iov-one/custody"
	"github.com/iov-one/custody/errors"
	"github.com/iov-one/custody/x"
	"github.com/iov-one/custody/x/cash"
)

const (
	// pay escrow cost up-front
	createEscrowCost  int64 = 300
	fundEscrowCost    int64 = 50
	releaseEscrowCost int64 = 0
	refundEscrowCost  int64 = 0
	cancelEscrowCost  int64 = 0
)

// RegisterRoutes will instantiate and register
// all handlers in this package
func RegisterRoutes(r custody.Registry, auth x.Authenticator, cashctrl cash.Controller) {
	ctrl := NewController(cashctrl, NewBucket())

	r.Handle(&CreateMsg{}, CreateEscrowHandler{auth: auth, ctrl: ctrl})
	r.Handle(&FundMsg{}, FundEscrowHandler{auth: auth, ctrl: ctrl})
	r.Handle(&ReleaseMsg{}, ReleaseEscrowHandler{auth: auth, ctrl: ctrl})
	r.Handle(&RefundMsg{}, RefundEscrowHandler{auth: auth, ctrl: ctrl})
	r.Handle(&CancelMsg{}, CancelEscrowHandler{auth: auth, ctrl: ctrl})
}

// RegisterQuery will register this bucket as "/escrows"
func RegisterQuery(qr custody.QueryRouter) {
	NewBucket().Register("escrows", qr)
}

// CreateEscrowHandler stores a new record and charges the reserve.
type CreateEscrowHandler struct {
	auth x.Authenticator
	ctrl *Controller
}

var _ custody.Handler = CreateEscrowHandler{}

// Check just verifies it is properly formed and returns
// the cost of executing it.
func (h CreateEscrowHandler) Check(ctx custody.Context, db custody.KVStore, tx custody.Tx) (*custody.CheckResult, error) {
	req, err := h.validate(ctx, tx)
	if err != nil {
		return nil, err
	}
	if _, _, err := h.ctrl.CheckCreate(ctx, db, *req); err != nil {
		return nil, err
	}
	return &custody.CheckResult{GasAllocated: createEscrowCost}, nil
}

// Deliver stores the record and returns its address as the result data.
func (h CreateEscrowHandler) Deliver(ctx custody.Context, db custody.KVStore, tx custody.Tx) (*custody.DeliverResult, error) {
	req, err := h.validate(ctx, tx)
	if err != nil {
		return nil, err
	}
	addr, _, err := h.ctrl.Create(ctx, db, *req)
	if err != nil {
		return nil, err
	}
	return &custody.DeliverResult{Data: addr, Log: "escrow created"}, nil
}

// validate does all common pre-processing between Check and Deliver.
func (h CreateEscrowHandler) validate(ctx custody.Context, tx custody.Tx) (*CreateRequest, error) {
	var msg CreateMsg
	if err := custody.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}

	// Buyer must authorize this (if not set, defaults to MainSigner).
	buyer := msg.Buyer
	if buyer == nil {
		buyer = x.MainSignerAddress(ctx, h.auth)
	}
	if buyer == nil || !h.auth.HasAddress(ctx, buyer) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "buyer signature missing")
	}

	return &CreateRequest{
		Buyer:         buyer,
		Seller:        msg.Seller,
		Arbiter:       msg.Arbiter,
		Amount:        msg.Amount,
		TimeoutPeriod: msg.TimeoutPeriod,
	}, nil
}

// FundEscrowHandler moves the record amount from the buyer.
type FundEscrowHandler struct {
	auth x.Authenticator
	ctrl *Controller
}

var _ custody.Handler = FundEscrowHandler{}

func (h FundEscrowHandler) Check(ctx custody.Context, db custody.KVStore, tx custody.Tx) (*custody.CheckResult, error) {
	var msg FundMsg
	caller, err := loadCaller(ctx, h.auth, tx, &msg)
	if err != nil {
		return nil, err
	}
	if _, err := h.ctrl.Check(ctx, db, ActionFund, msg.Escrow, caller); err != nil {
		return nil, err
	}
	return &custody.CheckResult{GasAllocated: fundEscrowCost}, nil
}

func (h FundEscrowHandler) Deliver(ctx custody.Context, db custody.KVStore, tx custody.Tx) (*custody.DeliverResult, error) {
	var msg FundMsg
	caller, err := loadCaller(ctx, h.auth, tx, &msg)
	if err != nil {
		return nil, err
	}
	e, err := h.ctrl.Fund(ctx, db, msg.Escrow, caller)
	if err != nil {
		return nil, err
	}
	return &custody.DeliverResult{Data: encodeAmount(e.Amount), Log: "escrow funded"}, nil
}

// ReleaseEscrowHandler pays the funds to the seller.
type ReleaseEscrowHandler struct {
	auth x.Authenticator
	ctrl *Controller
}

var _ custody.Handler = ReleaseEscrowHandler{}

func (h ReleaseEscrowHandler) Check(ctx custody.Context, db custody.KVStore, tx custody.Tx) (*custody.CheckResult, error) {
	var msg ReleaseMsg
	caller, err := loadCaller(ctx, h.auth, tx, &msg)
	if err != nil {
		return nil, err
	}
	if _, err := h.ctrl.Check(ctx, db, ActionRelease, msg.Escrow, caller); err != nil {
		return nil, err
	}
	return &custody.CheckResult{GasAllocated: releaseEscrowCost}, nil
}

// Deliver returns the transferred amount as the result data.
func (h ReleaseEscrowHandler) Deliver(ctx custody.Context, db custody.KVStore, tx custody.Tx) (*custody.DeliverResult, error) {
	var msg ReleaseMsg
	caller, err := loadCaller(ctx, h.auth, tx, &msg)
	if err != nil {
		return nil, err
	}
	amount, err := h.ctrl.Release(ctx, db, msg.Escrow, caller)
	if err != nil {
		return nil, err
	}
	return &custody.DeliverResult{Data: encodeAmount(amount), Log: "escrow released"}, nil
}

// RefundEscrowHandler pays the funds back to the buyer.
type RefundEscrowHandler struct {
	auth x.Authenticator
	ctrl *Controller
}

var _ custody.Handler = RefundEscrowHandler{}

func (h RefundEscrowHandler) Check(ctx custody.Context, db custody.KVStore, tx custody.Tx) (*custody.CheckResult, error) {
	var msg RefundMsg
	caller, err := loadCaller(ctx, h.auth, tx, &msg)
	if err != nil {
		return nil, err
	}
	if _, err := h.ctrl.Check(ctx, db, ActionRefund, msg.Escrow, caller); err != nil {
		return nil, err
	}
	return &custody.CheckResult{GasAllocated: refundEscrowCost}, nil
}

// Deliver returns the transferred amount as the result data.
func (h RefundEscrowHandler) Deliver(ctx custody.Context, db custody.KVStore, tx custody.Tx) (*custody.DeliverResult, error) {
	var msg RefundMsg
	caller, err := loadCaller(ctx, h.auth, tx, &msg)
	if err != nil {
		return nil, err
	}
	amount, err := h.ctrl.Refund(ctx, db, msg.Escrow, caller)
	if err != nil {
		return nil, err
	}
	return &custody.DeliverResult{Data: encodeAmount(amount), Log: "escrow refunded"}, nil
}

// CancelEscrowHandler removes a record that was never funded.
type CancelEscrowHandler struct {
	auth x.Authenticator
	ctrl *Controller
}

var _ custody.Handler = CancelEscrowHandler{}

func (h CancelEscrowHandler) Check(ctx custody.Context, db custody.KVStore, tx custody.Tx) (*custody.CheckResult, error) {
	var msg CancelMsg
	caller, err := loadCaller(ctx, h.auth, tx, &msg)
	if err != nil {
		return nil, err
	}
	if _, err := h.ctrl.Check(ctx, db, ActionCancel, msg.Escrow, caller); err != nil {
		return nil, err
	}
	return &custody.CheckResult{GasAllocated: cancelEscrowCost}, nil
}

// Deliver returns the amount returned to the buyer as the result data.
func (h CancelEscrowHandler) Deliver(ctx custody.Context, db custody.KVStore, tx custody.Tx) (*custody.DeliverResult, error) {
	var msg CancelMsg
	caller, err := loadCaller(ctx, h.auth, tx, &msg)
	if err != nil {
		return nil, err
	}
	amount, err := h.ctrl.Cancel(ctx, db, msg.Escrow, caller)
	if err != nil {
		return nil, err
	}
	return &custody.DeliverResult{Data: encodeAmount(amount), Log: "escrow cancelled"}, nil
}

// loadCaller loads the message into dest and returns the address of the
// main signer.
func loadCaller(ctx custody.Context, auth x.Authenticator, tx custody.Tx, dest custody.Msg) (custody.Address, error) {
	if err := custody.LoadMsg(tx, dest); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	caller := x.MainSignerAddress(ctx, auth)
	if caller == nil {
		return nil, errors.Wrap(errors.ErrUnauthorized, "no signer")
	}
	return caller, nil
}

// encodeAmount returns a big endian representation of the amount.
func encodeAmount(amount uint64) []byte {
	raw := make([]byte, 8)
	binary.BigEndian.PutUint64(raw, amount)
	return raw
}

// DecodeAmount reads the amount returned as the result data of fund,
// release, refund and cancel.
func DecodeAmount(raw []byte) (uint64, error) {
	if len(raw) != 8 {
		return 0, errors.Wrapf(errors.ErrInput, "amount size %d", len(raw))
	}
	return binary.BigEndian.Uint64(raw), nil
}
