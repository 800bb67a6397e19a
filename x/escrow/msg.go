package escrow

import (
	"github.com/iov-one/custody"
	"github.com/iov-one/custody/errors"
)

const (
	pathCreate  = "escrow/create"
	pathFund    = "escrow/fund"
	pathRelease = "escrow/release"
	pathRefund  = "escrow/refund"
	pathCancel  = "escrow/cancel"
)

var (
	_ custody.Msg = (*CreateMsg)(nil)
	_ custody.Msg = (*FundMsg)(nil)
	_ custody.Msg = (*ReleaseMsg)(nil)
	_ custody.Msg = (*RefundMsg)(nil)
	_ custody.Msg = (*CancelMsg)(nil)
)

// CreateMsg creates a new escrow record.
type CreateMsg struct {
	// Buyer defaults to the main signer. If set, it must sign the
	// transaction.
	Buyer   custody.Address `json:"buyer,omitempty"`
	Seller  custody.Address `json:"seller"`
	Arbiter custody.Address `json:"arbiter,omitempty"`
	Amount  uint64          `json:"amount"`
	// TimeoutPeriod is the number of seconds after which the seller can
	// release the funds.
	TimeoutPeriod custody.UnixDuration `json:"timeout_period"`
}

func (CreateMsg) Path() string {
	return pathCreate
}

func (m *CreateMsg) Validate() error {
	if m.Amount == 0 {
		return errors.Wrap(errors.ErrAmount, "amount must be greater than zero")
	}
	if m.TimeoutPeriod <= 0 {
		return errors.Wrap(ErrInvalidTimeout, "timeout period must be greater than zero")
	}
	if m.Buyer != nil {
		if err := m.Buyer.Validate(); err != nil {
			return errors.Wrap(err, "buyer")
		}
	}
	if err := m.Seller.Validate(); err != nil {
		return errors.Wrap(err, "seller")
	}
	if m.Arbiter != nil {
		if err := m.Arbiter.Validate(); err != nil {
			return errors.Wrap(err, "arbiter")
		}
	}
	return nil
}

// FundMsg moves the record amount from the buyer to the record.
type FundMsg struct {
	Escrow custody.Address `json:"escrow"`
}

func (FundMsg) Path() string {
	return pathFund
}

func (m *FundMsg) Validate() error {
	return validEscrowAddress(m.Escrow)
}

// ReleaseMsg pays the funds to the seller.
type ReleaseMsg struct {
	Escrow custody.Address `json:"escrow"`
}

func (ReleaseMsg) Path() string {
	return pathRelease
}

func (m *ReleaseMsg) Validate() error {
	return validEscrowAddress(m.Escrow)
}

// RefundMsg pays the funds back to the buyer.
type RefundMsg struct {
	Escrow custody.Address `json:"escrow"`
}

func (RefundMsg) Path() string {
	return pathRefund
}

func (m *RefundMsg) Validate() error {
	return validEscrowAddress(m.Escrow)
}

// CancelMsg removes a record that was never funded.
type CancelMsg struct {
	Escrow custody.Address `json:"escrow"`
}

func (CancelMsg) Path() string {
	return pathCancel
}

func (m *CancelMsg) Validate() error {
	return validEscrowAddress(m.Escrow)
}

func validEscrowAddress(a custody.Address) error {
	if err := a.Validate(); err != nil {
		return errors.Wrap(err, "escrow")
	}
	return nil
}
