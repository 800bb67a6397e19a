package escrow

import (
	"github.com/iov-one/custody"
	"github.com/iov-one/custody/errors"
)

// Action is a transition requested on an existing record.
type Action uint8

const (
	ActionFund Action = iota + 1
	ActionRelease
	ActionRefund
	ActionCancel
)

func (a Action) String() string {
	switch a {
	case ActionFund:
		return "fund"
	case ActionRelease:
		return "release"
	case ActionRefund:
		return "refund"
	case ActionCancel:
		return "cancel"
	}
	return "unknown"
}

// Authorize decides if caller may perform the action on the record at the
// given time. It has no side effects.
//
// The caller identity is checked first, then the record state and the
// timeout last. A nil result means the transition is allowed.
func Authorize(e *Escrow, action Action, caller custody.Address, now custody.UnixTime) error {
	if len(caller) == 0 {
		return errors.Wrap(errors.ErrUnauthorized, "no caller")
	}
	isBuyer := e.Buyer.Equals(caller)
	isSeller := e.Seller.Equals(caller)
	isArbiter := e.HasArbiter(caller)

	switch action {
	case ActionFund:
		if !isBuyer {
			return errors.Wrap(errors.ErrUnauthorized, "only the buyer can fund")
		}
		return requireCreated(e.State)
	case ActionCancel:
		if !isBuyer && !isSeller {
			return errors.Wrap(errors.ErrUnauthorized, "only the buyer or the seller can cancel")
		}
		return requireCreated(e.State)
	case ActionRefund:
		if !isBuyer && !isSeller && !isArbiter {
			return errors.Wrap(errors.ErrUnauthorized, "not a party of this escrow")
		}
		return requireFunded(e.State)
	case ActionRelease:
		if !isBuyer && !isSeller && !isArbiter {
			return errors.Wrap(errors.ErrUnauthorized, "not a party of this escrow")
		}
		if err := requireFunded(e.State); err != nil {
			return err
		}
		if isBuyer || isArbiter {
			return nil
		}
		if !e.TimeoutReached(now) {
			return errors.Wrapf(ErrTimeoutNotReached, "seller can release after %s",
				e.CreatedAt.Add(e.TimeoutPeriod.Duration()))
		}
		return nil
	default:
		return errors.Wrapf(errors.ErrInput, "unknown action %d", action)
	}
}

func requireCreated(s State) error {
	switch s {
	case Created:
		return nil
	case Funded:
		return errors.Wrap(ErrAlreadyFunded, "record holds funds")
	default:
		return errors.Wrapf(errors.ErrState, "record is %s", s)
	}
}

func requireFunded(s State) error {
	switch s {
	case Funded:
		return nil
	case Created:
		return errors.Wrap(ErrNotFunded, "record holds no funds")
	default:
		return errors.Wrapf(errors.ErrState, "record is %s", s)
	}
}
