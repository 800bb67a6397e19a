package escrow

import (
	"testing"

	"github.com/iov-one/custody"
	"github.com/iov-one/custody/custodytest"
	"github.com/iov-one/custody/custodytest/assert"
	"github.com/iov-one/custody/errors"
)

func TestAuthorize(t *testing.T) {
	buyer := custodytest.NewCondition().Address()
	seller := custodytest.NewCondition().Address()
	arbiter := custodytest.NewCondition().Address()
	stranger := custodytest.NewCondition().Address()

	const created custody.UnixTime = 1000
	const timeout custody.UnixDuration = 3600

	record := func(s State, withArbiter bool) *Escrow {
		e := &Escrow{
			Buyer:         buyer,
			Seller:        seller,
			Amount:        100,
			CreatedAt:     created,
			TimeoutPeriod: timeout,
			State:         s,
		}
		if withArbiter {
			e.Arbiter = arbiter
		}
		return e
	}

	cases := map[string]struct {
		escrow  *Escrow
		action  Action
		caller  custody.Address
		now     custody.UnixTime
		wantErr *errors.Error
	}{
		"buyer funds": {
			escrow: record(Created, false), action: ActionFund, caller: buyer, now: created,
		},
		"seller cannot fund": {
			escrow: record(Created, true), action: ActionFund, caller: seller, now: created,
			wantErr: errors.ErrUnauthorized,
		},
		"arbiter cannot fund": {
			escrow: record(Created, true), action: ActionFund, caller: arbiter, now: created,
			wantErr: errors.ErrUnauthorized,
		},
		"fund twice": {
			escrow: record(Funded, false), action: ActionFund, caller: buyer, now: created,
			wantErr: ErrAlreadyFunded,
		},
		"fund released": {
			escrow: record(Released, false), action: ActionFund, caller: buyer, now: created,
			wantErr: errors.ErrState,
		},
		"identity is checked before state": {
			escrow: record(Funded, false), action: ActionFund, caller: stranger, now: created,
			wantErr: errors.ErrUnauthorized,
		},
		"buyer releases before timeout": {
			escrow: record(Funded, false), action: ActionRelease, caller: buyer, now: created,
		},
		"arbiter releases before timeout": {
			escrow: record(Funded, true), action: ActionRelease, caller: arbiter, now: created,
		},
		"seller releases one second early": {
			escrow: record(Funded, false), action: ActionRelease, caller: seller, now: created + 3599,
			wantErr: ErrTimeoutNotReached,
		},
		"seller releases at timeout": {
			escrow: record(Funded, false), action: ActionRelease, caller: seller, now: created + 3600,
		},
		"seller releases after timeout": {
			escrow: record(Funded, false), action: ActionRelease, caller: seller, now: created + 100000,
		},
		"stranger cannot release after timeout": {
			escrow: record(Funded, true), action: ActionRelease, caller: stranger, now: created + 100000,
			wantErr: errors.ErrUnauthorized,
		},
		"missing arbiter grants nothing": {
			escrow: record(Funded, false), action: ActionRelease, caller: arbiter, now: created,
			wantErr: errors.ErrUnauthorized,
		},
		"release unfunded": {
			escrow: record(Created, false), action: ActionRelease, caller: buyer, now: created,
			wantErr: ErrNotFunded,
		},
		"state is checked before timeout": {
			escrow: record(Created, false), action: ActionRelease, caller: seller, now: created,
			wantErr: ErrNotFunded,
		},
		"release refunded": {
			escrow: record(Refunded, false), action: ActionRelease, caller: buyer, now: created,
			wantErr: errors.ErrState,
		},
		"seller refunds": {
			escrow: record(Funded, false), action: ActionRefund, caller: seller, now: created,
		},
		"arbiter refunds": {
			escrow: record(Funded, true), action: ActionRefund, caller: arbiter, now: created,
		},
		"buyer refunds unilaterally": {
			escrow: record(Funded, false), action: ActionRefund, caller: buyer, now: created,
		},
		"stranger cannot refund": {
			escrow: record(Funded, true), action: ActionRefund, caller: stranger, now: created,
			wantErr: errors.ErrUnauthorized,
		},
		"refund unfunded": {
			escrow: record(Created, false), action: ActionRefund, caller: seller, now: created,
			wantErr: ErrNotFunded,
		},
		"refund released": {
			escrow: record(Released, false), action: ActionRefund, caller: seller, now: created,
			wantErr: errors.ErrState,
		},
		"buyer cancels": {
			escrow: record(Created, false), action: ActionCancel, caller: buyer, now: created,
		},
		"seller cancels": {
			escrow: record(Created, false), action: ActionCancel, caller: seller, now: created,
		},
		"arbiter cannot cancel": {
			escrow: record(Created, true), action: ActionCancel, caller: arbiter, now: created,
			wantErr: errors.ErrUnauthorized,
		},
		"cancel funded": {
			escrow: record(Funded, false), action: ActionCancel, caller: buyer, now: created,
			wantErr: ErrAlreadyFunded,
		},
		"cancel refunded": {
			escrow: record(Refunded, false), action: ActionCancel, caller: buyer, now: created,
			wantErr: errors.ErrState,
		},
		"no caller": {
			escrow: record(Funded, false), action: ActionRelease, caller: nil, now: created,
			wantErr: errors.ErrUnauthorized,
		},
		"unknown action": {
			escrow: record(Funded, false), action: Action(99), caller: buyer, now: created,
			wantErr: errors.ErrInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := Authorize(tc.escrow, tc.action, tc.caller, tc.now)
			assert.IsErr(t, tc.wantErr, err)
		})
	}
}
