package escrow

import (
	"fmt"

	"github.com/iov-one/custody/errors"
)

// State is the lifecycle stage of an escrow record.
type State uint8

const (
	// Created records hold only the storage reserve.
	Created State = iota
	// Funded records hold the reserve and the full amount.
	Funded
	// Released records paid the amount out to the seller.
	Released
	// Refunded records paid the amount back to the buyer.
	Refunded
	// Cancelled is never persisted. Cancelling removes the record.
	Cancelled
)

var stateNames = map[State]string{
	Created:   "created",
	Funded:    "funded",
	Released:  "released",
	Refunded:  "refunded",
	Cancelled: "cancelled",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("State(%d)", uint8(s))
}

// Validate returns an error if this is not a known state.
func (s State) Validate() error {
	if _, ok := stateNames[s]; !ok {
		return errors.Wrapf(errors.ErrState, "unknown state %d", uint8(s))
	}
	return nil
}

// IsTerminal returns true if no further transition is possible.
func (s State) IsTerminal() bool {
	return s == Released || s == Refunded || s == Cancelled
}

// IsActive returns true for records that still occupy their address.
func (s State) IsActive() bool {
	return s == Created || s == Funded
}

// MarshalJSON uses the state name.
func (s State) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

// UnmarshalJSON accepts a state name.
func (s *State) UnmarshalJSON(raw []byte) error {
	name := string(raw)
	if len(name) < 2 || name[0] != '"' || name[len(name)-1] != '"' {
		return errors.Wrap(errors.ErrInput, "state must be a string")
	}
	name = name[1 : len(name)-1]
	for st, n := range stateNames {
		if n == name {
			*s = st
			return nil
		}
	}
	return errors.Wrapf(errors.ErrInput, "unknown state %q", name)
}
