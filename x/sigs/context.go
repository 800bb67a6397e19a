package sigs

import (
	"context"

	"github.com/iov-one/custody"
	"github.com/iov-one/custody/x"
)

type ctxKey struct{}

// withSigners is only called by the Decorator, after every signature was
// verified.
func withSigners(ctx custody.Context, signers []custody.Condition) custody.Context {
	return context.WithValue(ctx, ctxKey{}, signers)
}

// Authenticate reports the signers verified by the Decorator.
type Authenticate struct{}

var _ x.Authenticator = Authenticate{}

// GetConditions returns nil for a context that did not pass the Decorator.
func (Authenticate) GetConditions(ctx custody.Context) []custody.Condition {
	signers, _ := ctx.Value(ctxKey{}).([]custody.Condition)
	return signers
}

func (a Authenticate) HasAddress(ctx custody.Context, addr custody.Address) bool {
	for _, c := range a.GetConditions(ctx) {
		if c.Address().Equals(addr) {
			return true
		}
	}
	return false
}
