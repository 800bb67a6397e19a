package custodytest

import (
	"context"

	"github.com/iov-one/custody"
)

// Auth authenticates a fixed list of conditions, no matter what the context
// holds. Use it to pretend a transaction was signed by given parties.
type Auth struct {
	Signers []custody.Condition
}

func (a *Auth) GetConditions(custody.Context) []custody.Condition {
	return a.Signers
}

func (a *Auth) HasAddress(_ custody.Context, addr custody.Address) bool {
	return hasAddress(a.Signers, addr)
}

// CtxAuth authenticates conditions stored in the context under Key. Two
// instances with different keys do not see each other's conditions.
type CtxAuth struct {
	Key string
}

type ctxAuthKey string

// SetConditions returns a context authenticating given conditions.
func (a *CtxAuth) SetConditions(ctx custody.Context, conds ...custody.Condition) custody.Context {
	return context.WithValue(ctx, ctxAuthKey(a.Key), conds)
}

func (a *CtxAuth) GetConditions(ctx custody.Context) []custody.Condition {
	conds, _ := ctx.Value(ctxAuthKey(a.Key)).([]custody.Condition)
	return conds
}

func (a *CtxAuth) HasAddress(ctx custody.Context, addr custody.Address) bool {
	return hasAddress(a.GetConditions(ctx), addr)
}

func hasAddress(conds []custody.Condition, addr custody.Address) bool {
	for _, c := range conds {
		if addr.Equals(c.Address()) {
			return true
		}
	}
	return false
}
