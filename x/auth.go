package x

import (
	"github.com/iov-one/custody"
)

// Authenticator extracts the identities that authorized the current
// transaction from the context. Handlers receive it in their constructor and
// never read signatures themselves.
type Authenticator interface {
	// GetConditions returns every condition fulfilled by the transaction,
	// the main signer first.
	GetConditions(custody.Context) []custody.Condition
	// HasAddress checks if any fulfilled condition owns this address.
	HasAddress(custody.Context, custody.Address) bool
}

// MainSigner returns the first condition if any, otherwise nil.
func MainSigner(ctx custody.Context, auth Authenticator) custody.Condition {
	signers := auth.GetConditions(ctx)
	if len(signers) == 0 {
		return nil
	}
	return signers[0]
}

// MainSignerAddress returns the address of the main signer, or nil when
// the transaction carries no signature.
func MainSignerAddress(ctx custody.Context, auth Authenticator) custody.Address {
	return MainSigner(ctx, auth).Address()
}
