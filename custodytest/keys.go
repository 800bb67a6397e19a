package custodytest

import (
	"crypto/rand"
	"testing"

	"github.com/iov-one/custody"
	"github.com/iov-one/custody/crypto"
)

// NewKey returns a freshly generated ed25519 private key.
func NewKey() crypto.Signer {
	return crypto.GenPrivKeyEd25519()
}

// NewCondition returns the signature condition of a freshly generated key.
// Use it for parties that never sign anything in a test.
func NewCondition() custody.Condition {
	return NewKey().PublicKey().Condition()
}

// RandomAddr returns an address that no key or escrow controls.
func RandomAddr(t testing.TB) custody.Address {
	t.Helper()
	raw := make([]byte, custody.AddressLength)
	if _, err := rand.Read(raw); err != nil {
		t.Fatalf("random address: %s", err)
	}
	addr := custody.Address(raw)
	if err := addr.Validate(); err != nil {
		t.Fatalf("random address %s: %s", addr, err)
	}
	return addr
}
