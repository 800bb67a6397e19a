package escrow

import (
	"crypto/sha256"

	"filippo.io/edwards25519"
	"github.com/iov-one/custody"
	"github.com/iov-one/custody/errors"
)

const (
	addressSeed = "escrow"

	conditionExt  = "escrow"
	conditionType = "pda"
)

// DeriveAddress returns the address of the record for given buyer and seller
// and the bump that was used to compute it.
//
// Bumps are tried from 255 down. The first digest that is not a valid
// ed25519 point is used, so no private key exists for the address.
func DeriveAddress(buyer, seller custody.Address) (custody.Address, uint8, error) {
	if err := buyer.Validate(); err != nil {
		return nil, 0, errors.Wrap(err, "buyer")
	}
	if err := seller.Validate(); err != nil {
		return nil, 0, errors.Wrap(err, "seller")
	}
	for bump := 255; bump >= 0; bump-- {
		digest := addressDigest(buyer, seller, uint8(bump))
		if onCurve(digest) {
			continue
		}
		return Condition(digest).Address(), uint8(bump), nil
	}
	return nil, 0, errors.Wrap(errors.ErrHuman, "no viable bump")
}

// AddressWithBump recomputes a record address using a known bump. It fails
// if the bump does not produce an off curve digest.
func AddressWithBump(buyer, seller custody.Address, bump uint8) (custody.Address, error) {
	digest := addressDigest(buyer, seller, bump)
	if onCurve(digest) {
		return nil, errors.Wrapf(errors.ErrInput, "bump %d produces a key on the curve", bump)
	}
	return Condition(digest).Address(), nil
}

// Condition returns the condition that controls funds of a record with
// given address digest.
func Condition(digest []byte) custody.Condition {
	return custody.NewCondition(conditionExt, conditionType, digest)
}

func addressDigest(buyer, seller custody.Address, bump uint8) []byte {
	h := sha256.New()
	h.Write([]byte(addressSeed))
	h.Write(buyer)
	h.Write(seller)
	h.Write([]byte{bump})
	return h.Sum(nil)
}

func onCurve(digest []byte) bool {
	_, err := new(edwards25519.Point).SetBytes(digest)
	return err == nil
}
