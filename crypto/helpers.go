package crypto

import (
	"github.com/iov-one/custody"
	"github.com/iov-one/custody/errors"
	amino "github.com/tendermint/go-amino"
)

// ExtensionName is used for the Conditions we get from signatures
const ExtensionName = "sigs"

var cdc = amino.NewCodec()

// PubKey represents a crypto public key we use
type PubKey interface {
	Verify(message []byte, sig *Signature) bool
	Condition() custody.Condition
}

// Signer is the functionality we use from a private key
// No serializing to support hardware devices as well.
type Signer interface {
	Sign(message []byte) (*Signature, error)
	PublicKey() *PublicKey
}

// PublicKey is an ed25519 public key.
type PublicKey struct {
	Ed25519 []byte
}

// PrivateKey is an ed25519 private key, seed followed by the public key.
type PrivateKey struct {
	Ed25519 []byte
}

// Signature is an ed25519 signature.
type Signature struct {
	Ed25519 []byte
}

// GetEd25519 returns the raw key bytes, nil safe.
func (p *PublicKey) GetEd25519() []byte {
	if p == nil {
		return nil
	}
	return p.Ed25519
}

// GetEd25519 returns the raw key bytes, nil safe.
func (p *PrivateKey) GetEd25519() []byte {
	if p == nil {
		return nil
	}
	return p.Ed25519
}

// GetEd25519 returns the raw signature bytes, nil safe.
func (s *Signature) GetEd25519() []byte {
	if s == nil {
		return nil
	}
	return s.Ed25519
}

// Marshal serializes the key.
func (p *PublicKey) Marshal() ([]byte, error) {
	return marshal(p)
}

// Unmarshal loads the key from its binary representation.
func (p *PublicKey) Unmarshal(raw []byte) error {
	return unmarshal(raw, p)
}

// Marshal serializes the key.
func (p *PrivateKey) Marshal() ([]byte, error) {
	return marshal(p)
}

// Unmarshal loads the key from its binary representation.
func (p *PrivateKey) Unmarshal(raw []byte) error {
	return unmarshal(raw, p)
}

// Marshal serializes the signature.
func (s *Signature) Marshal() ([]byte, error) {
	return marshal(s)
}

// Unmarshal loads the signature from its binary representation.
func (s *Signature) Unmarshal(raw []byte) error {
	return unmarshal(raw, s)
}

func marshal(o interface{}) ([]byte, error) {
	raw, err := cdc.MarshalBinaryBare(o)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "marshal %T: %s", o, err)
	}
	return raw, nil
}

func unmarshal(raw []byte, o interface{}) error {
	if err := cdc.UnmarshalBinaryBare(raw, o); err != nil {
		return errors.Wrapf(errors.ErrInput, "unmarshal %T: %s", o, err)
	}
	return nil
}
