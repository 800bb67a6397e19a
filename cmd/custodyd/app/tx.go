package app

import (
	"github.com/iov-one/custody"
	"github.com/iov-one/custody/errors"
	"github.com/iov-one/custody/x/cash"
	"github.com/iov-one/custody/x/escrow"
	"github.com/iov-one/custody/x/sigs"
	amino "github.com/tendermint/go-amino"
)

// TxCodec knows every message this application accepts.
var TxCodec = NewTxCodec()

// NewTxCodec returns an amino codec with the message interface and all
// messages of the registered extensions.
func NewTxCodec() *amino.Codec {
	c := amino.NewCodec()
	c.RegisterInterface((*custody.Msg)(nil), nil)
	cash.RegisterAmino(c)
	escrow.RegisterAmino(c)
	return c
}

// Tx is the transaction format of the custody chain: a single message
// followed by the signatures of everyone authorizing it.
type Tx struct {
	Msg        custody.Msg
	Signatures []*sigs.StdSignature
}

// make sure tx fulfills all interfaces
var _ custody.Tx = (*Tx)(nil)
var _ sigs.SignedTx = (*Tx)(nil)

// TxDecoder creates a Tx and unmarshals bytes into it
func TxDecoder(bz []byte) (custody.Tx, error) {
	tx := new(Tx)
	if err := tx.Unmarshal(bz); err != nil {
		return nil, err
	}
	return tx, nil
}

// Marshal serializes the transaction using amino binary encoding.
func (tx *Tx) Marshal() ([]byte, error) {
	raw, err := TxCodec.MarshalBinaryBare(tx)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "marshal tx: %s", err)
	}
	return raw, nil
}

// Unmarshal loads the transaction from its amino binary representation.
func (tx *Tx) Unmarshal(raw []byte) error {
	if len(raw) == 0 {
		return errors.Wrap(errors.ErrEmpty, "transaction")
	}
	if err := TxCodec.UnmarshalBinaryBare(raw, tx); err != nil {
		return errors.Wrapf(errors.ErrInput, "unmarshal tx: %s", err)
	}
	return nil
}

// GetMsg returns the single message carried by this transaction.
func (tx *Tx) GetMsg() (custody.Msg, error) {
	if tx.Msg == nil {
		return nil, errors.Wrap(errors.ErrInput, "missing message")
	}
	return tx.Msg, nil
}

// GetSignatures returns all signatures attached to this transaction.
func (tx *Tx) GetSignatures() []*sigs.StdSignature {
	return tx.Signatures
}

// GetSignBytes returns the bytes to sign. Signatures are not part of them,
// so adding one signature does not invalidate the others.
func (tx *Tx) GetSignBytes() ([]byte, error) {
	unsigned := Tx{Msg: tx.Msg}
	return unsigned.Marshal()
}
