package cash

import (
	amino "github.com/tendermint/go-amino"
)

var cdc = amino.NewCodec()

func init() {
	RegisterAmino(cdc)
}

// RegisterAmino registers all messages of this extension, so that they
// can be carried inside a transaction.
func RegisterAmino(c *amino.Codec) {
	c.RegisterConcrete(&SendMsg{}, "cash/send", nil)
}
