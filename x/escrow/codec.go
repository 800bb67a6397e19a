package escrow

import (
	amino "github.com/tendermint/go-amino"
)

var cdc = amino.NewCodec()

func init() {
	RegisterAmino(cdc)
}

// RegisterAmino registers all messages of this package.
func RegisterAmino(c *amino.Codec) {
	c.RegisterConcrete(&CreateMsg{}, "escrow/create", nil)
	c.RegisterConcrete(&FundMsg{}, "escrow/fund", nil)
	c.RegisterConcrete(&ReleaseMsg{}, "escrow/release", nil)
	c.RegisterConcrete(&RefundMsg{}, "escrow/refund", nil)
	c.RegisterConcrete(&CancelMsg{}, "escrow/cancel", nil)
}
