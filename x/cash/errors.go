package cash

import (
	"github.com/iov-one/custody/errors"
)

// x/cash reserves 130 ~ 139.
var (
	// ErrEmptyAccount is returned when tokens are moved from a wallet
	// that was never funded.
	ErrEmptyAccount = errors.Register(130, "empty account")
)
