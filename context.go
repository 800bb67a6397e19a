package custody

import (
	"context"
	"regexp"
	"time"

	"github.com/tendermint/tendermint/libs/log"
)

// Block information travels with the context.Context given to every
// decorator and handler. Values describing the block are set once by the
// app. Setting them again panics, so no handler can lie to the ones below
// it about the height or the chain.

type contextKey int

const (
	keyHeight contextKey = iota
	keyChainID
	keyLogger
	keyBlockTime
)

var (
	// DefaultLogger is returned by GetLogger when no logger was set.
	DefaultLogger = log.NewNopLogger()

	// IsValidChainID reports whether a string can be used as a chain id.
	IsValidChainID = regexp.MustCompile(`^[a-zA-Z0-9_\-]{6,20}$`).MatchString
)

type Context = context.Context

// WithHeight panics if ctx has a height already.
func WithHeight(ctx Context, height int64) Context {
	if _, ok := GetHeight(ctx); ok {
		panic("Block height already set")
	}
	return context.WithValue(ctx, keyHeight, height)
}

func GetHeight(ctx Context) (int64, bool) {
	h, ok := ctx.Value(keyHeight).(int64)
	return h, ok
}

// WithBlockTime stores t converted to UTC.
func WithBlockTime(ctx Context, t time.Time) Context {
	return context.WithValue(ctx, keyBlockTime, t.UTC())
}

// BlockTime returns the time of the current block. A zero time counts as
// not set.
func BlockTime(ctx Context) (time.Time, bool) {
	t, ok := ctx.Value(keyBlockTime).(time.Time)
	if !ok || t.IsZero() {
		return time.Time{}, false
	}
	return t, true
}

// BlockUnixTime is BlockTime truncated to seconds. Escrow timeouts are
// compared against it.
func BlockUnixTime(ctx Context) (UnixTime, bool) {
	if t, ok := BlockTime(ctx); ok {
		return AsUnixTime(t), true
	}
	return 0, false
}

// WithChainID panics if ctx has a chain id already or chainID is not
// valid.
func WithChainID(ctx Context, chainID string) Context {
	if _, ok := ctx.Value(keyChainID).(string); ok {
		panic("Chain ID already set")
	}
	if !IsValidChainID(chainID) {
		panic("Invalid chain ID")
	}
	return context.WithValue(ctx, keyChainID, chainID)
}

// GetChainID panics if no chain id was set. The app sets it before any
// transaction is processed.
func GetChainID(ctx Context) string {
	id, ok := ctx.Value(keyChainID).(string)
	if !ok {
		panic("Chain id is not in context")
	}
	return id
}

func WithLogger(ctx Context, logger log.Logger) Context {
	return context.WithValue(ctx, keyLogger, logger)
}

// WithLogInfo adds keyvals to every line logged through the returned
// context.
func WithLogInfo(ctx Context, keyvals ...interface{}) Context {
	return WithLogger(ctx, GetLogger(ctx).With(keyvals...))
}

func GetLogger(ctx Context) log.Logger {
	if l, ok := ctx.Value(keyLogger).(log.Logger); ok {
		return l
	}
	return DefaultLogger
}
