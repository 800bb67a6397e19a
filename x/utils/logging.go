package utils

import (
	"time"

	"github.com/iov-one/custody"
	"github.com/tendermint/tendermint/libs/log"
)

// Logging writes one line per transaction with its message path, the
// height and the time spent below the decorator. Failures are logged as
// errors. Successful checks are debug lines and successful deliveries
// info lines.
type Logging struct{}

var _ custody.Decorator = Logging{}

func NewLogging() Logging {
	return Logging{}
}

func (Logging) Check(ctx custody.Context, db custody.KVStore, tx custody.Tx, next custody.Checker) (*custody.CheckResult, error) {
	start := time.Now()
	res, err := next.Check(ctx, db, tx)
	logger := txLogger(ctx, tx, start)
	switch {
	case err != nil:
		logger.Error("check failed", "err", err)
	default:
		logger.Debug("check passed", "log", res.Log)
	}
	return res, err
}

func (Logging) Deliver(ctx custody.Context, db custody.KVStore, tx custody.Tx, next custody.Deliverer) (*custody.DeliverResult, error) {
	start := time.Now()
	res, err := next.Deliver(ctx, db, tx)
	logger := txLogger(ctx, tx, start)
	switch {
	case err != nil:
		logger.Error("delivery failed", "err", err)
	default:
		logger.Info("delivered", "log", res.Log)
	}
	return res, err
}

func txLogger(ctx custody.Context, tx custody.Tx, start time.Time) log.Logger {
	logger := custody.GetLogger(ctx).With(
		"path", custody.GetPath(tx),
		"duration_us", time.Since(start)/time.Microsecond,
	)
	if height, ok := custody.GetHeight(ctx); ok {
		logger = logger.With("height", height)
	}
	return logger
}
