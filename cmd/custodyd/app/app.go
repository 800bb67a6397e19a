/*
Package app builds the custody ABCI application out of the extensions:
signature checks, token transfers and escrows, stored in an iavl tree.
*/
package app

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/iov-one/custody"
	"github.com/iov-one/custody/app"
	"github.com/iov-one/custody/errors"
	"github.com/iov-one/custody/store/iavl"
	"github.com/iov-one/custody/x/cash"
	"github.com/iov-one/custody/x/escrow"
	"github.com/iov-one/custody/x/sigs"
	"github.com/iov-one/custody/x/utils"
)

// CashControl returns the controller of the token wallets.
func CashControl() cash.Controller {
	return cash.NewController(cash.NewBucket())
}

// Stack returns the handler every transaction goes through.
//
// The check savepoint keeps a rejected transaction out of the mempool
// state. The deliver savepoint sits below the signature decorator, so a
// failed message still consumes the sequence of its signers.
func Stack() custody.Handler {
	auth := sigs.Authenticate{}
	bank := CashControl()

	r := app.NewRouter()
	cash.RegisterRoutes(r, auth, bank)
	escrow.RegisterRoutes(r, auth, bank)

	return app.ChainDecorators(
		utils.NewLogging(),
		utils.NewRecovery(),
		utils.NewSavepoint().OnCheck(),
		sigs.NewDecorator(),
		utils.NewSavepoint().OnDeliver(),
	).WithHandler(r)
}

// QueryRouter serves "/wallets", "/escrows" and "/auth".
func QueryRouter() custody.QueryRouter {
	r := custody.NewQueryRouter()
	r.RegisterAll(
		cash.RegisterQuery,
		escrow.RegisterQuery,
		sigs.RegisterQuery,
	)
	return r
}

// Initializers load the genesis wallets, escrows and configuration.
func Initializers() custody.Initializer {
	return custody.ChainInitializers(
		cash.Initializer{},
		&escrow.Initializer{Minter: CashControl()},
	)
}

// Application opens the store at dbPath, or an in memory one when dbPath
// is empty, and returns an app running h.
func Application(name string, h custody.Handler, dec custody.TxDecoder, dbPath string, debug bool) (app.BaseApp, error) {
	kv, err := openStore(dbPath)
	if err != nil {
		return app.BaseApp{}, err
	}
	store := app.NewStoreApp(name, kv, QueryRouter(), context.Background())
	return app.NewBaseApp(store, dec, h, debug), nil
}

func openStore(dbPath string) (custody.CommitKVStore, error) {
	if dbPath == "" {
		return iavl.NewMemCommitStore(), nil
	}
	path, err := filepath.Abs(dbPath)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "invalid database name: %s", dbPath)
	}
	// leveldb adds the ".db" suffix itself
	path = strings.TrimSuffix(path, filepath.Ext(path))
	return iavl.NewCommitStore(filepath.Dir(path), filepath.Base(path))
}
