package app

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/iov-one/custody"
	"github.com/iov-one/custody/crypto"
	"github.com/iov-one/custody/errors"
	"github.com/iov-one/custody/x/escrow"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
)

// Name is reported by the abci Info call.
const Name = "custody"

// DefaultTokens is the balance the development account starts with.
const DefaultTokens uint64 = 1000000000000

// GenInitOptions will produce some basic options for one rich
// account, to use for dev mode.
//
// The first argument may be the hex address of the account to fund. If it
// is missing a key is generated and its raw private part printed in hex, so
// it can be written to a custodycli key file.
func GenInitOptions(args []string) (json.RawMessage, error) {
	var addr custody.Address
	if len(args) > 0 {
		a, err := custody.ParseAddress(args[0])
		if err != nil {
			return nil, errors.Wrap(err, "account address")
		}
		addr = a
	} else {
		key := crypto.GenPrivKeyEd25519()
		addr = key.PublicKey().Address()
		fmt.Printf("generated development key, keep it safe: %x\n", key.Ed25519)
	}

	type dict map[string]interface{}
	return json.Marshal(dict{
		"cash": []dict{
			{"address": addr, "amount": DefaultTokens},
		},
		"conf": dict{
			escrow.BucketName: escrow.DefaultConfiguration(),
		},
	})
}

// GenerateApp builds the application for the start command. The store
// lives in home, or in memory when home is empty.
func GenerateApp(home string, logger log.Logger, debug bool) (abci.Application, error) {
	var dbPath string
	if home != "" {
		dbPath = filepath.Join(home, "abci.db")
	}

	application, err := Application(Name, Stack(), TxDecoder, dbPath, debug)
	if err != nil {
		return nil, err
	}
	application.WithInit(Initializers())
	application.WithLogger(logger)
	return application, nil
}
