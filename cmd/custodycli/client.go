package main

import (
	"github.com/iov-one/custody"
	"github.com/iov-one/custody/errors"
	"github.com/iov-one/custody/x/sigs"
	cmn "github.com/tendermint/tendermint/libs/common"
	rpcclient "github.com/tendermint/tendermint/rpc/client"
	ctypes "github.com/tendermint/tendermint/rpc/core/types"
	tmtypes "github.com/tendermint/tendermint/types"
)

// tmClient is the part of the tendermint RPC API this program uses.
type tmClient interface {
	ABCIQuery(path string, data cmn.HexBytes) (*ctypes.ResultABCIQuery, error)
	BroadcastTxCommit(tx tmtypes.Tx) (*ctypes.ResultBroadcastTxCommit, error)
	Genesis() (*ctypes.ResultGenesis, error)
}

var _ tmClient = (*rpcclient.HTTP)(nil)

// newClient returns a client connected to the node at given address. Tests
// replace it to talk to an in process application.
var newClient = func(addr string) tmClient {
	return rpcclient.NewHTTP(addr, "/websocket")
}

// abciQuery returns the raw value stored under the key. An empty result
// means there is no such entity.
func abciQuery(c tmClient, path string, key []byte) ([]byte, error) {
	res, err := c.ABCIQuery(path, key)
	if err != nil {
		return nil, errors.Wrap(err, "abci query")
	}
	if resp := res.Response; resp.Code != errors.SuccessABCICode {
		return nil, custody.ResponseError(resp.Code, resp.Log)
	}
	return res.Response.Value, nil
}

// chainID returns the given value when set or the one declared by the
// node genesis.
func chainID(c tmClient, configured string) (string, error) {
	if configured != "" {
		return configured, nil
	}
	res, err := c.Genesis()
	if err != nil {
		return "", errors.Wrap(err, "fetch genesis")
	}
	return res.Genesis.ChainID, nil
}

// nextSequence returns the sequence the next signature of given signer must
// use. Signers that never signed anything start with zero.
func nextSequence(c tmClient, signer custody.Address) (int64, error) {
	raw, err := abciQuery(c, "/auth", signer)
	if err != nil {
		return 0, err
	}
	if len(raw) == 0 {
		return 0, nil
	}
	var user sigs.UserData
	if err := user.Unmarshal(raw); err != nil {
		return 0, errors.Wrap(err, "user data")
	}
	return user.Sequence, nil
}
