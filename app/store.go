package app

import (
	"encoding/json"

	"github.com/iov-one/custody"
	"github.com/iov-one/custody/errors"
	"github.com/tendermint/tendermint/libs/log"
)

// StoreApp owns the application state. It answers queries, loads the
// genesis and tracks the current block. Transaction processing is added
// by BaseApp embedding it.
//
// The ABCI calls that take no user input (Info, InitChain, BeginBlock,
// EndBlock, Commit) have no way to report an error and panic instead.
type StoreApp struct {
	name    string
	logger  log.Logger
	store   *CommitStore
	init    custody.Initializer
	queries custody.QueryRouter

	// chainID is empty until the genesis is loaded.
	chainID string

	// base carries values valid for the lifetime of the app. block is
	// base with the height and time of the current block.
	base  custody.Context
	block custody.Context
}

// NewStoreApp loads the latest committed version of store. It panics if
// the state cannot be read.
func NewStoreApp(name string, store custody.CommitKVStore, queries custody.QueryRouter, base custody.Context) *StoreApp {
	cs, err := NewCommitStore(store)
	if err != nil {
		panic(err)
	}
	s := &StoreApp{
		name:    name,
		store:   cs,
		queries: queries,
		base:    base,
	}
	s.WithLogger(log.NewNopLogger())

	if s.chainID, err = loadChainID(s.DeliverStore()); err != nil {
		panic(err)
	}
	if s.chainID != "" {
		s.base = custody.WithChainID(s.base, s.chainID)
	}

	last, err := s.store.CommitInfo()
	if err != nil {
		panic(err)
	}
	s.block = custody.WithHeight(s.base, last.Version)
	return s
}

// WithInit sets what loads the genesis app state.
func (s *StoreApp) WithInit(init custody.Initializer) *StoreApp {
	s.init = init
	return s
}

// WithLogger sets the logger of the app and of every handler context.
func (s *StoreApp) WithLogger(logger log.Logger) *StoreApp {
	s.logger = logger
	s.base = custody.WithLogger(s.base, logger)
	return s
}

func (s *StoreApp) Logger() log.Logger {
	return s.logger
}

// GetChainID returns the chain id loaded from the genesis or the store.
func (s *StoreApp) GetChainID() string {
	return s.chainID
}

// BlockContext returns the context of the block being processed.
func (s *StoreApp) BlockContext() custody.Context {
	return s.block
}

// DeliverStore returns the state transactions of the current block write
// to. It is committed at the end of the block.
func (s *StoreApp) DeliverStore() custody.CacheableKVStore {
	return s.store.deliver
}

// CheckStore returns the mempool state. It is dropped on commit.
func (s *StoreApp) CheckStore() custody.CacheableKVStore {
	return s.store.check
}

// loadGenesis stores the chain id and runs the initializer on the app
// state. A chain can be initialized once only.
func (s *StoreApp) loadGenesis(chainID string, appState []byte) error {
	if s.chainID != "" {
		return errors.Wrapf(errors.ErrImmutable, "app state previously loaded for chain %q", s.chainID)
	}
	if len(appState) == 0 {
		return errors.Wrap(errors.ErrEmpty, "app_state not set in genesis.json, please initialize application before launching the blockchain")
	}
	var opts custody.Options
	if err := json.Unmarshal(appState, &opts); err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}

	if err := saveChainID(s.DeliverStore(), chainID); err != nil {
		return err
	}
	s.chainID = chainID
	s.base = custody.WithChainID(s.base, chainID)
	// Checks may arrive before the first block begins.
	s.block = custody.WithChainID(s.block, chainID)

	if s.init == nil {
		return nil
	}
	return s.init.FromGenesis(opts, s.DeliverStore())
}
