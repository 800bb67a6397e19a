package server

import (
	"encoding/json"
	"flag"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/iov-one/custody/errors"
	"github.com/tendermint/tendermint/libs/log"
)

const (
	// AppStateKey is the key in the json genesis file for the app state
	AppStateKey = "app_state"
	// DirConfig is the subdir of home where tendermint keeps its configuration
	DirConfig = "config"
	// GenesisTimeKey is the key in the json genesis file for the genesis time
	GenesisTimeKey = "genesis_time"

	flagIgnore = "i"
)

// GenOptions can parse command-line and flag to
// generate default app_state for the genesis file.
// This is application-specific
type GenOptions func(args []string) (json.RawMessage, error)

// GenesisDoc involves some tendermint-specific structures we don't
// want to parse, so we just grab it into a raw object format,
// so we can add one line.
type GenesisDoc map[string]json.RawMessage

// InitCmd will add the app_state to the genesis file created by
// `tendermint init`. The application passes in a function to
// generate proper options.
func InitCmd(gen GenOptions, logger log.Logger, home string, args []string) error {
	var ignoreExisting bool
	initFlags := flag.NewFlagSet("init", flag.ContinueOnError)
	initFlags.BoolVar(&ignoreExisting, flagIgnore, false, "overwrite an existing app_state")
	if err := initFlags.Parse(args); err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}

	genFile := filepath.Join(home, DirConfig, "genesis.json")
	if _, err := os.Stat(genFile); err != nil {
		return errors.Wrapf(errors.ErrNotFound, "genesis file %s, run tendermint init first: %s", genFile, err)
	}

	options, err := gen(initFlags.Args())
	if err != nil {
		return err
	}
	if err := addGenesisOptions(genFile, options, ignoreExisting); err != nil {
		return err
	}
	logger.Info("app_state written to genesis", "path", genFile)
	return nil
}

func addGenesisOptions(filename string, options json.RawMessage, overwrite bool) error {
	bz, err := ioutil.ReadFile(filename)
	if err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}

	var doc GenesisDoc
	if err := json.Unmarshal(bz, &doc); err != nil {
		return errors.Wrapf(errors.ErrInput, "genesis json: %s", err)
	}

	if v, ok := doc[AppStateKey]; ok && len(v) > 0 && string(v) != "null" && !overwrite {
		return errors.Wrap(errors.ErrImmutable, "app_state already set, use -i to overwrite")
	}

	doc[AppStateKey] = options
	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}
	return ioutil.WriteFile(filename, out, 0600)
}
