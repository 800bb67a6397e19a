package main

import (
	"github.com/caarlos0/env/v11"
)

// config holds the defaults that every command flag falls back to. Each
// value can be set with an environment variable, so that a pipeline does
// not have to repeat them for every command.
type config struct {
	KeyPath string `env:"CUSTODYCLI_PRIV_KEY,expand" envDefault:"${HOME}/.custody.priv.key"`
	TmAddr  string `env:"CUSTODYCLI_TM_ADDR" envDefault:"http://localhost:26657"`
	// ChainID is fetched from the node genesis when empty.
	ChainID string `env:"CUSTODYCLI_CHAIN_ID"`
}

// loadConfig reads the environment. Malformed configuration terminates the
// process, the same way an invalid flag does.
func loadConfig() config {
	var c config
	if err := env.Parse(&c); err != nil {
		flagDie("invalid environment configuration: %s", err)
	}
	return c
}
