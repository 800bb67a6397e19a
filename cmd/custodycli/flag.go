package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/iov-one/custody"
)

// flAddress returns a value that is being initialized with given default
// value and optionally overwritten by a command line argument if provided.
// Any format accepted by custody.ParseAddress can be used.
// If given value cannot be deserialized, process is terminated.
func flAddress(fl *flag.FlagSet, name, defaultVal, usage string) *custody.Address {
	var a addressValue
	if defaultVal != "" {
		addr, err := custody.ParseAddress(defaultVal)
		if err != nil {
			flagDie("cannot parse %q address flag value: %s", name, err)
		}
		a = addressValue(addr)
	}
	fl.Var(&a, name, usage)
	return (*custody.Address)(&a)
}

type addressValue custody.Address

func (a addressValue) String() string {
	if len(a) == 0 {
		return ""
	}
	return custody.Address(a).String()
}

func (a *addressValue) Set(raw string) error {
	addr, err := custody.ParseAddress(raw)
	if err != nil {
		return err
	}
	*a = addressValue(addr)
	return nil
}

// flagDie terminates the program when a command line flag is not valid.
func flagDie(description string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, description, args...)
	fmt.Fprintln(os.Stderr)
	os.Exit(2)
}
