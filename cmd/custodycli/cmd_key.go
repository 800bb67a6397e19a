package main

import (
	"flag"
	"fmt"
	"io"
	"io/ioutil"
	"os"

	"github.com/iov-one/custody/crypto"
	"golang.org/x/crypto/ed25519"
)

const keyFlagHelp = "Private key file. Defaults to the CUSTODYCLI_PRIV_KEY environment variable."

func cmdKeygen(input io.Reader, output io.Writer, args []string) error {
	conf := loadConfig()
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Create a new ed25519 private key file and print the address it signs for.
An existing key file is never overwritten.
`)
		fl.PrintDefaults()
	}
	keyPath := fl.String("key", conf.KeyPath, keyFlagHelp)
	fl.Parse(args)

	key := crypto.GenPrivKeyEd25519()

	// O_EXCL fails when the file exists, the user must remove it first.
	fd, err := os.OpenFile(*keyPath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0600)
	if err != nil {
		if os.IsExist(err) {
			return fmt.Errorf("private key file %q already exists, delete this file and try again", *keyPath)
		}
		return fmt.Errorf("cannot create private key file: %s", err)
	}
	if _, err := fd.Write(key.Ed25519); err != nil {
		fd.Close()
		return fmt.Errorf("cannot write private key: %s", err)
	}
	if err := fd.Close(); err != nil {
		return fmt.Errorf("cannot close private key file: %s", err)
	}

	_, err = fmt.Fprintln(output, key.PublicKey().Address())
	return err
}

func cmdKeyaddr(input io.Reader, output io.Writer, args []string) error {
	conf := loadConfig()
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Print the address of the private key.
`)
		fl.PrintDefaults()
	}
	keyPath := fl.String("key", conf.KeyPath, keyFlagHelp)
	fl.Parse(args)

	key, err := decodePrivateKey(*keyPath)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(output, key.PublicKey().Address())
	return err
}

// decodePrivateKey reads a key file written by keygen.
func decodePrivateKey(path string) (*crypto.PrivateKey, error) {
	raw, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read private key file: %s", err)
	}
	if len(raw) != ed25519.PrivateKeySize {
		return nil, fmt.Errorf("invalid private key length: %d", len(raw))
	}
	return &crypto.PrivateKey{Ed25519: raw}, nil
}
