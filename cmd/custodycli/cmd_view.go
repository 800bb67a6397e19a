package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/iov-one/custody"
)

func cmdTransactionView(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Read binary serialized transaction from standard input and print its JSON
representation together with the addresses of all signers.
`)
		fl.PrintDefaults()
	}
	fl.Parse(args)

	tx, err := readTx(input)
	if err != nil {
		return fmt.Errorf("cannot read transaction: %s", err)
	}
	msg, err := tx.GetMsg()
	if err != nil {
		return fmt.Errorf("cannot get message: %s", err)
	}

	type signature struct {
		Signer   custody.Address `json:"signer"`
		Sequence int64           `json:"sequence"`
	}
	signatures := make([]signature, 0, len(tx.Signatures))
	for _, s := range tx.Signatures {
		signatures = append(signatures, signature{
			Signer:   s.Pubkey.Address(),
			Sequence: s.Sequence,
		})
	}

	return writeJSON(output, struct {
		Path       string      `json:"path"`
		Msg        custody.Msg `json:"msg"`
		Signatures []signature `json:"signatures"`
	}{
		Path:       msg.Path(),
		Msg:        msg,
		Signatures: signatures,
	})
}
