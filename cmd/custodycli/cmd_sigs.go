package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/iov-one/custody/x/sigs"
)

func cmdSignTransaction(input io.Reader, output io.Writer, args []string) error {
	conf := loadConfig()
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Sign given transaction. This is decoding a transaction data from standard
input, adds a signature and writes back to standard output signed transaction
content.

The chain ID and the signer sequence are fetched from the node unless both
are provided, which allows signing offline.
`)
		fl.PrintDefaults()
	}
	var (
		tmAddrFl = fl.String("tm", conf.TmAddr,
			"Tendermint node address. You can use CUSTODYCLI_TM_ADDR environment variable to set it.")
		keyPathFl = fl.String("key", conf.KeyPath,
			"Path to the private key file that transaction should be signed with. You can use CUSTODYCLI_PRIV_KEY environment variable to set it.")
		chainIDFl = fl.String("chain-id", conf.ChainID,
			"Chain ID the signature is bound to. You can use CUSTODYCLI_CHAIN_ID environment variable to set it.")
		seqFl = fl.Int64("seq", -1, "Sequence of the signer. Fetched from the node if negative.")
	)
	fl.Parse(args)

	key, err := decodePrivateKey(*keyPathFl)
	if err != nil {
		return fmt.Errorf("cannot load private key: %s", err)
	}

	tx, err := readTx(input)
	if err != nil {
		return fmt.Errorf("cannot read transaction: %s", err)
	}

	var client tmClient
	if *chainIDFl == "" || *seqFl < 0 {
		client = newClient(*tmAddrFl)
	}

	chain, err := chainID(client, *chainIDFl)
	if err != nil {
		return fmt.Errorf("cannot get chain ID: %s", err)
	}
	seq := *seqFl
	if seq < 0 {
		if seq, err = nextSequence(client, key.PublicKey().Address()); err != nil {
			return fmt.Errorf("cannot get the next sequence number: %s", err)
		}
	}

	sig, err := sigs.SignTx(key, tx, chain, seq)
	if err != nil {
		return fmt.Errorf("cannot sign transaction: %s", err)
	}
	tx.Signatures = append(tx.Signatures, sig)

	_, err = writeTx(output, tx)
	return err
}
