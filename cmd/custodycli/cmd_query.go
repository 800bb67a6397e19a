package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"

	"github.com/iov-one/custody"
	"github.com/iov-one/custody/x/cash"
	"github.com/iov-one/custody/x/escrow"
)

func cmdEscrowStatus(input io.Reader, output io.Writer, args []string) error {
	conf := loadConfig()
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Print JSON encoded state of an escrow together with the balance that the
escrow address holds. The balance includes the storage reserve.
`)
		fl.PrintDefaults()
	}
	var (
		tmAddrFl = fl.String("tm", conf.TmAddr,
			"Tendermint node address. You can use CUSTODYCLI_TM_ADDR environment variable to set it.")
		escrowFl = flAddress(fl, "escrow", "", "Address of the escrow.")
	)
	fl.Parse(args)

	if len(*escrowFl) == 0 {
		flagDie("escrow address is required")
	}

	client := newClient(*tmAddrFl)
	raw, err := abciQuery(client, "/escrows", *escrowFl)
	if err != nil {
		return fmt.Errorf("cannot query escrow: %s", err)
	}
	if len(raw) == 0 {
		return fmt.Errorf("escrow %s not found", *escrowFl)
	}
	var e escrow.Escrow
	if err := e.Unmarshal(raw); err != nil {
		return fmt.Errorf("cannot decode escrow: %s", err)
	}
	held, err := queryBalance(client, *escrowFl)
	if err != nil {
		return err
	}

	return writeJSON(output, struct {
		Address custody.Address `json:"address"`
		Escrow  *escrow.Escrow  `json:"escrow"`
		Balance uint64          `json:"balance"`
	}{
		Address: *escrowFl,
		Escrow:  &e,
		Balance: held,
	})
}

func cmdWallet(input io.Reader, output io.Writer, args []string) error {
	conf := loadConfig()
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Print the balance of an account. Accounts that were never used have no
tokens.
`)
		fl.PrintDefaults()
	}
	var (
		tmAddrFl = fl.String("tm", conf.TmAddr,
			"Tendermint node address. You can use CUSTODYCLI_TM_ADDR environment variable to set it.")
		addrFl = flAddress(fl, "address", "", "Address of the account.")
	)
	fl.Parse(args)

	if len(*addrFl) == 0 {
		flagDie("address is required")
	}
	amount, err := queryBalance(newClient(*tmAddrFl), *addrFl)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(output, amount)
	return err
}

func queryBalance(client tmClient, addr custody.Address) (uint64, error) {
	raw, err := abciQuery(client, "/wallets", addr)
	if err != nil {
		return 0, fmt.Errorf("cannot query wallet: %s", err)
	}
	if len(raw) == 0 {
		return 0, nil
	}
	var b cash.Balance
	if err := b.Unmarshal(raw); err != nil {
		return 0, fmt.Errorf("cannot decode balance: %s", err)
	}
	return b.Amount, nil
}

func writeJSON(output io.Writer, v interface{}) error {
	pretty, err := json.MarshalIndent(v, "", "\t")
	if err != nil {
		return fmt.Errorf("cannot JSON serialize: %s", err)
	}
	_, err = fmt.Fprintln(output, string(pretty))
	return err
}
