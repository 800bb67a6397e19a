package main

import (
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/iov-one/custody"
	"github.com/iov-one/custody/cmd/custodyd/app"
	"github.com/iov-one/custody/x/escrow"
)

func cmdEscrowAddress(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Print the address that an escrow created by the buyer for the seller is
stored under. The address does not depend on any chain state, so it can be
computed before the escrow is created.
`)
		fl.PrintDefaults()
	}
	var (
		buyerFl  = flAddress(fl, "buyer", "", "Address of the buyer.")
		sellerFl = flAddress(fl, "seller", "", "Address of the seller.")
	)
	fl.Parse(args)

	if len(*buyerFl) == 0 || len(*sellerFl) == 0 {
		flagDie("both buyer and seller addresses are required")
	}
	addr, bump, err := escrow.DeriveAddress(*buyerFl, *sellerFl)
	if err != nil {
		return fmt.Errorf("cannot derive escrow address: %s", err)
	}
	_, err = fmt.Fprintf(output, "%s\t%d\n", addr, bump)
	return err
}

func cmdCreateEscrow(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Create a transaction for creating a new escrow. The buyer pays the storage
reserve of the escrow. Funds are moved only by fund-escrow.
`)
		fl.PrintDefaults()
	}
	var (
		buyerFl   = flAddress(fl, "buyer", "", "Optional address of the buyer. The main signer is used if not provided.")
		sellerFl  = flAddress(fl, "seller", "", "Address of the seller.")
		arbiterFl = flAddress(fl, "arbiter", "", "Optional address of an arbiter that can release or refund at any time.")
		amountFl  = fl.Uint64("amount", 0, "Amount of tokens the escrow holds once funded.")
		timeoutFl = fl.Duration("timeout", 0, "Time after which the seller can release the funds. Second precision.")
	)
	fl.Parse(args)

	if len(*sellerFl) == 0 {
		flagDie("seller address is required")
	}
	if *amountFl == 0 {
		flagDie("amount must be greater than zero")
	}
	if *timeoutFl < time.Second {
		flagDie("timeout must be at least one second")
	}

	msg := &escrow.CreateMsg{
		Buyer:         *buyerFl,
		Seller:        *sellerFl,
		Arbiter:       *arbiterFl,
		Amount:        *amountFl,
		TimeoutPeriod: custody.AsUnixDuration(*timeoutFl),
	}
	if err := msg.Validate(); err != nil {
		return fmt.Errorf("invalid message: %s", err)
	}
	_, err := writeTx(output, &app.Tx{Msg: msg})
	return err
}

func cmdFundEscrow(input io.Reader, output io.Writer, args []string) error {
	return escrowActionTx(output, args, "fund", `
Create a transaction for funding an escrow. Only the buyer can fund and the
whole escrow amount is transferred from the buyer account.
`, func(addr custody.Address) custody.Msg { return &escrow.FundMsg{Escrow: addr} })
}

func cmdReleaseEscrow(input io.Reader, output io.Writer, args []string) error {
	return escrowActionTx(output, args, "release", `
Create a transaction for releasing funds of an escrow to the seller. The buyer
and the arbiter can release at any time, the seller only after the timeout.
`, func(addr custody.Address) custody.Msg { return &escrow.ReleaseMsg{Escrow: addr} })
}

func cmdRefundEscrow(input io.Reader, output io.Writer, args []string) error {
	return escrowActionTx(output, args, "refund", `
Create a transaction for refunding an escrow to the buyer. Only the seller and
the arbiter can refund.
`, func(addr custody.Address) custody.Msg { return &escrow.RefundMsg{Escrow: addr} })
}

func cmdCancelEscrow(input io.Reader, output io.Writer, args []string) error {
	return escrowActionTx(output, args, "cancel", `
Create a transaction for cancelling an escrow that was not funded yet. Only the
buyer can cancel. The escrow is removed and its reserve returned.
`, func(addr custody.Address) custody.Msg { return &escrow.CancelMsg{Escrow: addr} })
}

// escrowActionTx handles all commands that create a message addressing a
// single existing escrow.
func escrowActionTx(output io.Writer, args []string, action, help string, build func(custody.Address) custody.Msg) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), help)
		fl.PrintDefaults()
	}
	var (
		escrowFl = flAddress(fl, "escrow", "", fmt.Sprintf("Address of the escrow to %s.", action))
	)
	fl.Parse(args)

	if len(*escrowFl) == 0 {
		flagDie("escrow address is required")
	}
	msg := build(*escrowFl)
	if err := msg.Validate(); err != nil {
		return fmt.Errorf("invalid message: %s", err)
	}
	_, err := writeTx(output, &app.Tx{Msg: msg})
	return err
}
