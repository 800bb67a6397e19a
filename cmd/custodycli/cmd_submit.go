package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/iov-one/custody"
	"github.com/iov-one/custody/x/escrow"
	tmtypes "github.com/tendermint/tendermint/types"
)

func cmdSubmitTransaction(input io.Reader, output io.Writer, args []string) error {
	conf := loadConfig()
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Read binary serialized transaction from standard input and submit it. The
command waits until the transaction is included in a block.

For certain transactions response is written out.

Make sure to collect enough signatures before submitting the transaction.
`)
		fl.PrintDefaults()
	}
	var (
		tmAddrFl = fl.String("tm", conf.TmAddr,
			"Tendermint node address. You can use CUSTODYCLI_TM_ADDR environment variable to set it.")
	)
	fl.Parse(args)

	tx, err := readTx(input)
	if err != nil {
		return fmt.Errorf("cannot read transaction from input: %s", err)
	}
	raw, err := tx.Marshal()
	if err != nil {
		return fmt.Errorf("cannot serialize transaction: %s", err)
	}

	res, err := newClient(*tmAddrFl).BroadcastTxCommit(tmtypes.Tx(raw))
	if err != nil {
		return fmt.Errorf("cannot broadcast transaction: %s", err)
	}
	if res.CheckTx.IsErr() {
		return fmt.Errorf("check failed: %s", custody.ResponseError(res.CheckTx.Code, res.CheckTx.Log))
	}
	if res.DeliverTx.IsErr() {
		return fmt.Errorf("deliver failed: %s", custody.ResponseError(res.DeliverTx.Code, res.DeliverTx.Log))
	}

	format, ok := formatters[custody.GetPath(tx)]
	if !ok {
		return nil
	}
	pretty, err := format(res.DeliverTx.Data)
	if err != nil {
		return fmt.Errorf("cannot format result data %x: %s", res.DeliverTx.Data, err)
	}
	_, err = fmt.Fprintln(output, pretty)
	return err
}

// formatters contains a mapping of a message path to response parser.
// Response parse function accepts a raw bytes of serialized response and must
// return a human representation of that data.
//
// Do not register a message if you want response returned after its
// submission to be ignored.
var formatters = map[string]func([]byte) (string, error){
	escrow.CreateMsg{}.Path():  fmtAddress,
	escrow.FundMsg{}.Path():    fmtAmount,
	escrow.ReleaseMsg{}.Path(): fmtAmount,
	escrow.RefundMsg{}.Path():  fmtAmount,
	escrow.CancelMsg{}.Path():  fmtAmount,
}

func fmtAddress(raw []byte) (string, error) {
	addr := custody.Address(raw)
	if err := addr.Validate(); err != nil {
		return "", err
	}
	return addr.String(), nil
}

func fmtAmount(raw []byte) (string, error) {
	n, err := escrow.DecodeAmount(raw)
	if err != nil {
		return "", err
	}
	return fmt.Sprint(n), nil
}
