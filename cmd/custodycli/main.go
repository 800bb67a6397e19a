package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/iov-one/custody"
)

// commands is a register of all availables commands that can be executed by
// this program. The name is used to match with the first argument given.
//
// A command function is given stdin, stdout and the command line arguments
// without the program name and the command name. It is expected to read
// and write only to provided input and output.
//
// Keep each command small. Transactions are created, signed and submitted
// by separate commands that can be combined into a pipeline:
//
//	$ custodycli create-escrow -seller 8F2A...E1 -amount 1000 -timeout 1h \
//	    | custodycli sign \
//	    | custodycli submit
var commands = map[string]func(input io.Reader, output io.Writer, args []string) error{
	"cancel-escrow":  cmdCancelEscrow,
	"create-escrow":  cmdCreateEscrow,
	"escrow-address": cmdEscrowAddress,
	"escrow-status":  cmdEscrowStatus,
	"fund-escrow":    cmdFundEscrow,
	"keyaddr":        cmdKeyaddr,
	"keygen":         cmdKeygen,
	"refund-escrow":  cmdRefundEscrow,
	"release-escrow": cmdReleaseEscrow,
	"send-tokens":    cmdSendTokens,
	"sign":           cmdSignTransaction,
	"submit":         cmdSubmitTransaction,
	"version":        cmdVersion,
	"view":           cmdTransactionView,
	"wallet":         cmdWallet,
}

func main() {
	if len(os.Args) == 1 {
		fmt.Fprintf(os.Stderr, "%s is a command line client for the custody application.\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Usage: %s <command> [<flags>]\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nAvailable commands are:\n\t%s\n", strings.Join(availableCmds(), "\n\t"))
		fmt.Fprintf(os.Stderr, "Run '%s <command> -help' to learn more about each command.\n", os.Args[0])
		os.Exit(2)
	}
	run, ok := commands[os.Args[1]]
	if !ok {
		fmt.Fprintf(os.Stderr, "Unknown command %q\n", os.Args[1])
		fmt.Fprintf(os.Stderr, "\nAvailable commands are:\n\t%s\n", strings.Join(availableCmds(), "\n\t"))
		os.Exit(2)
	}

	if err := run(os.Stdin, os.Stdout, os.Args[2:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func availableCmds() []string {
	available := make([]string, 0, len(commands))
	for name := range commands {
		available = append(available, name)
	}
	sort.Strings(available)
	return available
}

func cmdVersion(in io.Reader, out io.Writer, args []string) error {
	_, err := fmt.Fprintln(out, custody.Version())
	return err
}
