// Package cmd implements the CLI application to manage a bankbook.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/bankbook"
	"github.com/google/subcommands"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var bankFile = flag.String("f", "bank.jsonl", "Path to the bank snapshot file (JSONL format)")

// Commands lists every subcommand of the bbk tool.
// A main package registers them all and executes the user-selected one.
var Commands = []subcommands.Command{
	&openCmd{},
	&summaryCmd{},
	&txCmd{},
	&historyCmd{},
	&revenueCmd{},
	&fmtCmd{},
	&topicCmd{},
}

// loadBank reads the bank from the app bank file, starting empty when the
// file does not exist yet.
func loadBank() (*bankbook.Bank, error) {
	b, err := bankbook.LoadBank(*bankFile)
	if errors.Is(err, fs.ErrNotExist) {
		log.Println("warning, bank file does not exist, starting with an empty bank instead")
		return bankbook.NewBank(), nil
	}
	return b, err
}

// saveBank writes the bank back to the app bank file.
func saveBank(b *bankbook.Bank) error {
	return bankbook.SaveBank(*bankFile, b)
}

// selectedAccount resolves the -acct flag into an account. An unset flag is
// a usage error; an unknown number is a domain failure.
func selectedAccount(b *bankbook.Bank, number int64) (*bankbook.Account, subcommands.ExitStatus) {
	if number <= 0 {
		fmt.Fprintln(os.Stderr, "This command requires that you first select an account with -acct.")
		return nil, subcommands.ExitUsageError
	}
	a, err := b.Account(number)
	if err != nil {
		return nil, fail(err)
	}
	return a, subcommands.ExitSuccess
}

// printMarkdown renders a markdown string to the terminal.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(0))
	if err != nil {
		fmt.Print(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}

// fail maps a domain error to the message shown to the user and logs the
// underlying cause.
func fail(err error) subcommands.ExitStatus {
	log.Printf("command failed: %v", err)

	var seq *bankbook.SequenceError
	switch {
	case errors.Is(err, bankbook.ErrOverdraw):
		fmt.Fprintln(os.Stderr, "This transaction could not be completed due to an insufficient account balance.")
	case errors.Is(err, bankbook.ErrTransactionLimit):
		fmt.Fprintln(os.Stderr, "This transaction could not be completed because the account has reached a transaction limit.")
	case errors.As(err, &seq):
		fmt.Fprintf(os.Stderr, "New transactions must be from %s onward.\n", seq.Latest)
	case errors.Is(err, bankbook.ErrAccountNotFound):
		fmt.Fprintln(os.Stderr, "That account number does not exist.")
	default:
		fmt.Fprintln(os.Stderr, err)
	}
	return subcommands.ExitFailure
}
