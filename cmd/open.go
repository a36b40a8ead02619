package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/bankbook"
	"github.com/etnz/bankbook/date"
	"github.com/google/subcommands"
)

type openCmd struct {
	kind   string
	amount string
	onDate string
}

func (*openCmd) Name() string     { return "open" }
func (*openCmd) Synopsis() string { return "open a new account with an initial deposit" }
func (*openCmd) Usage() string {
	return `bbk open -t <savings|checking> -a <amount> [-on <date>]

  Opens a new account of the given type, admits the initial deposit, and
  prints the new account.
`
}

func (c *openCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.kind, "t", "", "Account type (savings or checking)")
	f.StringVar(&c.amount, "a", "", "Initial deposit amount")
	f.StringVar(&c.onDate, "on", date.Today().String(), "Deposit date (YYYY-MM-DD)")
}

func (c *openCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.kind == "" || c.amount == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	amount, err := bankbook.ParseMoney(c.amount)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Please try again with a valid dollar amount.")
		return subcommands.ExitUsageError
	}
	day, err := date.Parse(c.onDate)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Please try again with a valid date in the format YYYY-MM-DD.")
		return subcommands.ExitUsageError
	}

	bank, err := loadBank()
	if err != nil {
		return fail(err)
	}
	account, err := bank.Open(c.kind)
	if err != nil {
		return fail(err)
	}
	if err := account.Add(bankbook.NewTransaction(amount, day, false)); err != nil {
		// The deposit was refused: nothing is saved, the account is not kept.
		return fail(err)
	}
	if err := saveBank(bank); err != nil {
		return fail(err)
	}
	fmt.Println(account)
	return subcommands.ExitSuccess
}
