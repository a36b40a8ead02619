package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/bankbook/date"
	"github.com/google/subcommands"
)

type revenueCmd struct {
	acct   int64
	onDate string
}

func (*revenueCmd) Name() string     { return "revenue" }
func (*revenueCmd) Synopsis() string { return "assess interest and fees on an account" }
func (*revenueCmd) Usage() string {
	return `bbk revenue -acct <number> [-on <date>]

  Assesses interest and fees on the selected account: admits an interest
  transaction at the account's rate, then applies the account type's fee
  policy. Runs at most once per calendar month per account.
`
}

func (c *revenueCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&c.acct, "acct", 0, "Account number")
	f.StringVar(&c.onDate, "on", date.Today().String(), "Assessment date (YYYY-MM-DD)")
}

func (c *revenueCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	day, err := date.Parse(c.onDate)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Please try again with a valid date in the format YYYY-MM-DD.")
		return subcommands.ExitUsageError
	}

	bank, err := loadBank()
	if err != nil {
		return fail(err)
	}
	account, status := selectedAccount(bank, c.acct)
	if account == nil {
		return status
	}
	if err := account.AssessInterestAndFees(day); err != nil {
		return fail(err)
	}
	if err := saveBank(bank); err != nil {
		return fail(err)
	}
	fmt.Println(account)
	return subcommands.ExitSuccess
}
