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

type txCmd struct {
	acct   int64
	amount string
	onDate string
	exempt bool
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "record a transaction on an account" }
func (*txCmd) Usage() string {
	return `bbk tx -acct <number> -a <amount> [-on <date>] [-exempt]

  Records a transaction on the selected account. Deposits are positive
  amounts, withdrawals negative. The transaction is checked against the
  account rules before it is admitted.
`
}

func (c *txCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&c.acct, "acct", 0, "Account number")
	f.StringVar(&c.amount, "a", "", "Transaction amount (negative to withdraw)")
	f.StringVar(&c.onDate, "on", date.Today().String(), "Transaction date (YYYY-MM-DD)")
	f.BoolVar(&c.exempt, "exempt", false, "Mark the transaction exempt from count limits")
}

func (c *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.amount == "" {
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
	account, status := selectedAccount(bank, c.acct)
	if account == nil {
		return status
	}
	if err := account.Add(bankbook.NewTransaction(amount, day, c.exempt)); err != nil {
		return fail(err)
	}
	if err := saveBank(bank); err != nil {
		return fail(err)
	}
	fmt.Println(account)
	return subcommands.ExitSuccess
}
