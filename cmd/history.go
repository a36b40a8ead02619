package cmd

import (
	"context"
	"flag"

	"github.com/etnz/bankbook/renderer"
	"github.com/google/subcommands"
)

type historyCmd struct {
	acct int64
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "list the transactions of an account" }
func (*historyCmd) Usage() string {
	return `bbk history -acct <number>

  Lists the transactions of the selected account sorted by date, oldest
  first.
`
}

func (c *historyCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&c.acct, "acct", 0, "Account number")
}

func (c *historyCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	bank, err := loadBank()
	if err != nil {
		return fail(err)
	}
	account, status := selectedAccount(bank, c.acct)
	if account == nil {
		return status
	}
	printMarkdown(renderer.Transactions(account.Transactions()))
	return subcommands.ExitSuccess
}
