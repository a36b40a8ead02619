package cmd

import (
	"context"
	"flag"
	"slices"

	"github.com/etnz/bankbook/renderer"
	"github.com/google/subcommands"
)

type summaryCmd struct{}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "list all accounts and their balances" }
func (*summaryCmd) Usage() string {
	return `bbk summary

  Lists all accounts in account-number order with their current balance.
`
}

func (*summaryCmd) SetFlags(*flag.FlagSet) {}

func (*summaryCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	bank, err := loadBank()
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.Accounts(slices.Collect(bank.Accounts())))
	return subcommands.ExitSuccess
}
