package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type fmtCmd struct{}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and rewrites the bank file into a canonical form"
}
func (*fmtCmd) Usage() string {
	return `bbk fmt

  Validates and formats the bank file. This command reads the whole
  snapshot, checks it decodes cleanly, and writes it back in canonical
  form: accounts in number order, one JSON line per record.
`
}

func (*fmtCmd) SetFlags(*flag.FlagSet) {}

func (*fmtCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	bank, err := loadBank()
	if err != nil {
		return fail(err)
	}
	if err := saveBank(bank); err != nil {
		return fail(err)
	}
	fmt.Fprintf(os.Stderr, "Formatted %q.\n", *bankFile)
	return subcommands.ExitSuccess
}
