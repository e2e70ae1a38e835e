package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/budget"
	"github.com/google/subcommands"
)

type fmtCmd struct{}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and rewrites the ledger file in canonical form"
}
func (*fmtCmd) Usage() string {
	return `bgt fmt

  Validates the ledger file and writes it back indented, with normalized
  fields. A ledger file that cannot be read is reported and left untouched.
`
}

func (*fmtCmd) SetFlags(*flag.FlagSet) {}

func (*fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	path := LedgerPath()
	ledger, status := budget.Load(path)
	switch status.State {
	case budget.Missing:
		fmt.Fprintf(stderr, "Warning: no ledger file %q to format.\n", path)
		return subcommands.ExitSuccess
	case budget.Corrupt:
		return failure(status.Cause)
	}

	if err := saveLedger(ledger); err != nil {
		return failure(err)
	}
	fmt.Fprintf(stderr, "Formatted %d transactions in %q.\n", ledger.Len(), path)
	return subcommands.ExitSuccess
}
