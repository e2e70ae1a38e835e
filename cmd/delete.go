package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/etnz/budget/renderer"
	"github.com/google/subcommands"
)

type deleteCmd struct {
	id  int
	yes bool
}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "remove a transaction" }
func (*deleteCmd) Usage() string {
	return `bgt delete -id <id> [-y]

  Removes a transaction from the ledger, after confirmation.
`
}

func (c *deleteCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.id, "id", 0, "Id of the transaction to delete")
	f.BoolVar(&c.yes, "y", false, "Do not ask for confirmation")
}

func (c *deleteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id <= 0 || f.NArg() != 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}

	ledger := openLedger()
	tx, ok := ledger.Get(c.id)
	if !ok {
		fmt.Fprintf(stderr, "Error: transaction #%d not found\n", c.id)
		return subcommands.ExitFailure
	}
	if !c.yes {
		fmt.Fprintln(stdout, renderer.Transaction(tx, options()))
		if !confirm(bufio.NewReader(stdin), "Are you sure you want to delete this transaction?") {
			fmt.Fprintln(stdout, "Cancelled.")
			return subcommands.ExitSuccess
		}
	}

	ledger.Delete(c.id)
	if err := saveLedger(ledger); err != nil {
		return failure(err)
	}
	fmt.Fprintf(stdout, "Deleted transaction #%d\n", c.id)
	return subcommands.ExitSuccess
}

// confirm asks a yes/no question, anything but y or yes is a no.
func confirm(r *bufio.Reader, question string) bool {
	fmt.Fprintf(stdout, "%s (y/n): ", question)
	answer, _ := r.ReadString('\n')
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
