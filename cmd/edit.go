package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/budget"
	"github.com/etnz/budget/renderer"
	"github.com/google/subcommands"
)

type editCmd struct {
	id       int
	date     string
	typ      string
	category string
	amount   string
	note     string
}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "change some fields of a transaction" }
func (*editCmd) Usage() string {
	return `bgt edit -id <id> [-d <date>] [-t <type>] [-c <category>] [-a <amount>] [-n <note>]

  Changes only the fields given on the command line. If any of them is
  invalid, the transaction is left unchanged.
`
}

func (c *editCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.id, "id", 0, "Id of the transaction to edit")
	f.StringVar(&c.date, "d", "", "New date (YYYY-MM-DD)")
	f.StringVar(&c.typ, "t", "", "New type: income or expense")
	f.StringVar(&c.category, "c", "", "New category")
	f.StringVar(&c.amount, "a", "", "New amount")
	f.StringVar(&c.note, "n", "", "New note")
}

// changes returns the changes for the flags explicitly set on the command line.
func (c *editCmd) changes(f *flag.FlagSet) budget.Changes {
	var changes budget.Changes
	f.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "d":
			changes.Date = &c.date
		case "t":
			changes.Type = &c.typ
		case "c":
			changes.Category = &c.category
		case "a":
			changes.Amount = &c.amount
		case "n":
			changes.Note = &c.note
		}
	})
	return changes
}

func (c *editCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id <= 0 || f.NArg() != 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	changes := c.changes(f)
	if changes.IsEmpty() {
		fmt.Fprintln(stderr, "Nothing to change.")
		return subcommands.ExitUsageError
	}

	ledger := openLedger()
	found, err := ledger.Update(c.id, changes)
	if !found {
		fmt.Fprintf(stderr, "Error: transaction #%d not found\n", c.id)
		return subcommands.ExitFailure
	}
	if err != nil {
		return failure(err)
	}
	if err := saveLedger(ledger); err != nil {
		return failure(err)
	}

	tx, _ := ledger.Get(c.id)
	fmt.Fprintf(stdout, "Updated %s\n", renderer.Transaction(tx, options()))
	return subcommands.ExitSuccess
}
