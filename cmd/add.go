package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/budget"
	"github.com/google/subcommands"
)

type addCmd struct {
	date     string
	typ      string
	category string
	amount   string
	note     string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record an income or an expense" }
func (*addCmd) Usage() string {
	return `bgt add [-d <date>] -t <income|expense> [-c <category>] -a <amount> [-n <note>]

  Records a new transaction in the ledger. See 'bgt topic add'.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Transaction date (YYYY-MM-DD), defaults to today")
	f.StringVar(&c.typ, "t", "", "Transaction type: income or expense")
	f.StringVar(&c.category, "c", "", "Category, defaults to "+budget.DefaultCategory)
	f.StringVar(&c.amount, "a", "", "Amount, a positive number")
	f.StringVar(&c.note, "n", "", "An optional note")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	ledger := openLedger()

	tx, err := ledger.Add(budget.Entry{
		Date:     c.date,
		Type:     c.typ,
		Category: c.category,
		Amount:   c.amount,
		Note:     c.note,
	})
	if err != nil {
		return failure(err)
	}
	if err := saveLedger(ledger); err != nil {
		return failure(err)
	}

	fmt.Fprintf(stdout, "Added transaction #%d\n", tx.ID)
	return subcommands.ExitSuccess
}
