package cmd

import (
	"context"
	"flag"

	"github.com/etnz/budget"
	"github.com/etnz/budget/renderer"
	"github.com/google/subcommands"
)

type listCmd struct {
	filter budget.Filter
	head   int
	tail   int
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list transactions, optionally filtered" }
func (*listCmd) Usage() string {
	return `bgt list [-m <YYYY-MM>] [-c <category>] [-t <income|expense>] [-head <n>] [-tail <n>]

  Lists transactions sorted by date, then id.
`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {
	setFilterFlags(f, &c.filter)
	f.IntVar(&c.head, "head", 0, "Show only the first N transactions.")
	f.IntVar(&c.tail, "tail", 0, "Show only the last N transactions.")
}

// setFilterFlags binds the flags shared by all filtering commands.
func setFilterFlags(f *flag.FlagSet, filter *budget.Filter) {
	f.StringVar(&filter.Month, "m", "", "Keep only this month (YYYY-MM)")
	f.StringVar(&filter.Category, "c", "", "Keep only this category (case-insensitive)")
	f.StringVar(&filter.Type, "t", "", "Keep only income or expense")
}

func (c *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.head > 0 && c.tail > 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	txs, err := openLedger().Filter(c.filter)
	if err != nil {
		return failure(err)
	}

	if c.head > 0 && len(txs) > c.head {
		txs = txs[:c.head]
	}
	if c.tail > 0 && len(txs) > c.tail {
		txs = txs[len(txs)-c.tail:]
	}

	printMarkdown(renderer.Transactions(txs, options()))
	return subcommands.ExitSuccess
}
