package cmd

import (
	"context"
	"flag"

	"github.com/etnz/budget"
	"github.com/etnz/budget/renderer"
	"github.com/google/subcommands"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	month string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display income, expenses and balance totals" }
func (*summaryCmd) Usage() string {
	return `bgt summary [-m <YYYY-MM>]

  Displays the totals of a month, or of the whole ledger.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.month, "m", "", "Month to summarize (YYYY-MM), defaults to the whole ledger")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := openLedger().Summarize(c.month)
	if err != nil {
		return failure(err)
	}
	printMarkdown(renderer.Summary(s, c.month, options()))
	return subcommands.ExitSuccess
}

// categoriesCmd holds the flags for the 'categories' subcommand.
type categoriesCmd struct {
	filter budget.Filter
}

func (*categoriesCmd) Name() string     { return "categories" }
func (*categoriesCmd) Synopsis() string { return "display totals by category" }
func (*categoriesCmd) Usage() string {
	return `bgt categories [-m <YYYY-MM>] [-c <category>] [-t <income|expense>]

  Displays income, expenses and net totals for each category.
`
}

func (c *categoriesCmd) SetFlags(f *flag.FlagSet) { setFilterFlags(f, &c.filter) }

func (c *categoriesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cats, err := openLedger().Categories(c.filter)
	if err != nil {
		return failure(err)
	}
	printMarkdown(renderer.Categories(cats, options()))
	return subcommands.ExitSuccess
}
