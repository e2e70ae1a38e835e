package cmd

import (
	"context"
	"flag"

	"github.com/etnz/budget/docs"
	"github.com/google/subcommands"
)

type topicCmd struct{}

func (*topicCmd) Name() string     { return "topic" }
func (*topicCmd) Synopsis() string { return "show documentation" }
func (*topicCmd) Usage() string {
	return `bgt topic [<topic>...]

  Shows documentation for the given topics, or the list of topics.
  Use '*' for all of them.
`
}

func (*topicCmd) SetFlags(*flag.FlagSet) {}

func (*topicCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	topics := f.Args()
	if len(topics) == 0 {
		topics = []string{docs.Readme}
	}

	doc, err := docs.Topics(topics...)
	if err != nil {
		return failure(err)
	}
	printMarkdown(doc)
	return subcommands.ExitSuccess
}
