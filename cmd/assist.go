package cmd

import (
	"context"
	"flag"
	"strings"

	"github.com/etnz/budget/agent"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

type assistCmd struct{}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "start an interactive session with the AI assistant" }
func (*assistCmd) Usage() string {
	return `bgt assist [<prompt>...]

  Starts a chat with an AI assistant that can read the ledger. The optional
  prompt is sent first. See 'bgt topic assist'.
`
}

func (*assistCmd) SetFlags(*flag.FlagSet) {}

func (*assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var prompts []string
	if f.NArg() > 0 {
		prompts = append(prompts, strings.Join(f.Args(), " "))
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return failure(err)
	}

	model := config.Model
	accountant := agent.NewAccountant(model, openLedger(), options())
	a := agent.New(stdout, stdin, model, accountant, agent.NewAdvisor(model))
	a.Render = renderMarkdown

	if err := a.Run(ctx, client, prompts...); err != nil {
		return failure(err)
	}
	return subcommands.ExitSuccess
}
