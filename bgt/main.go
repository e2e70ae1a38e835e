// Command bgt manages a personal budget ledger: incomes, expenses, monthly
// summaries. Run 'bgt topic' for the documentation.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/budget/cmd"
	"github.com/google/subcommands"
)

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, "bgt")
	cmd.Register(commander)

	if err := cmd.Init(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(int(subcommands.ExitFailure))
	}
	// exits when invoked by the shell for completion.
	cmd.Completion().Complete("bgt")

	flag.Parse()

	if flag.NArg() > 0 && !isCommand(commander, flag.Arg(0)) {
		if found, code := cmd.RunExtension(flag.Arg(0), flag.Args()[1:]); found {
			os.Exit(code)
		}
	}
	os.Exit(int(commander.Execute(context.Background())))
}

// isCommand reports whether name is a registered subcommand.
func isCommand(c *subcommands.Commander, name string) bool {
	found := false
	c.VisitCommands(func(_ *subcommands.CommandGroup, sub subcommands.Command) {
		if sub.Name() == name {
			found = true
		}
	})
	return found
}
