package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/budget"
	"github.com/google/subcommands"
)

type queryCmd struct{}

func (*queryCmd) Name() string     { return "query" }
func (*queryCmd) Synopsis() string { return "evaluate a JSONPath expression over the ledger" }
func (*queryCmd) Usage() string {
	return `bgt query <jsonpath>

  Evaluates the expression against the ledger, a list of transactions, and
  prints the result as JSON. See 'bgt topic query'.
`
}

func (*queryCmd) SetFlags(*flag.FlagSet) {}

func (*queryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	result, err := query(openLedger(), f.Arg(0))
	if err != nil {
		return failure(err)
	}
	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return failure(err)
	}
	fmt.Fprintln(stdout, string(out))
	return subcommands.ExitSuccess
}

// query evaluates a JSONPath expression over the ledger as it is encoded on file.
func query(ledger *budget.Ledger, expr string) (any, error) {
	var buf bytes.Buffer
	if err := budget.Encode(&buf, ledger); err != nil {
		return nil, err
	}
	var doc any
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		return nil, err
	}
	result, err := jsonpath.Get(expr, doc)
	if err != nil {
		return nil, fmt.Errorf("invalid query %q: %w", expr, err)
	}
	return result, nil
}
