package cmd

import (
	"bytes"
	"context"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/etnz/budget"
	"github.com/google/subcommands"
)

// setup points the application to a ledger file in a temporary directory,
// and captures the standard streams. It returns the ledger path.
func setup(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data", "transactions.json")

	oldFile, oldConfig := *ledgerFile, config
	oldIn, oldOut, oldErr := stdin, stdout, stderr
	t.Cleanup(func() {
		*ledgerFile, config = oldFile, oldConfig
		stdin, stdout, stderr = oldIn, oldOut, oldErr
	})
	*ledgerFile = path
	config = Config{LedgerFile: budget.DefaultPath, LogLevel: "warning"}
	return path
}

// result of a command run.
type result struct {
	status subcommands.ExitStatus
	out    string
	err    string
}

// run executes c with args, input is given to stdin.
func run(t *testing.T, c subcommands.Command, input string, args ...string) result {
	t.Helper()
	var out, errOut bytes.Buffer
	stdin, stdout, stderr = strings.NewReader(input), &out, &errOut

	f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	f.SetOutput(&errOut)
	c.SetFlags(f)
	if err := f.Parse(args); err != nil {
		t.Fatalf("%s %v: invalid flags: %v", c.Name(), args, err)
	}
	status := c.Execute(context.Background(), f)
	return result{status: status, out: out.String(), err: errOut.String()}
}

// mustRun runs c and fails the test if it does not succeed.
func mustRun(t *testing.T, c subcommands.Command, args ...string) result {
	t.Helper()
	r := run(t, c, "", args...)
	if r.status != subcommands.ExitSuccess {
		t.Fatalf("%s %v: status = %v, want success\nstdout: %s\nstderr: %s", c.Name(), args, r.status, r.out, r.err)
	}
	return r
}

// load reads the ledger file and fails the test if it is not there.
func load(t *testing.T, path string) *budget.Ledger {
	t.Helper()
	l, status := budget.Load(path)
	if status.State != budget.Loaded {
		t.Fatalf("Load(%q) state = %v (%v), want loaded", path, status.State, status.Cause)
	}
	return l
}

// seed adds a salary and a food expense in march 2024.
func seed(t *testing.T) {
	t.Helper()
	mustRun(t, &addCmd{}, "-d", "2024-03-01", "-t", "income", "-c", "Salary", "-a", "2500", "-n", "march")
	mustRun(t, &addCmd{}, "-d", "2024-03-02", "-t", "expense", "-c", "Food", "-a", "40")
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}
