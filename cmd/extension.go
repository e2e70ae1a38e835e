package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/sirupsen/logrus"
)

// Environment variables passed to extensions.
const (
	EnvLedgerFile = "BGT_LEDGER_FILE"
	EnvCurrency   = "BGT_CURRENCY"
)

// RunExtension runs the external bgt-<subcommand> binary found in PATH, if any.
//
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if there is no such extension. The extension gets the
// resolved configuration in its environment.
func RunExtension(subcommand string, args []string) (bool, int) {
	name := "bgt-" + subcommand
	lp, err := exec.LookPath(name)
	if err != nil {
		logrus.WithError(err).Debugf("no extension %q", name)
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	cmd.Env = append(os.Environ(),
		EnvLedgerFile+"="+LedgerPath(),
		EnvCurrency+"="+config.Currency,
	)

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return true, exitErr.ExitCode()
		}
		fmt.Fprintf(stderr, "Error executing extension %q: %v\n", name, err)
		return true, 1
	}
	return true, 0
}
