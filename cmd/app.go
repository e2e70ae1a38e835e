// Package cmd implements the CLI application to manage a budget ledger.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/caarlos0/env/v8"
	"github.com/charmbracelet/glamour"
	"github.com/etnz/budget"
	"github.com/etnz/budget/renderer"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"
)

// Commands lists all the subcommands, main registers them.
var Commands = []subcommands.Command{
	&addCmd{},
	&listCmd{},
	&summaryCmd{},
	&categoriesCmd{},
	&editCmd{},
	&deleteCmd{},
	&menuCmd{},
	&fmtCmd{},
	&queryCmd{},
	&topicCmd{},
	&assistCmd{},
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(c.HelpCommand(), "")
	c.Register(c.FlagsCommand(), "")
	for _, cmd := range Commands {
		group := "transactions"
		switch cmd.(type) {
		case *topicCmd, *assistCmd:
			group = "help"
		case *fmtCmd, *queryCmd:
			group = "ledger"
		}
		c.Register(cmd, group)
	}
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var ledgerFile = flag.String("ledger-file", "", "Path to the ledger file (JSON format). Defaults to $BGT_LEDGER_FILE.")
var raw = flag.Bool("raw", false, "Print plain markdown instead of rendering it for the terminal.")

// standard streams, replaced in tests.
var (
	stdin  io.Reader = os.Stdin
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// Config is the application configuration read from the environment.
type Config struct {
	LedgerFile string `env:"BGT_LEDGER_FILE" envDefault:"data/transactions.json"`
	Currency   string `env:"BGT_CURRENCY"`
	LogLevel   string `env:"BGT_LOG_LEVEL" envDefault:"warning"`
	Model      string `env:"BGT_MODEL" envDefault:"gemini-2.5-flash"`
}

var config = Config{
	LedgerFile: budget.DefaultPath,
	LogLevel:   "warning",
	Model:      "gemini-2.5-flash",
}

// LoadConfig reads the configuration from the environment, after loading
// the .env file of the current directory if any.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("could not read .env file: %w", err)
	}
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Init loads the configuration and sets up logging.
func Init() error {
	cfg, err := LoadConfig()
	if err != nil {
		return err
	}
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid BGT_LOG_LEVEL: %w", err)
	}
	config = cfg

	logrus.SetOutput(stderr)
	logrus.SetLevel(level)
	logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	return nil
}

// LedgerPath returns the ledger file in use: the flag first, then the configuration.
func LedgerPath() string {
	if *ledgerFile != "" {
		return *ledgerFile
	}
	return config.LedgerFile
}

// openLedger loads the application ledger. It never fails: a missing or an
// unreadable file gives an empty ledger and a log line.
func openLedger() *budget.Ledger {
	path := LedgerPath()
	ledger, status := budget.Load(path)
	log := logrus.WithField("file", path)
	switch status.State {
	case budget.Missing:
		log.Info("ledger does not exist, starting with an empty ledger")
	case budget.Corrupt:
		log.WithError(status.Cause).Warn("ledger is unreadable, starting with an empty ledger")
	default:
		log.WithField("transactions", ledger.Len()).Debug("ledger loaded")
	}
	return ledger
}

// saveLedger writes the whole ledger back to the application ledger file.
func saveLedger(ledger *budget.Ledger) error {
	path := LedgerPath()
	if err := budget.Save(path, ledger); err != nil {
		return err
	}
	logrus.WithField("file", path).WithField("transactions", ledger.Len()).Debug("ledger saved")
	return nil
}

// options returns the rendering options from the configuration.
func options() renderer.Options {
	return renderer.Options{Currency: config.Currency}
}

// printMarkdown prints markdown to stdout, rendered for the terminal when possible.
func printMarkdown(md string) {
	fmt.Fprint(stdout, renderMarkdown(md))
}

func renderMarkdown(md string) string {
	if *raw || !isTerminal(stdout) {
		return md
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err != nil {
		logrus.WithError(err).Debug("cannot create markdown renderer")
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		logrus.WithError(err).Debug("cannot render markdown")
		return md
	}
	return out
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// failure reports err and returns the matching exit status: invalid user
// input is a usage error, anything else a failure.
func failure(err error) subcommands.ExitStatus {
	fmt.Fprintf(stderr, "Error: %v\n", err)
	if errors.Is(err, budget.ErrValidation) {
		return subcommands.ExitUsageError
	}
	return subcommands.ExitFailure
}
