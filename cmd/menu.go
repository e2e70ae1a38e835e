package cmd

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/etnz/budget"
	"github.com/etnz/budget/renderer"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type menuCmd struct{}

func (*menuCmd) Name() string     { return "menu" }
func (*menuCmd) Synopsis() string { return "manage the ledger from an interactive menu" }
func (*menuCmd) Usage() string {
	return `bgt menu

  Starts an interactive session with a numbered menu. The ledger is saved
  after every change and when leaving the menu.
`
}

func (*menuCmd) SetFlags(*flag.FlagSet) {}

func (*menuCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	m := newMenu(stdout, stdin, openLedger())
	if err := m.Run(); err != nil {
		return failure(err)
	}
	return subcommands.ExitSuccess
}

// menu is an interactive session over a ledger.
type menu struct {
	w      io.Writer
	r      *bufio.Reader
	ledger *budget.Ledger
	save   func(*budget.Ledger) error
}

func newMenu(w io.Writer, r io.Reader, ledger *budget.Ledger) *menu {
	return &menu{
		w:      w,
		r:      bufio.NewReader(r),
		ledger: ledger,
		save:   saveLedger,
	}
}

const menuText = `
=== Personal Budget Tracker ===
1) Add transaction
2) List transactions
3) Summary
4) Edit transaction
5) Delete transaction
0) Exit
`

// Run loops over the menu until the user exits or the input is closed.
// Both save the ledger one last time.
func (m *menu) Run() error {
	for {
		fmt.Fprint(m.w, menuText)
		choice, err := m.prompt("Choose an option: ")
		if errors.Is(err, io.EOF) {
			return m.exit()
		}
		if err != nil {
			return err
		}

		switch choice {
		case "0":
			return m.exit()
		case "1":
			err = m.add()
		case "2":
			err = m.list()
		case "3":
			err = m.summary()
		case "4":
			err = m.edit()
		case "5":
			err = m.delete()
		default:
			fmt.Fprintln(m.w, "Invalid option. Try again.")
			continue
		}

		switch {
		case errors.Is(err, io.EOF):
			return m.exit()
		case errors.Is(err, budget.ErrValidation):
			fmt.Fprintf(m.w, "Invalid input: %v\n", err)
		case err != nil:
			logrus.WithError(err).Debug("menu action failed")
			fmt.Fprintf(m.w, "Something went wrong: %v\n", err)
		}
	}
}

func (m *menu) exit() error {
	if err := m.save(m.ledger); err != nil {
		return err
	}
	fmt.Fprintln(m.w, "Goodbye.")
	return nil
}

// prompt prints text and reads one trimmed line.
// A last line without a newline is still returned.
func (m *menu) prompt(text string) (string, error) {
	fmt.Fprint(m.w, text)
	line, err := m.r.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// promptOptional is like prompt but returns nil for a blank answer.
func (m *menu) promptOptional(text string) (*string, error) {
	s, err := m.prompt(text)
	if err != nil || s == "" {
		return nil, err
	}
	return &s, nil
}

// promptInt asks again until the answer is an integer.
func (m *menu) promptInt(text string) (int, error) {
	for {
		s, err := m.prompt(text)
		if err != nil {
			return 0, err
		}
		if n, err := strconv.Atoi(s); err == nil {
			return n, nil
		}
		fmt.Fprintln(m.w, "Invalid integer. Try again.")
	}
}

// promptAmount asks again until the answer is a number.
func (m *menu) promptAmount(text string) (string, error) {
	for {
		s, err := m.prompt(text)
		if err != nil {
			return "", err
		}
		if _, err := decimal.NewFromString(s); err == nil {
			return s, nil
		}
		fmt.Fprintln(m.w, "Invalid number. Try again.")
	}
}

func (m *menu) confirm(question string) (bool, error) {
	s, err := m.prompt(question + " (y/n): ")
	if err != nil {
		return false, err
	}
	switch strings.ToLower(s) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

func (m *menu) add() error {
	var e budget.Entry
	var err error
	if e.Date, err = m.prompt("Date (YYYY-MM-DD) [blank=today]: "); err != nil {
		return err
	}
	if e.Type, err = m.prompt("Type (income/expense): "); err != nil {
		return err
	}
	if e.Category, err = m.prompt("Category [blank=" + budget.DefaultCategory + "]: "); err != nil {
		return err
	}
	if e.Amount, err = m.promptAmount("Amount (positive number): "); err != nil {
		return err
	}
	if e.Note, err = m.prompt("Note (optional): "); err != nil {
		return err
	}

	tx, err := m.ledger.Add(e)
	if err != nil {
		return err
	}
	if err := m.save(m.ledger); err != nil {
		return err
	}
	fmt.Fprintf(m.w, "Added transaction #%d\n", tx.ID)
	return nil
}

func (m *menu) list() error {
	var f budget.Filter
	var err error
	if months := m.ledger.Months(); len(months) > 0 {
		fmt.Fprintf(m.w, "Months with transactions: %s to %s\n", months[0], months[len(months)-1])
	}
	if f.Month, err = m.prompt("Filter month (YYYY-MM) [blank=all]: "); err != nil {
		return err
	}
	if f.Category, err = m.prompt("Filter category [blank=all]: "); err != nil {
		return err
	}
	if f.Type, err = m.prompt("Filter type (income/expense) [blank=all]: "); err != nil {
		return err
	}

	txs, err := m.ledger.Filter(f)
	if err != nil {
		return err
	}
	fmt.Fprint(m.w, renderMarkdown(renderer.Transactions(txs, options())))
	return nil
}

func (m *menu) summary() error {
	month, err := m.prompt("Summary month (YYYY-MM) [blank=overall]: ")
	if err != nil {
		return err
	}
	s, err := m.ledger.Summarize(month)
	if err != nil {
		return err
	}
	fmt.Fprint(m.w, renderMarkdown(renderer.Summary(s, month, options())))
	return nil
}

func (m *menu) edit() error {
	id, err := m.promptInt("Transaction ID to edit: ")
	if err != nil {
		return err
	}
	tx, ok := m.ledger.Get(id)
	if !ok {
		fmt.Fprintln(m.w, "ID not found.")
		return nil
	}
	fmt.Fprintln(m.w, renderer.Transaction(tx, options()))
	fmt.Fprintln(m.w, "Leave blank to keep current value.")

	var c budget.Changes
	fields := []struct {
		text string
		dst  **string
	}{
		{"New date (YYYY-MM-DD): ", &c.Date},
		{"New type (income/expense): ", &c.Type},
		{"New category: ", &c.Category},
		{"New amount: ", &c.Amount},
		{"New note: ", &c.Note},
	}
	for _, field := range fields {
		if *field.dst, err = m.promptOptional(field.text); err != nil {
			return err
		}
	}

	found, err := m.ledger.Update(id, c)
	if !found {
		fmt.Fprintln(m.w, "ID not found.")
		return nil
	}
	if err != nil {
		return err
	}
	if err := m.save(m.ledger); err != nil {
		return err
	}
	fmt.Fprintln(m.w, "Updated.")
	return nil
}

func (m *menu) delete() error {
	id, err := m.promptInt("Transaction ID to delete: ")
	if err != nil {
		return err
	}
	ok, err := m.confirm("Are you sure you want to delete this transaction?")
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(m.w, "Cancelled.")
		return nil
	}
	if !m.ledger.Delete(id) {
		fmt.Fprintln(m.w, "ID not found.")
		return nil
	}
	if err := m.save(m.ledger); err != nil {
		return err
	}
	fmt.Fprintln(m.w, "Deleted.")
	return nil
}
