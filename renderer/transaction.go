package renderer

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/etnz/budget"
	md "github.com/nao1215/markdown"
)

// NoTransactions is printed instead of an empty table.
const NoTransactions = "No transactions found."

// Transaction renders a transaction to a one line string.
func Transaction(tx budget.Transaction, opts Options) string {
	verb := "Earned"
	if tx.Type == budget.Expense {
		verb = "Spent"
	}
	s := fmt.Sprintf("#%d %s: %s %s in %s", tx.ID, tx.Date, verb, opts.amount(tx.Amount), tx.Category)
	if tx.Note != "" {
		s += fmt.Sprintf(" (%s)", tx.Note)
	}
	return s
}

// Transactions renders a list of transactions as a markdown table, in the given order.
func Transactions(txs []budget.Transaction, opts Options) string {
	if len(txs) == 0 {
		return NoTransactions + "\n"
	}
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	rows := make([][]string, 0, len(txs))
	for _, tx := range txs {
		rows = append(rows, []string{
			strconv.Itoa(tx.ID),
			tx.Date.String(),
			string(tx.Type),
			tx.Category,
			opts.amount(tx.Amount),
			tx.Note,
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"ID", "Date", "Type", "Category", "Amount", "Note"},
		Rows:   rows,
	})
	return doc.String()
}
