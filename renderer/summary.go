package renderer

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/etnz/budget"
	md "github.com/nao1215/markdown"
)

// Summary renders the totals of a month, or of the whole ledger when month is empty.
func Summary(s budget.Summary, month string, opts Options) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	title := "Summary"
	if month != "" {
		title = fmt.Sprintf("Summary for %s", month)
	}
	doc.H2(title)

	doc.Table(md.TableSet{
		Header: []string{"Figure", "Value"},
		Rows: [][]string{
			{"Transactions", strconv.Itoa(s.Count)},
			{"Total income", opts.amount(s.TotalIncome)},
			{"Total expenses", opts.amount(s.TotalExpenses)},
			{"Net balance", opts.signed(s.NetBalance)},
		},
	})
	return doc.String()
}

// Categories renders the breakdown of transactions by category.
func Categories(cats []budget.CategoryTotal, opts Options) string {
	if len(cats) == 0 {
		return NoTransactions + "\n"
	}
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H2("Categories")

	rows := make([][]string, 0, len(cats))
	for _, c := range cats {
		rows = append(rows, []string{
			c.Category,
			strconv.Itoa(c.Count),
			opts.amount(c.TotalIncome),
			opts.amount(c.TotalExpenses),
			opts.signed(c.NetBalance),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Category", "Count", "Income", "Expenses", "Net"},
		Rows:   rows,
	})
	return doc.String()
}
