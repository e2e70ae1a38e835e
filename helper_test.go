package budget

import (
	"testing"

	"github.com/etnz/budget/date"
	"github.com/shopspring/decimal"
)

// D is a helper for test to create a decimal from a const.
func D(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// tx is a helper for test to create a stored transaction.
func tx(id int, day string, typ Type, category, amount, note string) Transaction {
	return Transaction{ID: id, Date: date.MustParse(day), Type: typ, Category: category, Amount: D(amount), Note: note}
}

// ptr is a helper for test to build Changes.
func ptr(s string) *string { return &s }

// newTestLedger adds all entries to a new ledger and fails the test on error.
func newTestLedger(t *testing.T, entries ...Entry) *Ledger {
	t.Helper()
	l := NewLedger()
	for _, e := range entries {
		if _, err := l.Add(e); err != nil {
			t.Fatalf("Add(%+v) unexpected error: %v", e, err)
		}
	}
	return l
}
