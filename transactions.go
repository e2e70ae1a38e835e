package budget

import (
	"github.com/etnz/budget/date"
	"github.com/shopspring/decimal"
)

// Type is the kind of a transaction: money coming in or going out.
type Type string

// Transaction types.
const (
	Income  Type = "income"
	Expense Type = "expense"
)

// DefaultCategory is the category given to transactions recorded without one.
const DefaultCategory = "Uncategorized"

// Transaction is a single ledger entry.
//
// Amount is always positive, the direction of the money is given by Type.
type Transaction struct {
	ID       int
	Date     date.Date
	Type     Type
	Category string
	Amount   decimal.Decimal
	Note     string
}

// Signed returns the amount with a sign: positive for incomes, negative for expenses.
func (t Transaction) Signed() decimal.Decimal {
	if t.Type == Expense {
		return t.Amount.Neg()
	}
	return t.Amount
}

// Equal reports whether t and u hold the same values.
func (t Transaction) Equal(u Transaction) bool {
	return t.ID == u.ID &&
		t.Date == u.Date &&
		t.Type == u.Type &&
		t.Category == u.Category &&
		t.Amount.Equal(u.Amount) &&
		t.Note == u.Note
}

// Entry holds the raw values of a transaction to be added, as typed by a user.
//
// An empty Date means today, an empty Category means DefaultCategory.
type Entry struct {
	Date     string
	Type     string
	Category string
	Amount   string
	Note     string
}

// Changes holds the raw values of a partial update. A nil field is left as is,
// which is distinct from a pointer to an empty string.
type Changes struct {
	Date     *string
	Type     *string
	Category *string
	Amount   *string
	Note     *string
}

// IsEmpty reports whether no field is set.
func (c Changes) IsEmpty() bool {
	return c.Date == nil && c.Type == nil && c.Category == nil && c.Amount == nil && c.Note == nil
}
