package budget

import (
	"cmp"
	"slices"
	"strings"

	"github.com/etnz/budget/date"
	"github.com/shopspring/decimal"
)

// Ledger represents a list of transactions.
//
// In a Ledger transactions are kept in insertion order, sorting only happens
// when they are queried.
type Ledger struct {
	transactions []Transaction
	lastID       int // highest id ever held by this ledger
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{transactions: make([]Transaction, 0)}
}

// Len returns the number of transactions.
func (l *Ledger) Len() int { return len(l.transactions) }

// Transactions returns a copy of all transactions in insertion order.
func (l *Ledger) Transactions() []Transaction { return slices.Clone(l.transactions) }

// append adds tx as is, keeping track of the highest id.
func (l *Ledger) append(tx Transaction) {
	l.transactions = append(l.transactions, tx)
	l.lastID = max(l.lastID, tx.ID)
}

// nextID returns the id for a new transaction.
//
// It is max(existing ids)+1, except that ids of transactions deleted since
// the ledger was loaded are never handed out again.
func (l *Ledger) nextID() int { return l.lastID + 1 }

// index returns the position of the transaction with this id or -1.
func (l *Ledger) index(id int) int {
	return slices.IndexFunc(l.transactions, func(tx Transaction) bool { return tx.ID == id })
}

// Get returns the transaction with this id.
func (l *Ledger) Get(id int) (Transaction, bool) {
	i := l.index(id)
	if i < 0 {
		return Transaction{}, false
	}
	return l.transactions[i], true
}

// Add normalizes the entry, gives it a fresh id and appends it to the ledger.
func (l *Ledger) Add(e Entry) (Transaction, error) {
	tx, err := e.normalize()
	if err != nil {
		return Transaction{}, err
	}
	tx.ID = l.nextID()
	l.append(tx)
	return tx, nil
}

// Update applies changes to the transaction with this id.
//
// It returns false if there is no such transaction. If any change is
// invalid, the error is returned and the transaction is left untouched.
// The id and the position of the transaction never change.
func (l *Ledger) Update(id int, changes Changes) (found bool, err error) {
	i := l.index(id)
	if i < 0 {
		return false, nil
	}
	updated, err := changes.apply(l.transactions[i])
	if err != nil {
		return true, err
	}
	l.transactions[i] = updated
	return true, nil
}

// Delete removes the transaction with this id, and reports whether it existed.
func (l *Ledger) Delete(id int) bool {
	i := l.index(id)
	if i < 0 {
		return false
	}
	l.transactions = slices.Delete(l.transactions, i, i+1)
	return true
}

// Filter selects transactions. Empty fields are ignored, the others must all match.
type Filter struct {
	Month    string // YYYY-MM
	Category string // case-insensitive
	Type     string // income or expense, any case
}

// accept compiles the filter into a predicate.
func (f Filter) accept() (func(Transaction) bool, error) {
	month, byMonth, err := normalizeMonth(f.Month)
	if err != nil {
		return nil, err
	}
	var typ Type
	byType := strings.TrimSpace(f.Type) != ""
	if byType {
		if typ, err = NormalizeType(f.Type); err != nil {
			return nil, err
		}
	}
	category := strings.TrimSpace(f.Category)

	return func(tx Transaction) bool {
		if byMonth && !month.Contains(tx.Date) {
			return false
		}
		if category != "" && !strings.EqualFold(tx.Category, category) {
			return false
		}
		if byType && tx.Type != typ {
			return false
		}
		return true
	}, nil
}

// Filter returns a new slice with the transactions matching f, sorted by date then id.
func (l *Ledger) Filter(f Filter) ([]Transaction, error) {
	accept, err := f.accept()
	if err != nil {
		return nil, err
	}
	result := make([]Transaction, 0, len(l.transactions))
	for _, tx := range l.transactions {
		if accept(tx) {
			result = append(result, tx)
		}
	}
	slices.SortFunc(result, func(a, b Transaction) int {
		if c := a.Date.Compare(b.Date); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return result, nil
}

// Summary aggregates a set of transactions.
type Summary struct {
	TotalIncome   decimal.Decimal
	TotalExpenses decimal.Decimal
	NetBalance    decimal.Decimal
	Count         int
}

// Summarize computes the totals of the month (YYYY-MM), or of the whole ledger if month is empty.
func (l *Ledger) Summarize(month string) (Summary, error) {
	scope, err := l.Filter(Filter{Month: month})
	if err != nil {
		return Summary{}, err
	}
	return summarize(scope), nil
}

func summarize(txs []Transaction) Summary {
	s := Summary{TotalIncome: decimal.Zero, TotalExpenses: decimal.Zero}
	for _, tx := range txs {
		switch tx.Type {
		case Income:
			s.TotalIncome = s.TotalIncome.Add(tx.Amount)
		case Expense:
			s.TotalExpenses = s.TotalExpenses.Add(tx.Amount)
		}
	}
	s.NetBalance = s.TotalIncome.Sub(s.TotalExpenses)
	s.Count = len(txs)
	return s
}

// CategoryTotal is the aggregate of one category.
type CategoryTotal struct {
	Category string
	Summary
}

// Categories breaks down the filtered transactions by category.
//
// Categories differing only by case are grouped under the first spelling met
// in date order. The result is sorted by category name.
func (l *Ledger) Categories(f Filter) ([]CategoryTotal, error) {
	txs, err := l.Filter(f)
	if err != nil {
		return nil, err
	}
	groups := make(map[string][]Transaction)
	names := make(map[string]string)
	for _, tx := range txs {
		key := strings.ToLower(tx.Category)
		if _, ok := names[key]; !ok {
			names[key] = tx.Category
		}
		groups[key] = append(groups[key], tx)
	}
	result := make([]CategoryTotal, 0, len(groups))
	for key, group := range groups {
		result = append(result, CategoryTotal{Category: names[key], Summary: summarize(group)})
	}
	slices.SortFunc(result, func(a, b CategoryTotal) int {
		return strings.Compare(strings.ToLower(a.Category), strings.ToLower(b.Category))
	})
	return result, nil
}

// Months returns the distinct months that have transactions, in ascending order.
func (l *Ledger) Months() []date.Month {
	var months []date.Month
	for _, tx := range l.transactions {
		m := date.MonthOf(tx.Date)
		if !slices.Contains(months, m) {
			months = append(months, m)
		}
	}
	slices.SortFunc(months, func(a, b date.Month) int { return a.First().Compare(b.First()) })
	return months
}
