package budget

import (
	"strings"

	"github.com/etnz/budget/date"
	"github.com/shopspring/decimal"
)

// NormalizeType accepts "income" or "expense" in any case, surrounded by spaces.
func NormalizeType(s string) (Type, error) {
	switch t := Type(strings.ToLower(strings.TrimSpace(s))); t {
	case Income, Expense:
		return t, nil
	default:
		return "", &ValidationError{Field: "type", Value: s, Reason: "must be 'income' or 'expense'"}
	}
}

// NormalizeCategory trims the category, an empty one becomes DefaultCategory.
func NormalizeCategory(s string) string {
	if s = strings.TrimSpace(s); s == "" {
		return DefaultCategory
	}
	return s
}

// NormalizeAmount parses a strictly positive decimal amount.
func NormalizeAmount(s string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, &ValidationError{Field: "amount", Value: s, Reason: "not a number"}
	}
	if !amount.IsPositive() {
		return decimal.Zero, &ValidationError{Field: "amount", Value: s, Reason: "must be a positive number"}
	}
	return amount, nil
}

// NormalizeDate parses a day, an empty string means today.
func NormalizeDate(s string) (date.Date, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return date.Today(), nil
	}
	d, err := date.Parse(s)
	if err != nil {
		return date.Date{}, &ValidationError{Field: "date", Value: s, Reason: "want YYYY-MM-DD"}
	}
	return d, nil
}

// NormalizeNote trims the note, empty notes are fine.
func NormalizeNote(s string) string { return strings.TrimSpace(s) }

// normalizeMonth parses an optional YYYY-MM month filter.
func normalizeMonth(s string) (m date.Month, ok bool, err error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return date.Month{}, false, nil
	}
	m, err = date.ParseMonth(s)
	if err != nil {
		return date.Month{}, false, &ValidationError{Field: "month", Value: s, Reason: "want YYYY-MM"}
	}
	return m, true, nil
}

// normalize turns a raw Entry into a Transaction without an ID.
func (e Entry) normalize() (Transaction, error) {
	day, err := NormalizeDate(e.Date)
	if err != nil {
		return Transaction{}, err
	}
	typ, err := NormalizeType(e.Type)
	if err != nil {
		return Transaction{}, err
	}
	amount, err := NormalizeAmount(e.Amount)
	if err != nil {
		return Transaction{}, err
	}
	return Transaction{
		Date:     day,
		Type:     typ,
		Category: NormalizeCategory(e.Category),
		Amount:   amount,
		Note:     NormalizeNote(e.Note),
	}, nil
}

// apply returns a copy of tx with the changes applied, or the first
// validation error. tx itself is never modified.
func (c Changes) apply(tx Transaction) (Transaction, error) {
	if c.Date != nil {
		// an explicit empty date means today, like in Entry.
		day, err := NormalizeDate(*c.Date)
		if err != nil {
			return tx, err
		}
		tx.Date = day
	}
	if c.Type != nil {
		typ, err := NormalizeType(*c.Type)
		if err != nil {
			return tx, err
		}
		tx.Type = typ
	}
	if c.Category != nil {
		tx.Category = NormalizeCategory(*c.Category)
	}
	if c.Amount != nil {
		amount, err := NormalizeAmount(*c.Amount)
		if err != nil {
			return tx, err
		}
		tx.Amount = amount
	}
	if c.Note != nil {
		tx.Note = NormalizeNote(*c.Note)
	}
	return tx, nil
}
