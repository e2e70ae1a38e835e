// Package renderer turns ledger data into markdown reports.
package renderer

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Options holds configuration shared by all reports.
type Options struct {
	// Currency is the ISO 4217 code used to format amounts. Amounts are
	// printed as plain numbers with two decimals when it is empty.
	Currency string
}

// amount formats a decimal value according to the options.
func (o Options) amount(d decimal.Decimal) string {
	if o.Currency == "" {
		return d.StringFixed(2)
	}
	// to get a never nil currency I need to call the Money constructor
	cur := *money.New(0, o.Currency).Currency()
	minor := d.Shift(int32(cur.Fraction)).Round(0)
	return cur.Formatter().Format(minor.IntPart())
}

// signed formats a decimal value with an explicit sign, 0 is "-".
func (o Options) signed(d decimal.Decimal) string {
	switch {
	case d.IsZero():
		return "-"
	case d.IsPositive():
		return "+" + o.amount(d)
	default:
		return o.amount(d)
	}
}
