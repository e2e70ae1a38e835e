package date

import (
	"fmt"
	"time"
)

// MonthFormat is the format of a Month as a string.
const MonthFormat = "2006-01"

// Month is a calendar month of a given year.
type Month struct {
	y int
	m time.Month
}

// NewMonth returns the Month for year and month, normalized like time.Date does.
func NewMonth(year int, month time.Month) Month {
	d := New(year, month, 1)
	return Month{d.Year(), d.Month()}
}

// MonthOf returns the month d belongs to.
func MonthOf(d Date) Month { return Month{d.y, d.m} }

// ParseMonth parses a month in the strict YYYY-MM format.
func ParseMonth(str string) (Month, error) {
	on, err := time.Parse(MonthFormat, str)
	if err != nil {
		return Month{}, fmt.Errorf("invalid month %q want format %q: %w", str, "YYYY-MM", err)
	}
	return Month{on.Year(), on.Month()}, nil
}

// First returns the first day of the month.
func (m Month) First() Date { return New(m.y, m.m, 1) }

// Last returns the last day of the month.
func (m Month) Last() Date { return New(m.y, m.m+1, 0) }

// Contains return true if d falls in the month (boundaries included).
func (m Month) Contains(d Date) bool { return d.y == m.y && d.m == m.m }

// Before reports whether m is before x.
func (m Month) Before(x Month) bool { return m.First().Before(x.First()) }

// String formats the month as YYYY-MM.
func (m Month) String() string { return m.First().time().Format(MonthFormat) }
