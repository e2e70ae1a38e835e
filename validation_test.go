package budget

import (
	"errors"
	"testing"

	"github.com/etnz/budget/date"
)

func TestNormalizeType(t *testing.T) {
	testCases := []struct {
		in      string
		want    Type
		wantErr bool
	}{
		{"income", Income, false},
		{" Expense ", Expense, false},
		{"INCOME", Income, false},
		{"", "", true},
		{"gift", "", true},
	}
	for _, tc := range testCases {
		got, err := NormalizeType(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("NormalizeType(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if err != nil && !errors.Is(err, ErrValidation) {
			t.Errorf("NormalizeType(%q) error %v is not a validation error", tc.in, err)
		}
		if got != tc.want {
			t.Errorf("NormalizeType(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNormalizeAmount(t *testing.T) {
	testCases := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"12.50", "12.5", false},
		{" 3 ", "3", false},
		{"0.01", "0.01", false},
		{"0", "", true},
		{"-4", "", true},
		{"12,50", "", true},
		{"", "", true},
	}
	for _, tc := range testCases {
		got, err := NormalizeAmount(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("NormalizeAmount(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if err == nil && !got.Equal(D(tc.want)) {
			t.Errorf("NormalizeAmount(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestNormalizeCategory(t *testing.T) {
	for in, want := range map[string]string{"": DefaultCategory, "  ": DefaultCategory, " Food ": "Food", "food": "food"} {
		if got := NormalizeCategory(in); got != want {
			t.Errorf("NormalizeCategory(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNormalizeDate(t *testing.T) {
	if got, err := NormalizeDate(""); err != nil || got != date.Today() {
		t.Errorf("NormalizeDate(\"\") = %v, %v, want today", got, err)
	}
	if got, err := NormalizeDate("2024-3-5"); err != nil || got != date.New(2024, 3, 5) {
		t.Errorf("NormalizeDate(2024-3-5) = %v, %v, want 2024-03-05", got, err)
	}
	var verr *ValidationError
	if _, err := NormalizeDate("05/03/2024"); !errors.As(err, &verr) || verr.Field != "date" {
		t.Errorf("NormalizeDate(05/03/2024) error = %v, want a date validation error", err)
	}
}

func TestChanges_Apply_Invalid(t *testing.T) {
	orig := tx(1, "2024-03-01", Income, "Salary", "10", "")
	_, err := Changes{Category: ptr("Pay"), Amount: ptr("-1")}.apply(orig)
	var verr *ValidationError
	if !errors.As(err, &verr) || verr.Field != "amount" {
		t.Errorf("apply() error = %v, want an amount validation error", err)
	}
}
