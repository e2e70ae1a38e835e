package date

import (
	"testing"
	"time"
)

func TestParseMonth(t *testing.T) {
	testCases := []struct {
		in      string
		want    Month
		wantErr bool
	}{
		{in: "2024-03", want: NewMonth(2024, time.March)},
		{in: "2024-12", want: NewMonth(2024, time.December)},
		{in: "2024-13", wantErr: true},
		{in: "2024-3", wantErr: true},
		{in: "March", wantErr: true},
		{in: "2024-03-01", wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseMonth(tc.in)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ParseMonth(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			}
			if !tc.wantErr && got != tc.want {
				t.Errorf("ParseMonth(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestMonth_Contains(t *testing.T) {
	march := NewMonth(2024, time.March)
	testCases := []struct {
		day  Date
		want bool
	}{
		{New(2024, time.February, 29), false},
		{New(2024, time.March, 1), true},
		{New(2024, time.March, 31), true},
		{New(2024, time.April, 1), false},
		{New(2023, time.March, 15), false},
	}
	for _, tc := range testCases {
		if got := march.Contains(tc.day); got != tc.want {
			t.Errorf("%v.Contains(%v) = %v, want %v", march, tc.day, got, tc.want)
		}
	}
}

func TestMonth_Bounds(t *testing.T) {
	feb := NewMonth(2024, time.February)
	if got, want := feb.First(), New(2024, time.February, 1); got != want {
		t.Errorf("First() = %v, want %v", got, want)
	}
	if got, want := feb.Last(), New(2024, time.February, 29); got != want {
		t.Errorf("Last() = %v, want %v", got, want)
	}
	if got, want := feb.String(), "2024-02"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if got, want := NewMonth(2024, 13), NewMonth(2025, time.January); got != want {
		t.Errorf("NewMonth(2024, 13) = %v, want %v", got, want)
	}
}
