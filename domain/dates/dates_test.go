package dates

import (
	"errors"
	"testing"
	"time"
)

// TestParseDisambiguation exercises the component heuristic in both
// separator styles, including the month-first/day-first asymmetry.
func TestParseDisambiguation(t *testing.T) {
	tests := []struct {
		input    string
		expected Canonical
	}{
		// ISO passthrough
		{"2025-01-10", "2025-01-10"},
		{"2025-1-9", "2025-01-09"},

		// Day above 12 forces DD/MM
		{"23/02/2000", "2000-02-23"},
		// Month valid, day above 12 forces MM/DD
		{"02/23/2000", "2000-02-23"},
		// Both plausible: slash defaults month-first
		{"10/01/2025", "2025-10-01"},
		// Both plausible: dash defaults day-first
		{"10-01-2025", "2025-01-10"},
		{"23-02-2000", "2000-02-23"},

		// Leading year with day/month swap
		{"2000/02/23", "2000-02-23"},
		{"2000/23/02", "2000-02-23"},

		// Two-digit year widening
		{"23/02/49", "2049-02-23"},
		{"23/02/50", "1950-02-23"},
		{"23/02/99", "1999-02-23"},

		// Whitespace tolerated
		{"  23/02/2000  ", "2000-02-23"},

		// Textual fallback
		{"Feb 23, 2000", "2000-02-23"},
		{"23 February 2000", "2000-02-23"},
	}

	for _, test := range tests {
		got, err := Parse(test.input)
		if test.expected == "" {
			if !errors.Is(err, ErrInvalidDate) {
				t.Errorf("Parse(%q): expected ErrInvalidDate, got %q, %v", test.input, got, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("Parse(%q): unexpected error: %v", test.input, err)
			continue
		}
		if got != test.expected {
			t.Errorf("Parse(%q) = %q, expected %q", test.input, got, test.expected)
		}
	}
}

// TestParseCalendarValidity verifies round-trip calendar validation.
func TestParseCalendarValidity(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"31/02/2025", false},
		{"29/02/2024", true},
		{"29/02/2023", false},
		{"2025/13/01", false},
		{"32/01/2025", false},
		{"2025-00-10", false},
	}

	for _, test := range tests {
		got, err := Parse(test.input)
		if test.valid && err != nil {
			t.Errorf("Parse(%q): expected success, got %v", test.input, err)
		}
		if !test.valid {
			if err == nil {
				t.Errorf("Parse(%q): expected failure, got %q", test.input, got)
			}
			if !errors.Is(err, ErrInvalidDate) {
				t.Errorf("Parse(%q): error is not ErrInvalidDate: %v", test.input, err)
			}
		}
	}
}

// TestParseEmptyIsNotAnError tests that absence of a value is legal.
func TestParseEmptyIsNotAnError(t *testing.T) {
	for _, input := range []string{"", "   ", "\t"} {
		got, err := Parse(input)
		if err != nil {
			t.Errorf("Parse(%q): unexpected error: %v", input, err)
		}
		if !got.IsZero() {
			t.Errorf("Parse(%q) = %q, expected zero value", input, got)
		}
	}
}

// TestParseIdempotence tests that canonical output re-parses to itself.
func TestParseIdempotence(t *testing.T) {
	inputs := []string{"23/02/2000", "10/01/2025", "2024-02-29", "Feb 1, 1990"}
	for _, input := range inputs {
		first, err := Parse(input)
		if err != nil {
			t.Fatalf("Parse(%q): %v", input, err)
		}
		second, err := Parse(first.String())
		if err != nil {
			t.Fatalf("re-Parse(%q): %v", first, err)
		}
		if second != first {
			t.Errorf("re-Parse(%q) = %q, expected identical", first, second)
		}
	}
}

// TestParseYearBounds tests the [1900, 2100] year constraint.
func TestParseYearBounds(t *testing.T) {
	for _, input := range []string{"1899-12-31", "2101-01-01", "01/01/1899"} {
		if got, err := Parse(input); err == nil {
			t.Errorf("Parse(%q) = %q, expected out-of-range failure", input, got)
		}
	}
	if got, err := Parse("1900-01-01"); err != nil || got != "1900-01-01" {
		t.Errorf("Parse(1900-01-01) = %q, %v", got, err)
	}
	if got, err := Parse("2100-12-31"); err != nil || got != "2100-12-31" {
		t.Errorf("Parse(2100-12-31) = %q, %v", got, err)
	}
}

// TestFromTime tests native time conversion and range checking.
func TestFromTime(t *testing.T) {
	got, err := FromTime(time.Date(2000, time.February, 23, 14, 30, 0, 0, time.UTC))
	if err != nil || got != "2000-02-23" {
		t.Errorf("FromTime = %q, %v", got, err)
	}

	if _, err := FromTime(time.Date(56, time.January, 1, 0, 0, 0, 0, time.UTC)); err == nil {
		t.Error("FromTime: expected out-of-range failure for year 56")
	}
}

// TestCanonicalTime tests conversion back to time.Time.
func TestCanonicalTime(t *testing.T) {
	c := Canonical("2000-02-23")
	ts, err := c.Time()
	if err != nil {
		t.Fatalf("Time(): %v", err)
	}
	if ts.Year() != 2000 || ts.Month() != time.February || ts.Day() != 23 {
		t.Errorf("Time() = %v, expected 2000-02-23", ts)
	}
}
