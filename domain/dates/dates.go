// Package dates normalizes the free-form date spellings found in
// human-authored case spreadsheets into a single canonical form.
//
// Input cells arrive with no schema: "23/02/2000", "02-23-00",
// "2000-2-23" and "Feb 23, 2000" may all appear in the same column.
// Parse applies an ordered set of format attempts plus a component
// disambiguation heuristic, and either returns a calendar-validated
// canonical date or fails loudly so the caller can decide per row.
package dates

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Canonical is a validated date in YYYY-MM-DD form.
// The zero value "" means "not provided".
type Canonical string

// Year bounds accepted for any parsed date. Anything outside is
// treated as a data-entry mistake, not a real birth or death date.
const (
	MinYear = 1900
	MaxYear = 2100
)

// ErrInvalidDate is returned when a non-empty value cannot be resolved
// to a real calendar date. Callers must not swallow it silently.
var ErrInvalidDate = errors.New("invalid date")

// String returns the canonical value as a plain string.
func (c Canonical) String() string { return string(c) }

// IsZero reports whether no date was provided.
func (c Canonical) IsZero() bool { return c == "" }

// Time converts the canonical date to a time.Time at UTC midnight.
func (c Canonical) Time() (time.Time, error) {
	return time.Parse("2006-01-02", string(c))
}

// FromTime formats a native time value as a canonical date.
// The value is still range-checked: spreadsheet libraries happily
// produce year-56 timestamps from garbage serial numbers.
func FromTime(t time.Time) (Canonical, error) {
	return assemble(t.Year(), int(t.Month()), t.Day())
}

// Parse resolves a raw cell value to a canonical date.
//
// An empty (or whitespace-only) value returns the zero Canonical with
// a nil error: absence of a date is not a parse failure. A non-empty
// value that cannot be resolved returns ErrInvalidDate.
//
// Attempt order:
//  1. ISO YYYY-M-D, parsed directly.
//  2. Slash-separated triple, via the disambiguation heuristic with a
//     month-first tie-break (US convention).
//  3. Dash-separated non-ISO triple, same heuristic but with a
//     day-first tie-break. The asymmetry with the slash path is a
//     deliberate compatibility contract, not an accident to fix.
//  4. A short list of textual layouts ("Feb 23, 2000" and friends).
func Parse(raw string) (Canonical, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return "", nil
	}

	if parts, ok := splitTriple(value, "-"); ok && len(parts[0]) == 4 {
		return parseISO(parts)
	}
	if parts, ok := splitTriple(value, "/"); ok {
		return disambiguate(parts, tieBreakMonthFirst)
	}
	if parts, ok := splitTriple(value, "-"); ok {
		return disambiguate(parts, tieBreakDayFirst)
	}
	return parseTextual(value)
}

type tieBreak int

const (
	tieBreakMonthFirst tieBreak = iota
	tieBreakDayFirst
)

// splitTriple splits value on sep and reports whether it yielded
// exactly three non-empty all-digit components.
func splitTriple(value, sep string) ([3]string, bool) {
	var out [3]string
	parts := strings.Split(value, sep)
	if len(parts) != 3 {
		return out, false
	}
	for i, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			return out, false
		}
		for _, r := range p {
			if r < '0' || r > '9' {
				return out, false
			}
		}
		out[i] = p
	}
	return out, true
}

func parseISO(parts [3]string) (Canonical, error) {
	year, _ := strconv.Atoi(parts[0])
	month, _ := strconv.Atoi(parts[1])
	day, _ := strconv.Atoi(parts[2])
	return assemble(year, month, day)
}

// disambiguate applies the triple heuristic to components a, b, c in
// their original left-to-right order.
//
// A leading value above 1900 is the year; the remaining pair is
// month/day unless the middle value cannot be a month. Otherwise the
// trailing value must be the year (two-digit years are widened, <50
// meaning 20xx). When both leading values could be a month, the tie
// break decides: month-first for slash input, day-first for dash.
func disambiguate(parts [3]string, tb tieBreak) (Canonical, error) {
	a, _ := strconv.Atoi(parts[0])
	b, _ := strconv.Atoi(parts[1])
	c, _ := strconv.Atoi(parts[2])

	if a > 1900 {
		if b > 12 {
			return assemble(a, c, b)
		}
		return assemble(a, b, c)
	}

	if c > 31 {
		year := widenYear(c)
		switch {
		case a > 12:
			return assemble(year, b, a)
		case b > 12:
			return assemble(year, a, b)
		case tb == tieBreakDayFirst:
			return assemble(year, b, a)
		default:
			return assemble(year, a, b)
		}
	}

	return "", fmt.Errorf("%w: no plausible year in %s/%s/%s", ErrInvalidDate, parts[0], parts[1], parts[2])
}

// widenYear maps two-digit years onto the 1950-2049 window.
func widenYear(year int) int {
	switch {
	case year < 50:
		return 2000 + year
	case year < 100:
		return 1900 + year
	default:
		return year
	}
}

// textualLayouts are tried in order as a last resort for spelled-out
// dates. Time-of-day layouts cover datetime strings excel sometimes
// emits for date-formatted cells.
var textualLayouts = []string{
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
	"2 January 2006",
	"Jan 2 2006",
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02 15:04:05",
	"1/2/2006 15:04:05",
}

func parseTextual(value string) (Canonical, error) {
	for _, layout := range textualLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return FromTime(t)
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidDate, value)
}

// assemble validates the resolved components and formats them.
// Beyond range checks, the triple must survive a round trip through a
// real calendar so Feb 30 and Feb 29 on non-leap years are rejected.
func assemble(year, month, day int) (Canonical, error) {
	if year < MinYear || year > MaxYear {
		return "", fmt.Errorf("%w: year %d out of range", ErrInvalidDate, year)
	}
	if month < 1 || month > 12 {
		return "", fmt.Errorf("%w: month %d out of range", ErrInvalidDate, month)
	}
	if day < 1 || day > 31 {
		return "", fmt.Errorf("%w: day %d out of range", ErrInvalidDate, day)
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return "", fmt.Errorf("%w: %04d-%02d-%02d is not a calendar date", ErrInvalidDate, year, month, day)
	}
	return Canonical(fmt.Sprintf("%04d-%02d-%02d", year, month, day)), nil
}
