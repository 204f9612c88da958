package domain

import (
	"fmt"
	"time"
)

// dateLayout is the canonical calendar-date format.
const dateLayout = "2006-01-02"

// Date is a calendar day in YYYY-MM-DD form with no time or timezone
// component. The representation is chosen so that lexicographic string
// comparison matches chronological order, which lets both Go code and SQL
// compare dates without parsing.
type Date string

// ParseDate validates s as a YYYY-MM-DD calendar date.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return "", fmt.Errorf("invalid date %q: %w", s, err)
	}
	// Reject inputs that normalize to a different day.
	if t.Format(dateLayout) != s {
		return "", fmt.Errorf("invalid date %q", s)
	}
	return Date(s), nil
}

// DateOf returns the calendar date of t in t's location.
func DateOf(t time.Time) Date {
	return Date(t.Format(dateLayout))
}

// Validate checks that the date is a well-formed calendar day.
func (d Date) Validate() error {
	_, err := ParseDate(string(d))
	return err
}

func (d Date) String() string { return string(d) }

// Before reports whether d is chronologically before other.
func (d Date) Before(other Date) bool { return d < other }

// After reports whether d is chronologically after other.
func (d Date) After(other Date) bool { return d > other }

// AddDays returns the date n calendar days after d (before, when n is
// negative). The receiver must be a valid date.
func (d Date) AddDays(n int) Date {
	t, err := time.Parse(dateLayout, string(d))
	if err != nil {
		return d
	}
	return DateOf(t.AddDate(0, 0, n))
}

// DaysUntil returns the number of whole days from `from` to d. The result
// is negative when d is before from.
func (d Date) DaysUntil(from Date) (int, error) {
	target, err := time.Parse(dateLayout, string(d))
	if err != nil {
		return 0, fmt.Errorf("invalid date %q: %w", d, err)
	}
	base, err := time.Parse(dateLayout, string(from))
	if err != nil {
		return 0, fmt.Errorf("invalid date %q: %w", from, err)
	}
	return int(target.Sub(base).Hours() / 24), nil
}
