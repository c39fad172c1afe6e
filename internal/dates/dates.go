// Package dates provides an immutable calendar-date value at day granularity.
// Invoices only care about days and months, never time of day, so Date
// normalizes everything to midnight UTC and every operation returns a new
// value instead of mutating the receiver.
package dates

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// ISO layouts accepted by the parsers.
const (
	dayLayout   = "2006-01-02"
	monthLayout = "2006-01"
)

// Date is a calendar date with no time-of-day component.
// The zero value is the zero time and reports IsZero.
type Date struct {
	t time.Time
}

// New builds a Date from year, month, and day.
func New(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// FromTime truncates a time.Time to its calendar date.
func FromTime(t time.Time) Date {
	return New(t.Year(), t.Month(), t.Day())
}

// Parse parses a YYYY-MM-DD string. The format is strict: zero padding is
// required and impossible dates such as 2024-02-30 are rejected.
func Parse(s string) (Date, error) {
	t, err := time.Parse(dayLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return FromTime(t), nil
}

// ParseMonth parses a YYYY-MM string into the first day of that month.
func ParseMonth(s string) (Date, error) {
	t, err := time.Parse(monthLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid month %q: %w", s, err)
	}
	return FromTime(t), nil
}

// Year returns the calendar year.
func (d Date) Year() int { return d.t.Year() }

// Month returns the calendar month.
func (d Date) Month() time.Month { return d.t.Month() }

// Day returns the day of the month.
func (d Date) Day() int { return d.t.Day() }

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool { return d.t.IsZero() }

// Time returns the date as a time.Time at midnight UTC.
func (d Date) Time() time.Time { return d.t }

// String renders the date as YYYY-MM-DD.
func (d Date) String() string { return d.t.Format(dayLayout) }

// Before reports whether d falls before other.
func (d Date) Before(other Date) bool { return d.t.Before(other.t) }

// After reports whether d falls after other.
func (d Date) After(other Date) bool { return d.t.After(other.t) }

// Equal reports whether d and other are the same calendar date.
func (d Date) Equal(other Date) bool { return d.t.Equal(other.t) }

// AddMonths returns the date n months later, keeping the day of month.
// When the source day does not exist in the target month the day is
// clamped to the month's last day (Jan 31 + 1 month = Feb 28 or 29).
// Note time.Time.AddDate would normalize Jan 31 + 1 month to Mar 2/3
// instead, which is wrong for installment spans.
func (d Date) AddMonths(n int) Date {
	first := time.Date(d.t.Year(), d.t.Month()+time.Month(n), 1, 0, 0, 0, 0, time.UTC)
	day := d.t.Day()
	if last := daysIn(first.Year(), first.Month()); day > last {
		day = last
	}
	return New(first.Year(), first.Month(), day)
}

// StartOfMonth returns the first day of the date's month.
func (d Date) StartOfMonth() Date {
	return New(d.t.Year(), d.t.Month(), 1)
}

// EndOfMonth returns the last day of the date's month.
func (d Date) EndOfMonth() Date {
	return New(d.t.Year(), d.t.Month(), daysIn(d.t.Year(), d.t.Month()))
}

// daysIn returns the number of days in the given month.
// Day 0 of the next month is the last day of this one.
func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// MarshalJSON renders the date as a "YYYY-MM-DD" JSON string.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON parses a "YYYY-MM-DD" JSON string.
func (d *Date) UnmarshalJSON(data []byte) error {
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return fmt.Errorf("invalid date JSON: %s", data)
	}
	parsed, err := Parse(string(data[1 : len(data)-1]))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Value implements driver.Valuer so Date can be stored in a DATE column.
func (d Date) Value() (driver.Value, error) {
	return d.t, nil
}

// Scan implements sql.Scanner. Postgres returns time.Time for DATE columns;
// SQLite (used in tests) may hand back the stored text instead.
func (d *Date) Scan(src interface{}) error {
	switch v := src.(type) {
	case time.Time:
		*d = FromTime(v)
		return nil
	case []byte:
		return d.scanString(string(v))
	case string:
		return d.scanString(v)
	case nil:
		*d = Date{}
		return nil
	default:
		return fmt.Errorf("cannot scan %T into dates.Date", src)
	}
}

func (d *Date) scanString(s string) error {
	for _, layout := range []string{
		dayLayout,
		time.RFC3339,
		"2006-01-02 15:04:05.999999999-07:00",
		"2006-01-02 15:04:05",
	} {
		if t, err := time.Parse(layout, s); err == nil {
			*d = FromTime(t)
			return nil
		}
	}
	return fmt.Errorf("cannot scan %q into dates.Date", s)
}
