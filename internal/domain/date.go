package domain

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the only accepted input format for task dates (yyyy-mm-dd).
const DateLayout = "2006-01-02"

// displayDateLayout renders dates as "Jan 2 2006".
const displayDateLayout = "Jan 2 2006"

// Date is a calendar date without time of day or location.
// It is stored as text in DateLayout by every codec.
type Date struct {
	t time.Time // Midnight UTC
}

// NewDate returns the calendar date of t in t's own location.
func NewDate(t time.Time) Date {
	y, m, d := t.Date()
	return Date{t: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a yyyy-mm-dd calendar date.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return NewDate(t), nil
}

// Time returns the date as midnight UTC.
func (d Date) Time() time.Time {
	return d.t
}

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool {
	return d.t.IsZero()
}

// Equal reports whether both dates name the same day.
func (d Date) Equal(other Date) bool {
	return d.t.Equal(other.t)
}

// String renders the date as "Jan 2 2006".
func (d Date) String() string {
	return d.t.Format(displayDateLayout)
}

// MarshalText implements encoding.TextMarshaler.
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.t.Format(DateLayout)), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Date) UnmarshalText(text []byte) error {
	parsed, err := ParseDate(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
