// Package journal holds the dream record model, input validation, and the
// in-memory append-only store. A record is built once at entry time and
// never mutated; the only removal operation is a whole-store clear.
package journal

import (
	"fmt"
	"time"
)

// dateLayout is the wire format for calendar dates.
const dateLayout = "2006-01-02"

// Date is a calendar day with no time component.
type Date struct {
	t time.Time
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD): %w", s, err)
	}
	return Date{t: t}, nil
}

// DateOf truncates a time to its calendar day in UTC.
func DateOf(t time.Time) Date {
	y, m, d := t.UTC().Date()
	return Date{t: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// Today returns the current calendar day in UTC.
func Today() Date { return DateOf(now()) }

// String renders the date as YYYY-MM-DD.
func (d Date) String() string { return d.t.Format(dateLayout) }

// Weekday returns the weekday name (e.g. "Monday").
func (d Date) Weekday() string { return d.t.Weekday().String() }

// After reports whether d is a later calendar day than other.
func (d Date) After(other Date) bool { return d.t.After(other.t) }

// DaysBefore returns the whole days from d to other (positive when d is
// earlier).
func (d Date) DaysBefore(other Date) int {
	return int(other.t.Sub(d.t).Hours() / 24)
}

// IsZero reports whether the date is unset.
func (d Date) IsZero() bool { return d.t.IsZero() }

// MarshalJSON encodes the date as a YYYY-MM-DD string.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON decodes a YYYY-MM-DD string.
func (d *Date) UnmarshalJSON(b []byte) error {
	s := string(b)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("invalid date JSON: %s", s)
	}
	parsed, err := ParseDate(s[1 : len(s)-1])
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// DreamRecord is one validated, analyzed journal entry. Records are
// immutable once stored: every field is set by the builder and the store
// only ever appends.
//
// Field order here is the declared export order for CSV columns and JSON
// keys — changing it changes the export contract.
type DreamRecord struct {
	ID           int64    `json:"id"`
	Date         Date     `json:"date"`
	Text         string   `json:"text"`
	Polarity     float64  `json:"polarity"`
	Subjectivity float64  `json:"subjectivity"`
	Emotion      string   `json:"emotion"`
	Themes       []string `json:"themes"`
	Lucid        bool     `json:"lucid"`
	SleepQuality int      `json:"sleep_quality"`
	WordCount    int      `json:"word_count"`
}
