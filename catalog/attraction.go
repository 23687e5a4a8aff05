// Package catalog holds the fixed set of attractions the assistants can talk
// about. A Catalog is built once at startup and never mutated afterwards.
package catalog

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the only accepted calendar date format.
const DateLayout = "2006-01-02"

// Date is a calendar day with no time zone. The zero value means "no date".
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// ParseDate parses YYYY-MM-DD after trimming whitespace and quote characters.
func ParseDate(s string) (Date, error) {
	clean := TrimInput(s)
	t, err := time.Parse(DateLayout, clean)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: use YYYY-MM-DD", clean)
	}
	return DateOf(t), nil
}

// MustParseDate is ParseDate for static tables; it panics on bad input.
func MustParseDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

// DateOf truncates t to its calendar day in t's location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// IsZero reports whether d is the "no date" value.
func (d Date) IsZero() bool {
	return d == Date{}
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// MarshalText renders the date as YYYY-MM-DD (empty for the zero date).
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText accepts YYYY-MM-DD or an empty string.
func (d *Date) UnmarshalText(b []byte) error {
	if strings.TrimSpace(string(b)) == "" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// TrimInput strips surrounding whitespace and quote characters the way tool
// arguments typed by a model often arrive ("'luna_park'", "\"2025-11-01\" ").
func TrimInput(s string) string {
	return strings.TrimSpace(strings.Trim(strings.TrimSpace(s), `'"`))
}

// Attraction is one immutable catalog record.
type Attraction struct {
	ID       string            `json:"id" yaml:"id"`
	Name     string            `json:"name" yaml:"name"`
	ClosedOn Date              `json:"closed_on,omitempty" yaml:"closed_on"`
	Price    float64           `json:"price" yaml:"price"`
	Location string            `json:"location" yaml:"location"`
	Note     string            `json:"note,omitempty" yaml:"note"`
	Hours    map[string]string `json:"hours,omitempty" yaml:"hours"`
}

// ClosedOnDate reports whether the attraction is closed on d.
// An attraction without a closure date is never closed.
func (a Attraction) ClosedOnDate(d Date) bool {
	return !a.ClosedOn.IsZero() && a.ClosedOn == d
}

func (a Attraction) validate() error {
	switch {
	case a.ID == "":
		return fmt.Errorf("attraction %q: id is required", a.Name)
	case a.ID != strings.ToLower(a.ID) || strings.ContainsAny(a.ID, " \t"):
		return fmt.Errorf("attraction %q: id must be lowercase without spaces", a.ID)
	case a.Name == "":
		return fmt.Errorf("attraction %q: name is required", a.ID)
	case a.Price < 0:
		return fmt.Errorf("attraction %q: price must not be negative", a.ID)
	}
	return nil
}
