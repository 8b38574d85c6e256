package kernel

import (
	"strings"
	"time"

	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

// DateLayout is the wire and storage format of a calendar date.
const DateLayout = "2006-01-02"

// ErrDateIsNotConstructed is returned when a zero-value Date is used.
var ErrDateIsNotConstructed = errs.NewValueIsRequiredError(
	"date must be created via NewDate, DateOf or ParseDate constructors")

// acceptedLayouts are tried in order by ParseDate. Go accepts optional
// fractional seconds after the seconds field, so those need no extra layouts.
var acceptedLayouts = []string{
	DateLayout,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

// Date is a calendar date without a time component. It is an immutable value
// object; the zero value is invalid.
//
// Example:
//
//	d, err := kernel.ParseDate("2025-12-26")
//	if err != nil {
//	    // not an ISO 8601 date
//	}
//	fmt.Println(d.AddDays(1)) // 2025-12-27
type Date struct { //nolint:recvcheck //using for validation
	t     time.Time
	guard guard.ConstructorGuard
}

// NewDate builds a Date from its parts. Parts that do not name a real day
// (for example February 30) are rejected instead of normalized.
func NewDate(year int, month time.Month, day int) (Date, error) {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != month || t.Day() != day {
		return Date{}, errs.NewValueIsInvalidError("date")
	}
	return Date{t: t, guard: guard.NewConstructorGuard()}, nil
}

// DateOf returns the calendar date of t as seen in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{t: time.Date(y, m, d, 0, 0, 0, 0, time.UTC), guard: guard.NewConstructorGuard()}
}

// ParseDate parses an ISO 8601 date or date-time. For date-times the calendar
// date is taken in the value's own offset; a trailing Z means UTC.
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Date{}, errs.NewValueIsRequiredError("date")
	}
	// The plain date layout gives the most specific error, such as a day out of range.
	var dateErr error
	for _, layout := range acceptedLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return DateOf(t), nil
		}
		if layout == DateLayout {
			dateErr = err
		}
	}
	return Date{}, errs.NewValueIsInvalidErrorWithCause("date", dateErr)
}

// Validate reports whether the Date was created through a constructor.
func (d Date) Validate() error {
	return d.guard.Validate(ErrDateIsNotConstructed)
}

// Time returns midnight UTC of the date.
func (d Date) Time() time.Time {
	return d.t
}

// AddDays returns the date n days later (earlier for negative n).
func (d Date) AddDays(n int) Date {
	return Date{t: d.t.AddDate(0, 0, n), guard: d.guard}
}

func (d Date) Before(other Date) bool {
	return d.t.Before(other.t)
}

func (d Date) After(other Date) bool {
	return d.t.After(other.t)
}

func (d Date) IsEqual(other Date) bool {
	return d.t.Equal(other.t)
}

// String formats the date as YYYY-MM-DD.
func (d Date) String() string {
	return d.t.Format(DateLayout)
}
