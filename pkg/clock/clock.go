// Package clock supplies "now" to services so date rules are testable.
//
// Calendar dates are carried as time.Time at 00:00 UTC. DateOf takes the
// year/month/day of a timestamp in its own location, so a System clock built
// for the shop's time zone yields the shop's "today".
package clock

import (
	"fmt"
	"time"
)

// DateLayout is the wire format for calendar dates.
const DateLayout = time.DateOnly

type Clock interface {
	Now() time.Time
}

type systemClock struct {
	loc *time.Location
}

// System returns a wall clock reporting time in loc (UTC when nil).
func System(loc *time.Location) Clock {
	if loc == nil {
		loc = time.UTC
	}
	return systemClock{loc: loc}
}

func (c systemClock) Now() time.Time { return time.Now().In(c.loc) }

type fixedClock struct {
	t time.Time
}

// Fixed returns a clock frozen at t.
func Fixed(t time.Time) Clock { return fixedClock{t: t} }

func (c fixedClock) Now() time.Time { return c.t }

// DateOf truncates t to its calendar date, expressed at 00:00 UTC.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Today is the current calendar date according to c.
func Today(c Clock) time.Time {
	return DateOf(c.Now())
}

// Date builds a calendar date.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD string into a calendar date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: expected YYYY-MM-DD", s)
	}
	return t, nil
}

// FormatDate renders a calendar date as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
