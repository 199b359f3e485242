// Package timeline projects scheduled entities onto a month calendar grid and
// a proportional Gantt timeline.
//
// Everything here is pure: functions take entity lists and explicit reference
// days, never read the wall clock, and never modify their inputs. Callers
// normalize once with a Resolver and feed the resulting Items to BuildMonth,
// Project and DetailsFor so every view shares the same containment rules.
package timeline

import (
	"fmt"
	"time"
)

const dayLayout = "2006-01-02"

// Day is a calendar day with no time of day and no zone.
type Day struct {
	Year  int
	Month time.Month
	Day   int
}

// Date builds a Day, normalizing out-of-range values the way time.Date does
// (Date(2024, 2, 30) is March 1st).
func Date(year int, month time.Month, day int) Day {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return Day{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// DayOf returns the calendar day t falls on in loc. A nil loc means time.Local.
func DayOf(t time.Time, loc *time.Location) Day {
	if loc == nil {
		loc = time.Local
	}
	y, m, d := t.In(loc).Date()
	return Day{Year: y, Month: m, Day: d}
}

// ParseDay parses a YYYY-MM-DD string.
func ParseDay(s string) (Day, error) {
	t, err := time.Parse(dayLayout, s)
	if err != nil {
		return Day{}, fmt.Errorf("parsing day %q: use YYYY-MM-DD", s)
	}
	return Day{Year: t.Year(), Month: t.Month(), Day: t.Day()}, nil
}

// DaysIn returns the number of days in the given month.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// DaysBetween returns b minus a in whole days. It counts on a zone-free day
// number, so DST transitions never shift the result.
func DaysBetween(a, b Day) int {
	return int(b.number() - a.number())
}

func (d Day) IsZero() bool {
	return d == Day{}
}

func (d Day) String() string {
	if d.IsZero() {
		return ""
	}
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Time returns midnight of d in loc.
func (d Day) Time(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

func (d Day) number() int64 {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC).Unix() / 86400
}

// Compare returns -1, 0 or +1.
func (d Day) Compare(o Day) int {
	a, b := d.number(), o.number()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func (d Day) Before(o Day) bool { return d.Compare(o) < 0 }
func (d Day) After(o Day) bool  { return d.Compare(o) > 0 }

func (d Day) AddDays(n int) Day {
	return Date(d.Year, d.Month, d.Day+n)
}

func (d Day) Weekday() time.Weekday {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC).Weekday()
}

func (d Day) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Day) UnmarshalText(b []byte) error {
	if len(b) == 0 {
		*d = Day{}
		return nil
	}
	parsed, err := ParseDay(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func minDay(a, b Day) Day {
	if b.Before(a) {
		return b
	}
	return a
}

func maxDay(a, b Day) Day {
	if b.After(a) {
		return b
	}
	return a
}
