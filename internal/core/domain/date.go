package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ISODate is the canonical layout for rendered days (ISO-8601 calendar date).
const ISODate = "2006-01-02"

// Day is a single calendar day, normalised to midnight UTC.
// The zero value is not a valid day; construct via NewDay or NormaliseDay.
type Day struct {
	t time.Time
}

// NewDay truncates t to its calendar day in UTC.
func NewDay(t time.Time) Day {
	u := t.UTC()
	return Day{t: time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)}
}

// relativeExpr matches offsets like "-1 day", "+3 days" and "2 days ago".
var relativeExpr = regexp.MustCompile(`^([+-]?\d+)\s+days?(\s+ago)?$`)

// NormaliseDay converts a free-form date expression into a Day.
// Accepted forms:
//
//	2022-08-01          absolute ISO-8601 calendar date
//	today / yesterday / tomorrow
//	-1 day, +3 days     offset from now
//	2 days ago          offset back from now
//
// Relative expressions are resolved against now. Anything else fails
// with ErrInvalidDate.
func NormaliseDay(expr string, now time.Time) (Day, error) {
	s := strings.ToLower(strings.TrimSpace(expr))
	if s == "" {
		return Day{}, fmt.Errorf("%w: empty expression", ErrInvalidDate)
	}

	switch s {
	case "today", "now":
		return NewDay(now), nil
	case "yesterday":
		return NewDay(now).AddDays(-1), nil
	case "tomorrow":
		return NewDay(now).AddDays(1), nil
	}

	if m := relativeExpr.FindStringSubmatch(s); m != nil {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return Day{}, fmt.Errorf("%w: %q", ErrInvalidDate, expr)
		}
		if m[2] != "" {
			n = -n
		}
		return NewDay(now).AddDays(n), nil
	}

	t, err := time.Parse(ISODate, s)
	if err != nil {
		return Day{}, fmt.Errorf("%w: %q", ErrInvalidDate, expr)
	}
	return NewDay(t), nil
}

// ParseISODay parses a strict YYYY-MM-DD string.
// Used when reading days back from storage.
func ParseISODay(s string) (Day, error) {
	t, err := time.Parse(ISODate, s)
	if err != nil {
		return Day{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return NewDay(t), nil
}

// String renders the day as YYYY-MM-DD.
func (d Day) String() string {
	return d.t.Format(ISODate)
}

// Time returns the underlying midnight-UTC instant.
func (d Day) Time() time.Time {
	return d.t
}

// IsZero reports whether the day is the zero value.
func (d Day) IsZero() bool {
	return d.t.IsZero()
}

// AddDays returns the day shifted by n calendar days.
func (d Day) AddDays(n int) Day {
	return Day{t: d.t.AddDate(0, 0, n)}
}

// Next returns the following calendar day.
func (d Day) Next() Day {
	return d.AddDays(1)
}

// Before reports whether d is strictly earlier than other.
func (d Day) Before(other Day) bool {
	return d.t.Before(other.t)
}

// Equal reports whether both values name the same calendar day.
func (d Day) Equal(other Day) bool {
	return d.t.Equal(other.t)
}

// DateRange is a half-open span of days: Start inclusive, End exclusive.
// A range whose Start is not strictly before End is empty. Termination is
// ordering-based, so a reversed range iterates zero times rather than
// running unbounded.
type DateRange struct {
	Start Day
	End   Day
}

// NewDateRange builds a range from start (inclusive) to end (exclusive).
func NewDateRange(start, end Day) DateRange {
	return DateRange{Start: start, End: end}
}

// Len returns the number of days the range yields.
func (r DateRange) Len() int {
	if !r.Start.Before(r.End) {
		return 0
	}
	return int(r.End.t.Sub(r.Start.t) / (24 * time.Hour))
}

// IsEmpty reports whether the range yields no days.
func (r DateRange) IsEmpty() bool {
	return r.Len() == 0
}

// String renders the range as "start..end".
func (r DateRange) String() string {
	return r.Start.String() + ".." + r.End.String()
}

// Iter returns a fresh iterator positioned at the start of the range.
func (r DateRange) Iter() *DayIterator {
	return &DayIterator{cursor: r.Start, end: r.End}
}

// DayIterator walks a DateRange one day at a time.
type DayIterator struct {
	cursor Day
	end    Day
}

// Next returns the next day in the range, or false when the cursor has
// reached or passed the end.
func (it *DayIterator) Next() (Day, bool) {
	if !it.cursor.Before(it.end) {
		return Day{}, false
	}
	d := it.cursor
	it.cursor = d.Next()
	return d, true
}
