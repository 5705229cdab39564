package timesheet

import (
	"strings"
	"time"
)

// DateLayout is the calendar date format used on the wire.
const DateLayout = time.DateOnly

// dateLayouts are tried in order by ParseDate. Stored backend dates carry a
// time component; user input normally does not.
var dateLayouts = []string{
	time.DateOnly,
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
}

// ParseDate parses s as a calendar date and returns midnight UTC of that date.
// A timestamp keeps the date it is written with, whatever its offset, so
// ParseDate and DateKey agree on which day a stored entry belongs to. The
// boolean is false for empty or unparseable input.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), true
	}
	return time.Time{}, false
}

// DateRange returns every calendar date from start to end inclusive, formatted
// as YYYY-MM-DD. It returns an empty slice when either date is invalid or
// start is after end.
func DateRange(start, end string) []string {
	from, ok := ParseDate(start)
	if !ok {
		return []string{}
	}
	to, ok := ParseDate(end)
	if !ok || from.After(to) {
		return []string{}
	}

	dates := make([]string, 0, int(to.Sub(from).Hours()/24)+1)
	for day := from; !day.After(to); day = day.AddDate(0, 0, 1) {
		dates = append(dates, day.Format(DateLayout))
	}
	return dates
}

// IsSevenDayRange reports whether start and end are valid dates exactly six
// days apart, which is a seven-day period counted inclusively.
func IsSevenDayRange(start, end string) bool {
	return daysBetween(start, end) == 6
}

// daysBetween returns the whole-day difference end - start, or -1 when
// either date is invalid or end is before start.
func daysBetween(start, end string) int {
	from, ok := ParseDate(start)
	if !ok {
		return -1
	}
	to, ok := ParseDate(end)
	if !ok || to.Before(from) {
		return -1
	}
	return int(to.Sub(from).Hours() / 24)
}

// DateKey returns the calendar-date prefix of a stored date string. Stored
// dates may be full timestamps; matching uses only the first ten characters.
func DateKey(s string) string {
	if len(s) > len(DateLayout) {
		return s[:len(DateLayout)]
	}
	return s
}
