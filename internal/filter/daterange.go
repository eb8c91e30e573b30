package filter

import (
	"fmt"
	"strings"
	"time"
)

type DateRange string

const (
	DateRangeAll        DateRange = "all"
	DateRangeToday      DateRange = "today"
	DateRangeYesterday  DateRange = "yesterday"
	DateRangeLast7Days  DateRange = "last_7_days"
	DateRangeLast30Days DateRange = "last_30_days"
	DateRangeThisMonth  DateRange = "this_month"
	DateRangeLastMonth  DateRange = "last_month"
	DateRangeCustom     DateRange = "custom"
)

var dateRanges = []DateRange{
	DateRangeAll,
	DateRangeToday,
	DateRangeYesterday,
	DateRangeLast7Days,
	DateRangeLast30Days,
	DateRangeThisMonth,
	DateRangeLastMonth,
	DateRangeCustom,
}

func (r DateRange) Valid() bool {
	for _, known := range dateRanges {
		if r == known {
			return true
		}
	}
	return false
}

// ParseDateRange accepts the wire names ("last_7_days") case-insensitively.
// An empty string means DateRangeAll.
func ParseDateRange(s string) (DateRange, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return DateRangeAll, nil
	}
	r := DateRange(s)
	if !r.Valid() {
		return "", fmt.Errorf("unknown date range %q", s)
	}
	return r, nil
}

// Window resolves r to an inclusive [start, end] interval relative to now,
// in now's location. ok is false when the range does not filter at all:
// DateRangeAll, or DateRangeCustom with a missing bound.
func (r DateRange) Window(now time.Time, customStart, customEnd *time.Time) (start, end time.Time, ok bool) {
	today := startOfDay(now)

	switch r {
	case DateRangeToday:
		return today, endOfDay(today), true
	case DateRangeYesterday:
		y := today.AddDate(0, 0, -1)
		return y, endOfDay(y), true
	case DateRangeLast7Days:
		return today.AddDate(0, 0, -7), endOfDay(today), true
	case DateRangeLast30Days:
		return today.AddDate(0, 0, -30), endOfDay(today), true
	case DateRangeThisMonth:
		first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return first, endOfDay(first.AddDate(0, 1, -1)), true
	case DateRangeLastMonth:
		first := time.Date(now.Year(), now.Month()-1, 1, 0, 0, 0, 0, now.Location())
		return first, endOfDay(first.AddDate(0, 1, -1)), true
	case DateRangeCustom:
		if customStart == nil || customEnd == nil {
			return time.Time{}, time.Time{}, false
		}
		loc := now.Location()
		return startOfDay(customStart.In(loc)), endOfDay(customEnd.In(loc)), true
	default:
		return time.Time{}, time.Time{}, false
	}
}

// Label is the text shown on the date picker button.
func (r DateRange) Label(customStart, customEnd *time.Time) string {
	switch r {
	case DateRangeAll:
		return "All Dates"
	case DateRangeToday:
		return "Today"
	case DateRangeYesterday:
		return "Yesterday"
	case DateRangeLast7Days:
		return "Last 7 Days"
	case DateRangeLast30Days:
		return "Last 30 Days"
	case DateRangeThisMonth:
		return "This Month"
	case DateRangeLastMonth:
		return "Last Month"
	case DateRangeCustom:
		if customStart != nil && customEnd != nil {
			return customStart.Format("Jan 2") + " - " + customEnd.Format("Jan 2")
		}
	}
	return "Select Date"
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(999*time.Millisecond), t.Location())
}

var createdAtLayouts = []string{
	"2006-01-02",
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// parseCreatedAt reads a record date. Date-only values are taken as
// midnight in loc.
func parseCreatedAt(s string, loc *time.Location) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range createdAtLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
