package domain

import (
	"fmt"
	"strings"
	"time"
)

// WeekPolicy selects the week-numbering algorithm. Week numbers from
// different policies are not comparable with each other.
type WeekPolicy string

const (
	// WeekPolicyProject numbers weeks continuously from an anchor date.
	// Dates before the anchor fall into week 0 ("not yet started").
	WeekPolicyProject WeekPolicy = "project"

	// WeekPolicyMonthly restarts week numbering at the first Monday
	// of each month.
	WeekPolicyMonthly WeekPolicy = "monthly"

	// WeekPolicyISO uses the ISO-8601 week component as the bucket key.
	// The ISO year is deliberately discarded, so same-numbered weeks
	// from different years share a bucket.
	WeekPolicyISO WeekPolicy = "iso"
)

// ParseWeekPolicy validates a policy name.
func ParseWeekPolicy(s string) (WeekPolicy, error) {
	switch WeekPolicy(strings.ToLower(strings.TrimSpace(s))) {
	case WeekPolicyProject:
		return WeekPolicyProject, nil
	case WeekPolicyMonthly:
		return WeekPolicyMonthly, nil
	case WeekPolicyISO:
		return WeekPolicyISO, nil
	}
	return "", fmt.Errorf("%w: %q (valid: project, monthly, iso)", ErrInvalidPolicy, s)
}

// WeekParams carries policy parameters. It is an immutable value passed
// into every classification call; there is no process-wide anchor state.
type WeekParams struct {
	// Anchor is the project start date. Required by WeekPolicyProject,
	// ignored by the other policies.
	Anchor time.Time
}

// WeekNumber computes the week bucket for a date under the given policy.
func WeekNumber(date time.Time, policy WeekPolicy, params WeekParams) (int, error) {
	switch policy {
	case WeekPolicyMonthly:
		return monthlyWeek(date), nil
	case WeekPolicyISO:
		_, week := date.ISOWeek()
		return week, nil
	case WeekPolicyProject:
		if params.Anchor.IsZero() {
			return 0, fmt.Errorf("%w: project policy requires an anchor date", ErrInvalidInput)
		}
		return projectWeek(date, params.Anchor), nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidPolicy, policy)
}

// WeekRange returns the inclusive date range covered by a week number.
// Defined only for the project policy; ok is false otherwise, and for
// week numbers below 1.
func WeekRange(week int, policy WeekPolicy, params WeekParams) (DateRange, bool) {
	if policy != WeekPolicyProject || params.Anchor.IsZero() || week < 1 {
		return DateRange{}, false
	}
	start := params.Anchor.AddDate(0, 0, (week-1)*7)
	return DateRange{Start: start, End: start.AddDate(0, 0, 6)}, true
}

// monthlyWeek numbers weeks within the date's month, anchored on the
// first Monday on or after the 1st. If the scan for a Monday would roll
// into the next month, the 1st itself stands in for the first Monday.
// The partial stretch before the first Monday is week 1; the week
// starting on the first Monday is week 2. When the month opens on the
// first Monday there is no partial stretch and that week is week 1.
// The result is always >= 1.
func monthlyWeek(date time.Time) int {
	first := time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())

	firstMonday := first
	for firstMonday.Weekday() != time.Monday {
		firstMonday = firstMonday.AddDate(0, 0, 1)
		if firstMonday.Month() != date.Month() {
			firstMonday = first
			break
		}
	}

	if date.Before(firstMonday) {
		return 1
	}

	week := daysBetween(firstMonday, date)/7 + 1
	if firstMonday.Day() != 1 {
		week++
	}
	return week
}

// projectWeek numbers weeks continuously from the anchor date.
func projectWeek(date, anchor time.Time) int {
	if date.Before(anchor) {
		return 0
	}
	return daysBetween(anchor, date)/7 + 1
}

// daysBetween counts whole calendar days from a to b (a <= b).
func daysBetween(a, b time.Time) int {
	a = time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	b = time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a) / (24 * time.Hour))
}

// MondayOf returns the Monday of the week containing the date.
func MondayOf(date time.Time) time.Time {
	offset := (int(date.Weekday()) + 6) % 7
	return date.AddDate(0, 0, -offset)
}

// WeekOf returns the Monday..Sunday range of the week containing the date.
func WeekOf(date time.Time) DateRange {
	monday := MondayOf(date)
	return DateRange{Start: monday, End: monday.AddDate(0, 0, 6)}
}

// ParseDate parses a content store date string such as "2025-08-01" or
// "2025-08-01T09:30:00.000+09:00". Missing or malformed dates are not an
// error; ok is false and the document is simply left unclassified.
func ParseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	day, _, _ := strings.Cut(s, "T")
	t, err := time.Parse("2006-01-02", day)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// FormatDate renders a date for display, e.g. "Aug 1 (Fri)".
func FormatDate(date time.Time) string {
	return date.Format("Jan 2 (Mon)")
}

// String renders the range for display, e.g. "Jul 1 ~ Jul 7".
func (r DateRange) String() string {
	return r.Start.Format("Jan 2") + " ~ " + r.End.Format("Jan 2")
}
