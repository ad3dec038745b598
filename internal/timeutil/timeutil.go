package timeutil

import "time"

// DateLayout defines the canonical date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// CompactDateLayout is the digits-only form some upstreams key URLs by.
const CompactDateLayout = "20060102"

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// FormatDate formats a time as YYYY-MM-DD in its current location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ProjectDate maps a calendar date known to be correct in src to the calendar
// date as it reads in dst. It anchors the date at local noon and verifies the
// anchor round-trips in src; near DST transitions local noon can land on the
// wrong side of a day boundary, in which case a fixed UTC instant that sits
// mid-afternoon in src is used instead.
//
// The projection is a pure function of (date, src, dst): no clock reads, and
// projecting through identical zones returns date unchanged.
func ProjectDate(date string, src, dst *time.Location) string {
	parsed, err := ParseDate(date)
	if err != nil {
		return date
	}
	y, m, d := parsed.Date()

	anchor := time.Date(y, m, d, 12, 0, 0, 0, src)
	if FormatDate(anchor.In(src)) != date {
		// 16:30 UTC is mid-afternoon in US Eastern whether or not DST is in
		// effect, which keeps the instant safely inside the intended day.
		anchor = time.Date(y, m, d, 16, 30, 0, 0, time.UTC)
	}
	return FormatDate(anchor.In(dst))
}
