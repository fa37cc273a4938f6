package utils

import (
	"strings"
	"time"
)

const layoutShort = "Jan 2"

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006/01/02",
}

// ParseFlexibleDate tries the date layouts trip payloads are known to carry.
func ParseFlexibleDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatDateShort renders a payload date as a compact display date ("Mar 15").
// Unparseable input passes through trimmed so pre-formatted strings survive.
func FormatDateShort(s string) string {
	if t, ok := ParseFlexibleDate(s); ok {
		return t.Format(layoutShort)
	}
	return strings.TrimSpace(s)
}

// DateRangeLabel combines a start/end date pair into "Mar 15 - Mar 22".
// A single bound is used alone; neither bound falls back to fallback.
func DateRangeLabel(start, end, fallback string) string {
	s := strings.TrimSpace(start)
	e := strings.TrimSpace(end)
	switch {
	case s != "" && e != "":
		return FormatDateShort(s) + " - " + FormatDateShort(e)
	case s != "":
		return FormatDateShort(s)
	case e != "":
		return FormatDateShort(e)
	default:
		return fallback
	}
}

// WeekdayName returns the day-of-week label for a parseable date, else "".
func WeekdayName(s string) string {
	if t, ok := ParseFlexibleDate(s); ok {
		return t.Weekday().String()
	}
	return ""
}
