// Package dateutil holds the canonical calendar-day representation shared
// by every day-scoped record.
package dateutil

import "time"

const DayFormat = "2006-01-02"

// DayString converts a reference date to its local calendar day.
func DayString(t time.Time) string {
	return t.Format(DayFormat)
}

// IsDay reports whether s is a well-formed yyyy-MM-dd day string.
func IsDay(s string) bool {
	_, err := time.Parse(DayFormat, s)
	return err == nil
}

// FilterByDay returns the subsequence of items whose day equals the
// reference date's calendar day. The result is never nil.
func FilterByDay[T interface{ Day() string }](items []T, date time.Time) []T {
	day := DayString(date)
	matched := make([]T, 0)
	for _, item := range items {
		if item.Day() == day {
			matched = append(matched, item)
		}
	}
	return matched
}
