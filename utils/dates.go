// utils/dates.go
package utils

import "time"

// BeginningOfDay truncates t to midnight in t's own location. The reminder
// job uses it to frame "tomorrow" as a calendar day rather than a 24h offset.
func BeginningOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// DaysBetween counts calendar days from start to end, ignoring the time of
// day. Negative when end falls on an earlier day than start.
func DaysBetween(start, end time.Time) int {
	start = BeginningOfDay(start)
	end = BeginningOfDay(end)
	return int(end.Sub(start).Hours() / 24)
}
