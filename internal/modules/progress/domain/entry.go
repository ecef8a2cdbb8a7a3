// Package domain holds the pure functions derived from session history:
// streaks, achievements, ranks and calendar aggregates. None of them mutate
// their inputs, return errors or keep state between calls.
package domain

import "time"

const dayLayout = "2006-01-02"

// Entry is the slice of a recorded session that aggregates read.
type Entry struct {
	Subject   string
	Minutes   int
	Questions int
	Correct   int
	At        time.Time
}

// DayKey projects an instant onto its calendar date in loc.
func DayKey(at time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	return at.In(loc).Format(dayLayout)
}

// dayBefore steps one calendar day back. The arithmetic runs in UTC so zones
// that skipped a whole date still move the walk.
func dayBefore(y int, m time.Month, d int) (int, time.Month, int) {
	return time.Date(y, m, d-1, 0, 0, 0, 0, time.UTC).Date()
}

func dateKey(y int, m time.Month, d int) string {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Format(dayLayout)
}
