package domain

import "time"

// ComputeStreak counts consecutive study days ending today or yesterday in
// now's location. Several sessions on one date count once.
func ComputeStreak(entries []Entry, now time.Time) int {
	if len(entries) == 0 {
		return 0
	}
	loc := now.Location()
	days := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		days[DayKey(e.At, loc)] = struct{}{}
	}

	count := 0
	y, m, d := now.Date()
	if _, ok := days[dateKey(y, m, d)]; ok {
		count = 1
	}
	for {
		y, m, d = dayBefore(y, m, d)
		if _, ok := days[dateKey(y, m, d)]; !ok {
			return count
		}
		count++
	}
}
