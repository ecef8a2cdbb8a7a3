package domain

import "time"

type Summary struct {
	Streak         int
	Achievements   []Achievement
	Unlocked       int
	Rank           string
	NextRank       string
	NextRankNeeded int
	TopRank        bool
	TotalMinutes   int
	Sessions       int
}

// Summarize runs the streak, the achievement table and the rank tiers over
// one history, so every consumer sees the same unlocked count.
func Summarize(entries []Entry, catalogSubjects int, now time.Time) Summary {
	streak := ComputeStreak(entries, now)
	agg := Aggregate(entries, catalogSubjects, streak)
	achievements := EvaluateAggregates(agg)
	unlocked := UnlockedCount(achievements)
	next, needed, ok := NextRank(unlocked)
	return Summary{
		Streak:         streak,
		Achievements:   achievements,
		Unlocked:       unlocked,
		Rank:           ResolveRank(unlocked),
		NextRank:       next,
		NextRankNeeded: needed,
		TopRank:        !ok,
		TotalMinutes:   agg.TotalMinutes,
		Sessions:       agg.Sessions,
	}
}
