package domain

// Aggregates are the history figures achievement rules read.
type Aggregates struct {
	Sessions         int
	TotalMinutes     int
	MaxMinutes       int
	DistinctSubjects int
	CatalogSubjects  int
	Streak           int
}

func Aggregate(entries []Entry, catalogSubjects, streak int) Aggregates {
	agg := Aggregates{Sessions: len(entries), CatalogSubjects: catalogSubjects, Streak: streak}
	subjects := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		agg.TotalMinutes += e.Minutes
		if e.Minutes > agg.MaxMinutes {
			agg.MaxMinutes = e.Minutes
		}
		subjects[e.Subject] = struct{}{}
	}
	agg.DistinctSubjects = len(subjects)
	return agg
}

type Rule struct {
	ID          string
	Title       string
	Description string
	Met         func(Aggregates) bool
}

type Achievement struct {
	ID          string
	Title       string
	Description string
	Unlocked    bool
}

// Rules is the one achievement table; its order is the display order.
var Rules = []Rule{
	{"first_step", "First Step", "Complete your first study session.",
		func(a Aggregates) bool { return a.Sessions >= 1 }},
	{"iron_focus", "Iron Focus", "Complete a single session of 50 minutes or more.",
		func(a Aggregates) bool { return a.MaxMinutes >= 50 }},
	{"marathon", "Marathon", "Accumulate 10 hours of study.",
		func(a Aggregates) bool { return a.TotalMinutes >= 600 }},
	{"dedication", "Total Dedication", "Accumulate 100 hours of study.",
		func(a Aggregates) bool { return a.TotalMinutes >= 6000 }},
	{"trinity", "Trinity", "Keep a 3 day streak.",
		func(a Aggregates) bool { return a.Streak >= 3 }},
	{"golden_week", "Golden Week", "Keep a 7 day streak.",
		func(a Aggregates) bool { return a.Streak >= 7 }},
	{"monthly_master", "Monthly Master", "Keep a 30 day streak.",
		func(a Aggregates) bool { return a.Streak >= 30 }},
	{"polymath", "Polymath", "Study at least 3 different subjects.",
		func(a Aggregates) bool { return a.DistinctSubjects >= 3 }},
	{"librarian", "Librarian", "Create at least 5 subjects.",
		func(a Aggregates) bool { return a.CatalogSubjects >= 5 }},
}

func Evaluate(entries []Entry, catalogSubjects, streak int) []Achievement {
	return EvaluateAggregates(Aggregate(entries, catalogSubjects, streak))
}

func EvaluateAggregates(agg Aggregates) []Achievement {
	out := make([]Achievement, 0, len(Rules))
	for _, r := range Rules {
		out = append(out, Achievement{ID: r.ID, Title: r.Title, Description: r.Description, Unlocked: r.Met(agg)})
	}
	return out
}

func UnlockedCount(achievements []Achievement) int {
	n := 0
	for _, a := range achievements {
		if a.Unlocked {
			n++
		}
	}
	return n
}
