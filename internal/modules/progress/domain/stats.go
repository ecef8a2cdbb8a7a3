package domain

import (
	"math"
	"sort"
	"time"
)

type GoalStatus string

const (
	GoalNone    GoalStatus = "none"
	GoalWarning GoalStatus = "warning"
	GoalMet     GoalStatus = "met"
)

func StatusFor(minutes, goal int) GoalStatus {
	switch {
	case minutes <= 0:
		return GoalNone
	case minutes >= goal:
		return GoalMet
	default:
		return GoalWarning
	}
}

// Accuracy is correct/questions as a percentage with one decimal, 0 when
// nothing was answered.
func Accuracy(correct, questions int) float64 {
	if questions <= 0 {
		return 0
	}
	return math.Round(float64(correct)/float64(questions)*1000) / 10
}

type SubjectTotal struct {
	Subject   string
	Minutes   int
	Sessions  int
	Questions int
	Correct   int
	Accuracy  float64
}

// BySubject totals history per subject name, most studied first.
func BySubject(entries []Entry) []SubjectTotal {
	index := make(map[string]int)
	var out []SubjectTotal
	for _, e := range entries {
		i, ok := index[e.Subject]
		if !ok {
			i = len(out)
			index[e.Subject] = i
			out = append(out, SubjectTotal{Subject: e.Subject})
		}
		out[i].Minutes += e.Minutes
		out[i].Sessions++
		out[i].Questions += e.Questions
		out[i].Correct += e.Correct
	}
	for i := range out {
		out[i].Accuracy = Accuracy(out[i].Correct, out[i].Questions)
	}
	sort.SliceStable(out, func(a, b int) bool { return out[a].Minutes > out[b].Minutes })
	return out
}

type DayTotal struct {
	Date      string
	Minutes   int
	Questions int
	Correct   int
	Sessions  int
	// Subjects maps subject name to minutes studied that day.
	Subjects map[string]int
}

func ByDay(entries []Entry, loc *time.Location) map[string]DayTotal {
	out := make(map[string]DayTotal)
	for _, e := range entries {
		key := DayKey(e.At, loc)
		day, ok := out[key]
		if !ok {
			day = DayTotal{Date: key, Subjects: make(map[string]int)}
		}
		day.Minutes += e.Minutes
		day.Questions += e.Questions
		day.Correct += e.Correct
		day.Sessions++
		day.Subjects[e.Subject] += e.Minutes
		out[key] = day
	}
	return out
}

type TodayProgress struct {
	Date     string
	Minutes  int
	Goal     int
	Fraction float64
	Status   GoalStatus
}

func Today(entries []Entry, goal int, now time.Time) TodayProgress {
	key := DayKey(now, now.Location())
	minutes := 0
	for _, e := range entries {
		if DayKey(e.At, now.Location()) == key {
			minutes += e.Minutes
		}
	}
	fraction := 0.0
	if goal > 0 {
		fraction = math.Min(1, float64(minutes)/float64(goal))
	}
	return TodayProgress{Date: key, Minutes: minutes, Goal: goal, Fraction: fraction, Status: StatusFor(minutes, goal)}
}

type CalendarDay struct {
	Day     int
	Date    string
	Minutes int
	Status  GoalStatus
}

// Month is a calendar page. Offset counts the blank cells before day 1 in a
// week starting on Sunday.
type Month struct {
	Year   int
	Month  time.Month
	Offset int
	Days   []CalendarDay
}

// MonthCalendar lays out a month as plain calendar dates, so every day
// appears once even in zones that skipped a date.
func MonthCalendar(year int, month time.Month, days map[string]DayTotal, goal int) Month {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	length := time.Date(first.Year(), first.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
	page := Month{Year: first.Year(), Month: first.Month(), Offset: int(first.Weekday()), Days: make([]CalendarDay, 0, length)}
	for d := 1; d <= length; d++ {
		key := dateKey(first.Year(), first.Month(), d)
		minutes := days[key].Minutes
		page.Days = append(page.Days, CalendarDay{Day: d, Date: key, Minutes: minutes, Status: StatusFor(minutes, goal)})
	}
	return page
}
