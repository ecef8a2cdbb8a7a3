package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studytracker/internal/modules/progress/domain"
)

func TestStatusFor(t *testing.T) {
	assert.Equal(t, domain.GoalNone, domain.StatusFor(0, 120))
	assert.Equal(t, domain.GoalWarning, domain.StatusFor(119, 120))
	assert.Equal(t, domain.GoalMet, domain.StatusFor(120, 120))
	assert.Equal(t, domain.GoalMet, domain.StatusFor(200, 120))
}

func TestBySubject(t *testing.T) {
	entries := []domain.Entry{
		{Subject: "Math", Minutes: 25, Questions: 10, Correct: 7},
		{Subject: "Physics", Minutes: 50, Questions: 3, Correct: 1},
		{Subject: "Math", Minutes: 25, Questions: 5, Correct: 5},
		{Subject: "History", Minutes: 10},
	}
	got := domain.BySubject(entries)
	require.Len(t, got, 3)
	assert.Equal(t, domain.SubjectTotal{Subject: "Math", Minutes: 50, Sessions: 2, Questions: 15, Correct: 12, Accuracy: 80}, got[0])
	assert.Equal(t, "Physics", got[1].Subject)
	assert.Equal(t, 33.3, got[1].Accuracy)
	assert.Equal(t, 0.0, got[2].Accuracy)
}

func TestByDayGroupsOnLocalDate(t *testing.T) {
	entries := []domain.Entry{
		{Subject: "Math", Minutes: 25, Questions: 4, Correct: 3, At: at(2026, 3, 9, 23)},
		{Subject: "Physics", Minutes: 30, At: at(2026, 3, 9, 8)},
		{Subject: "Math", Minutes: 25, At: at(2026, 3, 10, 0)},
	}
	days := domain.ByDay(entries, brt)
	require.Len(t, days, 2)
	ninth := days["2026-03-09"]
	assert.Equal(t, 55, ninth.Minutes)
	assert.Equal(t, 2, ninth.Sessions)
	assert.Equal(t, map[string]int{"Math": 25, "Physics": 30}, ninth.Subjects)
	assert.Equal(t, 25, days["2026-03-10"].Minutes)
}

func TestToday(t *testing.T) {
	now := at(2026, 3, 10, 18)
	entries := []domain.Entry{
		{Minutes: 25, At: at(2026, 3, 10, 9)},
		{Minutes: 25, At: at(2026, 3, 10, 11)},
		{Minutes: 90, At: at(2026, 3, 9, 11)},
	}
	got := domain.Today(entries, 100, now)
	assert.Equal(t, "2026-03-10", got.Date)
	assert.Equal(t, 50, got.Minutes)
	assert.InDelta(t, 0.5, got.Fraction, 1e-9)
	assert.Equal(t, domain.GoalWarning, got.Status)
}

func TestMonthCalendar(t *testing.T) {
	days := map[string]domain.DayTotal{
		"2026-10-03": {Minutes: 130},
		"2026-10-04": {Minutes: 40},
	}
	page := domain.MonthCalendar(2026, time.October, days, 120)
	assert.Equal(t, 4, page.Offset, "1 October 2026 is a Thursday")
	require.Len(t, page.Days, 31)
	assert.Equal(t, domain.CalendarDay{Day: 3, Date: "2026-10-03", Minutes: 130, Status: domain.GoalMet}, page.Days[2])
	assert.Equal(t, domain.GoalWarning, page.Days[3].Status)
	assert.Equal(t, domain.GoalNone, page.Days[30].Status)

	feb := domain.MonthCalendar(2026, time.February, nil, 120)
	assert.Equal(t, 0, feb.Offset)
	assert.Len(t, feb.Days, 28)
}

func TestSummarize(t *testing.T) {
	now := at(2026, 3, 10, 20)
	entries := []domain.Entry{
		{Subject: "Math", Minutes: 50, At: at(2026, 3, 8, 9)},
		{Subject: "Physics", Minutes: 25, At: at(2026, 3, 9, 9)},
		{Subject: "History", Minutes: 25, At: at(2026, 3, 10, 9)},
	}
	s := domain.Summarize(entries, 3, now)
	assert.Equal(t, 3, s.Streak)
	// first_step, iron_focus, trinity, polymath
	assert.Equal(t, 4, s.Unlocked)
	assert.Equal(t, "Dedicated Student", s.Rank)
	assert.Equal(t, "Scholar", s.NextRank)
	assert.Equal(t, 6, s.NextRankNeeded)
	assert.False(t, s.TopRank)
	assert.Equal(t, 100, s.TotalMinutes)
}
