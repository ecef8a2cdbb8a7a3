package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studytracker/internal/modules/progress/domain"
	"studytracker/internal/modules/progress/service"
	"studytracker/internal/modules/progress/usecase"
	"studytracker/internal/platform/clock"
	apperrors "studytracker/internal/platform/errors"
)

type fakeSessions struct {
	entries []domain.Entry
	err     error
}

func (f fakeSessions) Entries(context.Context) ([]domain.Entry, error) { return f.entries, f.err }

type fakeCatalog int

func (f fakeCatalog) SubjectCount(context.Context) (int, error) { return int(f), nil }

type fakeGoal int

func (f fakeGoal) DailyGoal(context.Context) (int, error) { return int(f), nil }

var now = time.Date(2026, 10, 18, 21, 0, 0, 0, time.UTC)

func history() []domain.Entry {
	return []domain.Entry{
		{Subject: "Math", Minutes: 50, Questions: 10, Correct: 9, At: now.Add(-49 * time.Hour)},
		{Subject: "Physics", Minutes: 25, At: now.Add(-25 * time.Hour)},
		{Subject: "Math", Minutes: 25, Questions: 4, Correct: 2, At: now.Add(-2 * time.Hour)},
		{Subject: "Math", Minutes: 25, At: now.Add(-1 * time.Hour)},
	}
}

func newInteractor(sessions fakeSessions) *usecase.Interactor {
	svc := service.NewStatsService(clock.Fixed(now), sessions, fakeCatalog(5), fakeGoal(60))
	return usecase.NewInteractor(svc).(*usecase.Interactor)
}

func TestSummary(t *testing.T) {
	got, err := newInteractor(fakeSessions{entries: history()}).Summary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, got.Streak)
	assert.Equal(t, 9, got.Total)
	// first_step, iron_focus, trinity, librarian
	assert.Equal(t, 4, got.Unlocked)
	assert.Equal(t, "Dedicated Student", got.Rank)
	assert.Equal(t, 125, got.TotalMinutes)
	assert.Equal(t, "2026-10-18", got.Today.Date)
	assert.Equal(t, 50, got.Today.Minutes)
	assert.Equal(t, 60, got.Today.Goal)
	assert.Equal(t, "warning", got.Today.Status)
}

func TestSummaryPropagatesSourceErrors(t *testing.T) {
	boom := errors.New("disk gone")
	_, err := newInteractor(fakeSessions{err: boom}).Summary(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestSubjectStats(t *testing.T) {
	got, err := newInteractor(fakeSessions{entries: history()}).SubjectStats(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Math", got[0].Subject)
	assert.Equal(t, 100, got[0].Minutes)
	assert.Equal(t, 3, got[0].Sessions)
	assert.Equal(t, 78.6, got[0].Accuracy)
}

func TestMonthAndDay(t *testing.T) {
	uc := newInteractor(fakeSessions{entries: history()})
	ctx := context.Background()

	month, err := uc.Month(ctx, 2026, time.October)
	require.NoError(t, err)
	assert.Equal(t, 60, month.Goal)
	assert.Equal(t, "none", month.Days[14].Status)
	assert.Equal(t, 50, month.Days[15].Minutes)
	assert.Equal(t, "warning", month.Days[15].Status)

	_, err = uc.Month(ctx, 2026, 13)
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)

	day, err := uc.Day(ctx, "2026-10-18")
	require.NoError(t, err)
	assert.Equal(t, 50, day.Minutes)
	assert.Equal(t, map[string]int{"Math": 50}, day.Subjects)

	empty, err := uc.Day(ctx, "2026-10-01")
	require.NoError(t, err)
	assert.Equal(t, "none", empty.Status)

	_, err = uc.Day(ctx, "18/10/2026")
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}
