package service

import (
	"context"
	"fmt"
	"time"

	"studytracker/internal/modules/progress/domain"
	progressout "studytracker/internal/modules/progress/port/out"
	"studytracker/internal/platform/clock"
	apperrors "studytracker/internal/platform/errors"
)

type StatsService struct {
	clock    clock.Clock
	sessions progressout.SessionSource
	catalog  progressout.CatalogSource
	goal     progressout.GoalSource
}

func NewStatsService(clk clock.Clock, sessions progressout.SessionSource, catalog progressout.CatalogSource, goal progressout.GoalSource) *StatsService {
	return &StatsService{clock: clk, sessions: sessions, catalog: catalog, goal: goal}
}

func (s *StatsService) Summary(ctx context.Context) (domain.Summary, domain.TodayProgress, error) {
	entries, err := s.sessions.Entries(ctx)
	if err != nil {
		return domain.Summary{}, domain.TodayProgress{}, fmt.Errorf("load sessions: %w", err)
	}
	subjects, err := s.catalog.SubjectCount(ctx)
	if err != nil {
		return domain.Summary{}, domain.TodayProgress{}, fmt.Errorf("load catalog: %w", err)
	}
	goal, err := s.goal.DailyGoal(ctx)
	if err != nil {
		return domain.Summary{}, domain.TodayProgress{}, fmt.Errorf("load daily goal: %w", err)
	}
	now := s.clock.Now()
	return domain.Summarize(entries, subjects, now), domain.Today(entries, goal, now), nil
}

func (s *StatsService) SubjectTotals(ctx context.Context) ([]domain.SubjectTotal, error) {
	entries, err := s.sessions.Entries(ctx)
	if err != nil {
		return nil, fmt.Errorf("load sessions: %w", err)
	}
	return domain.BySubject(entries), nil
}

func (s *StatsService) Month(ctx context.Context, year int, month time.Month) (domain.Month, int, error) {
	if month < time.January || month > time.December {
		return domain.Month{}, 0, fmt.Errorf("month %d: %w", month, apperrors.ErrInvalidInput)
	}
	days, goal, err := s.days(ctx)
	if err != nil {
		return domain.Month{}, 0, err
	}
	return domain.MonthCalendar(year, month, days, goal), goal, nil
}

func (s *StatsService) Day(ctx context.Context, date string) (domain.DayTotal, domain.GoalStatus, error) {
	loc := s.clock.Now().Location()
	if _, err := time.ParseInLocation("2006-01-02", date, loc); err != nil {
		return domain.DayTotal{}, "", fmt.Errorf("date %q: %w", date, apperrors.ErrInvalidInput)
	}
	days, goal, err := s.days(ctx)
	if err != nil {
		return domain.DayTotal{}, "", err
	}
	day, ok := days[date]
	if !ok {
		day = domain.DayTotal{Date: date, Subjects: map[string]int{}}
	}
	return day, domain.StatusFor(day.Minutes, goal), nil
}

func (s *StatsService) days(ctx context.Context) (map[string]domain.DayTotal, int, error) {
	entries, err := s.sessions.Entries(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("load sessions: %w", err)
	}
	goal, err := s.goal.DailyGoal(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("load daily goal: %w", err)
	}
	return domain.ByDay(entries, s.clock.Now().Location()), goal, nil
}
