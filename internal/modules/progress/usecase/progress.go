package usecase

import (
	"context"
	"time"

	"studytracker/internal/modules/progress/domain"
	progressdto "studytracker/internal/modules/progress/dto"
	progressin "studytracker/internal/modules/progress/port/in"
	"studytracker/internal/modules/progress/service"
)

type Interactor struct {
	svc *service.StatsService
}

func NewInteractor(svc *service.StatsService) progressin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Summary(ctx context.Context) (progressdto.SummaryOutput, error) {
	summary, today, err := i.svc.Summary(ctx)
	if err != nil {
		return progressdto.SummaryOutput{}, err
	}
	achievements := make([]progressdto.AchievementOutput, 0, len(summary.Achievements))
	for _, a := range summary.Achievements {
		achievements = append(achievements, progressdto.AchievementOutput{
			ID:          a.ID,
			Title:       a.Title,
			Description: a.Description,
			Unlocked:    a.Unlocked,
		})
	}
	return progressdto.SummaryOutput{
		Streak:         summary.Streak,
		Unlocked:       summary.Unlocked,
		Total:          len(summary.Achievements),
		Rank:           summary.Rank,
		NextRank:       summary.NextRank,
		NextRankNeeded: summary.NextRankNeeded,
		TopRank:        summary.TopRank,
		TotalMinutes:   summary.TotalMinutes,
		Sessions:       summary.Sessions,
		Achievements:   achievements,
		Today: progressdto.TodayOutput{
			Date:     today.Date,
			Minutes:  today.Minutes,
			Goal:     today.Goal,
			Fraction: today.Fraction,
			Status:   string(today.Status),
		},
	}, nil
}

func (i *Interactor) SubjectStats(ctx context.Context) ([]progressdto.SubjectStatOutput, error) {
	totals, err := i.svc.SubjectTotals(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]progressdto.SubjectStatOutput, 0, len(totals))
	for _, t := range totals {
		out = append(out, progressdto.SubjectStatOutput(t))
	}
	return out, nil
}

func (i *Interactor) Month(ctx context.Context, year int, month time.Month) (progressdto.MonthOutput, error) {
	page, goal, err := i.svc.Month(ctx, year, month)
	if err != nil {
		return progressdto.MonthOutput{}, err
	}
	days := make([]progressdto.CalendarDayOutput, 0, len(page.Days))
	for _, d := range page.Days {
		days = append(days, progressdto.CalendarDayOutput{Day: d.Day, Date: d.Date, Minutes: d.Minutes, Status: string(d.Status)})
	}
	return progressdto.MonthOutput{Year: page.Year, Month: page.Month, Offset: page.Offset, Goal: goal, Days: days}, nil
}

func (i *Interactor) Day(ctx context.Context, date string) (progressdto.DayOutput, error) {
	day, status, err := i.svc.Day(ctx, date)
	if err != nil {
		return progressdto.DayOutput{}, err
	}
	return toDayOutput(day, status), nil
}

func toDayOutput(day domain.DayTotal, status domain.GoalStatus) progressdto.DayOutput {
	return progressdto.DayOutput{
		Date:      day.Date,
		Minutes:   day.Minutes,
		Questions: day.Questions,
		Correct:   day.Correct,
		Sessions:  day.Sessions,
		Subjects:  day.Subjects,
		Status:    string(status),
	}
}
