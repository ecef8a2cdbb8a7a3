package in

import (
	"context"
	"time"

	"studytracker/internal/modules/progress/dto"
)

type Usecase interface {
	Summary(ctx context.Context) (dto.SummaryOutput, error)
	SubjectStats(ctx context.Context) ([]dto.SubjectStatOutput, error)
	Month(ctx context.Context, year int, month time.Month) (dto.MonthOutput, error)
	// Day reports one calendar date given as YYYY-MM-DD.
	Day(ctx context.Context, date string) (dto.DayOutput, error)
}
