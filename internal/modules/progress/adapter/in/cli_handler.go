package in

import (
	"context"
	"time"

	progressdto "studytracker/internal/modules/progress/dto"
	progressin "studytracker/internal/modules/progress/port/in"
)

type CLIHandler struct {
	usecase progressin.Usecase
}

func NewCLIHandler(usecase progressin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Summary(ctx context.Context) (progressdto.SummaryOutput, error) {
	return h.usecase.Summary(ctx)
}

func (h CLIHandler) Subjects(ctx context.Context) ([]progressdto.SubjectStatOutput, error) {
	return h.usecase.SubjectStats(ctx)
}

func (h CLIHandler) Month(ctx context.Context, year int, month time.Month) (progressdto.MonthOutput, error) {
	return h.usecase.Month(ctx, year, month)
}

func (h CLIHandler) Day(ctx context.Context, date string) (progressdto.DayOutput, error) {
	return h.usecase.Day(ctx, date)
}
