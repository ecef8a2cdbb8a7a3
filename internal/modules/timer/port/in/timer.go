package in

import (
	"context"

	"studytracker/internal/modules/timer/dto"
)

type Usecase interface {
	Start(ctx context.Context) error
	Pause(ctx context.Context) error
	Stop(ctx context.Context) error
	SelectSubject(ctx context.Context, subject string) error
	SetQuestions(ctx context.Context, questions, correct int) error
	SetStudyMinutes(ctx context.Context, minutes int) (dto.Snapshot, error)
	SetBreakMinutes(ctx context.Context, minutes int) (dto.Snapshot, error)
	Snapshot(ctx context.Context) (dto.Snapshot, error)
	Subscribe(fn func(dto.Event))
	Close()
}
