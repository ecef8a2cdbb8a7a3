package usecase

import (
	"context"

	sessiondto "studytracker/internal/modules/session/dto"
	"studytracker/internal/modules/session/domain"
	sessionin "studytracker/internal/modules/session/port/in"
	"studytracker/internal/modules/session/service"
)

type Interactor struct {
	svc *service.Recorder
}

func NewInteractor(svc *service.Recorder) sessionin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Record(ctx context.Context, input sessiondto.RecordInput) (sessiondto.SessionOutput, error) {
	session, path, err := i.svc.Record(ctx, input.Subject, input.PlannedMinutes, input.Questions, input.CorrectQuestions, input.At)
	if err != nil {
		return sessiondto.SessionOutput{}, err
	}
	out := toOutput(session)
	out.JournalPath = path
	return out, nil
}

func (i *Interactor) List(ctx context.Context) ([]sessiondto.SessionOutput, error) {
	history, err := i.svc.History(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]sessiondto.SessionOutput, 0, len(history))
	for _, s := range history {
		out = append(out, toOutput(s))
	}
	return out, nil
}

func toOutput(s domain.Session) sessiondto.SessionOutput {
	return sessiondto.SessionOutput{
		ID:               s.ID,
		Subject:          s.Subject,
		Duration:         s.Duration,
		Questions:        s.Questions,
		CorrectQuestions: s.CorrectQuestions,
		Date:             s.Date,
		Completed:        s.Completed,
	}
}
