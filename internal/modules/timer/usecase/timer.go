package usecase

import (
	"context"

	"studytracker/internal/modules/timer/domain"
	timerdto "studytracker/internal/modules/timer/dto"
	timerin "studytracker/internal/modules/timer/port/in"
	"studytracker/internal/modules/timer/service"
)

type Interactor struct {
	svc *service.Controller
}

func NewInteractor(svc *service.Controller) timerin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Start(ctx context.Context) error {
	return i.svc.Start(ctx)
}

func (i *Interactor) Pause(context.Context) error {
	i.svc.Pause()
	return nil
}

func (i *Interactor) Stop(ctx context.Context) error {
	return i.svc.Stop(ctx)
}

func (i *Interactor) SelectSubject(_ context.Context, subject string) error {
	i.svc.SelectSubject(subject)
	return nil
}

func (i *Interactor) SetQuestions(_ context.Context, questions, correct int) error {
	i.svc.SetQuestions(questions, correct)
	return nil
}

func (i *Interactor) SetStudyMinutes(_ context.Context, minutes int) (timerdto.Snapshot, error) {
	i.svc.SetStudyMinutes(minutes)
	return toSnapshot(i.svc.Status()), nil
}

func (i *Interactor) SetBreakMinutes(_ context.Context, minutes int) (timerdto.Snapshot, error) {
	i.svc.SetBreakMinutes(minutes)
	return toSnapshot(i.svc.Status()), nil
}

func (i *Interactor) Snapshot(context.Context) (timerdto.Snapshot, error) {
	return toSnapshot(i.svc.Status()), nil
}

func (i *Interactor) Subscribe(fn func(timerdto.Event)) {
	if fn == nil {
		i.svc.Subscribe(nil)
		return
	}
	i.svc.Subscribe(func(e domain.Event) {
		fn(timerdto.Event{
			Kind:           string(e.Kind),
			Phase:          string(e.Completion.Phase),
			PlannedMinutes: e.Completion.PlannedMinutes,
			Recorded:       e.Recorded,
			Err:            e.Err,
			Snapshot:       toSnapshot(i.svc.Status()),
		})
	})
}

func (i *Interactor) Close() {
	i.svc.Close()
}

func toSnapshot(s service.Status) timerdto.Snapshot {
	accuracy := 0
	if s.Questions > 0 {
		accuracy = int(float64(min(s.Correct, s.Questions))/float64(s.Questions)*100 + 0.5)
	}
	return timerdto.Snapshot{
		State:        string(s.State),
		Phase:        string(s.Phase),
		Running:      s.State.Running(),
		TimeLeft:     s.TimeLeft,
		Clock:        domain.FormatClock(s.TimeLeft),
		PhaseMinutes: s.PhaseMinutes,
		StudyMinutes: s.StudyMinutes,
		BreakMinutes: s.BreakMinutes,
		Progress:     s.Progress,
		Subject:      s.Subject,
		Questions:    s.Questions,
		Correct:      s.Correct,
		Accuracy:     accuracy,
	}
}
