package in

import (
	"context"

	"studytracker/internal/modules/timer/domain"
	timerdto "studytracker/internal/modules/timer/dto"
	timerin "studytracker/internal/modules/timer/port/in"
)

// Handler serves both the CLI foreground timer and the TUI timer tab.
type Handler struct {
	usecase timerin.Usecase
}

func NewHandler(usecase timerin.Usecase) Handler {
	return Handler{usecase: usecase}
}

func (h Handler) Start(ctx context.Context) error { return h.usecase.Start(ctx) }
func (h Handler) Pause(ctx context.Context) error { return h.usecase.Pause(ctx) }
func (h Handler) Stop(ctx context.Context) error  { return h.usecase.Stop(ctx) }

// Toggle starts a stopped timer and pauses a running one.
func (h Handler) Toggle(ctx context.Context) error {
	snap, err := h.usecase.Snapshot(ctx)
	if err != nil {
		return err
	}
	if snap.Running {
		return h.usecase.Pause(ctx)
	}
	return h.usecase.Start(ctx)
}

func (h Handler) SelectSubject(ctx context.Context, subject string) error {
	return h.usecase.SelectSubject(ctx, subject)
}

func (h Handler) SetQuestions(ctx context.Context, questions, correct int) error {
	return h.usecase.SetQuestions(ctx, questions, correct)
}

// SetStudyMinutesText commits a typed study length. Text that is not a
// positive number becomes the minimum length.
func (h Handler) SetStudyMinutesText(ctx context.Context, text string) (timerdto.Snapshot, error) {
	return h.usecase.SetStudyMinutes(ctx, domain.ParseMinutes(text))
}

func (h Handler) SetBreakMinutesText(ctx context.Context, text string) (timerdto.Snapshot, error) {
	return h.usecase.SetBreakMinutes(ctx, domain.ParseMinutes(text))
}

func (h Handler) SetStudyMinutes(ctx context.Context, minutes int) (timerdto.Snapshot, error) {
	return h.usecase.SetStudyMinutes(ctx, minutes)
}

func (h Handler) SetBreakMinutes(ctx context.Context, minutes int) (timerdto.Snapshot, error) {
	return h.usecase.SetBreakMinutes(ctx, minutes)
}

func (h Handler) Snapshot(ctx context.Context) (timerdto.Snapshot, error) {
	return h.usecase.Snapshot(ctx)
}

func (h Handler) Subscribe(fn func(timerdto.Event)) { h.usecase.Subscribe(fn) }
func (h Handler) Close()                            { h.usecase.Close() }
