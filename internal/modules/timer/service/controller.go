package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"studytracker/internal/modules/timer/domain"
	timerout "studytracker/internal/modules/timer/port/out"
	apperrors "studytracker/internal/platform/errors"
	"studytracker/internal/platform/ticker"
)

const tickPeriod = time.Second

// Status is a consistent read of the controller.
type Status struct {
	State        domain.State
	Phase        domain.Phase
	TimeLeft     int
	PhaseMinutes int
	StudyMinutes int
	BreakMinutes int
	Progress     float64
	Subject      string
	Questions    int
	Correct      int
}

// Controller owns one Engine and the single tick source that drives it.
// Every exported method is safe for concurrent use. Subscribers are called
// outside the lock, after the transition is applied.
type Controller struct {
	mu        sync.Mutex
	engine    *domain.Engine
	scheduler ticker.Scheduler
	token     ticker.Token
	gen       uint64

	recorder timerout.SessionRecorder
	cues     timerout.CuePlayer
	notifier timerout.Notifier
	prefs    timerout.Preferences
	listener func(domain.Event)
	logger   *slog.Logger

	subject   string
	questions int
	correct   int
}

func NewController(engine *domain.Engine, scheduler ticker.Scheduler, recorder timerout.SessionRecorder, cues timerout.CuePlayer, notifier timerout.Notifier, prefs timerout.Preferences) *Controller {
	return &Controller{
		engine:    engine,
		scheduler: scheduler,
		recorder:  recorder,
		cues:      cues,
		notifier:  notifier,
		prefs:     prefs,
		logger:    slog.Default().With(slog.String("component", "timer")),
	}
}

// Subscribe replaces the event listener. A nil fn unsubscribes.
func (c *Controller) Subscribe(fn func(domain.Event)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.listener = fn
}

func (c *Controller) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.statusLocked()
}

func (c *Controller) statusLocked() Status {
	return Status{
		State:        c.engine.State(),
		Phase:        c.engine.Phase(),
		TimeLeft:     c.engine.TimeLeft(),
		PhaseMinutes: c.engine.PhaseMinutes(),
		StudyMinutes: c.engine.StudyMinutes(),
		BreakMinutes: c.engine.BreakMinutes(),
		Progress:     c.engine.Progress(),
		Subject:      c.subject,
		Questions:    c.questions,
		Correct:      c.correct,
	}
}

func (c *Controller) SelectSubject(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.subject = name
}

// SetQuestions stores the running tally for the current study phase.
// Negative counts are treated as zero.
func (c *Controller) SetQuestions(questions, correct int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.questions = max(questions, 0)
	c.correct = max(correct, 0)
}

func (c *Controller) SetStudyMinutes(minutes int) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.engine.SetStudyMinutes(minutes)
}

func (c *Controller) SetBreakMinutes(minutes int) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.engine.SetBreakMinutes(minutes)
}

// Start begins or resumes the loaded phase. A study phase needs a subject;
// without one Start returns ErrSubjectRequired and changes nothing.
func (c *Controller) Start(ctx context.Context) error {
	c.mu.Lock()
	if c.engine.Running() {
		c.mu.Unlock()
		return nil
	}
	if c.engine.Phase() == domain.PhaseStudy && c.subject == "" {
		c.mu.Unlock()
		return apperrors.ErrSubjectRequired
	}
	if c.prefs.NotificationsEnabled(ctx) && c.notifier.Permission() == domain.PermissionDefault {
		c.notifier.RequestPermission(ctx)
	}
	c.playLocked(ctx, domain.CueStart)
	if !c.engine.Start() {
		c.mu.Unlock()
		return nil
	}
	c.startTickingLocked()
	listener := c.listener
	c.mu.Unlock()

	emit(listener, domain.Event{Kind: domain.EventStarted})
	return nil
}

func (c *Controller) Pause() {
	c.mu.Lock()
	if !c.engine.Pause() {
		c.mu.Unlock()
		return
	}
	c.stopTickingLocked()
	listener := c.listener
	c.mu.Unlock()

	emit(listener, domain.Event{Kind: domain.EventPaused})
}

// Stop ends the current phase. A study phase is recorded with its full
// planned length; a break is discarded. The returned error is only a
// recording failure; the timer is reset regardless.
func (c *Controller) Stop(ctx context.Context) error {
	c.mu.Lock()
	c.playLocked(ctx, domain.CueStop)
	c.stopTickingLocked()
	completion, ok := c.engine.Stop()
	if !ok {
		c.mu.Unlock()
		return nil
	}
	event, err := c.finishLocked(ctx, domain.EventStopped, completion)
	listener := c.listener
	c.mu.Unlock()

	emit(listener, event)
	return err
}

// Close cancels the tick source. The controller stays usable.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.engine.Running() {
		c.engine.Pause()
	}
	c.stopTickingLocked()
}

func (c *Controller) startTickingLocked() {
	c.stopTickingLocked()
	gen := c.gen
	c.token = c.scheduler.Every(tickPeriod, func() { c.onTick(gen) })
}

// stopTickingLocked cancels the tick source and bumps the generation so a
// tick already in flight finds itself stale.
func (c *Controller) stopTickingLocked() {
	if c.token != nil {
		c.token.Cancel()
		c.token = nil
	}
	c.gen++
}

func (c *Controller) onTick(gen uint64) {
	event, listener, ok := c.tick(gen)
	if ok {
		emit(listener, event)
	}
}

func (c *Controller) tick(gen uint64) (event domain.Event, listener func(domain.Event), ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.token == nil || gen != c.gen {
		return domain.Event{}, nil, false
	}
	listener = c.listener
	defer func() {
		if r := recover(); r != nil {
			c.engine.Pause()
			c.stopTickingLocked()
			err := fmt.Errorf("%w: %v", apperrors.ErrTimerFault, r)
			c.logger.Error("tick failed, timer stopped", slog.Any("error", err))
			event, ok = domain.Event{Kind: domain.EventFault, Err: err}, true
		}
	}()

	if !c.engine.Tick() {
		return domain.Event{Kind: domain.EventTick}, listener, true
	}
	c.stopTickingLocked()
	completion, _ := c.engine.Complete()
	ctx := context.Background()
	c.playLocked(ctx, domain.CueAlarm)
	event, _ = c.finishLocked(ctx, domain.EventCompleted, completion)
	c.notifyLocked(ctx, completion.Phase)
	return event, listener, true
}

// finishLocked records a finished study phase and clears the question tally.
func (c *Controller) finishLocked(ctx context.Context, kind domain.EventKind, completion domain.Completion) (domain.Event, error) {
	event := domain.Event{Kind: kind, Completion: completion}
	if !completion.Record {
		return event, nil
	}
	defer func() {
		c.questions, c.correct = 0, 0
	}()
	if c.subject == "" {
		c.logger.Warn("study phase ended without a subject, not recorded")
		return event, nil
	}
	if err := c.recorder.Record(ctx, c.subject, completion.PlannedMinutes, c.questions, c.correct); err != nil {
		c.logger.Error("record session failed", slog.String("subject", c.subject), slog.Any("error", err))
		event.Err = err
		return event, fmt.Errorf("record session: %w", err)
	}
	event.Recorded = true
	return event, nil
}

func (c *Controller) playLocked(ctx context.Context, cue domain.Cue) {
	if err := c.cues.Play(ctx, cue, c.prefs.Volume(ctx)); err != nil {
		c.logger.Debug("cue failed", slog.String("cue", string(cue)), slog.Any("error", err))
	}
}

func (c *Controller) notifyLocked(ctx context.Context, phase domain.Phase) {
	if !c.prefs.NotificationsEnabled(ctx) || c.notifier.Permission() != domain.PermissionGranted {
		return
	}
	title, body := domain.CompletionMessage(phase)
	if err := c.notifier.Notify(ctx, title, body); err != nil {
		c.logger.Warn("notification failed", slog.Any("error", err))
	}
}

func emit(listener func(domain.Event), event domain.Event) {
	if listener != nil {
		listener(event)
	}
}
