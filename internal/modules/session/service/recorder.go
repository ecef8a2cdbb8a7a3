package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"studytracker/internal/modules/session/domain"
	sessionout "studytracker/internal/modules/session/port/out"
	"studytracker/internal/platform/clock"
	"studytracker/internal/platform/id"
)

type Recorder struct {
	clock   clock.Clock
	idGen   id.Generator
	store   sessionout.HistoryStore
	journal sessionout.Journal
	logger  *slog.Logger

	mu sync.Mutex
}

// NewRecorder wires a recorder. journal may be nil.
func NewRecorder(clock clock.Clock, idGen id.Generator, store sessionout.HistoryStore, journal sessionout.Journal) *Recorder {
	return &Recorder{
		clock:   clock,
		idGen:   idGen,
		store:   store,
		journal: journal,
		logger:  slog.Default().With(slog.String("component", "session-recorder")),
	}
}

// Record appends a completed session to the history and persists the whole
// history before returning. The journal path is empty when no journal is
// configured or writing it failed.
func (r *Recorder) Record(ctx context.Context, subject string, planned, questions, correct int, at time.Time) (domain.Session, string, error) {
	if at.IsZero() {
		at = r.clock.Now()
	}
	session, err := domain.New(r.idGen.New(), subject, planned, questions, correct, at)
	if err != nil {
		return domain.Session{}, "", err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	history, err := r.store.Load(ctx)
	if err != nil {
		return domain.Session{}, "", fmt.Errorf("load history: %w", err)
	}
	history = append(history, session)
	if err := r.store.Save(ctx, history); err != nil {
		return domain.Session{}, "", fmt.Errorf("save history: %w", err)
	}

	path := ""
	if r.journal != nil {
		path, err = r.journal.Write(ctx, session)
		if err != nil {
			r.logger.Warn("journal write failed", slog.String("session", session.ID), slog.Any("error", err))
			path = ""
		}
	}
	r.logger.Info("session recorded",
		slog.String("session", session.ID),
		slog.String("subject", session.Subject),
		slog.Int("minutes", session.Duration),
	)
	return session, path, nil
}

func (r *Recorder) History(ctx context.Context) ([]domain.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	history, err := r.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}
	return history, nil
}
