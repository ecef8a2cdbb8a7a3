package usecase_test

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"studytracker/internal/modules/session/adapter/out"
	"studytracker/internal/modules/session/domain"
	sessiondto "studytracker/internal/modules/session/dto"
	"studytracker/internal/modules/session/service"
	"studytracker/internal/modules/session/usecase"
	apperrors "studytracker/internal/platform/errors"
	"studytracker/internal/platform/kv"
	"studytracker/internal/platform/persistence"
)

type fakeClock struct {
	values []time.Time
	idx    int
}

func (f *fakeClock) Now() time.Time {
	if f.idx >= len(f.values) {
		return f.values[len(f.values)-1]
	}
	v := f.values[f.idx]
	f.idx++
	return v
}

type seqID struct{ n int }

func (s *seqID) New() string {
	s.n++
	return "sess-" + string(rune('0'+s.n))
}

type failingJournal struct{}

func (failingJournal) Write(context.Context, domain.Session) (string, error) {
	return "", errors.New("read-only filesystem")
}

func newGateway() *persistence.Gateway {
	return persistence.New(kv.NewMemory(), nil)
}

func TestRecordAppendsInInsertionOrderAndPersists(t *testing.T) {
	t.Parallel()
	gateway := newGateway()
	clk := &fakeClock{values: []time.Time{
		time.Date(2026, 2, 25, 10, 0, 0, 0, time.UTC),
		time.Date(2026, 2, 25, 9, 0, 0, 0, time.UTC),
	}}
	journalDir := t.TempDir()
	uc := usecase.NewInteractor(service.NewRecorder(clk, &seqID{}, out.NewGatewayHistoryStore(gateway), out.NewMarkdownJournal(journalDir, time.UTC)))

	first, err := uc.Record(context.Background(), sessiondto.RecordInput{Subject: "Physics", PlannedMinutes: 25, Questions: 10, CorrectQuestions: 12})
	if err != nil {
		t.Fatalf("record first: %v", err)
	}
	if first.Duration != 25 || first.CorrectQuestions != 10 || !first.Completed {
		t.Fatalf("unexpected first session: %+v", first)
	}
	if !strings.HasPrefix(first.JournalPath, journalDir) {
		t.Fatalf("expected journal note under %s, got %q", journalDir, first.JournalPath)
	}
	if _, err := os.Stat(first.JournalPath); err != nil {
		t.Fatalf("journal note missing: %v", err)
	}

	// An earlier timestamp is still appended last.
	if _, err := uc.Record(context.Background(), sessiondto.RecordInput{Subject: "Math", PlannedMinutes: 50}); err != nil {
		t.Fatalf("record second: %v", err)
	}

	stored := persistence.LoadJSON(context.Background(), gateway, persistence.KeySessions, []domain.Session{})
	if len(stored) != 2 || stored[0].Subject != "Physics" || stored[1].Subject != "Math" {
		t.Fatalf("expected persisted history in insertion order, got %+v", stored)
	}

	listed, err := uc.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(listed) != 2 || listed[0].ID != "sess-1" || listed[1].ID != "sess-2" {
		t.Fatalf("unexpected listing: %+v", listed)
	}
}

func TestRecordUsesExplicitInstant(t *testing.T) {
	t.Parallel()
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	clk := &fakeClock{values: []time.Time{time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)}}
	uc := usecase.NewInteractor(service.NewRecorder(clk, &seqID{}, out.NewGatewayHistoryStore(newGateway()), nil))

	got, err := uc.Record(context.Background(), sessiondto.RecordInput{Subject: "Art", PlannedMinutes: 5, At: at})
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if !got.Date.Equal(at) {
		t.Fatalf("expected date %v, got %v", at, got.Date)
	}
	if got.JournalPath != "" {
		t.Fatalf("no journal configured, got path %q", got.JournalPath)
	}
}

func TestRecordRejectsInvalidInputWithoutPersisting(t *testing.T) {
	t.Parallel()
	gateway := newGateway()
	clk := &fakeClock{values: []time.Time{time.Now()}}
	uc := usecase.NewInteractor(service.NewRecorder(clk, &seqID{}, out.NewGatewayHistoryStore(gateway), nil))

	if _, err := uc.Record(context.Background(), sessiondto.RecordInput{Subject: "", PlannedMinutes: 25}); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input for empty subject, got %v", err)
	}
	if _, err := uc.Record(context.Background(), sessiondto.RecordInput{Subject: "Math", PlannedMinutes: 0}); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input for zero minutes, got %v", err)
	}
	if _, ok := gateway.Raw(context.Background(), persistence.KeySessions); ok {
		t.Fatalf("rejected sessions must not be persisted")
	}
}

func TestJournalFailureDoesNotFailRecording(t *testing.T) {
	t.Parallel()
	clk := &fakeClock{values: []time.Time{time.Now()}}
	uc := usecase.NewInteractor(service.NewRecorder(clk, &seqID{}, out.NewGatewayHistoryStore(newGateway()), failingJournal{}))

	got, err := uc.Record(context.Background(), sessiondto.RecordInput{Subject: "Math", PlannedMinutes: 25})
	if err != nil {
		t.Fatalf("journal failure must not surface: %v", err)
	}
	if got.JournalPath != "" {
		t.Fatalf("expected empty journal path, got %q", got.JournalPath)
	}
}
