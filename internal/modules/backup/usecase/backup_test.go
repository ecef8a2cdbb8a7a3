package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"studytracker/internal/modules/backup/adapter/out"
	"studytracker/internal/modules/backup/service"
	"studytracker/internal/modules/backup/usecase"
	"studytracker/internal/platform/clock"
	apperrors "studytracker/internal/platform/errors"
	"studytracker/internal/platform/kv"
	"studytracker/internal/platform/persistence"
)

const storedSessions = `[{"id":"a","subject":"Math","duration":25,"questions":0,"correctQuestions":0,"date":"2026-10-17T14:00:00Z","completed":true}]`

func newInteractor(t *testing.T) (kv.Store, *usecase.Interactor) {
	t.Helper()
	store := kv.NewMemory()
	ctx := context.Background()
	if err := store.Set(ctx, persistence.KeySessions, storedSessions); err != nil {
		t.Fatalf("seed sessions: %v", err)
	}
	if err := store.Set(ctx, persistence.KeyDailyGoal, "45"); err != nil {
		t.Fatalf("seed goal: %v", err)
	}
	svc := service.NewBackupService(clock.Fixed(time.Date(2026, 10, 18, 8, 0, 0, 0, time.UTC)), out.NewGatewayStateStore(persistence.New(store, nil)))
	return store, usecase.NewInteractor(svc).(*usecase.Interactor)
}

func mustGet(t *testing.T, store kv.Store, key string) string {
	t.Helper()
	value, err := store.Get(context.Background(), key)
	if err != nil {
		t.Fatalf("get %s: %v", key, err)
	}
	return value
}

func TestImportRejectsNonArraySessionsAndKeepsState(t *testing.T) {
	store, uc := newInteractor(t)
	_, err := uc.Import(context.Background(), []byte(`{"subjects": [], "sessions": "many", "dailyGoal": "10"}`))
	if !errors.Is(err, apperrors.ErrInvalidBackup) {
		t.Fatalf("expected invalid backup, got %v", err)
	}
	if got := mustGet(t, store, persistence.KeySessions); got != storedSessions {
		t.Fatalf("sessions changed: %s", got)
	}
	if got := mustGet(t, store, persistence.KeyDailyGoal); got != "45" {
		t.Fatalf("daily goal changed: %s", got)
	}
}

func TestImportReplacesCollectionsAndTruthySettings(t *testing.T) {
	store, uc := newInteractor(t)
	counts, err := uc.Import(context.Background(), []byte(`{
		"subjects": [{"id": "s1", "name": "Physics", "color": "#fff", "chapters": []}],
		"sessions": [],
		"primaryColor": "#ef4444"
	}`))
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if counts.Subjects != 1 || counts.Sessions != 0 || counts.Books != 0 {
		t.Fatalf("unexpected counts %+v", counts)
	}
	if got := mustGet(t, store, persistence.KeySessions); got != "[]" {
		t.Fatalf("expected sessions replaced, got %s", got)
	}
	if got := mustGet(t, store, persistence.KeyLibrary); got != "[]" {
		t.Fatalf("expected empty library, got %s", got)
	}
	if got := mustGet(t, store, persistence.KeyPrimaryColor); got != "#ef4444" {
		t.Fatalf("expected primary colour, got %s", got)
	}
	if got := mustGet(t, store, persistence.KeyDailyGoal); got != "45" {
		t.Fatalf("absent setting must be left alone, got %s", got)
	}
}

func TestExportThenResetThenImport(t *testing.T) {
	store, uc := newInteractor(t)
	ctx := context.Background()

	exported, err := uc.Export(ctx)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if exported.FileName != "study-tracker-backup-2026-10-18.json" {
		t.Fatalf("unexpected file name %s", exported.FileName)
	}
	if !strings.Contains(string(exported.Data), `"dailyGoal": "45"`) {
		t.Fatalf("expected stored goal in export:\n%s", exported.Data)
	}

	if err := uc.Reset(ctx); err != nil {
		t.Fatalf("reset: %v", err)
	}
	if keys, _ := store.Keys(ctx); len(keys) != 0 {
		t.Fatalf("expected empty store after reset, got %v", keys)
	}

	if _, err := uc.Import(ctx, exported.Data); err != nil {
		t.Fatalf("import: %v", err)
	}
	if got := mustGet(t, store, persistence.KeyDailyGoal); got != "45" {
		t.Fatalf("goal not restored: %s", got)
	}
	if got := mustGet(t, store, persistence.KeySessions); !strings.Contains(got, `"subject":"Math"`) {
		t.Fatalf("sessions not restored: %s", got)
	}
}
