package bootstrap_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studytracker/internal/bootstrap"
	"studytracker/internal/platform/config"
)

func TestEndToEndStudyLoop(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	cfg := config.Default(t.TempDir())

	app, err := bootstrap.New(ctx, cfg, bootstrap.Options{})
	require.NoError(t, err)
	defer func() { _ = app.Close() }()

	subject, err := app.CatalogCLI.Add(ctx, "Math")
	require.NoError(t, err)
	assert.NotEmpty(t, subject.Color)

	recorded, err := app.SessionCLI.Record(ctx, "Math", 50, 10, 8)
	require.NoError(t, err)
	assert.Equal(t, 50, recorded.Duration)
	require.NotEmpty(t, recorded.JournalPath)
	_, err = os.Stat(recorded.JournalPath)
	require.NoError(t, err)

	summary, err := app.ProgressCLI.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Sessions)
	assert.Equal(t, 50, summary.TotalMinutes)
	assert.Equal(t, 1, summary.Streak)
	assert.Equal(t, 2, summary.Unlocked)
	assert.Equal(t, "Apprentice", summary.Rank)

	exported, err := app.BackupCLI.Export(ctx)
	require.NoError(t, err)

	require.NoError(t, app.BackupCLI.Reset(ctx))
	sessions, err := app.SessionCLI.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, sessions)

	counts, err := app.BackupCLI.Import(ctx, exported.Data)
	require.NoError(t, err)
	assert.Equal(t, 1, counts.Subjects)
	assert.Equal(t, 1, counts.Sessions)

	subjects, err := app.CatalogCLI.List(ctx)
	require.NoError(t, err)
	require.Len(t, subjects, 1)
	assert.Equal(t, subject.Color, subjects[0].Color)
}

func TestNewWithMemoryDriverSkipsDisk(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	cfg := config.Default(dir)
	cfg.Storage.Driver = config.DriverMemory
	cfg.Journal.Enabled = false

	app, err := bootstrap.New(context.Background(), cfg, bootstrap.Options{})
	require.NoError(t, err)
	require.NoError(t, app.Close())

	_, err = os.Stat(filepath.Join(dir, "studytracker.db"))
	assert.True(t, os.IsNotExist(err))
}
