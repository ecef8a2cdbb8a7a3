package persistence_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studytracker/internal/platform/kv"
	"studytracker/internal/platform/persistence"
)

type failingStore struct {
	*kv.Memory
}

func (failingStore) Get(context.Context, string) (string, error) { return "", errors.New("disk gone") }
func (failingStore) Set(context.Context, string, string) error   { return errors.New("disk full") }

type item struct {
	Name string `json:"name"`
}

func newGateway(t *testing.T, store kv.Store) (*persistence.Gateway, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	return persistence.New(store, logger), &buf
}

func TestTypedReadsFallBackToDefaults(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemory()
	g, logs := newGateway(t, store)

	assert.Equal(t, 120, g.Int(ctx, persistence.KeyDailyGoal, 120))
	assert.Equal(t, 0.5, g.Float(ctx, persistence.KeyVolume, 0.5))
	assert.True(t, g.Bool(ctx, persistence.KeyNotificationsEnabled, true))
	assert.Equal(t, "#ffffff", g.String(ctx, persistence.KeyPrimaryColor, "#ffffff"))
	assert.Empty(t, persistence.LoadJSON(ctx, g, persistence.KeySessions, []item{}))
	assert.Empty(t, logs.String(), "absent keys are not worth a log line")

	require.NoError(t, store.SetMany(ctx, map[string]string{
		persistence.KeyDailyGoal:            "abc",
		persistence.KeyVolume:               "loud",
		persistence.KeyNotificationsEnabled: "maybe",
		persistence.KeySessions:             "{not json",
	}))
	assert.Equal(t, 120, g.Int(ctx, persistence.KeyDailyGoal, 120))
	assert.Equal(t, 0.5, g.Float(ctx, persistence.KeyVolume, 0.5))
	assert.True(t, g.Bool(ctx, persistence.KeyNotificationsEnabled, true))
	assert.Equal(t, []item{{Name: "x"}}, persistence.LoadJSON(ctx, g, persistence.KeySessions, []item{{Name: "x"}}))
	assert.Contains(t, logs.String(), "stored value unreadable")
}

func TestTypedWritesRoundTrip(t *testing.T) {
	ctx := context.Background()
	g, _ := newGateway(t, kv.NewMemory())

	g.SaveInt(ctx, persistence.KeyDailyGoal, 90)
	g.SaveFloat(ctx, persistence.KeyVolume, 0.25)
	g.SaveBool(ctx, persistence.KeyNotificationsEnabled, false)
	g.SaveJSON(ctx, persistence.KeyLibrary, []item{{Name: "Dune"}})

	assert.Equal(t, 90, g.Int(ctx, persistence.KeyDailyGoal, 120))
	assert.Equal(t, 0.25, g.Float(ctx, persistence.KeyVolume, 0.5))
	assert.False(t, g.Bool(ctx, persistence.KeyNotificationsEnabled, true))
	assert.Equal(t, []item{{Name: "Dune"}}, persistence.LoadJSON(ctx, g, persistence.KeyLibrary, []item{}))

	raw, ok := g.Raw(ctx, persistence.KeyVolume)
	require.True(t, ok)
	assert.Equal(t, "0.25", raw)
}

func TestFractionalIntIsTruncated(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemory()
	g, _ := newGateway(t, store)
	require.NoError(t, store.Set(ctx, persistence.KeyDailyGoal, "90.0"))
	assert.Equal(t, 90, g.Int(ctx, persistence.KeyDailyGoal, 120))
}

func TestStoreFailuresAreSwallowed(t *testing.T) {
	ctx := context.Background()
	g, logs := newGateway(t, failingStore{kv.NewMemory()})

	assert.NotPanics(t, func() { g.SaveInt(ctx, persistence.KeyDailyGoal, 10) })
	assert.Equal(t, 120, g.Int(ctx, persistence.KeyDailyGoal, 120))
	assert.Contains(t, logs.String(), "write failed")
	assert.Contains(t, logs.String(), "read failed")
}
