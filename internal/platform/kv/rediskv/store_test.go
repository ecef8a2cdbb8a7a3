package rediskv_test

import (
	"context"
	"os"
	"sort"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studytracker/internal/platform/kv"
	"studytracker/internal/platform/kv/rediskv"
)

func openStore(t *testing.T, addr, prefix string) *rediskv.Store {
	t.Helper()
	store, err := rediskv.Open(context.Background(), rediskv.Config{Addr: addr, KeyPrefix: prefix})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = store.Clear(context.Background())
		_ = store.Close()
	})
	return store
}

func exerciseStore(t *testing.T, store *rediskv.Store) {
	t.Helper()
	ctx := context.Background()

	_, err := store.Get(ctx, "missing")
	assert.ErrorIs(t, err, kv.ErrNotFound)

	require.NoError(t, store.SetMany(ctx, map[string]string{"a": "1", "b": "2"}))
	got, err := store.Get(ctx, "b")
	require.NoError(t, err)
	assert.Equal(t, "2", got)

	keys, err := store.Keys(ctx)
	require.NoError(t, err)
	sort.Strings(keys)
	assert.Equal(t, []string{"a", "b"}, keys)

	require.NoError(t, store.Delete(ctx, "a"))
	_, err = store.Get(ctx, "a")
	assert.ErrorIs(t, err, kv.ErrNotFound)

	require.NoError(t, store.Clear(ctx))
	keys, err = store.Keys(ctx)
	require.NoError(t, err)
	assert.Empty(t, keys)
}

func TestStore(t *testing.T) {
	server := miniredis.RunT(t)
	exerciseStore(t, openStore(t, server.Addr(), "studytracker:"))
}

func TestStoreKeepsToItsPrefix(t *testing.T) {
	server := miniredis.RunT(t)
	require.NoError(t, server.Set("other:settings", "keep"))
	ctx := context.Background()

	store := openStore(t, server.Addr(), "studytracker:")
	require.NoError(t, store.SetMany(ctx, map[string]string{"settings": "{}", "subjects": "[]"}))

	raw, err := server.Get("studytracker:settings")
	require.NoError(t, err)
	assert.Equal(t, "{}", raw)

	keys, err := store.Keys(ctx)
	require.NoError(t, err)
	sort.Strings(keys)
	assert.Equal(t, []string{"settings", "subjects"}, keys)

	require.NoError(t, store.Clear(ctx))
	assert.False(t, server.Exists("studytracker:settings"))
	assert.True(t, server.Exists("other:settings"))
}

func TestOpenFailsWithoutServer(t *testing.T) {
	server := miniredis.RunT(t)
	addr := server.Addr()
	server.Close()

	_, err := rediskv.Open(context.Background(), rediskv.Config{Addr: addr})
	assert.Error(t, err)
}

// Runs against a live server only when STUDYTRACKER_TEST_REDIS_ADDR is set.
func TestStoreAgainstRedis(t *testing.T) {
	addr := os.Getenv("STUDYTRACKER_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("STUDYTRACKER_TEST_REDIS_ADDR not set")
	}
	exerciseStore(t, openStore(t, addr, "studytracker-test:"+uuid.NewString()+":"))
}
