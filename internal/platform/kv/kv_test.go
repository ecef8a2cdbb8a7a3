package kv_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "studytracker/internal/platform/errors"
	"studytracker/internal/platform/kv"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemory()

	_, err := store.Get(ctx, "x")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	require.NoError(t, store.SetMany(ctx, map[string]string{"b": "2", "a": "1"}))
	keys, err := store.Keys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, keys)

	require.NoError(t, store.Delete(ctx, "a"))
	require.NoError(t, store.Clear(ctx))
	keys, err = store.Keys(ctx)
	require.NoError(t, err)
	assert.Empty(t, keys)
}
