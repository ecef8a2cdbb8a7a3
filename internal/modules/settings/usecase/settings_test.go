package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studytracker/internal/modules/settings/adapter/out"
	settingsdto "studytracker/internal/modules/settings/dto"
	"studytracker/internal/modules/settings/service"
	"studytracker/internal/modules/settings/usecase"
	"studytracker/internal/platform/kv"
	"studytracker/internal/platform/persistence"
)

func TestDefaultsWhenNothingStored(t *testing.T) {
	uc := usecase.NewInteractor(service.NewSettingsService(out.NewGatewayStore(persistence.New(kv.NewMemory(), nil))))
	got, err := uc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, settingsdto.SettingsOutput{
		DailyGoal:            120,
		PrimaryColor:         "#ffffff",
		ColorMode:            "vibrant",
		BackgroundMode:       "default",
		Volume:               0.5,
		NotificationsEnabled: true,
	}, got)
}

func TestUpdatePersistsAndStoredGarbageFallsBack(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemory()
	gateway := persistence.New(store, nil)
	uc := usecase.NewInteractor(service.NewSettingsService(out.NewGatewayStore(gateway)))

	goal := 90
	vol := 0.2
	off := false
	_, err := uc.Update(ctx, settingsdto.UpdateInput{DailyGoal: &goal, Volume: &vol, NotificationsEnabled: &off})
	require.NoError(t, err)

	raw, ok := gateway.Raw(ctx, persistence.KeyDailyGoal)
	require.True(t, ok)
	assert.Equal(t, "90", raw)
	raw, _ = gateway.Raw(ctx, persistence.KeyNotificationsEnabled)
	assert.Equal(t, "false", raw)

	require.NoError(t, store.Set(ctx, persistence.KeyColorMode, "neon"))
	got, err := uc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 90, got.DailyGoal)
	assert.Equal(t, 0.2, got.Volume)
	assert.False(t, got.NotificationsEnabled)
	assert.Equal(t, "vibrant", got.ColorMode)

	bad := "lava"
	_, err = uc.Update(ctx, settingsdto.UpdateInput{BackgroundMode: &bad})
	assert.Error(t, err)
}
