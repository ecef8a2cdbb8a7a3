package domain_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studytracker/internal/modules/settings/domain"
	apperrors "studytracker/internal/platform/errors"
)

func ptr[T any](v T) *T { return &v }

func TestNormalize(t *testing.T) {
	got := domain.Settings{
		DailyGoal:      0,
		PrimaryColor:   "blue",
		ColorMode:      "neon",
		BackgroundMode: "lava",
		Volume:         3,
	}.Normalize()
	assert.Equal(t, domain.DefaultDailyGoal, got.DailyGoal)
	assert.Equal(t, domain.DefaultPrimaryColor, got.PrimaryColor)
	assert.Equal(t, domain.ColorModeVibrant, got.ColorMode)
	assert.Equal(t, "default", got.BackgroundMode)
	assert.Equal(t, 1.0, got.Volume)

	assert.Equal(t, 0.0, domain.ClampVolume(-0.2))
	assert.Equal(t, 0.0, domain.ClampVolume(math.NaN()))
	assert.Equal(t, domain.Defaults(), domain.Defaults().Normalize())
}

func TestApply(t *testing.T) {
	base := domain.Defaults()

	got, err := base.Apply(domain.Patch{
		DailyGoal:            ptr(-5),
		PrimaryColor:         ptr(" #3B82F6 "),
		ColorMode:            ptr("monochrome"),
		BackgroundMode:       ptr("ocean"),
		Volume:               ptr(1.7),
		NotificationsEnabled: ptr(false),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, got.DailyGoal)
	assert.Equal(t, "#3b82f6", got.PrimaryColor)
	assert.Equal(t, domain.ColorModeMonochrome, got.ColorMode)
	assert.Equal(t, "ocean", got.BackgroundMode)
	assert.Equal(t, 1.0, got.Volume)
	assert.False(t, got.NotificationsEnabled)

	_, err = base.Apply(domain.Patch{ColorMode: ptr("pastel")})
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	_, err = base.Apply(domain.Patch{BackgroundMode: ptr("lava")})
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	_, err = base.Apply(domain.Patch{PrimaryColor: ptr("#12")})
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}
