package out

import (
	"context"

	"studytracker/internal/modules/settings/domain"
	settingsout "studytracker/internal/modules/settings/port/out"
	"studytracker/internal/platform/persistence"
)

// GatewayStore keeps each setting under its own key.
type GatewayStore struct {
	gateway *persistence.Gateway
}

func NewGatewayStore(gateway *persistence.Gateway) settingsout.Store {
	return &GatewayStore{gateway: gateway}
}

func (s *GatewayStore) Load(ctx context.Context) (domain.Settings, error) {
	return domain.Settings{
		DailyGoal:            s.gateway.Int(ctx, persistence.KeyDailyGoal, domain.DefaultDailyGoal),
		PrimaryColor:         s.gateway.String(ctx, persistence.KeyPrimaryColor, domain.DefaultPrimaryColor),
		ColorMode:            domain.ColorMode(s.gateway.String(ctx, persistence.KeyColorMode, string(domain.DefaultColorMode))),
		BackgroundMode:       s.gateway.String(ctx, persistence.KeyBackgroundMode, domain.DefaultBackgroundMode),
		Volume:               s.gateway.Float(ctx, persistence.KeyVolume, domain.DefaultVolume),
		NotificationsEnabled: s.gateway.Bool(ctx, persistence.KeyNotificationsEnabled, true),
	}, nil
}

func (s *GatewayStore) Save(ctx context.Context, settings domain.Settings) error {
	s.gateway.SaveInt(ctx, persistence.KeyDailyGoal, settings.DailyGoal)
	s.gateway.SaveString(ctx, persistence.KeyPrimaryColor, settings.PrimaryColor)
	s.gateway.SaveString(ctx, persistence.KeyColorMode, string(settings.ColorMode))
	s.gateway.SaveString(ctx, persistence.KeyBackgroundMode, settings.BackgroundMode)
	s.gateway.SaveFloat(ctx, persistence.KeyVolume, settings.Volume)
	s.gateway.SaveBool(ctx, persistence.KeyNotificationsEnabled, settings.NotificationsEnabled)
	return nil
}
