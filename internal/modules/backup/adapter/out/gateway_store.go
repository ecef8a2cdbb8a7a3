package out

import (
	"context"

	"studytracker/internal/modules/backup/domain"
	backupout "studytracker/internal/modules/backup/port/out"
	"studytracker/internal/platform/persistence"
)

type GatewayStateStore struct {
	gateway *persistence.Gateway
}

func NewGatewayStateStore(gateway *persistence.Gateway) backupout.StateStore {
	return &GatewayStateStore{gateway: gateway}
}

func (s *GatewayStateStore) Load(ctx context.Context) (domain.State, error) {
	raw := func(key string) string {
		value, _ := s.gateway.Raw(ctx, key)
		return value
	}
	return domain.State{
		Subjects:             raw(persistence.KeySubjects),
		Sessions:             raw(persistence.KeySessions),
		Library:              raw(persistence.KeyLibrary),
		DailyGoal:            raw(persistence.KeyDailyGoal),
		PrimaryColor:         raw(persistence.KeyPrimaryColor),
		ColorMode:            raw(persistence.KeyColorMode),
		BackgroundMode:       raw(persistence.KeyBackgroundMode),
		Volume:               raw(persistence.KeyVolume),
		NotificationsEnabled: raw(persistence.KeyNotificationsEnabled),
	}, nil
}

func (s *GatewayStateStore) Replace(ctx context.Context, state domain.State) error {
	values := map[string]string{
		persistence.KeySubjects: state.Subjects,
		persistence.KeySessions: state.Sessions,
		persistence.KeyLibrary:  state.Library,
	}
	optional := map[string]string{
		persistence.KeyDailyGoal:            state.DailyGoal,
		persistence.KeyPrimaryColor:         state.PrimaryColor,
		persistence.KeyColorMode:            state.ColorMode,
		persistence.KeyBackgroundMode:       state.BackgroundMode,
		persistence.KeyVolume:               state.Volume,
		persistence.KeyNotificationsEnabled: state.NotificationsEnabled,
	}
	for key, value := range optional {
		if value != "" {
			values[key] = value
		}
	}
	return s.gateway.ReplaceAll(ctx, values)
}

func (s *GatewayStateStore) Clear(ctx context.Context) error {
	return s.gateway.Clear(ctx)
}
