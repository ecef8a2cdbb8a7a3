package out

import (
	"context"

	settingsin "studytracker/internal/modules/settings/port/in"
	timerout "studytracker/internal/modules/timer/port/out"
)

// SettingsPreferences reads the timer's preferences from the settings module
// on every call, so changes apply without a restart.
type SettingsPreferences struct {
	settings settingsin.Usecase
}

func NewSettingsPreferences(settings settingsin.Usecase) timerout.Preferences {
	return &SettingsPreferences{settings: settings}
}

func (p *SettingsPreferences) Volume(ctx context.Context) float64 {
	s, err := p.settings.Get(ctx)
	if err != nil {
		return 0
	}
	return s.Volume
}

func (p *SettingsPreferences) NotificationsEnabled(ctx context.Context) bool {
	s, err := p.settings.Get(ctx)
	if err != nil {
		return false
	}
	return s.NotificationsEnabled
}
