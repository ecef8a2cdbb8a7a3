package out

import (
	"context"

	catalogout "studytracker/internal/modules/catalog/port/out"
	settingsin "studytracker/internal/modules/settings/port/in"
)

type SettingsColorMode struct {
	settings settingsin.Usecase
}

func NewSettingsColorMode(settings settingsin.Usecase) catalogout.ColorModeSource {
	return &SettingsColorMode{settings: settings}
}

func (s *SettingsColorMode) ColorMode(ctx context.Context) string {
	current, err := s.settings.Get(ctx)
	if err != nil {
		return ""
	}
	return current.ColorMode
}
