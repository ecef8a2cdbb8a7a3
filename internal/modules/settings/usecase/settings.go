package usecase

import (
	"context"

	"studytracker/internal/modules/settings/domain"
	settingsdto "studytracker/internal/modules/settings/dto"
	settingsin "studytracker/internal/modules/settings/port/in"
	"studytracker/internal/modules/settings/service"
)

type Interactor struct {
	svc *service.SettingsService
}

func NewInteractor(svc *service.SettingsService) settingsin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Get(ctx context.Context) (settingsdto.SettingsOutput, error) {
	s, err := i.svc.Get(ctx)
	if err != nil {
		return settingsdto.SettingsOutput{}, err
	}
	return toOutput(s), nil
}

func (i *Interactor) Update(ctx context.Context, input settingsdto.UpdateInput) (settingsdto.SettingsOutput, error) {
	s, err := i.svc.Update(ctx, domain.Patch{
		DailyGoal:            input.DailyGoal,
		PrimaryColor:         input.PrimaryColor,
		ColorMode:            input.ColorMode,
		BackgroundMode:       input.BackgroundMode,
		Volume:               input.Volume,
		NotificationsEnabled: input.NotificationsEnabled,
	})
	if err != nil {
		return settingsdto.SettingsOutput{}, err
	}
	return toOutput(s), nil
}

func toOutput(s domain.Settings) settingsdto.SettingsOutput {
	return settingsdto.SettingsOutput{
		DailyGoal:            s.DailyGoal,
		PrimaryColor:         s.PrimaryColor,
		ColorMode:            string(s.ColorMode),
		BackgroundMode:       s.BackgroundMode,
		Volume:               s.Volume,
		NotificationsEnabled: s.NotificationsEnabled,
	}
}
