package in

import (
	"context"

	settingsdto "studytracker/internal/modules/settings/dto"
	settingsin "studytracker/internal/modules/settings/port/in"
)

type CLIHandler struct {
	usecase settingsin.Usecase
}

func NewCLIHandler(usecase settingsin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Get(ctx context.Context) (settingsdto.SettingsOutput, error) {
	return h.usecase.Get(ctx)
}

func (h CLIHandler) Update(ctx context.Context, input settingsdto.UpdateInput) (settingsdto.SettingsOutput, error) {
	return h.usecase.Update(ctx, input)
}
