package in

import (
	"context"

	"studytracker/internal/modules/backup/dto"
	backupin "studytracker/internal/modules/backup/port/in"
)

type CLIHandler struct {
	usecase backupin.Usecase
}

func NewCLIHandler(usecase backupin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Export(ctx context.Context) (dto.ExportOutput, error) {
	return h.usecase.Export(ctx)
}

func (h CLIHandler) Import(ctx context.Context, data []byte) (dto.ImportOutput, error) {
	return h.usecase.Import(ctx, data)
}

func (h CLIHandler) Reset(ctx context.Context) error {
	return h.usecase.Reset(ctx)
}
