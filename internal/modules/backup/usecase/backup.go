package usecase

import (
	"context"

	"studytracker/internal/modules/backup/dto"
	backupin "studytracker/internal/modules/backup/port/in"
	"studytracker/internal/modules/backup/service"
)

type Interactor struct {
	svc *service.BackupService
}

func NewInteractor(svc *service.BackupService) backupin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Export(ctx context.Context) (dto.ExportOutput, error) {
	data, name, err := i.svc.Export(ctx)
	if err != nil {
		return dto.ExportOutput{}, err
	}
	return dto.ExportOutput{FileName: name, Data: data}, nil
}

func (i *Interactor) Import(ctx context.Context, data []byte) (dto.ImportOutput, error) {
	counts, err := i.svc.Import(ctx, data)
	if err != nil {
		return dto.ImportOutput{}, err
	}
	return dto.ImportOutput{Subjects: counts.Subjects, Sessions: counts.Sessions, Books: counts.Books}, nil
}

func (i *Interactor) Reset(ctx context.Context) error {
	return i.svc.Reset(ctx)
}
