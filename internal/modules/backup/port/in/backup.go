package in

import (
	"context"

	"studytracker/internal/modules/backup/dto"
)

type Usecase interface {
	Export(ctx context.Context) (dto.ExportOutput, error)
	// Import either restores the whole document or leaves every stored value
	// untouched.
	Import(ctx context.Context, data []byte) (dto.ImportOutput, error)
	// Reset deletes all stored data.
	Reset(ctx context.Context) error
}
