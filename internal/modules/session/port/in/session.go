package in

import (
	"context"

	"studytracker/internal/modules/session/dto"
)

type Usecase interface {
	Record(ctx context.Context, input dto.RecordInput) (dto.SessionOutput, error)
	List(ctx context.Context) ([]dto.SessionOutput, error)
}
