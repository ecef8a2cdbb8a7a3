package in

import (
	"context"

	"studytracker/internal/modules/library/dto"
)

type Usecase interface {
	Search(ctx context.Context, term string) (dto.BookOutput, error)
	Add(ctx context.Context, input dto.AddInput) (dto.BookOutput, error)
	Remove(ctx context.Context, bookID string) error
	ToggleCompleted(ctx context.Context, bookID string) (dto.BookOutput, error)
	List(ctx context.Context) ([]dto.BookOutput, error)
}
