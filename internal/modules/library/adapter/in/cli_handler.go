package in

import (
	"context"

	"studytracker/internal/modules/library/dto"
	libraryin "studytracker/internal/modules/library/port/in"
)

type CLIHandler struct {
	usecase libraryin.Usecase
}

func NewCLIHandler(usecase libraryin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Search(ctx context.Context, term string) (dto.BookOutput, error) {
	return h.usecase.Search(ctx, term)
}

func (h CLIHandler) Add(ctx context.Context, input dto.AddInput) (dto.BookOutput, error) {
	return h.usecase.Add(ctx, input)
}

// SearchAndAdd shelves the first catalog hit for term.
func (h CLIHandler) SearchAndAdd(ctx context.Context, term string) (dto.BookOutput, error) {
	hit, err := h.usecase.Search(ctx, term)
	if err != nil {
		return dto.BookOutput{}, err
	}
	return h.usecase.Add(ctx, dto.AddInput{ID: hit.ID, Title: hit.Title, Authors: hit.Authors, Thumbnail: hit.Thumbnail})
}

func (h CLIHandler) Remove(ctx context.Context, bookID string) error {
	return h.usecase.Remove(ctx, bookID)
}

func (h CLIHandler) Toggle(ctx context.Context, bookID string) (dto.BookOutput, error) {
	return h.usecase.ToggleCompleted(ctx, bookID)
}

func (h CLIHandler) List(ctx context.Context) ([]dto.BookOutput, error) {
	return h.usecase.List(ctx)
}
