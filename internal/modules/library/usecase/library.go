package usecase

import (
	"context"

	"studytracker/internal/modules/library/domain"
	"studytracker/internal/modules/library/dto"
	libraryin "studytracker/internal/modules/library/port/in"
	"studytracker/internal/modules/library/service"
)

type Interactor struct {
	svc *service.BookService
}

func NewInteractor(svc *service.BookService) libraryin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Search(ctx context.Context, term string) (dto.BookOutput, error) {
	book, err := i.svc.Search(ctx, term)
	if err != nil {
		return dto.BookOutput{}, err
	}
	return toOutput(book), nil
}

func (i *Interactor) Add(ctx context.Context, input dto.AddInput) (dto.BookOutput, error) {
	book, err := i.svc.Add(ctx, domain.Book{
		ID:        input.ID,
		Title:     input.Title,
		Authors:   input.Authors,
		Thumbnail: input.Thumbnail,
	})
	if err != nil {
		return dto.BookOutput{}, err
	}
	return toOutput(book), nil
}

func (i *Interactor) Remove(ctx context.Context, bookID string) error {
	return i.svc.Remove(ctx, bookID)
}

func (i *Interactor) ToggleCompleted(ctx context.Context, bookID string) (dto.BookOutput, error) {
	book, err := i.svc.Toggle(ctx, bookID)
	if err != nil {
		return dto.BookOutput{}, err
	}
	return toOutput(book), nil
}

func (i *Interactor) List(ctx context.Context) ([]dto.BookOutput, error) {
	shelf, err := i.svc.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.BookOutput, 0, len(shelf))
	for _, book := range shelf {
		out = append(out, toOutput(book))
	}
	return out, nil
}

func toOutput(b domain.Book) dto.BookOutput {
	return dto.BookOutput{
		ID:        b.ID,
		Title:     b.Title,
		Authors:   b.Authors,
		Thumbnail: b.Thumbnail,
		AddedAt:   b.AddedAt,
		Completed: b.Completed,
	}
}
