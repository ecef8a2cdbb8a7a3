package out

import (
	"context"

	"studytracker/internal/modules/library/domain"
)

type BookStore interface {
	Load(ctx context.Context) (domain.Shelf, error)
	Save(ctx context.Context, shelf domain.Shelf) error
}

// BookSearcher returns the best catalog match for a free-text term, or an
// error wrapping apperrors.ErrNotFound when there is none.
type BookSearcher interface {
	Search(ctx context.Context, term string) (domain.Book, error)
}
