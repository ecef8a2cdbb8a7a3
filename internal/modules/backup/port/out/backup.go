package out

import (
	"context"

	"studytracker/internal/modules/backup/domain"
)

type StateStore interface {
	Load(ctx context.Context) (domain.State, error)
	// Replace writes the collections and every non-empty setting in one
	// atomic step.
	Replace(ctx context.Context, state domain.State) error
	Clear(ctx context.Context) error
}
