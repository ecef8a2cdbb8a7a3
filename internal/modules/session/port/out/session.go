package out

import (
	"context"

	"studytracker/internal/modules/session/domain"
)

// HistoryStore holds the full session history in insertion order.
type HistoryStore interface {
	Load(ctx context.Context) ([]domain.Session, error)
	Save(ctx context.Context, sessions []domain.Session) error
}

// Journal renders a recorded session somewhere human readable and returns
// where it went.
type Journal interface {
	Write(ctx context.Context, session domain.Session) (string, error)
}
