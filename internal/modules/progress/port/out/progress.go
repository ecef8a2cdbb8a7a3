package out

import (
	"context"

	"studytracker/internal/modules/progress/domain"
)

type SessionSource interface {
	Entries(ctx context.Context) ([]domain.Entry, error)
}

type CatalogSource interface {
	SubjectCount(ctx context.Context) (int, error)
}

type GoalSource interface {
	DailyGoal(ctx context.Context) (int, error)
}
