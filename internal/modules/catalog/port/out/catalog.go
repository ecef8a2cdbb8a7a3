package out

import (
	"context"

	"studytracker/internal/modules/catalog/domain"
)

type Store interface {
	Load(ctx context.Context) (domain.Catalog, error)
	Save(ctx context.Context, catalog domain.Catalog) error
}

// ColorModeSource reports the colour mode new subjects are painted with.
type ColorModeSource interface {
	ColorMode(ctx context.Context) string
}
