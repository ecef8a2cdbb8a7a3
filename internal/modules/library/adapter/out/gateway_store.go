package out

import (
	"context"

	"studytracker/internal/modules/library/domain"
	libraryout "studytracker/internal/modules/library/port/out"
	"studytracker/internal/platform/persistence"
)

type GatewayBookStore struct {
	gateway *persistence.Gateway
}

func NewGatewayBookStore(gateway *persistence.Gateway) libraryout.BookStore {
	return &GatewayBookStore{gateway: gateway}
}

func (s *GatewayBookStore) Load(ctx context.Context) (domain.Shelf, error) {
	shelf := persistence.LoadJSON(ctx, s.gateway, persistence.KeyLibrary, domain.Shelf{})
	if shelf == nil {
		shelf = domain.Shelf{}
	}
	return shelf, nil
}

func (s *GatewayBookStore) Save(ctx context.Context, shelf domain.Shelf) error {
	s.gateway.SaveJSON(ctx, persistence.KeyLibrary, shelf)
	return nil
}
