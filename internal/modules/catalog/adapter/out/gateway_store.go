package out

import (
	"context"

	"studytracker/internal/modules/catalog/domain"
	catalogout "studytracker/internal/modules/catalog/port/out"
	"studytracker/internal/platform/persistence"
)

type GatewayStore struct {
	gateway *persistence.Gateway
}

func NewGatewayStore(gateway *persistence.Gateway) catalogout.Store {
	return &GatewayStore{gateway: gateway}
}

func (s *GatewayStore) Load(ctx context.Context) (domain.Catalog, error) {
	catalog := persistence.LoadJSON(ctx, s.gateway, persistence.KeySubjects, domain.Catalog{})
	if catalog == nil {
		catalog = domain.Catalog{}
	}
	return catalog, nil
}

func (s *GatewayStore) Save(ctx context.Context, catalog domain.Catalog) error {
	s.gateway.SaveJSON(ctx, persistence.KeySubjects, catalog)
	return nil
}
