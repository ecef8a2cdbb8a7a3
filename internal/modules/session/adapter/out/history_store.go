package out

import (
	"context"

	"studytracker/internal/modules/session/domain"
	sessionout "studytracker/internal/modules/session/port/out"
	"studytracker/internal/platform/persistence"
)

type GatewayHistoryStore struct {
	gateway *persistence.Gateway
}

func NewGatewayHistoryStore(gateway *persistence.Gateway) sessionout.HistoryStore {
	return &GatewayHistoryStore{gateway: gateway}
}

// Load never fails; unreadable history reads as empty.
func (s *GatewayHistoryStore) Load(ctx context.Context) ([]domain.Session, error) {
	sessions := persistence.LoadJSON(ctx, s.gateway, persistence.KeySessions, []domain.Session{})
	if sessions == nil {
		sessions = []domain.Session{}
	}
	return sessions, nil
}

func (s *GatewayHistoryStore) Save(ctx context.Context, sessions []domain.Session) error {
	s.gateway.SaveJSON(ctx, persistence.KeySessions, sessions)
	return nil
}
