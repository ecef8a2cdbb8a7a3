package service

import (
	"context"
	"sync"

	"studytracker/internal/modules/settings/domain"
	settingsout "studytracker/internal/modules/settings/port/out"
)

type SettingsService struct {
	store settingsout.Store
	mu    sync.Mutex
}

func NewSettingsService(store settingsout.Store) *SettingsService {
	return &SettingsService{store: store}
}

func (s *SettingsService) Get(ctx context.Context) (domain.Settings, error) {
	current, err := s.store.Load(ctx)
	if err != nil {
		return domain.Settings{}, err
	}
	return current.Normalize(), nil
}

func (s *SettingsService) Update(ctx context.Context, patch domain.Patch) (domain.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	current, err := s.store.Load(ctx)
	if err != nil {
		return domain.Settings{}, err
	}
	next, err := current.Normalize().Apply(patch)
	if err != nil {
		return domain.Settings{}, err
	}
	if err := s.store.Save(ctx, next); err != nil {
		return domain.Settings{}, err
	}
	return next, nil
}
