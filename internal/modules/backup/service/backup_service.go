package service

import (
	"context"
	"log/slog"

	"studytracker/internal/modules/backup/domain"
	backupout "studytracker/internal/modules/backup/port/out"
	"studytracker/internal/platform/clock"
)

type BackupService struct {
	clock  clock.Clock
	store  backupout.StateStore
	logger *slog.Logger
}

func NewBackupService(clock clock.Clock, store backupout.StateStore) *BackupService {
	return &BackupService{clock: clock, store: store, logger: slog.Default().With(slog.String("component", "backup"))}
}

func (s *BackupService) Export(ctx context.Context) ([]byte, string, error) {
	state, err := s.store.Load(ctx)
	if err != nil {
		return nil, "", err
	}
	now := s.clock.Now()
	data, err := domain.Export(state, now)
	if err != nil {
		return nil, "", err
	}
	return data, domain.FileName(now), nil
}

func (s *BackupService) Import(ctx context.Context, data []byte) (domain.Counts, error) {
	state, counts, err := domain.Parse(data)
	if err != nil {
		s.logger.Warn("backup rejected", slog.Any("error", err))
		return domain.Counts{}, err
	}
	if err := s.store.Replace(ctx, state); err != nil {
		return domain.Counts{}, err
	}
	s.logger.Info("backup restored",
		slog.Int("subjects", counts.Subjects),
		slog.Int("sessions", counts.Sessions),
		slog.Int("books", counts.Books))
	return counts, nil
}

func (s *BackupService) Reset(ctx context.Context) error {
	if err := s.store.Clear(ctx); err != nil {
		return err
	}
	s.logger.Info("all data cleared")
	return nil
}
