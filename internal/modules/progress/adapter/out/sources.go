package out

import (
	"context"

	catalogin "studytracker/internal/modules/catalog/port/in"
	"studytracker/internal/modules/progress/domain"
	progressout "studytracker/internal/modules/progress/port/out"
	sessionin "studytracker/internal/modules/session/port/in"
	settingsin "studytracker/internal/modules/settings/port/in"
)

type SessionHistory struct {
	sessions sessionin.Usecase
}

func NewSessionHistory(sessions sessionin.Usecase) progressout.SessionSource {
	return &SessionHistory{sessions: sessions}
}

func (s *SessionHistory) Entries(ctx context.Context) ([]domain.Entry, error) {
	sessions, err := s.sessions.List(ctx)
	if err != nil {
		return nil, err
	}
	entries := make([]domain.Entry, 0, len(sessions))
	for _, sess := range sessions {
		entries = append(entries, domain.Entry{
			Subject:   sess.Subject,
			Minutes:   sess.Duration,
			Questions: sess.Questions,
			Correct:   sess.CorrectQuestions,
			At:        sess.Date,
		})
	}
	return entries, nil
}

type CatalogSize struct {
	catalog catalogin.Usecase
}

func NewCatalogSize(catalog catalogin.Usecase) progressout.CatalogSource {
	return &CatalogSize{catalog: catalog}
}

func (c *CatalogSize) SubjectCount(ctx context.Context) (int, error) {
	subjects, err := c.catalog.ListSubjects(ctx)
	if err != nil {
		return 0, err
	}
	return len(subjects), nil
}

type SettingsGoal struct {
	settings settingsin.Usecase
}

func NewSettingsGoal(settings settingsin.Usecase) progressout.GoalSource {
	return &SettingsGoal{settings: settings}
}

func (g *SettingsGoal) DailyGoal(ctx context.Context) (int, error) {
	current, err := g.settings.Get(ctx)
	if err != nil {
		return 0, err
	}
	return current.DailyGoal, nil
}
