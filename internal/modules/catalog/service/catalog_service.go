package service

import (
	"context"
	"math/rand/v2"
	"sync"

	"studytracker/internal/modules/catalog/domain"
	catalogout "studytracker/internal/modules/catalog/port/out"
	"studytracker/internal/platform/id"
)

type CatalogService struct {
	store     catalogout.Store
	idGen     id.Generator
	colorMode catalogout.ColorModeSource
	intn      func(int) int

	mu sync.Mutex
}

func NewCatalogService(store catalogout.Store, idGen id.Generator, colorMode catalogout.ColorModeSource) *CatalogService {
	return &CatalogService{store: store, idGen: idGen, colorMode: colorMode, intn: rand.IntN}
}

// WithRand replaces the colour picker's randomness.
func (s *CatalogService) WithRand(intn func(int) int) *CatalogService {
	s.intn = intn
	return s
}

func (s *CatalogService) List(ctx context.Context) (domain.Catalog, error) {
	return s.store.Load(ctx)
}

func (s *CatalogService) AddSubject(ctx context.Context, name string) (domain.Subject, error) {
	var added domain.Subject
	err := s.mutate(ctx, func(c domain.Catalog) (domain.Catalog, error) {
		mode := ""
		if s.colorMode != nil {
			mode = s.colorMode.ColorMode(ctx)
		}
		color := domain.PickColor(domain.PaletteFor(mode), c.Colors(), s.intn)
		next, subject, err := c.AddSubject(s.idGen.New(), name, color)
		added = subject
		return next, err
	})
	return added, err
}

func (s *CatalogService) DeleteSubject(ctx context.Context, subjectID string) error {
	return s.mutate(ctx, func(c domain.Catalog) (domain.Catalog, error) {
		return c.DeleteSubject(subjectID)
	})
}

func (s *CatalogService) AddChapter(ctx context.Context, subjectID string) (domain.Chapter, error) {
	var added domain.Chapter
	err := s.mutate(ctx, func(c domain.Catalog) (domain.Catalog, error) {
		next, chapter, err := c.AddChapter(subjectID, s.idGen.New())
		added = chapter
		return next, err
	})
	return added, err
}

func (s *CatalogService) RenameChapter(ctx context.Context, subjectID, chapterID, name string) error {
	return s.mutate(ctx, func(c domain.Catalog) (domain.Catalog, error) {
		return c.RenameChapter(subjectID, chapterID, name)
	})
}

func (s *CatalogService) DeleteChapter(ctx context.Context, subjectID, chapterID string) error {
	return s.mutate(ctx, func(c domain.Catalog) (domain.Catalog, error) {
		return c.DeleteChapter(subjectID, chapterID)
	})
}

func (s *CatalogService) AddTask(ctx context.Context, subjectID, chapterID string) (domain.Task, error) {
	var added domain.Task
	err := s.mutate(ctx, func(c domain.Catalog) (domain.Catalog, error) {
		next, task, err := c.AddTask(subjectID, chapterID, s.idGen.New())
		added = task
		return next, err
	})
	return added, err
}

func (s *CatalogService) RenameTask(ctx context.Context, subjectID, chapterID, taskID, name string) error {
	return s.mutate(ctx, func(c domain.Catalog) (domain.Catalog, error) {
		return c.RenameTask(subjectID, chapterID, taskID, name)
	})
}

func (s *CatalogService) ToggleTask(ctx context.Context, subjectID, chapterID, taskID string) error {
	return s.mutate(ctx, func(c domain.Catalog) (domain.Catalog, error) {
		return c.ToggleTask(subjectID, chapterID, taskID)
	})
}

func (s *CatalogService) DeleteTask(ctx context.Context, subjectID, chapterID, taskID string) error {
	return s.mutate(ctx, func(c domain.Catalog) (domain.Catalog, error) {
		return c.DeleteTask(subjectID, chapterID, taskID)
	})
}

// mutate loads the catalog, applies fn and saves the result as a whole.
func (s *CatalogService) mutate(ctx context.Context, fn func(domain.Catalog) (domain.Catalog, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	current, err := s.store.Load(ctx)
	if err != nil {
		return err
	}
	next, err := fn(current)
	if err != nil {
		return err
	}
	return s.store.Save(ctx, next)
}
