package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"studytracker/internal/modules/library/domain"
	libraryout "studytracker/internal/modules/library/port/out"
	"studytracker/internal/platform/clock"
	apperrors "studytracker/internal/platform/errors"
)

type BookService struct {
	clock    clock.Clock
	store    libraryout.BookStore
	searcher libraryout.BookSearcher

	mu sync.Mutex
}

func NewBookService(clock clock.Clock, store libraryout.BookStore, searcher libraryout.BookSearcher) *BookService {
	return &BookService{clock: clock, store: store, searcher: searcher}
}

func (s *BookService) Search(ctx context.Context, term string) (domain.Book, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return domain.Book{}, fmt.Errorf("search term: %w", apperrors.ErrInvalidInput)
	}
	book, err := s.searcher.Search(ctx, term)
	if err != nil {
		return domain.Book{}, err
	}
	book = book.Normalize()
	book.AddedAt = s.clock.Now()
	return book, nil
}

func (s *BookService) Add(ctx context.Context, book domain.Book) (domain.Book, error) {
	book = book.Normalize()
	if book.AddedAt.IsZero() {
		book.AddedAt = s.clock.Now()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	shelf, err := s.store.Load(ctx)
	if err != nil {
		return domain.Book{}, err
	}
	next, err := shelf.Add(book)
	if err != nil {
		return domain.Book{}, err
	}
	if err := s.store.Save(ctx, next); err != nil {
		return domain.Book{}, err
	}
	return book, nil
}

func (s *BookService) Remove(ctx context.Context, bookID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	shelf, err := s.store.Load(ctx)
	if err != nil {
		return err
	}
	next, err := shelf.Remove(bookID)
	if err != nil {
		return err
	}
	return s.store.Save(ctx, next)
}

func (s *BookService) Toggle(ctx context.Context, bookID string) (domain.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	shelf, err := s.store.Load(ctx)
	if err != nil {
		return domain.Book{}, err
	}
	next, book, err := shelf.Toggle(bookID)
	if err != nil {
		return domain.Book{}, err
	}
	if err := s.store.Save(ctx, next); err != nil {
		return domain.Book{}, err
	}
	return book, nil
}

func (s *BookService) List(ctx context.Context) (domain.Shelf, error) {
	return s.store.Load(ctx)
}
