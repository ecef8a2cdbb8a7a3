package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"studytracker/internal/modules/library/adapter/out"
	"studytracker/internal/modules/library/domain"
	"studytracker/internal/modules/library/dto"
	"studytracker/internal/modules/library/service"
	"studytracker/internal/modules/library/usecase"
	"studytracker/internal/platform/clock"
	apperrors "studytracker/internal/platform/errors"
	"studytracker/internal/platform/kv"
	"studytracker/internal/platform/persistence"
)

type fakeSearcher struct {
	book  domain.Book
	err   error
	terms []string
}

func (f *fakeSearcher) Search(_ context.Context, term string) (domain.Book, error) {
	f.terms = append(f.terms, term)
	return f.book, f.err
}

var addedAt = time.Date(2026, 10, 18, 9, 30, 0, 0, time.UTC)

func newInteractor(searcher *fakeSearcher) (*persistence.Gateway, *usecase.Interactor) {
	gateway := persistence.New(kv.NewMemory(), nil)
	svc := service.NewBookService(clock.Fixed(addedAt), out.NewGatewayBookStore(gateway), searcher)
	return gateway, usecase.NewInteractor(svc).(*usecase.Interactor)
}

func TestSearchTrimsTermAndStampsHit(t *testing.T) {
	searcher := &fakeSearcher{book: domain.Book{ID: "/works/OL1W", Title: "Dune"}}
	_, uc := newInteractor(searcher)

	hit, err := uc.Search(context.Background(), "  dune ")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(searcher.terms) != 1 || searcher.terms[0] != "dune" {
		t.Fatalf("expected trimmed term, got %v", searcher.terms)
	}
	if !hit.AddedAt.Equal(addedAt) || hit.Authors[0] != domain.DefaultAuthor {
		t.Fatalf("unexpected hit %+v", hit)
	}
	if _, err := uc.Search(context.Background(), "   "); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input for blank term, got %v", err)
	}
}

func TestSearchErrorsReachCaller(t *testing.T) {
	boom := errors.New("connection refused")
	_, uc := newInteractor(&fakeSearcher{err: boom})
	if _, err := uc.Search(context.Background(), "dune"); !errors.Is(err, boom) {
		t.Fatalf("expected searcher error, got %v", err)
	}
}

func TestShelfLifecyclePersists(t *testing.T) {
	ctx := context.Background()
	gateway, uc := newInteractor(&fakeSearcher{})

	if _, err := uc.Add(ctx, dto.AddInput{ID: "/works/A", Title: "A"}); err != nil {
		t.Fatalf("add A: %v", err)
	}
	if _, err := uc.Add(ctx, dto.AddInput{ID: "/works/B", Title: "B"}); err != nil {
		t.Fatalf("add B: %v", err)
	}
	if _, err := uc.Add(ctx, dto.AddInput{ID: "/works/A"}); !errors.Is(err, apperrors.ErrDuplicate) {
		t.Fatalf("expected duplicate, got %v", err)
	}
	toggled, err := uc.ToggleCompleted(ctx, "/works/A")
	if err != nil || !toggled.Completed {
		t.Fatalf("toggle: %+v %v", toggled, err)
	}

	stored := persistence.LoadJSON(ctx, gateway, persistence.KeyLibrary, domain.Shelf{})
	if len(stored) != 2 || stored[0].ID != "/works/B" || !stored[1].Completed {
		t.Fatalf("unexpected stored shelf %+v", stored)
	}

	if err := uc.Remove(ctx, "/works/B"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	books, err := uc.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(books) != 1 || books[0].ID != "/works/A" || !books[0].AddedAt.Equal(addedAt) {
		t.Fatalf("unexpected list %+v", books)
	}
}
