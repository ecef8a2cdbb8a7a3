package domain

import (
	"fmt"
	"slices"
	"strings"
	"time"

	apperrors "studytracker/internal/platform/errors"
)

const (
	DefaultTitle  = "Untitled"
	DefaultAuthor = "Unknown author"
	// PlaceholderCover is shown for books the catalog has no cover for.
	PlaceholderCover = "https://placehold.co/128x192/222/fff?text=No+Cover"
)

type Book struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Authors   []string  `json:"authors"`
	Thumbnail string    `json:"thumbnail"`
	AddedAt   time.Time `json:"addedAt"`
	Completed bool      `json:"completed"`
}

// Normalize fills the display defaults a catalog hit may lack.
func (b Book) Normalize() Book {
	b.ID = strings.TrimSpace(b.ID)
	b.Title = strings.TrimSpace(b.Title)
	if b.Title == "" {
		b.Title = DefaultTitle
	}
	if len(b.Authors) == 0 {
		b.Authors = []string{DefaultAuthor}
	} else {
		b.Authors = slices.Clone(b.Authors)
	}
	if strings.TrimSpace(b.Thumbnail) == "" {
		b.Thumbnail = PlaceholderCover
	}
	return b
}

func (b Book) Validate() error {
	if strings.TrimSpace(b.ID) == "" {
		return fmt.Errorf("book id: %w", apperrors.ErrInvalidInput)
	}
	return nil
}

// Shelf is the reading list, newest first.
type Shelf []Book

func (s Shelf) indexOf(bookID string) (int, error) {
	for i, b := range s {
		if b.ID == bookID {
			return i, nil
		}
	}
	return -1, fmt.Errorf("book %q: %w", bookID, apperrors.ErrNotFound)
}

func (s Shelf) Add(book Book) (Shelf, error) {
	if err := book.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.indexOf(book.ID); err == nil {
		return nil, fmt.Errorf("book %q: %w", book.ID, apperrors.ErrDuplicate)
	}
	out := make(Shelf, 0, len(s)+1)
	out = append(out, book)
	return append(out, s...), nil
}

func (s Shelf) Remove(bookID string) (Shelf, error) {
	i, err := s.indexOf(bookID)
	if err != nil {
		return nil, err
	}
	return slices.Delete(slices.Clone(s), i, i+1), nil
}

func (s Shelf) Toggle(bookID string) (Shelf, Book, error) {
	i, err := s.indexOf(bookID)
	if err != nil {
		return nil, Book{}, err
	}
	out := slices.Clone(s)
	out[i].Completed = !out[i].Completed
	return out, out[i], nil
}
