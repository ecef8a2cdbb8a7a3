package out

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"studytracker/internal/modules/library/domain"
	libraryout "studytracker/internal/modules/library/port/out"
	apperrors "studytracker/internal/platform/errors"
)

const searchFields = "key,title,author_name,cover_i"

type searchResponse struct {
	Docs []searchDoc `json:"docs"`
}

type searchDoc struct {
	Key        string   `json:"key"`
	Title      string   `json:"title"`
	AuthorName []string `json:"author_name"`
	CoverID    int64    `json:"cover_i"`
}

// OpenLibrarySearcher looks books up through the Open Library search API.
// Failures are returned as is; retrying is left to the user.
type OpenLibrarySearcher struct {
	client    *resty.Client
	coversURL string
}

func NewOpenLibrarySearcher(baseURL, coversURL string, timeout time.Duration) libraryout.BookSearcher {
	client := resty.New()
	client.SetBaseURL(strings.TrimRight(baseURL, "/"))
	client.SetHeader("Accept", "application/json")
	if timeout > 0 {
		client.SetTimeout(timeout)
	}
	return &OpenLibrarySearcher{client: client, coversURL: strings.TrimRight(coversURL, "/")}
}

func (s *OpenLibrarySearcher) Search(ctx context.Context, term string) (domain.Book, error) {
	res, err := s.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"q":      term,
			"limit":  "1",
			"fields": searchFields,
		}).
		SetResult(&searchResponse{}).
		Get("/search.json")
	if err != nil {
		return domain.Book{}, fmt.Errorf("search open library: %w", err)
	}
	if res.IsError() {
		return domain.Book{}, fmt.Errorf("search open library: status %d: %s", res.StatusCode(), res.String())
	}
	body, ok := res.Result().(*searchResponse)
	if !ok || len(body.Docs) == 0 {
		return domain.Book{}, fmt.Errorf("no book matches %q: %w", term, apperrors.ErrNotFound)
	}
	doc := body.Docs[0]
	book := domain.Book{ID: doc.Key, Title: doc.Title, Authors: doc.AuthorName}
	if doc.CoverID > 0 {
		book.Thumbnail = fmt.Sprintf("%s/b/id/%d-M.jpg", s.coversURL, doc.CoverID)
	}
	return book.Normalize(), nil
}
