package out_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studytracker/internal/modules/library/adapter/out"
	"studytracker/internal/modules/library/domain"
	apperrors "studytracker/internal/platform/errors"
)

func TestOpenLibrarySearcher(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		want    domain.Book
		wantErr error
		anyErr  bool
	}{
		{
			name:   "first hit with cover",
			status: http.StatusOK,
			body:   `{"docs":[{"key":"/works/OL45804W","title":"Fantastic Mr Fox","author_name":["Roald Dahl"],"cover_i":6498519}]}`,
			want: domain.Book{
				ID:        "/works/OL45804W",
				Title:     "Fantastic Mr Fox",
				Authors:   []string{"Roald Dahl"},
				Thumbnail: "COVERS/b/id/6498519-M.jpg",
			},
		},
		{
			name:   "missing fields fall back to defaults",
			status: http.StatusOK,
			body:   `{"docs":[{"key":"/works/OL1W"}]}`,
			want: domain.Book{
				ID:        "/works/OL1W",
				Title:     domain.DefaultTitle,
				Authors:   []string{domain.DefaultAuthor},
				Thumbnail: domain.PlaceholderCover,
			},
		},
		{
			name:    "no docs",
			status:  http.StatusOK,
			body:    `{"docs":[]}`,
			wantErr: apperrors.ErrNotFound,
		},
		{
			name:   "server error",
			status: http.StatusTooManyRequests,
			body:   `{"error":"slow down"}`,
			anyErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				query := r.URL.Query()
				assert.Equal(t, "/search.json", r.URL.Path)
				assert.Equal(t, "mr fox", query.Get("q"))
				assert.Equal(t, "1", query.Get("limit"))
				assert.Equal(t, "key,title,author_name,cover_i", query.Get("fields"))
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			searcher := out.NewOpenLibrarySearcher(server.URL+"/", "COVERS", time.Second)
			got, err := searcher.Search(context.Background(), "mr fox")
			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.anyErr:
				assert.Error(t, err)
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestOpenLibrarySearcherHonoursContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := out.NewOpenLibrarySearcher(server.URL, "COVERS", time.Second).Search(ctx, "anything")
	assert.Error(t, err)
}
