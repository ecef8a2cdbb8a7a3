package out_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"studytracker/internal/modules/session/adapter/out"
	"studytracker/internal/modules/session/domain"
)

// readNote splits a written note into its decoded front matter and body.
func readNote(t *testing.T, path string) (map[string]any, string) {
	t.Helper()
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	parts := strings.SplitN(string(raw), "---\n", 3)
	require.Len(t, parts, 3)
	require.Empty(t, parts[0])
	meta := map[string]any{}
	require.NoError(t, yaml.Unmarshal([]byte(parts[1]), &meta))
	return meta, parts[2]
}

func TestMarkdownJournalWritesDatedNote(t *testing.T) {
	dir := t.TempDir()
	loc := time.FixedZone("UTC-3", -3*3600)
	journal := out.NewMarkdownJournal(dir, loc)
	session := domain.Session{
		ID:               "s-1",
		Subject:          "Organic Chemistry",
		Duration:         25,
		Questions:        8,
		CorrectQuestions: 6,
		// 01:15 UTC is still the previous day at UTC-3.
		Date:      time.Date(2026, 3, 2, 1, 15, 0, 0, time.UTC),
		Completed: true,
	}

	path, err := journal.Write(context.Background(), session)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "2026", "03", "01", "221500-organic-chemistry-s1.md"), path)

	meta, body := readNote(t, path)
	assert.Equal(t, "s-1", meta["id"])
	assert.Equal(t, 1, meta["schema_version"])
	assert.Equal(t, 25, meta["duration_minutes"])
	assert.Equal(t, 6, meta["correct_questions"])
	assert.Equal(t, true, meta["completed"])
	assert.Contains(t, body, "# Organic Chemistry")
	assert.Contains(t, body, "6 correct, 75%")
}

func TestMarkdownJournalKeepsSessionsFromTheSameSecond(t *testing.T) {
	dir := t.TempDir()
	journal := out.NewMarkdownJournal(dir, time.UTC)
	at := time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC)

	first, err := journal.Write(context.Background(), domain.Session{ID: "0b5e7a52-1f3c-4d1e-9a51-5a7c2d9f0e11", Subject: "Math", Duration: 25, Date: at})
	require.NoError(t, err)
	second, err := journal.Write(context.Background(), domain.Session{ID: "7c1d2e3f-aaaa-4bbb-8ccc-dddddddddddd", Subject: "Math", Duration: 50, Date: at})
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.Equal(t, "093000-math-0b5e7a52.md", filepath.Base(first))

	meta, _ := readNote(t, first)
	assert.Equal(t, 25, meta["duration_minutes"])
	meta, _ = readNote(t, second)
	assert.Equal(t, 50, meta["duration_minutes"])
}
