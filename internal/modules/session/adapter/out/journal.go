package out

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"studytracker/internal/modules/session/domain"
	sessionout "studytracker/internal/modules/session/port/out"
	"studytracker/internal/platform/markdown"
	"studytracker/internal/platform/slug"
)

type noteMeta struct {
	SchemaVersion    int    `yaml:"schema_version"`
	ID               string `yaml:"id"`
	Subject          string `yaml:"subject"`
	Date             string `yaml:"date"`
	Duration         int    `yaml:"duration_minutes"`
	Questions        int    `yaml:"questions"`
	CorrectQuestions int    `yaml:"correct_questions"`
	Completed        bool   `yaml:"completed"`
}

// MarkdownJournal writes one note per session under
// <dir>/YYYY/MM/DD/HHMMSS-<subject>-<id>.md, dated in the given location.
// The id fragment keeps two sessions from the same second apart.
type MarkdownJournal struct {
	dir string
	loc *time.Location
}

func NewMarkdownJournal(dir string, loc *time.Location) sessionout.Journal {
	if loc == nil {
		loc = time.Local
	}
	return &MarkdownJournal{dir: dir, loc: loc}
}

func (j *MarkdownJournal) Write(_ context.Context, session domain.Session) (string, error) {
	date := session.Date.In(j.loc)
	dir := filepath.Join(j.dir, date.Format("2006"), date.Format("01"), date.Format("02"))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create journal dir: %w", err)
	}
	path := filepath.Join(dir, noteName(date, session))

	meta := noteMeta{
		SchemaVersion:    domain.SchemaVersion,
		ID:               session.ID,
		Subject:          session.Subject,
		Date:             session.Date.Format(time.RFC3339),
		Duration:         session.Duration,
		Questions:        session.Questions,
		CorrectQuestions: session.CorrectQuestions,
		Completed:        session.Completed,
	}
	body := fmt.Sprintf("# %s\n\n- Duration: %d minutes\n- Questions: %d (%d correct, %d%%)\n", session.Subject, session.Duration, session.Questions, session.CorrectQuestions, session.Accuracy())
	rendered, err := markdown.RenderNote(meta, body)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, []byte(rendered), 0o644); err != nil {
		return "", fmt.Errorf("write journal note: %w", err)
	}
	return path, nil
}

func noteName(date time.Time, session domain.Session) string {
	name := date.Format("150405") + "-" + slug.Make(session.Subject)
	if short := shortID(session.ID); short != "" {
		name += "-" + short
	}
	return name + ".md"
}

func shortID(id string) string {
	s := slug.Make(id)
	if s == "untitled" {
		return ""
	}
	s = strings.ReplaceAll(s, "-", "")
	if len(s) > 8 {
		s = s[:8]
	}
	return s
}
