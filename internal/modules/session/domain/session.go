package domain

import (
	"fmt"
	"strings"
	"time"

	apperrors "studytracker/internal/platform/errors"
)

const SchemaVersion = 1

// Session is one finished study phase. Duration is the planned length in
// minutes, not the elapsed time. Sessions are never edited once recorded.
type Session struct {
	ID               string    `json:"id"`
	Subject          string    `json:"subject"`
	Duration         int       `json:"duration"`
	Questions        int       `json:"questions"`
	CorrectQuestions int       `json:"correctQuestions"`
	Date             time.Time `json:"date"`
	Completed        bool      `json:"completed"`
}

// New builds a completed session. Question counts are clamped so that
// 0 <= correct <= questions; an empty subject or a duration below one
// minute is rejected.
func New(id, subject string, duration, questions, correct int, at time.Time) (Session, error) {
	subject = strings.TrimSpace(subject)
	if subject == "" {
		return Session{}, fmt.Errorf("session subject: %w", apperrors.ErrInvalidInput)
	}
	if duration < 1 {
		return Session{}, fmt.Errorf("session duration %d: %w", duration, apperrors.ErrInvalidInput)
	}
	if questions < 0 {
		questions = 0
	}
	if correct < 0 {
		correct = 0
	}
	if correct > questions {
		correct = questions
	}
	return Session{
		ID:               id,
		Subject:          subject,
		Duration:         duration,
		Questions:        questions,
		CorrectQuestions: correct,
		Date:             at.UTC(),
		Completed:        true,
	}, nil
}

// Validate reports whether a stored session still satisfies the invariants
// New enforces.
func (s Session) Validate() error {
	switch {
	case s.Duration < 1:
		return fmt.Errorf("session %q duration %d: %w", s.ID, s.Duration, apperrors.ErrInvalidInput)
	case s.Questions < 0:
		return fmt.Errorf("session %q questions %d: %w", s.ID, s.Questions, apperrors.ErrInvalidInput)
	case s.CorrectQuestions < 0 || s.CorrectQuestions > s.Questions:
		return fmt.Errorf("session %q correct %d of %d: %w", s.ID, s.CorrectQuestions, s.Questions, apperrors.ErrInvalidInput)
	}
	return nil
}

// Accuracy is the rounded percentage of correct answers, or 0 with no
// questions.
func (s Session) Accuracy() int {
	if s.Questions == 0 {
		return 0
	}
	return int(float64(s.CorrectQuestions)/float64(s.Questions)*100 + 0.5)
}
