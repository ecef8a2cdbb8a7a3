package out

import (
	"context"

	sessiondto "studytracker/internal/modules/session/dto"
	sessionin "studytracker/internal/modules/session/port/in"
	timerout "studytracker/internal/modules/timer/port/out"
)

type SessionRecorderAdapter struct {
	sessions sessionin.Usecase
}

func NewSessionRecorderAdapter(sessions sessionin.Usecase) timerout.SessionRecorder {
	return &SessionRecorderAdapter{sessions: sessions}
}

func (a *SessionRecorderAdapter) Record(ctx context.Context, subject string, minutes, questions, correct int) error {
	_, err := a.sessions.Record(ctx, sessiondto.RecordInput{
		Subject:          subject,
		PlannedMinutes:   minutes,
		Questions:        questions,
		CorrectQuestions: correct,
	})
	return err
}
