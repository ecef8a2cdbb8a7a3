package in

import (
	"context"

	sessiondto "studytracker/internal/modules/session/dto"
	sessionin "studytracker/internal/modules/session/port/in"
)

type CLIHandler struct {
	usecase sessionin.Usecase
}

func NewCLIHandler(usecase sessionin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Record(ctx context.Context, subject string, minutes, questions, correct int) (sessiondto.SessionOutput, error) {
	return h.usecase.Record(ctx, sessiondto.RecordInput{Subject: subject, PlannedMinutes: minutes, Questions: questions, CorrectQuestions: correct})
}

func (h CLIHandler) List(ctx context.Context) ([]sessiondto.SessionOutput, error) {
	return h.usecase.List(ctx)
}
