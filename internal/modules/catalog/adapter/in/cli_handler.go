package in

import (
	"context"
	"fmt"
	"strings"

	catalogdto "studytracker/internal/modules/catalog/dto"
	catalogin "studytracker/internal/modules/catalog/port/in"
)

type CLIHandler struct {
	usecase catalogin.Usecase
}

func NewCLIHandler(usecase catalogin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) List(ctx context.Context) ([]catalogdto.SubjectOutput, error) {
	return h.usecase.ListSubjects(ctx)
}

func (h CLIHandler) Add(ctx context.Context, name string) (catalogdto.SubjectOutput, error) {
	return h.usecase.AddSubject(ctx, name)
}

func (h CLIHandler) Delete(ctx context.Context, subjectID string) error {
	return h.usecase.DeleteSubject(ctx, subjectID)
}

// Resolve finds a subject by id, or by name ignoring case.
func (h CLIHandler) Resolve(ctx context.Context, ref string) (catalogdto.SubjectOutput, error) {
	subjects, err := h.usecase.ListSubjects(ctx)
	if err != nil {
		return catalogdto.SubjectOutput{}, err
	}
	ref = strings.TrimSpace(ref)
	for _, s := range subjects {
		if s.ID == ref || strings.EqualFold(s.Name, ref) {
			return s, nil
		}
	}
	return catalogdto.SubjectOutput{}, fmt.Errorf("no subject named %q", ref)
}

func (h CLIHandler) AddChapter(ctx context.Context, subjectID string) (catalogdto.ChapterOutput, error) {
	return h.usecase.AddChapter(ctx, subjectID)
}

func (h CLIHandler) RenameChapter(ctx context.Context, subjectID, chapterID, name string) error {
	return h.usecase.RenameChapter(ctx, subjectID, chapterID, name)
}

func (h CLIHandler) DeleteChapter(ctx context.Context, subjectID, chapterID string) error {
	return h.usecase.DeleteChapter(ctx, subjectID, chapterID)
}

func (h CLIHandler) AddTask(ctx context.Context, subjectID, chapterID string) (catalogdto.TaskOutput, error) {
	return h.usecase.AddTask(ctx, subjectID, chapterID)
}

func (h CLIHandler) RenameTask(ctx context.Context, subjectID, chapterID, taskID, name string) error {
	return h.usecase.RenameTask(ctx, subjectID, chapterID, taskID, name)
}

func (h CLIHandler) ToggleTask(ctx context.Context, subjectID, chapterID, taskID string) error {
	return h.usecase.ToggleTask(ctx, subjectID, chapterID, taskID)
}

func (h CLIHandler) DeleteTask(ctx context.Context, subjectID, chapterID, taskID string) error {
	return h.usecase.DeleteTask(ctx, subjectID, chapterID, taskID)
}
