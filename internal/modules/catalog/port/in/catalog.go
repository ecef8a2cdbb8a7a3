package in

import (
	"context"

	"studytracker/internal/modules/catalog/dto"
)

type Usecase interface {
	ListSubjects(ctx context.Context) ([]dto.SubjectOutput, error)
	AddSubject(ctx context.Context, name string) (dto.SubjectOutput, error)
	DeleteSubject(ctx context.Context, subjectID string) error
	AddChapter(ctx context.Context, subjectID string) (dto.ChapterOutput, error)
	RenameChapter(ctx context.Context, subjectID, chapterID, name string) error
	DeleteChapter(ctx context.Context, subjectID, chapterID string) error
	AddTask(ctx context.Context, subjectID, chapterID string) (dto.TaskOutput, error)
	RenameTask(ctx context.Context, subjectID, chapterID, taskID, name string) error
	ToggleTask(ctx context.Context, subjectID, chapterID, taskID string) error
	DeleteTask(ctx context.Context, subjectID, chapterID, taskID string) error
}
