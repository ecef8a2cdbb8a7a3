package usecase

import (
	"context"

	"studytracker/internal/modules/catalog/domain"
	catalogdto "studytracker/internal/modules/catalog/dto"
	catalogin "studytracker/internal/modules/catalog/port/in"
	"studytracker/internal/modules/catalog/service"
)

type Interactor struct {
	svc *service.CatalogService
}

func NewInteractor(svc *service.CatalogService) catalogin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) ListSubjects(ctx context.Context) ([]catalogdto.SubjectOutput, error) {
	catalog, err := i.svc.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]catalogdto.SubjectOutput, 0, len(catalog))
	for _, s := range catalog {
		out = append(out, toSubjectOutput(s))
	}
	return out, nil
}

func (i *Interactor) AddSubject(ctx context.Context, name string) (catalogdto.SubjectOutput, error) {
	s, err := i.svc.AddSubject(ctx, name)
	if err != nil {
		return catalogdto.SubjectOutput{}, err
	}
	return toSubjectOutput(s), nil
}

func (i *Interactor) DeleteSubject(ctx context.Context, subjectID string) error {
	return i.svc.DeleteSubject(ctx, subjectID)
}

func (i *Interactor) AddChapter(ctx context.Context, subjectID string) (catalogdto.ChapterOutput, error) {
	ch, err := i.svc.AddChapter(ctx, subjectID)
	if err != nil {
		return catalogdto.ChapterOutput{}, err
	}
	return toChapterOutput(ch), nil
}

func (i *Interactor) RenameChapter(ctx context.Context, subjectID, chapterID, name string) error {
	return i.svc.RenameChapter(ctx, subjectID, chapterID, name)
}

func (i *Interactor) DeleteChapter(ctx context.Context, subjectID, chapterID string) error {
	return i.svc.DeleteChapter(ctx, subjectID, chapterID)
}

func (i *Interactor) AddTask(ctx context.Context, subjectID, chapterID string) (catalogdto.TaskOutput, error) {
	t, err := i.svc.AddTask(ctx, subjectID, chapterID)
	if err != nil {
		return catalogdto.TaskOutput{}, err
	}
	return catalogdto.TaskOutput{ID: t.ID, Name: t.Name, Completed: t.Completed}, nil
}

func (i *Interactor) RenameTask(ctx context.Context, subjectID, chapterID, taskID, name string) error {
	return i.svc.RenameTask(ctx, subjectID, chapterID, taskID, name)
}

func (i *Interactor) ToggleTask(ctx context.Context, subjectID, chapterID, taskID string) error {
	return i.svc.ToggleTask(ctx, subjectID, chapterID, taskID)
}

func (i *Interactor) DeleteTask(ctx context.Context, subjectID, chapterID, taskID string) error {
	return i.svc.DeleteTask(ctx, subjectID, chapterID, taskID)
}

func toSubjectOutput(s domain.Subject) catalogdto.SubjectOutput {
	done, total := s.TaskProgress()
	chapters := make([]catalogdto.ChapterOutput, 0, len(s.Chapters))
	for _, ch := range s.Chapters {
		chapters = append(chapters, toChapterOutput(ch))
	}
	return catalogdto.SubjectOutput{
		ID:         s.ID,
		Name:       s.Name,
		Color:      s.Color,
		Chapters:   chapters,
		TasksDone:  done,
		TasksTotal: total,
	}
}

func toChapterOutput(ch domain.Chapter) catalogdto.ChapterOutput {
	tasks := make([]catalogdto.TaskOutput, 0, len(ch.Tasks))
	for _, t := range ch.Tasks {
		tasks = append(tasks, catalogdto.TaskOutput{ID: t.ID, Name: t.Name, Completed: t.Completed})
	}
	return catalogdto.ChapterOutput{ID: ch.ID, Name: ch.Name, Tasks: tasks}
}
