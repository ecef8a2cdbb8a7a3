package domain

import (
	"fmt"
	"slices"
	"strings"

	apperrors "studytracker/internal/platform/errors"
)

const (
	DefaultChapterName = "New chapter"
	DefaultTaskName    = "New task"
)

type Task struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Completed bool   `json:"completed"`
}

type Chapter struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Tasks []Task `json:"tasks"`
}

// Subject is referenced by sessions through its name, so names are unique
// ignoring case.
type Subject struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Color    string    `json:"color"`
	Chapters []Chapter `json:"chapters"`
}

func (s Subject) clone() Subject {
	out := s
	out.Chapters = make([]Chapter, len(s.Chapters))
	for i, ch := range s.Chapters {
		ch.Tasks = slices.Clone(ch.Tasks)
		if ch.Tasks == nil {
			ch.Tasks = []Task{}
		}
		out.Chapters[i] = ch
	}
	return out
}

// TaskProgress counts completed tasks across every chapter.
func (s Subject) TaskProgress() (done, total int) {
	for _, ch := range s.Chapters {
		for _, t := range ch.Tasks {
			total++
			if t.Completed {
				done++
			}
		}
	}
	return done, total
}

// Catalog is an ordered list of subjects. Its methods return a modified
// copy and never mutate the receiver.
type Catalog []Subject

func (c Catalog) Clone() Catalog {
	out := make(Catalog, len(c))
	for i, s := range c {
		out[i] = s.clone()
	}
	return out
}

func (c Catalog) Names() []string {
	out := make([]string, len(c))
	for i, s := range c {
		out[i] = s.Name
	}
	return out
}

func (c Catalog) Colors() []string {
	out := make([]string, len(c))
	for i, s := range c {
		out[i] = s.Color
	}
	return out
}

func (c Catalog) indexOf(subjectID string) (int, error) {
	for i, s := range c {
		if s.ID == subjectID {
			return i, nil
		}
	}
	return -1, fmt.Errorf("subject %q: %w", subjectID, apperrors.ErrNotFound)
}

func (c Catalog) Find(subjectID string) (Subject, error) {
	i, err := c.indexOf(subjectID)
	if err != nil {
		return Subject{}, err
	}
	return c[i].clone(), nil
}

// FindByName matches case-insensitively.
func (c Catalog) FindByName(name string) (Subject, bool) {
	name = strings.TrimSpace(name)
	for _, s := range c {
		if strings.EqualFold(s.Name, name) {
			return s.clone(), true
		}
	}
	return Subject{}, false
}

func (c Catalog) AddSubject(id, name, color string) (Catalog, Subject, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, Subject{}, fmt.Errorf("subject name: %w", apperrors.ErrInvalidInput)
	}
	if _, exists := c.FindByName(name); exists {
		return nil, Subject{}, fmt.Errorf("subject %q: %w", name, apperrors.ErrDuplicate)
	}
	subject := Subject{ID: id, Name: name, Color: color, Chapters: []Chapter{}}
	out := append(c.Clone(), subject)
	return out, subject, nil
}

func (c Catalog) DeleteSubject(subjectID string) (Catalog, error) {
	i, err := c.indexOf(subjectID)
	if err != nil {
		return nil, err
	}
	out := c.Clone()
	return slices.Delete(out, i, i+1), nil
}

func (c Catalog) withSubject(subjectID string, fn func(*Subject) error) (Catalog, error) {
	i, err := c.indexOf(subjectID)
	if err != nil {
		return nil, err
	}
	out := c.Clone()
	if err := fn(&out[i]); err != nil {
		return nil, err
	}
	return out, nil
}

func (c Catalog) withChapter(subjectID, chapterID string, fn func(*Chapter) error) (Catalog, error) {
	return c.withSubject(subjectID, func(s *Subject) error {
		for i := range s.Chapters {
			if s.Chapters[i].ID == chapterID {
				return fn(&s.Chapters[i])
			}
		}
		return fmt.Errorf("chapter %q: %w", chapterID, apperrors.ErrNotFound)
	})
}

func (c Catalog) withTask(subjectID, chapterID, taskID string, fn func(*Chapter, int) error) (Catalog, error) {
	return c.withChapter(subjectID, chapterID, func(ch *Chapter) error {
		for i := range ch.Tasks {
			if ch.Tasks[i].ID == taskID {
				return fn(ch, i)
			}
		}
		return fmt.Errorf("task %q: %w", taskID, apperrors.ErrNotFound)
	})
}

func (c Catalog) AddChapter(subjectID, chapterID string) (Catalog, Chapter, error) {
	chapter := Chapter{ID: chapterID, Name: DefaultChapterName, Tasks: []Task{}}
	out, err := c.withSubject(subjectID, func(s *Subject) error {
		s.Chapters = append(s.Chapters, chapter)
		return nil
	})
	return out, chapter, err
}

func (c Catalog) RenameChapter(subjectID, chapterID, name string) (Catalog, error) {
	name, err := requireName("chapter", name)
	if err != nil {
		return nil, err
	}
	return c.withChapter(subjectID, chapterID, func(ch *Chapter) error {
		ch.Name = name
		return nil
	})
}

func (c Catalog) DeleteChapter(subjectID, chapterID string) (Catalog, error) {
	return c.withSubject(subjectID, func(s *Subject) error {
		for i := range s.Chapters {
			if s.Chapters[i].ID == chapterID {
				s.Chapters = slices.Delete(s.Chapters, i, i+1)
				return nil
			}
		}
		return fmt.Errorf("chapter %q: %w", chapterID, apperrors.ErrNotFound)
	})
}

func (c Catalog) AddTask(subjectID, chapterID, taskID string) (Catalog, Task, error) {
	task := Task{ID: taskID, Name: DefaultTaskName}
	out, err := c.withChapter(subjectID, chapterID, func(ch *Chapter) error {
		ch.Tasks = append(ch.Tasks, task)
		return nil
	})
	return out, task, err
}

func (c Catalog) RenameTask(subjectID, chapterID, taskID, name string) (Catalog, error) {
	name, err := requireName("task", name)
	if err != nil {
		return nil, err
	}
	return c.withTask(subjectID, chapterID, taskID, func(ch *Chapter, i int) error {
		ch.Tasks[i].Name = name
		return nil
	})
}

func (c Catalog) ToggleTask(subjectID, chapterID, taskID string) (Catalog, error) {
	return c.withTask(subjectID, chapterID, taskID, func(ch *Chapter, i int) error {
		ch.Tasks[i].Completed = !ch.Tasks[i].Completed
		return nil
	})
}

func (c Catalog) DeleteTask(subjectID, chapterID, taskID string) (Catalog, error) {
	return c.withTask(subjectID, chapterID, taskID, func(ch *Chapter, i int) error {
		ch.Tasks = slices.Delete(ch.Tasks, i, i+1)
		return nil
	})
}

func requireName(kind, name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("%s name: %w", kind, apperrors.ErrInvalidInput)
	}
	return name, nil
}
