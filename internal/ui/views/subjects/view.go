package subjects

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	catalogdto "studytracker/internal/modules/catalog/dto"
	"studytracker/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type CatalogPort interface {
	List(ctx context.Context) ([]catalogdto.SubjectOutput, error)
	Add(ctx context.Context, name string) (catalogdto.SubjectOutput, error)
	Delete(ctx context.Context, subjectID string) error
	AddChapter(ctx context.Context, subjectID string) (catalogdto.ChapterOutput, error)
	RenameChapter(ctx context.Context, subjectID, chapterID, name string) error
	DeleteChapter(ctx context.Context, subjectID, chapterID string) error
	AddTask(ctx context.Context, subjectID, chapterID string) (catalogdto.TaskOutput, error)
	RenameTask(ctx context.Context, subjectID, chapterID, taskID, name string) error
	ToggleTask(ctx context.Context, subjectID, chapterID, taskID string) error
	DeleteTask(ctx context.Context, subjectID, chapterID, taskID string) error
}

// ─── messages ────────────────────────────────────────────────────────────────

type LoadedMsg struct {
	Subjects []catalogdto.SubjectOutput
	Err      error
}

// ChangedMsg follows every catalog mutation; the app reloads the views that
// list subjects when it sees one.
type ChangedMsg struct {
	Status string
	Err    error
}

var errNoSelection = errors.New("nothing selected")

// ─── rows ────────────────────────────────────────────────────────────────────

type rowKind int

const (
	rowSubject rowKind = iota
	rowChapter
	rowTask
)

type row struct {
	kind      rowKind
	subjectID string
	chapterID string
	taskID    string
	label     string
	color     string
	done      bool
	tasksDone int
	tasksAll  int
}

func flatten(subjects []catalogdto.SubjectOutput) []row {
	var rows []row
	for _, s := range subjects {
		rows = append(rows, row{kind: rowSubject, subjectID: s.ID, label: s.Name, color: s.Color, tasksDone: s.TasksDone, tasksAll: s.TasksTotal})
		for _, ch := range s.Chapters {
			rows = append(rows, row{kind: rowChapter, subjectID: s.ID, chapterID: ch.ID, label: ch.Name})
			for _, t := range ch.Tasks {
				rows = append(rows, row{kind: rowTask, subjectID: s.ID, chapterID: ch.ID, taskID: t.ID, label: t.Name, done: t.Completed})
			}
		}
	}
	return rows
}

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port   CatalogPort
	rows   []row
	cursor int
	err    error
	width  int
	height int
}

func New(port CatalogPort) Model {
	return Model{port: port}
}

func (m Model) Init() tea.Cmd {
	return m.LoadCmd()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case LoadedMsg:
		m.err = msg.Err
		if msg.Err == nil {
			m.rows = flatten(msg.Subjects)
			if m.cursor >= len(m.rows) {
				m.cursor = max(0, len(m.rows)-1)
			}
		}

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.rows)-1 {
				m.cursor++
			}
		case "enter", " ":
			if r, ok := m.selected(); ok && r.kind == rowTask {
				return m, m.ToggleTask()
			}
		case "n":
			return m, m.AddChapter()
		case "a":
			return m, m.AddTask()
		case "d":
			return m, m.Delete()
		}
	}
	return m, nil
}

func (m Model) View() string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Subjects") + "\n\n")
	if m.err != nil {
		sb.WriteString(theme.Bad.Render(m.err.Error()) + "\n")
	}
	if len(m.rows) == 0 {
		sb.WriteString(theme.Muted.Render("No subjects yet. Add one with :subject:add <name>") + "\n")
	}

	start, end := m.window()
	for i := start; i < end; i++ {
		r := m.rows[i]
		marker := "  "
		if i == m.cursor {
			marker = theme.Hot.Render("▸ ")
		}
		switch r.kind {
		case rowSubject:
			sb.WriteString(fmt.Sprintf("%s%s %s %s\n", marker, theme.Swatch(r.color), lipgloss.NewStyle().Bold(true).Render(r.label),
				theme.Muted.Render(fmt.Sprintf("%d/%d tasks", r.tasksDone, r.tasksAll))))
		case rowChapter:
			sb.WriteString(marker + "   " + theme.Title.Render("§ ") + r.label + "\n")
		case rowTask:
			box := "[ ]"
			label := r.label
			if r.done {
				box = theme.Good.Render("[x]")
				label = theme.Muted.Strikethrough(true).Render(label)
			}
			sb.WriteString(marker + "      " + box + " " + label + "\n")
		}
	}

	sb.WriteString("\n" + theme.Muted.Render("n: add chapter  a: add task  enter: toggle task  d: delete  :rename <name>"))
	return lipgloss.NewStyle().Padding(1, 2).Render(sb.String())
}

func (m Model) LoadCmd() tea.Cmd {
	return func() tea.Msg {
		subjects, err := m.port.List(context.Background())
		return LoadedMsg{Subjects: subjects, Err: err}
	}
}

// AddSubject creates a subject with an automatically picked colour.
func (m Model) AddSubject(name string) tea.Cmd {
	return m.change(func(ctx context.Context) (string, error) {
		s, err := m.port.Add(ctx, name)
		if err != nil {
			return "", err
		}
		return "added subject " + s.Name, nil
	})
}

// AddChapter appends a chapter to the selected subject.
func (m Model) AddChapter() tea.Cmd {
	r, ok := m.selected()
	return m.change(func(ctx context.Context) (string, error) {
		if !ok {
			return "", errNoSelection
		}
		if _, err := m.port.AddChapter(ctx, r.subjectID); err != nil {
			return "", err
		}
		return "chapter added", nil
	})
}

// AddTask appends a task to the selected chapter, or to the chapter of the
// selected task.
func (m Model) AddTask() tea.Cmd {
	r, ok := m.selected()
	return m.change(func(ctx context.Context) (string, error) {
		if !ok || r.kind == rowSubject {
			return "", fmt.Errorf("select a chapter: %w", errNoSelection)
		}
		if _, err := m.port.AddTask(ctx, r.subjectID, r.chapterID); err != nil {
			return "", err
		}
		return "task added", nil
	})
}

func (m Model) ToggleTask() tea.Cmd {
	r, ok := m.selected()
	return m.change(func(ctx context.Context) (string, error) {
		if !ok || r.kind != rowTask {
			return "", fmt.Errorf("select a task: %w", errNoSelection)
		}
		return "", m.port.ToggleTask(ctx, r.subjectID, r.chapterID, r.taskID)
	})
}

// Rename renames the selected chapter or task. Subjects keep their name
// since sessions refer to them by it.
func (m Model) Rename(name string) tea.Cmd {
	r, ok := m.selected()
	return m.change(func(ctx context.Context) (string, error) {
		if !ok {
			return "", errNoSelection
		}
		switch r.kind {
		case rowChapter:
			return "chapter renamed", m.port.RenameChapter(ctx, r.subjectID, r.chapterID, name)
		case rowTask:
			return "task renamed", m.port.RenameTask(ctx, r.subjectID, r.chapterID, r.taskID, name)
		default:
			return "", errors.New("subjects cannot be renamed")
		}
	})
}

// Delete removes the selected row together with everything beneath it.
func (m Model) Delete() tea.Cmd {
	r, ok := m.selected()
	return m.change(func(ctx context.Context) (string, error) {
		if !ok {
			return "", errNoSelection
		}
		switch r.kind {
		case rowSubject:
			return "deleted subject " + r.label, m.port.Delete(ctx, r.subjectID)
		case rowChapter:
			return "deleted chapter " + r.label, m.port.DeleteChapter(ctx, r.subjectID, r.chapterID)
		default:
			return "deleted task " + r.label, m.port.DeleteTask(ctx, r.subjectID, r.chapterID, r.taskID)
		}
	})
}

// SelectedSubjectID returns the subject owning the cursor row.
func (m Model) SelectedSubjectID() (string, bool) {
	r, ok := m.selected()
	return r.subjectID, ok
}

// ─── private ─────────────────────────────────────────────────────────────────

func (m Model) selected() (row, bool) {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return row{}, false
	}
	return m.rows[m.cursor], true
}

func (m Model) window() (int, int) {
	visible := m.height - 6
	if visible <= 0 || len(m.rows) <= visible {
		return 0, len(m.rows)
	}
	start := max(0, m.cursor-visible/2)
	end := min(len(m.rows), start+visible)
	return end - visible, end
}

func (m Model) change(fn func(ctx context.Context) (string, error)) tea.Cmd {
	return func() tea.Msg {
		status, err := fn(context.Background())
		if err != nil {
			return ChangedMsg{Err: err}
		}
		return ChangedMsg{Status: status}
	}
}
