package timer

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	catalogdto "studytracker/internal/modules/catalog/dto"
	timerdto "studytracker/internal/modules/timer/dto"
	"studytracker/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type TimerPort interface {
	Toggle(ctx context.Context) error
	Stop(ctx context.Context) error
	SelectSubject(ctx context.Context, subject string) error
	SetQuestions(ctx context.Context, questions, correct int) error
	Snapshot(ctx context.Context) (timerdto.Snapshot, error)
}

type SubjectsPort interface {
	List(ctx context.Context) ([]catalogdto.SubjectOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type SnapshotMsg struct {
	Snapshot timerdto.Snapshot
	Err      error
}

type SubjectsLoadedMsg struct {
	Subjects []catalogdto.SubjectOutput
	Err      error
}

// ActionErrMsg carries a rejected timer action, such as starting without a
// subject, up to the status bar.
type ActionErrMsg struct{ Err error }

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port     TimerPort
	subjects SubjectsPort

	snap    timerdto.Snapshot
	options []catalogdto.SubjectOutput
	cursor  int
	bar     progress.Model
	accent  string
	width   int
	height  int
}

func New(port TimerPort, subjects SubjectsPort) Model {
	return Model{
		port:     port,
		subjects: subjects,
		bar:      progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.SnapshotCmd(), m.LoadSubjectsCmd())
}

// SetAccent recolours the clock with the user's primary colour.
func (m *Model) SetAccent(hex string) { m.accent = hex }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.bar.Width = max(10, min(60, m.width-8))

	case SnapshotMsg:
		if msg.Err == nil {
			m.snap = msg.Snapshot
			m.syncCursor()
		}

	case SubjectsLoadedMsg:
		if msg.Err == nil {
			m.options = msg.Subjects
			m.syncCursor()
		}

	case tea.KeyMsg:
		switch msg.String() {
		case " ":
			return m, m.action(m.port.Toggle)
		case "x":
			return m, m.action(m.port.Stop)
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.options)-1 {
				m.cursor++
			}
		case "enter":
			if m.cursor < len(m.options) {
				name := m.options[m.cursor].Name
				return m, m.action(func(ctx context.Context) error { return m.port.SelectSubject(ctx, name) })
			}
		case "+", "=":
			return m, m.questionsCmd(m.snap.Questions+1, m.snap.Correct)
		case "-":
			return m, m.questionsCmd(m.snap.Questions-1, m.snap.Correct)
		case "c":
			return m, m.questionsCmd(m.snap.Questions, m.snap.Correct+1)
		case "C":
			return m, m.questionsCmd(m.snap.Questions, m.snap.Correct-1)
		}
	}
	return m, nil
}

func (m Model) View() string {
	s := m.snap
	phase := "FOCUS"
	if s.Phase == timerdto.PhaseBreak {
		phase = "BREAK"
	}
	state := "paused"
	if s.Running {
		state = "running"
	}

	var sb strings.Builder
	sb.WriteString(theme.Title.Render(phase) + "  " + theme.Muted.Render(state) + "\n\n")
	sb.WriteString(theme.Accent(m.accent).Render(s.Clock) + "\n\n")
	sb.WriteString(m.bar.ViewAs(s.Progress) + "\n\n")
	sb.WriteString(theme.Muted.Render(fmt.Sprintf("focus %d min  ·  break %d min", s.StudyMinutes, s.BreakMinutes)) + "\n")

	subject := s.Subject
	if subject == "" {
		subject = theme.Hot.Render("none selected")
	}
	sb.WriteString(theme.Muted.Render("subject: ") + subject + "\n")
	if s.Phase != timerdto.PhaseBreak {
		sb.WriteString(fmt.Sprintf("%s%d/%d (%d%%)\n", theme.Muted.Render("questions: "), s.Correct, s.Questions, s.Accuracy))
	}
	clock := lipgloss.NewStyle().Width(max(30, m.width/2)).Render(sb.String())

	var list strings.Builder
	list.WriteString(theme.Title.Render("Subjects") + "\n\n")
	if len(m.options) == 0 {
		list.WriteString(theme.Muted.Render("no subjects yet\n:subject:add <name>"))
	}
	for i, subj := range m.options {
		marker := "  "
		if i == m.cursor {
			marker = theme.Hot.Render("▸ ")
		}
		name := subj.Name
		if subj.Name == s.Subject {
			name = theme.Accent(m.accent).Render(name)
		}
		list.WriteString(marker + theme.Swatch(subj.Color) + " " + name + "\n")
	}
	help := theme.Muted.Render("space: start/pause  x: stop  enter: select subject  +/-: question  c/C: correct")

	body := lipgloss.JoinHorizontal(lipgloss.Top, clock, list.String())
	return lipgloss.NewStyle().Padding(1, 2).Render(body + "\n\n" + help)
}

// SnapshotCmd reloads the timer state.
func (m Model) SnapshotCmd() tea.Cmd {
	return func() tea.Msg {
		snap, err := m.port.Snapshot(context.Background())
		return SnapshotMsg{Snapshot: snap, Err: err}
	}
}

// LoadSubjectsCmd reloads the subject picker.
func (m Model) LoadSubjectsCmd() tea.Cmd {
	return func() tea.Msg {
		subjects, err := m.subjects.List(context.Background())
		return SubjectsLoadedMsg{Subjects: subjects, Err: err}
	}
}

// ─── private ─────────────────────────────────────────────────────────────────

func (m Model) action(fn func(ctx context.Context) error) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		if err := fn(ctx); err != nil {
			return ActionErrMsg{Err: err}
		}
		snap, err := m.port.Snapshot(ctx)
		return SnapshotMsg{Snapshot: snap, Err: err}
	}
}

func (m Model) questionsCmd(questions, correct int) tea.Cmd {
	return m.action(func(ctx context.Context) error {
		return m.port.SetQuestions(ctx, questions, correct)
	})
}

func (m *Model) syncCursor() {
	for i, subj := range m.options {
		if subj.Name == m.snap.Subject {
			m.cursor = i
			return
		}
	}
	if m.cursor >= len(m.options) {
		m.cursor = max(0, len(m.options)-1)
	}
}
