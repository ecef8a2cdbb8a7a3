package stats

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	progressdto "studytracker/internal/modules/progress/dto"
	"studytracker/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type ProgressPort interface {
	Summary(ctx context.Context) (progressdto.SummaryOutput, error)
	Subjects(ctx context.Context) ([]progressdto.SubjectStatOutput, error)
	Month(ctx context.Context, year int, month time.Month) (progressdto.MonthOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type LoadedMsg struct {
	Summary  progressdto.SummaryOutput
	Subjects []progressdto.SubjectStatOutput
	Month    progressdto.MonthOutput
	Err      error
}

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port     ProgressPort
	year     int
	month    time.Month
	summary  progressdto.SummaryOutput
	subjects []progressdto.SubjectStatOutput
	calendar progressdto.MonthOutput
	err      error
	bar      progress.Model
	body     viewport.Model
	width    int
	height   int
}

func New(port ProgressPort, now time.Time) Model {
	return Model{
		port:  port,
		year:  now.Year(),
		month: now.Month(),
		bar:   progress.New(progress.WithDefaultGradient()),
		body:  viewport.New(0, 0),
	}
}

func (m Model) Init() tea.Cmd {
	return m.LoadCmd()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.bar.Width = max(10, min(50, m.width/2))
		m.body.Width = m.width
		m.body.Height = m.height
		m.body.SetContent(m.render())

	case LoadedMsg:
		m.err = msg.Err
		if msg.Err == nil {
			m.summary = msg.Summary
			m.subjects = msg.Subjects
			m.calendar = msg.Month
		}
		m.body.SetContent(m.render())

	case tea.KeyMsg:
		switch msg.String() {
		case "[":
			m.shiftMonth(-1)
			return m, m.LoadCmd()
		case "]":
			m.shiftMonth(1)
			return m, m.LoadCmd()
		}
	}

	var cmd tea.Cmd
	m.body, cmd = m.body.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	return m.body.View()
}

func (m Model) LoadCmd() tea.Cmd {
	port, year, month := m.port, m.year, m.month
	return func() tea.Msg {
		ctx := context.Background()
		summary, err := port.Summary(ctx)
		if err != nil {
			return LoadedMsg{Err: err}
		}
		subjects, err := port.Subjects(ctx)
		if err != nil {
			return LoadedMsg{Err: err}
		}
		cal, err := port.Month(ctx, year, month)
		if err != nil {
			return LoadedMsg{Err: err}
		}
		return LoadedMsg{Summary: summary, Subjects: subjects, Month: cal}
	}
}

// ─── private ─────────────────────────────────────────────────────────────────

func (m *Model) shiftMonth(delta int) {
	first := time.Date(m.year, m.month, 1, 12, 0, 0, 0, time.UTC).AddDate(0, delta, 0)
	m.year, m.month = first.Year(), first.Month()
}

func (m Model) render() string {
	if m.err != nil {
		return theme.Bad.Render(m.err.Error())
	}
	left := lipgloss.JoinVertical(lipgloss.Left, m.renderSummary(), "", m.renderSubjects())
	right := lipgloss.JoinVertical(lipgloss.Left, m.renderCalendar(), "", m.renderAchievements())
	pane := lipgloss.NewStyle().Width(max(36, m.width/2-2)).Padding(1, 2)
	return lipgloss.JoinHorizontal(lipgloss.Top, pane.Render(left), pane.Render(right))
}

func (m Model) renderSummary() string {
	s := m.summary
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Progress") + "\n\n")
	sb.WriteString(theme.Muted.Render("rank:    ") + theme.Hot.Render(s.Rank) + "\n")
	if s.TopRank {
		sb.WriteString(theme.Muted.Render("next:    ") + "top rank reached\n")
	} else {
		sb.WriteString(theme.Muted.Render("next:    ") + fmt.Sprintf("%s in %d achievement(s)\n", s.NextRank, s.NextRankNeeded))
	}
	sb.WriteString(theme.Muted.Render("streak:  ") + fmt.Sprintf("%d day(s)\n", s.Streak))
	sb.WriteString(theme.Muted.Render("total:   ") + fmt.Sprintf("%d min over %d session(s)\n\n", s.TotalMinutes, s.Sessions))

	t := s.Today
	sb.WriteString(theme.Muted.Render("today:   ") + theme.Goal(t.Status, fmt.Sprintf("%d / %d min", t.Minutes, t.Goal)) + "\n")
	sb.WriteString(m.bar.ViewAs(t.Fraction))
	return sb.String()
}

func (m Model) renderSubjects() string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("By subject") + "\n\n")
	if len(m.subjects) == 0 {
		sb.WriteString(theme.Muted.Render("no sessions recorded"))
	}
	for _, s := range m.subjects {
		sb.WriteString(fmt.Sprintf("%-18s %5d min  %3d sess  %5.1f%%\n", s.Subject, s.Minutes, s.Sessions, s.Accuracy))
	}
	return sb.String()
}

func (m Model) renderCalendar() string {
	c := m.calendar
	var sb strings.Builder
	sb.WriteString(theme.Title.Render(fmt.Sprintf("%s %d", c.Month, c.Year)) + theme.Muted.Render("   [ prev  ] next") + "\n\n")
	sb.WriteString(theme.Muted.Render(" Su  Mo  Tu  We  Th  Fr  Sa") + "\n")
	sb.WriteString(strings.Repeat("    ", c.Offset))
	col := c.Offset
	for _, d := range c.Days {
		sb.WriteString(theme.Goal(d.Status, fmt.Sprintf("%3d", d.Day)) + " ")
		col++
		if col == 7 {
			sb.WriteString("\n")
			col = 0
		}
	}
	sb.WriteString("\n\n" + theme.Muted.Render(fmt.Sprintf("goal %d min/day  ", c.Goal)) +
		theme.Goal("warning", "■ started  ") + theme.Goal("met", "■ goal met"))
	return sb.String()
}

func (m Model) renderAchievements() string {
	s := m.summary
	var sb strings.Builder
	sb.WriteString(theme.Title.Render(fmt.Sprintf("Achievements %d/%d", s.Unlocked, s.Total)) + "\n\n")
	for _, a := range s.Achievements {
		if a.Unlocked {
			sb.WriteString(theme.Good.Render("★ "+a.Title) + theme.Muted.Render("  "+a.Description) + "\n")
			continue
		}
		sb.WriteString(theme.Muted.Render("☆ "+a.Title+"  "+a.Description) + "\n")
	}
	return sb.String()
}
