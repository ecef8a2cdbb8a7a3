package settings

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	settingsdto "studytracker/internal/modules/settings/dto"
	"studytracker/internal/ui/theme"
)

type SettingsPort interface {
	Get(ctx context.Context) (settingsdto.SettingsOutput, error)
	Update(ctx context.Context, input settingsdto.UpdateInput) (settingsdto.SettingsOutput, error)
}

type LoadedMsg struct {
	Settings settingsdto.SettingsOutput
	Err      error
}

// UpdatedMsg carries the stored settings after a palette edit.
type UpdatedMsg struct {
	Settings settingsdto.SettingsOutput
	Err      error
}

type Model struct {
	port     SettingsPort
	settings settingsdto.SettingsOutput
	err      error
}

func New(port SettingsPort) Model {
	return Model{port: port}
}

func (m Model) Init() tea.Cmd { return m.LoadCmd() }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case LoadedMsg:
		m.err = msg.Err
		if msg.Err == nil {
			m.settings = msg.Settings
		}
	case UpdatedMsg:
		if msg.Err == nil {
			m.settings = msg.Settings
		}
	case tea.KeyMsg:
		switch msg.String() {
		case "m":
			mode := "monochrome"
			if m.settings.ColorMode == "monochrome" {
				mode = "vibrant"
			}
			return m, m.Apply(settingsdto.UpdateInput{ColorMode: &mode})
		case "N":
			enabled := !m.settings.NotificationsEnabled
			return m, m.Apply(settingsdto.UpdateInput{NotificationsEnabled: &enabled})
		}
	}
	return m, nil
}

func (m Model) View() string {
	s := m.settings
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Settings") + "\n\n")
	if m.err != nil {
		sb.WriteString(theme.Bad.Render(m.err.Error()) + "\n\n")
	}
	notifications := "off"
	if s.NotificationsEnabled {
		notifications = "on"
	}
	rows := [][2]string{
		{"daily goal", fmt.Sprintf("%d min", s.DailyGoal)},
		{"primary color", theme.Accent(s.PrimaryColor).Render(s.PrimaryColor)},
		{"color mode", s.ColorMode},
		{"background", s.BackgroundMode},
		{"volume", fmt.Sprintf("%.2f", s.Volume)},
		{"notifications", notifications},
	}
	for _, r := range rows {
		sb.WriteString(theme.Muted.Render(fmt.Sprintf("%-15s", r[0])) + r[1] + "\n")
	}
	sb.WriteString("\n" + theme.Muted.Render("m: toggle color mode  N: toggle notifications  : for goal, volume, color, background"))
	return lipgloss.NewStyle().Margin(1, 2).Render(theme.Pane.Render(sb.String()))
}

// Settings returns the last loaded settings.
func (m Model) Settings() settingsdto.SettingsOutput { return m.settings }

func (m Model) LoadCmd() tea.Cmd {
	return func() tea.Msg {
		s, err := m.port.Get(context.Background())
		return LoadedMsg{Settings: s, Err: err}
	}
}

// Apply stores a partial update.
func (m Model) Apply(input settingsdto.UpdateInput) tea.Cmd {
	return func() tea.Msg {
		s, err := m.port.Update(context.Background(), input)
		return UpdatedMsg{Settings: s, Err: err}
	}
}
