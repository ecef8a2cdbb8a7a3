package app

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	backupdto "studytracker/internal/modules/backup/dto"
	catalogdto "studytracker/internal/modules/catalog/dto"
	librarydto "studytracker/internal/modules/library/dto"
	progressdto "studytracker/internal/modules/progress/dto"
	settingsdto "studytracker/internal/modules/settings/dto"
	timerdto "studytracker/internal/modules/timer/dto"
	"studytracker/internal/ui/components"
	"studytracker/internal/ui/theme"
	libraryview "studytracker/internal/ui/views/library"
	settingsview "studytracker/internal/ui/views/settings"
	statsview "studytracker/internal/ui/views/stats"
	subjectsview "studytracker/internal/ui/views/subjects"
	timerview "studytracker/internal/ui/views/timer"
)

// ─── ports ───────────────────────────────────────────────────────────────────
// Each port is the minimal interface that this orchestration layer requires.
// Sub-view ports are defined in their own packages and narrowed further.

type timerPort interface {
	Toggle(ctx context.Context) error
	Stop(ctx context.Context) error
	SelectSubject(ctx context.Context, subject string) error
	SetQuestions(ctx context.Context, questions, correct int) error
	SetStudyMinutesText(ctx context.Context, text string) (timerdto.Snapshot, error)
	SetBreakMinutesText(ctx context.Context, text string) (timerdto.Snapshot, error)
	Snapshot(ctx context.Context) (timerdto.Snapshot, error)
}

type catalogPort interface {
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

type progressPort interface {
	Summary(ctx context.Context) (progressdto.SummaryOutput, error)
	Subjects(ctx context.Context) ([]progressdto.SubjectStatOutput, error)
	Month(ctx context.Context, year int, month time.Month) (progressdto.MonthOutput, error)
}

type libraryPort interface {
	Search(ctx context.Context, term string) (librarydto.BookOutput, error)
	Add(ctx context.Context, input librarydto.AddInput) (librarydto.BookOutput, error)
	Toggle(ctx context.Context, bookID string) (librarydto.BookOutput, error)
	Remove(ctx context.Context, bookID string) error
	List(ctx context.Context) ([]librarydto.BookOutput, error)
}

type settingsPort interface {
	Get(ctx context.Context) (settingsdto.SettingsOutput, error)
	Update(ctx context.Context, input settingsdto.UpdateInput) (settingsdto.SettingsOutput, error)
}

type backupPort interface {
	Export(ctx context.Context) (backupdto.ExportOutput, error)
	Import(ctx context.Context, data []byte) (backupdto.ImportOutput, error)
	Reset(ctx context.Context) error
}

// ─── tab index ───────────────────────────────────────────────────────────────

type tabID int

const (
	tabTimer tabID = iota
	tabSubjects
	tabStats
	tabLibrary
	tabSettings
	tabCount
)

var tabLabels = [tabCount]string{
	"Timer", "Subjects", "Stats", "Library", "Settings",
}

// ─── async messages ───────────────────────────────────────────────────────────

// TimerEventMsg delivers a timer controller event into the program loop.
type TimerEventMsg struct {
	Event timerdto.Event
}

type timerConfiguredMsg struct {
	snap timerdto.Snapshot
	err  error
}

type exportedMsg struct {
	path string
	err  error
}

type importedMsg struct {
	out backupdto.ImportOutput
	err error
}

type resetMsg struct{ err error }

// ─── key bindings ─────────────────────────────────────────────────────────────

type keyMap struct {
	Tab     key.Binding
	Jump    key.Binding
	Help    key.Binding
	Palette key.Binding
	Quit    key.Binding
	Toggle  key.Binding
	Stop    key.Binding
	Month   key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Tab:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		Jump:    key.NewBinding(key.WithKeys("1", "2", "3", "4", "5"), key.WithHelp("1-5", "jump to tab")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Palette: key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "palette")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
		Toggle:  key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "start/pause timer")),
		Stop:    key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "stop timer")),
		Month:   key.NewBinding(key.WithKeys("[", "]"), key.WithHelp("[/]", "calendar month")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Help, k.Palette, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tab, k.Jump},
		{k.Toggle, k.Stop, k.Month},
		{k.Help, k.Palette, k.Quit},
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model. It owns tab routing, the global help
// overlay, and the command palette. All business logic is delegated to port
// interfaces; all rendering is delegated to sub-views.
type Model struct {
	// ports used at this orchestration level only
	timer  timerPort
	backup backupPort

	// sub-views (one per tab)
	timerView    timerview.Model
	subjectsView subjectsview.Model
	statsView    statsview.Model
	libView      libraryview.Model
	settingsView settingsview.Model

	// global UI state
	activeTab tabID
	keys      keyMap
	help      help.Model
	showHelp  bool
	palette   components.Palette
	status    string
	width     int
	height    int
}

// ─── constructor ─────────────────────────────────────────────────────────────

func NewModel(
	timer timerPort,
	catalog catalogPort,
	progress progressPort,
	library libraryPort,
	settings settingsPort,
	backup backupPort,
) Model {
	return Model{
		timer:        timer,
		backup:       backup,
		timerView:    timerview.New(timerPortBridge{p: timer}, catalogPortBridge{p: catalog}),
		subjectsView: subjectsview.New(catalog),
		statsView:    statsview.New(progress, time.Now()),
		libView:      libraryview.New(library),
		settingsView: settingsview.New(settings),
		activeTab:    tabTimer,
		keys:         defaultKeys(),
		help:         help.New(),
		palette:      components.NewPalette(),
		status:       "ready",
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.timerView.Init(),
		m.subjectsView.Init(),
		m.statsView.Init(),
		m.libView.Init(),
		m.settingsView.Init(),
	)
}

// ─── update ───────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	// Timer events keep flowing while the palette is open.
	if ev, ok := msg.(TimerEventMsg); ok {
		return m.handleTimerEvent(ev.Event)
	}

	// The palette intercepts all key input while open.
	if m.palette.Visible() {
		var cmd tea.Cmd
		m.palette, cmd = m.palette.Update(msg)
		if _, isKey := msg.(tea.KeyMsg); isKey {
			return m, cmd
		}
		cmds = append(cmds, cmd)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.palette.SetWidth(min(m.width-4, 80))
		m.help.Width = m.width
		m.propagateSize()
		return m, nil

	// Async results are routed to their owning view whatever tab is shown.
	case timerview.SnapshotMsg, timerview.SubjectsLoadedMsg:
		var cmd tea.Cmd
		m.timerView, cmd = m.timerView.Update(msg)
		return m, cmd

	case timerview.ActionErrMsg:
		m.status = "timer: " + msg.Err.Error()
		return m, nil

	case timerConfiguredMsg:
		if msg.err != nil {
			m.status = "timer: " + msg.err.Error()
			return m, nil
		}
		m.status = fmt.Sprintf("durations set: focus %d min, break %d min", msg.snap.StudyMinutes, msg.snap.BreakMinutes)
		m.timerView, _ = m.timerView.Update(timerview.SnapshotMsg{Snapshot: msg.snap})
		return m, nil

	case subjectsview.LoadedMsg:
		var cmd tea.Cmd
		m.subjectsView, cmd = m.subjectsView.Update(msg)
		return m, cmd

	case subjectsview.ChangedMsg:
		if msg.Err != nil {
			m.status = "subjects: " + msg.Err.Error()
			return m, nil
		}
		if msg.Status != "" {
			m.status = msg.Status
		}
		return m, tea.Batch(m.subjectsView.LoadCmd(), m.timerView.LoadSubjectsCmd(), m.statsView.LoadCmd())

	case statsview.LoadedMsg:
		var cmd tea.Cmd
		m.statsView, cmd = m.statsView.Update(msg)
		return m, cmd

	case libraryview.BooksLoadedMsg:
		var cmd tea.Cmd
		m.libView, cmd = m.libView.Update(msg)
		return m, cmd

	case libraryview.SearchResultMsg:
		if msg.Err != nil {
			m.status = "library: " + msg.Err.Error()
		} else {
			m.status = fmt.Sprintf("found %q, :library:add to shelve it", msg.Book.Title)
		}
		var cmd tea.Cmd
		m.libView, cmd = m.libView.Update(msg)
		return m, cmd

	case libraryview.BookChangedMsg:
		if msg.Err != nil {
			m.status = "library: " + msg.Err.Error()
		} else {
			m.status = msg.Status
		}
		var cmd tea.Cmd
		m.libView, cmd = m.libView.Update(msg)
		return m, cmd

	case settingsview.LoadedMsg:
		if msg.Err == nil {
			m.timerView.SetAccent(msg.Settings.PrimaryColor)
		}
		var cmd tea.Cmd
		m.settingsView, cmd = m.settingsView.Update(msg)
		return m, cmd

	case settingsview.UpdatedMsg:
		if msg.Err != nil {
			m.status = "settings: " + msg.Err.Error()
			return m, nil
		}
		m.status = "settings saved"
		m.timerView.SetAccent(msg.Settings.PrimaryColor)
		var cmd tea.Cmd
		m.settingsView, cmd = m.settingsView.Update(msg)
		return m, tea.Batch(cmd, m.statsView.LoadCmd())

	case exportedMsg:
		if msg.err != nil {
			m.status = "export failed: " + msg.err.Error()
		} else {
			m.status = "backup written to " + msg.path
		}
		return m, nil

	case importedMsg:
		if msg.err != nil {
			m.status = "import failed: " + msg.err.Error()
			return m, nil
		}
		m.status = fmt.Sprintf("restored %d subject(s), %d session(s), %d book(s)", msg.out.Subjects, msg.out.Sessions, msg.out.Books)
		return m, m.reloadAll()

	case resetMsg:
		if msg.err != nil {
			m.status = "reset failed: " + msg.err.Error()
			return m, nil
		}
		m.status = "all data cleared"
		return m, m.reloadAll()

	case components.PaletteSubmitMsg:
		return m.executePalette(msg.Input)

	case components.PaletteCancelMsg:
		m.status = "ready"
		return m, nil

	case tea.KeyMsg:
		if m.showHelp {
			if msg.String() == "?" || msg.String() == "esc" {
				m.showHelp = false
			}
			return m, nil
		}

		// Yield to sub-view when its search filter is active.
		if m.activeTab == tabLibrary && m.libView.Filtering() {
			break
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "tab":
			m.activeTab = (m.activeTab + 1) % tabCount
			return m, nil
		case "shift+tab":
			m.activeTab = (m.activeTab + tabCount - 1) % tabCount
			return m, nil
		case "1", "2", "3", "4", "5":
			m.activeTab = tabID(msg.String()[0] - '1')
			return m, nil
		case "?":
			m.showHelp = !m.showHelp
			return m, nil
		case ":":
			return m, m.palette.Open()
		}
	}

	// Propagate the message to the active tab's sub-view.
	var tabCmd tea.Cmd
	switch m.activeTab {
	case tabTimer:
		m.timerView, tabCmd = m.timerView.Update(msg)
	case tabSubjects:
		m.subjectsView, tabCmd = m.subjectsView.Update(msg)
	case tabStats:
		m.statsView, tabCmd = m.statsView.Update(msg)
	case tabLibrary:
		m.libView, tabCmd = m.libView.Update(msg)
	case tabSettings:
		m.settingsView, tabCmd = m.settingsView.Update(msg)
	}
	cmds = append(cmds, tabCmd)

	// Spinner ticks belong to the library whatever tab is shown.
	if m.activeTab != tabLibrary {
		if _, ok := msg.(tea.KeyMsg); !ok {
			var libCmd tea.Cmd
			m.libView, libCmd = m.libView.Update(msg)
			cmds = append(cmds, libCmd)
		}
	}

	return m, tea.Batch(cmds...)
}

func (m Model) handleTimerEvent(ev timerdto.Event) (tea.Model, tea.Cmd) {
	m.timerView, _ = m.timerView.Update(timerview.SnapshotMsg{Snapshot: ev.Snapshot})
	switch ev.Kind {
	case timerdto.EventCompleted:
		if ev.Phase == timerdto.PhaseStudy {
			if ev.Recorded {
				m.status = fmt.Sprintf("focus done, %d min recorded for %s", ev.PlannedMinutes, ev.Snapshot.Subject)
			} else {
				m.status = "focus done, session not recorded"
			}
			return m, m.statsView.LoadCmd()
		}
		m.status = "break over"
	case timerdto.EventStarted:
		m.status = "timer running"
	case timerdto.EventPaused:
		m.status = "timer paused"
	case timerdto.EventStopped:
		m.status = "timer reset"
	case timerdto.EventFault:
		if ev.Err != nil {
			m.status = "timer fault: " + ev.Err.Error()
		}
	}
	return m, nil
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	tabBar := m.renderTabBar()
	statusBar := m.renderStatusBar()
	tabBarH := lipgloss.Height(tabBar)
	statusBarH := lipgloss.Height(statusBar)

	contentH := m.height - tabBarH - statusBarH
	if contentH < 1 {
		contentH = 1
	}

	var content string
	switch {
	case m.showHelp:
		content = lipgloss.NewStyle().Width(m.width).Height(contentH).
			Render(m.help.View(m.keys))
	case m.palette.Visible():
		content = lipgloss.Place(m.width, contentH,
			lipgloss.Center, lipgloss.Center, m.palette.View())
	default:
		content = m.activeView()
	}

	return lipgloss.JoinVertical(lipgloss.Left, tabBar, content, statusBar)
}

func (m Model) activeView() string {
	switch m.activeTab {
	case tabTimer:
		return m.timerView.View()
	case tabSubjects:
		return m.subjectsView.View()
	case tabStats:
		return m.statsView.View()
	case tabLibrary:
		return m.libView.View()
	case tabSettings:
		return m.settingsView.View()
	}
	return ""
}

func (m Model) renderTabBar() string {
	parts := make([]string, tabCount)
	for i := tabID(0); i < tabCount; i++ {
		label := fmt.Sprintf("%d %s", i+1, tabLabels[i])
		if i == m.activeTab {
			parts[i] = theme.Hot.Render(" " + label + " ")
		} else {
			parts[i] = theme.Muted.Render(" " + label + " ")
		}
	}
	sep := theme.Muted.Render(" │ ")
	bar := "study tracker  " + strings.Join(parts, sep)
	return lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar) + "\n"
}

func (m Model) renderStatusBar() string {
	left := m.status
	right := theme.Muted.Render("?:help  tab:switch  :::palette  q:quit")
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	bar := left + strings.Repeat(" ", gap) + right
	return "\n" + lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar)
}

// ─── palette execution ────────────────────────────────────────────────────────

func (m Model) executePalette(input string) (tea.Model, tea.Cmd) {
	if strings.TrimSpace(input) == "" {
		return m, nil
	}
	parts := strings.Fields(input)
	rest := strings.TrimSpace(strings.TrimPrefix(input, parts[0]))

	switch parts[0] {
	case "subject:add":
		if rest == "" {
			m.status = "usage: subject:add <name>"
			return m, nil
		}
		return m, m.subjectsView.AddSubject(rest)

	case "subject:delete":
		m.activeTab = tabSubjects
		return m, m.subjectsView.Delete()

	case "chapter:add":
		m.activeTab = tabSubjects
		return m, m.subjectsView.AddChapter()

	case "task:add":
		m.activeTab = tabSubjects
		return m, m.subjectsView.AddTask()

	case "rename":
		if rest == "" {
			m.status = "usage: rename <name>"
			return m, nil
		}
		return m, m.subjectsView.Rename(rest)

	case "timer:study", "timer:break":
		if rest == "" {
			m.status = "usage: " + parts[0] + " <minutes>"
			return m, nil
		}
		return m, m.setDurationCmd(parts[0] == "timer:study", rest)

	case "questions":
		if len(parts) < 3 {
			m.status = "usage: questions <total> <correct>"
			return m, nil
		}
		total, errT := strconv.Atoi(parts[1])
		correct, errC := strconv.Atoi(parts[2])
		if errT != nil || errC != nil {
			m.status = "questions must be whole numbers"
			return m, nil
		}
		return m, m.questionsCmd(total, correct)

	case "library:search":
		if rest == "" {
			m.status = "usage: library:search <term>"
			return m, nil
		}
		m.activeTab = tabLibrary
		m.status = "searching…"
		return m, m.libView.Search(rest)

	case "library:add":
		m.activeTab = tabLibrary
		return m, m.libView.AddPending()

	case "goal":
		goal, err := strconv.Atoi(rest)
		if err != nil {
			m.status = "usage: goal <minutes>"
			return m, nil
		}
		return m, m.settingsView.Apply(settingsdto.UpdateInput{DailyGoal: &goal})

	case "volume":
		volume, err := strconv.ParseFloat(rest, 64)
		if err != nil {
			m.status = "usage: volume <0..1>"
			return m, nil
		}
		return m, m.settingsView.Apply(settingsdto.UpdateInput{Volume: &volume})

	case "color":
		return m, m.settingsView.Apply(settingsdto.UpdateInput{PrimaryColor: &rest})

	case "mode":
		return m, m.settingsView.Apply(settingsdto.UpdateInput{ColorMode: &rest})

	case "background":
		return m, m.settingsView.Apply(settingsdto.UpdateInput{BackgroundMode: &rest})

	case "notifications":
		var enabled bool
		switch rest {
		case "on":
			enabled = true
		case "off":
		default:
			m.status = "usage: notifications <on|off>"
			return m, nil
		}
		return m, m.settingsView.Apply(settingsdto.UpdateInput{NotificationsEnabled: &enabled})

	case "backup:export":
		return m, m.exportCmd(rest)

	case "backup:import":
		if rest == "" {
			m.status = "usage: backup:import <path>"
			return m, nil
		}
		return m, m.importCmd(rest)

	case "reset":
		if rest != "confirm" {
			m.status = "type 'reset confirm' to erase all subjects, sessions, books and settings"
			return m, nil
		}
		return m, m.resetCmd()

	default:
		m.status = "unknown command: " + parts[0]
	}
	return m, nil
}

// ─── helpers ─────────────────────────────────────────────────────────────────

func (m *Model) propagateSize() {
	sz := tea.WindowSizeMsg{Width: m.width, Height: m.height - 3}
	m.timerView, _ = m.timerView.Update(sz)
	m.subjectsView, _ = m.subjectsView.Update(sz)
	m.statsView, _ = m.statsView.Update(sz)
	m.libView, _ = m.libView.Update(sz)
	m.settingsView, _ = m.settingsView.Update(sz)
}

func (m Model) reloadAll() tea.Cmd {
	return tea.Batch(
		m.timerView.SnapshotCmd(),
		m.timerView.LoadSubjectsCmd(),
		m.subjectsView.LoadCmd(),
		m.statsView.LoadCmd(),
		m.libView.LoadCmd(),
		m.settingsView.LoadCmd(),
	)
}

// ─── async commands ───────────────────────────────────────────────────────────

func (m Model) setDurationCmd(study bool, text string) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		if study {
			snap, err := m.timer.SetStudyMinutesText(ctx, text)
			return timerConfiguredMsg{snap: snap, err: err}
		}
		snap, err := m.timer.SetBreakMinutesText(ctx, text)
		return timerConfiguredMsg{snap: snap, err: err}
	}
}

func (m Model) questionsCmd(total, correct int) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		if err := m.timer.SetQuestions(ctx, total, correct); err != nil {
			return timerview.ActionErrMsg{Err: err}
		}
		snap, err := m.timer.Snapshot(ctx)
		return timerview.SnapshotMsg{Snapshot: snap, Err: err}
	}
}

func (m Model) exportCmd(path string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.backup.Export(context.Background())
		if err != nil {
			return exportedMsg{err: err}
		}
		if path == "" {
			path = out.FileName
		}
		if err := os.WriteFile(path, out.Data, 0o644); err != nil {
			return exportedMsg{err: err}
		}
		return exportedMsg{path: path}
	}
}

func (m Model) importCmd(path string) tea.Cmd {
	return func() tea.Msg {
		data, err := os.ReadFile(path)
		if err != nil {
			return importedMsg{err: err}
		}
		out, err := m.backup.Import(context.Background(), data)
		return importedMsg{out: out, err: err}
	}
}

func (m Model) resetCmd() tea.Cmd {
	return func() tea.Msg {
		return resetMsg{err: m.backup.Reset(context.Background())}
	}
}

// ─── port bridges ─────────────────────────────────────────────────────────────
// Each bridge narrows a broad port interface to the minimal interface needed by
// a specific sub-view, keeping view packages free of knowledge about the wider
// port surface.

type timerPortBridge struct{ p timerPort }

func (b timerPortBridge) Toggle(ctx context.Context) error { return b.p.Toggle(ctx) }
func (b timerPortBridge) Stop(ctx context.Context) error   { return b.p.Stop(ctx) }
func (b timerPortBridge) SelectSubject(ctx context.Context, subject string) error {
	return b.p.SelectSubject(ctx, subject)
}
func (b timerPortBridge) SetQuestions(ctx context.Context, questions, correct int) error {
	return b.p.SetQuestions(ctx, questions, correct)
}
func (b timerPortBridge) Snapshot(ctx context.Context) (timerdto.Snapshot, error) {
	return b.p.Snapshot(ctx)
}

type catalogPortBridge struct{ p catalogPort }

func (b catalogPortBridge) List(ctx context.Context) ([]catalogdto.SubjectOutput, error) {
	return b.p.List(ctx)
}
