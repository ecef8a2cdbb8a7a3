package library

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	libdto "studytracker/internal/modules/library/dto"
	"studytracker/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type LibraryPort interface {
	List(ctx context.Context) ([]libdto.BookOutput, error)
	Search(ctx context.Context, term string) (libdto.BookOutput, error)
	Add(ctx context.Context, input libdto.AddInput) (libdto.BookOutput, error)
	Toggle(ctx context.Context, bookID string) (libdto.BookOutput, error)
	Remove(ctx context.Context, bookID string) error
}

// ─── messages ────────────────────────────────────────────────────────────────

type BooksLoadedMsg struct {
	Books []libdto.BookOutput
	Err   error
}

// SearchResultMsg holds the first catalog hit for a term, pending :library:add.
type SearchResultMsg struct {
	Term string
	Book libdto.BookOutput
	Err  error
}

// BookChangedMsg reports the outcome of an add, toggle or removal.
type BookChangedMsg struct {
	Status string
	Err    error
}

var errNoPending = errors.New("nothing to add, run library:search first")

// ─── list item ───────────────────────────────────────────────────────────────

type bookItem struct {
	book libdto.BookOutput
}

func (i bookItem) Title() string {
	if i.book.Completed {
		return "✓ " + i.book.Title
	}
	return i.book.Title
}
func (i bookItem) Description() string { return strings.Join(i.book.Authors, ", ") }
func (i bookItem) FilterValue() string { return i.book.Title }

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port      LibraryPort
	list      list.Model
	preview   viewport.Model
	spinner   spinner.Model
	loading   bool
	searching string
	pending   *libdto.BookOutput
	width     int
	height    int
}

func New(port LibraryPort) Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(theme.Lavender).BorderForeground(theme.Lavender)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(theme.Sapphire).BorderForeground(theme.Lavender)

	l := list.New(nil, delegate, 0, 0)
	l.Title = "Library"
	l.Styles.Title = theme.Title
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	vp := viewport.New(0, 0)
	vp.Style = lipgloss.NewStyle().
		Background(theme.Mantle).
		Foreground(theme.Text).
		Padding(1)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)

	return Model{
		port:    port,
		list:    l,
		preview: vp,
		spinner: sp,
		loading: true,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.LoadCmd(), m.spinner.Tick)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()

	case BooksLoadedMsg:
		m.loading = false
		if msg.Err != nil {
			m.list.Title = "Library (" + msg.Err.Error() + ")"
			return m, nil
		}
		items := make([]list.Item, len(msg.Books))
		for i, b := range msg.Books {
			items[i] = bookItem{book: b}
		}
		cmds = append(cmds, m.list.SetItems(items))

	case SearchResultMsg:
		m.searching = ""
		m.pending = nil
		if msg.Err == nil {
			hit := msg.Book
			m.pending = &hit
		}

	case BookChangedMsg:
		if msg.Err == nil {
			m.pending = nil
		}
		cmds = append(cmds, m.LoadCmd())

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case tea.KeyMsg:
		if !m.Filtering() {
			switch msg.String() {
			case "enter", "t":
				if item, ok := m.list.SelectedItem().(bookItem); ok {
					return m, m.toggleCmd(item.book.ID)
				}
			case "d":
				if item, ok := m.list.SelectedItem().(bookItem); ok {
					return m, m.removeCmd(item.book)
				}
			case "esc":
				m.pending = nil
			}
		}
	}

	if !m.loading {
		var lCmd tea.Cmd
		m.list, lCmd = m.list.Update(msg)
		cmds = append(cmds, lCmd)
		m.preview.SetContent(m.renderDetail())

		var vCmd tea.Cmd
		m.preview, vCmd = m.preview.Update(msg)
		cmds = append(cmds, vCmd)
	}

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	if m.loading {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Loading library…")
	}

	listW := m.width * 4 / 10
	detailW := m.width - listW

	listPane := lipgloss.NewStyle().
		Width(listW).
		Height(m.height).
		Render(m.list.View())

	detailPane := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.Surface1).
		Background(theme.Mantle).
		Width(detailW - 2).
		Height(m.height - 2).
		Render(m.preview.View())

	return lipgloss.JoinHorizontal(lipgloss.Top, listPane, detailPane)
}

// Filtering reports whether the list's search filter is currently active.
// The app model checks this to avoid consuming global keys during a search.
func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

// Search looks term up in the online catalog. The hit is previewed until
// AddPending shelves it.
func (m *Model) Search(term string) tea.Cmd {
	m.searching = term
	m.preview.SetContent(m.renderDetail())
	port := m.port
	return tea.Batch(m.spinner.Tick, func() tea.Msg {
		book, err := port.Search(context.Background(), term)
		if err != nil {
			err = fmt.Errorf("search %q: %w", term, err)
		}
		return SearchResultMsg{Term: term, Book: book, Err: err}
	})
}

// AddPending shelves the last search hit.
func (m Model) AddPending() tea.Cmd {
	pending := m.pending
	port := m.port
	return func() tea.Msg {
		if pending == nil {
			return BookChangedMsg{Err: errNoPending}
		}
		book, err := port.Add(context.Background(), libdto.AddInput{
			ID:        pending.ID,
			Title:     pending.Title,
			Authors:   pending.Authors,
			Thumbnail: pending.Thumbnail,
		})
		if err != nil {
			return BookChangedMsg{Err: err}
		}
		return BookChangedMsg{Status: "added " + book.Title}
	}
}

func (m Model) LoadCmd() tea.Cmd {
	return func() tea.Msg {
		books, err := m.port.List(context.Background())
		return BooksLoadedMsg{Books: books, Err: err}
	}
}

// ─── private ─────────────────────────────────────────────────────────────────

func (m *Model) resize() {
	listW := m.width * 4 / 10
	detailW := m.width - listW
	m.list.SetSize(listW, m.height)
	m.preview.Width = detailW - 4
	m.preview.Height = m.height - 4
}

func (m Model) renderDetail() string {
	if m.searching != "" {
		return m.spinner.View() + " searching for " + m.searching + "…"
	}
	if m.pending != nil {
		p := m.pending
		var sb strings.Builder
		sb.WriteString(theme.Hot.Render("Search result") + "\n\n")
		sb.WriteString(theme.Title.Render(p.Title) + "\n")
		sb.WriteString(theme.Muted.Render("by:     ") + strings.Join(p.Authors, ", ") + "\n")
		sb.WriteString(theme.Muted.Render("cover:  ") + p.Thumbnail + "\n")
		sb.WriteString("\n" + theme.Muted.Render(":library:add to shelve it"))
		return sb.String()
	}
	item, ok := m.list.SelectedItem().(bookItem)
	if !ok {
		return theme.Muted.Render("Nothing shelved yet\n:library:search <term>")
	}
	b := item.book
	status := theme.Hot.Render("reading")
	if b.Completed {
		status = theme.Good.Render("completed")
	}
	var sb strings.Builder
	sb.WriteString(theme.Title.Render(b.Title) + "\n\n")
	sb.WriteString(theme.Muted.Render("by:     ") + strings.Join(b.Authors, ", ") + "\n")
	sb.WriteString(theme.Muted.Render("status: ") + status + "\n")
	sb.WriteString(theme.Muted.Render("added:  ") + b.AddedAt.Local().Format("2006-01-02") + "\n")
	sb.WriteString(theme.Muted.Render("cover:  ") + b.Thumbnail + "\n")
	sb.WriteString("\n" + theme.Muted.Render("enter/t: toggle completed  d: remove  esc: drop search hit"))
	return sb.String()
}

func (m Model) toggleCmd(bookID string) tea.Cmd {
	return func() tea.Msg {
		book, err := m.port.Toggle(context.Background(), bookID)
		if err != nil {
			return BookChangedMsg{Err: err}
		}
		return BookChangedMsg{Status: "toggled " + book.Title}
	}
}

func (m Model) removeCmd(book libdto.BookOutput) tea.Cmd {
	return func() tea.Msg {
		if err := m.port.Remove(context.Background(), book.ID); err != nil {
			return BookChangedMsg{Err: err}
		}
		return BookChangedMsg{Status: "removed " + book.Title}
	}
}
