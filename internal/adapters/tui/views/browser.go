package views

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"timelog/internal/adapters/tui/styles"
	"timelog/internal/application/commands"
	"timelog/internal/domain"
	"timelog/internal/ports"
)

// BrowserKeyMap defines key bindings for the browser view
type BrowserKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Next   key.Binding
	Prev   key.Binding
	Show   key.Binding
	Start  key.Binding
	Stop   key.Binding
	Copy   key.Binding
	Edit   key.Binding
	Active key.Binding
	Reload key.Binding
	Help   key.Binding
	Quit   key.Binding
}

var BrowserKeys = BrowserKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Next: key.NewBinding(
		key.WithKeys("n", "pgdown"),
		key.WithHelp("n", "next page"),
	),
	Prev: key.NewBinding(
		key.WithKeys("p", "pgup"),
		key.WithHelp("p", "prev page"),
	),
	Show: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "show"),
	),
	Start: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "start"),
	),
	Stop: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "stop"),
	),
	Copy: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy path"),
	),
	Edit: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "edit"),
	),
	Active: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "active only"),
	),
	Reload: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reload"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// browserChrome is the number of lines the browser draws around the list:
// padding, title, subtitle, page indicator, status line and help.
const browserChrome = 11

// BrowserModel lists documents and drives start/stop on the selected one
type BrowserModel struct {
	ViewState
	repo       ports.DocumentRepository
	clip       func(string) error
	now        commands.Clock
	docs       []domain.Document
	loaded     bool
	pager      *Paginator
	activeOnly bool
}

// NewBrowserModel creates a new browser model. clip writes to the system
// clipboard; now may be nil.
func NewBrowserModel(repo ports.DocumentRepository, clip func(string) error, now commands.Clock) *BrowserModel {
	return &BrowserModel{
		repo:  repo,
		clip:  clip,
		now:   now,
		pager: NewPaginator(defaultPageSize),
	}
}

// Init initializes the browser
func (m *BrowserModel) Init() tea.Cmd {
	return m.loadDocuments
}

type documentsLoadedMsg struct {
	docs []domain.Document
}

func (m *BrowserModel) loadDocuments() tea.Msg {
	cmd := commands.NewQueryCommand(m.repo)
	cmd.ActiveOnly = m.activeOnly
	result, err := cmd.Execute(context.Background())
	if err != nil {
		return errMsg{err}
	}
	return documentsLoadedMsg{result.Documents}
}

// Update handles messages for the browser
func (m *BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		m.pager.SetPageSize(msg.Height - browserChrome)
		return m, nil

	case documentsLoadedMsg:
		m.docs = msg.docs
		m.loaded = true
		m.pager.SetTotal(len(m.docs))
		return m, nil

	case errMsg:
		m.SetError(msg.err)
		return m, nil

	case successMsg:
		m.SetMessage(msg.message, false)
		return m, m.loadDocuments

	case tea.KeyMsg:
		m.SetMessage("", false)

		switch {
		case key.Matches(msg, BrowserKeys.Quit):
			return m, tea.Quit

		case key.Matches(msg, BrowserKeys.Up):
			m.pager.CursorUp()
			return m, nil

		case key.Matches(msg, BrowserKeys.Down):
			m.pager.CursorDown()
			return m, nil

		case key.Matches(msg, BrowserKeys.Next):
			m.pager.NextPage()
			return m, nil

		case key.Matches(msg, BrowserKeys.Prev):
			m.pager.PrevPage()
			return m, nil

		case key.Matches(msg, BrowserKeys.Active):
			m.activeOnly = !m.activeOnly
			m.pager.SetCursor(0)
			return m, m.loadDocuments

		case key.Matches(msg, BrowserKeys.Reload):
			return m, m.loadDocuments

		case key.Matches(msg, BrowserKeys.Help):
			return m, func() tea.Msg { return SwitchToHelpMsg{} }
		}

		doc := m.Selected()
		if doc == nil {
			return m, nil
		}
		switch {
		case key.Matches(msg, BrowserKeys.Show):
			d := *doc
			return m, func() tea.Msg { return SwitchToDetailMsg{Document: d} }

		case key.Matches(msg, BrowserKeys.Start):
			return m, m.start(doc.Path)

		case key.Matches(msg, BrowserKeys.Stop):
			return m, m.stop(doc.Path)

		case key.Matches(msg, BrowserKeys.Copy):
			return m, m.copyPath(doc.Path)

		case key.Matches(msg, BrowserKeys.Edit):
			path := doc.Path
			return m, func() tea.Msg { return OpenEditorMsg{Path: path} }
		}
	}

	return m, nil
}

func (m *BrowserModel) start(path string) tea.Cmd {
	return func() tea.Msg {
		cmd := commands.NewStartCommand(m.repo, path)
		cmd.Now = m.now
		result, err := cmd.Execute(context.Background())
		if err != nil {
			return errMsg{err}
		}
		return successMsg{result.Message}
	}
}

func (m *BrowserModel) stop(path string) tea.Cmd {
	return func() tea.Msg {
		cmd := commands.NewStopCommand(m.repo, path)
		cmd.Now = m.now
		result, err := cmd.Execute(context.Background())
		if err != nil {
			return errMsg{err}
		}
		return successMsg{result.Message}
	}
}

func (m *BrowserModel) copyPath(path string) tea.Cmd {
	return func() tea.Msg {
		if err := m.clip(path); err != nil {
			return errMsg{fmt.Errorf("copy to clipboard: %w", err)}
		}
		return successMsg{"Copied " + path}
	}
}

// Selected returns the document under the cursor
func (m *BrowserModel) Selected() *domain.Document {
	if c := m.pager.Cursor(); c < len(m.docs) {
		return &m.docs[c]
	}
	return nil
}

// View renders the browser
func (m *BrowserModel) View() string {
	if !m.loaded {
		if m.Message != "" {
			return NewViewBuilder().Message(m.Message, m.MessageErr).String()
		}
		return "Loading..."
	}

	subtitle := "All documents"
	if m.activeOnly {
		subtitle = "Active documents"
	}
	v := NewViewBuilder().
		Title("Timelog").
		Subtitle(fmt.Sprintf("%s in %s", subtitle, m.repo.Root()))

	if len(m.docs) == 0 {
		v.Muted("Nothing found")
	}
	start, end := m.pager.VisibleRange()
	for i := start; i < end; i++ {
		v.Line(m.renderDocument(&m.docs[i], i == m.pager.Cursor()))
	}
	if m.pager.TotalPages() > 1 {
		v.Muted(fmt.Sprintf("Page %d/%d", m.pager.CurrentPage(), m.pager.TotalPages()))
	}

	return v.
		Message(m.Message, m.MessageErr).
		Help(BrowserKeys.Start, BrowserKeys.Stop, BrowserKeys.Show, BrowserKeys.Edit,
			BrowserKeys.Copy, BrowserKeys.Active, BrowserKeys.Help, BrowserKeys.Quit).
		String()
}

func (m *BrowserModel) renderDocument(doc *domain.Document, selected bool) string {
	marker := styles.InactiveMarker
	style := styles.DocName
	switch {
	case doc.IsActive():
		marker = styles.ActiveMarker
		style = styles.DocActive
	case domain.IsArchived(m.repo.Root(), doc.Path):
		style = styles.DocArchived
	}
	if selected {
		style = styles.DocSelected
	}

	name := doc.Name()
	if rel, err := filepath.Rel(m.repo.Root(), doc.Path); err == nil {
		name = rel
	}
	return fmt.Sprintf("%s%s  %s",
		styles.DocActive.Render(marker),
		style.Render(name),
		styles.Duration.Render(domain.FormatDuration(doc.TotalDuration())),
	)
}
