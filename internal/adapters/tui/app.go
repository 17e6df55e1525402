package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"timelog/internal/adapters/tui/views"
	"timelog/internal/application/commands"
	"timelog/internal/ports"
)

// ViewState represents the current view
type ViewState int

const (
	ViewBrowser ViewState = iota
	ViewDetail
	ViewHelp
)

// App is the main TUI application model
type App struct {
	editor ports.EditorOpener

	state   ViewState
	browser *views.BrowserModel
	detail  *views.DetailModel
	help    *views.HelpModel
}

// NewApp creates a new TUI application. ed may be nil, which disables
// editing; clip writes to the system clipboard.
func NewApp(repo ports.DocumentRepository, ed ports.EditorOpener, clip func(string) error, now commands.Clock) *App {
	return &App{
		editor:  ed,
		state:   ViewBrowser,
		browser: views.NewBrowserModel(repo, clip, now),
		detail:  views.NewDetailModel(),
		help:    views.NewHelpModel(),
	}
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return a.browser.Init()
}

// State returns the active view
func (a *App) State() ViewState {
	return a.state
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.browser.SetSize(msg.Width, msg.Height)
		a.detail.SetSize(msg.Width, msg.Height)
		a.help.SetSize(msg.Width, msg.Height)
		return a, nil

	case views.SwitchToDetailMsg:
		a.state = ViewDetail
		a.detail.SetDocument(msg.Document)
		return a, nil

	case views.SwitchToHelpMsg:
		a.state = ViewHelp
		return a, nil

	case views.SwitchToBrowserMsg:
		a.state = ViewBrowser
		return a, a.browser.Init()

	case views.OpenEditorMsg:
		a.state = ViewBrowser
		return a, a.openEditor(msg.Path)

	case editorFinishedMsg:
		if msg.err != nil {
			a.browser.SetError(msg.err)
		}
		return a, a.browser.Init()
	}

	// Delegate to current view
	var cmd tea.Cmd
	switch a.state {
	case ViewBrowser:
		_, cmd = a.browser.Update(msg)
	case ViewDetail:
		_, cmd = a.detail.Update(msg)
	case ViewHelp:
		_, cmd = a.help.Update(msg)
	}

	return a, cmd
}

type editorFinishedMsg struct{ err error }

func (a *App) openEditor(path string) tea.Cmd {
	if a.editor == nil {
		return nil
	}

	cmd, err := a.editor.Command(path)
	if err != nil {
		return func() tea.Msg {
			return editorFinishedMsg{err: err}
		}
	}

	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return editorFinishedMsg{err: err}
	})
}

// View renders the current view
func (a *App) View() string {
	switch a.state {
	case ViewDetail:
		return a.detail.View()
	case ViewHelp:
		return a.help.View()
	default:
		return a.browser.View()
	}
}
