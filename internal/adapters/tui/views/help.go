package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"timelog/internal/adapters/tui/styles"
)

// HelpKeyMap defines key bindings for the help view
type HelpKeyMap struct {
	Close key.Binding
}

var HelpKeys = HelpKeyMap{
	Close: key.NewBinding(
		key.WithKeys("esc", "q", "?"),
		key.WithHelp("esc/q/?", "close"),
	),
}

// HelpModel is the model for the help view
type HelpModel struct {
	ViewState
}

// NewHelpModel creates a new help view model
func NewHelpModel() *HelpModel {
	return &HelpModel{}
}

// Init initializes the help view
func (m *HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the help view
func (m *HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, HelpKeys.Close) {
		return m, func() tea.Msg { return SwitchToBrowserMsg{} }
	}
	return m, nil
}

// View renders the help view
func (m *HelpModel) View() string {
	v := NewViewBuilder().
		Title("Timelog Help").
		Subtitle("Time tracking over markdown documents")

	v.Label("Navigation")
	v.Raw(helpLine("j / k / ↑ / ↓", "Move up/down"))
	v.Raw(helpLine("n / p", "Next/previous page"))
	v.Raw(helpLine("enter", "Show document"))
	v.BlankLine()

	v.Label("Tracking")
	v.Raw(helpLine("s", "Start the selected document, stopping any other"))
	v.Raw(helpLine("x", "Stop the selected document"))
	v.BlankLine()

	v.Label("General")
	v.Raw(helpLine("e", "Open in editor"))
	v.Raw(helpLine("y", "Copy path to clipboard"))
	v.Raw(helpLine("a", "Toggle active only"))
	v.Raw(helpLine("r", "Reload"))
	v.Raw(helpLine("?", "Toggle help"))
	v.Raw(helpLine("q / Ctrl+C", "Quit"))

	return v.Help(HelpKeys.Close).String()
}

func helpLine(key, desc string) string {
	return "  " + styles.HelpKey.Render(padRight(key, 20)) + styles.HelpDesc.Render(desc) + "\n"
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}
