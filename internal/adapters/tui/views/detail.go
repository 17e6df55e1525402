package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"timelog/internal/adapters/render"
	"timelog/internal/adapters/tui/styles"
	"timelog/internal/domain"
)

// DetailKeyMap defines key bindings for the detail view
type DetailKeyMap struct {
	Back key.Binding
	Edit key.Binding
}

var DetailKeys = DetailKeyMap{
	Back: key.NewBinding(
		key.WithKeys("esc", "q"),
		key.WithHelp("esc/q", "back"),
	),
	Edit: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "edit"),
	),
}

// reserved lines around the viewport: title, subtitle, help
const detailChrome = 8

// DetailModel shows one document: its metadata, worklog and rendered body
type DetailModel struct {
	ViewState
	doc domain.Document
	vp  viewport.Model
}

// NewDetailModel creates a new detail view model
func NewDetailModel() *DetailModel {
	return &DetailModel{vp: viewport.New(80, 20)}
}

// SetDocument replaces the displayed document
func (m *DetailModel) SetDocument(doc domain.Document) {
	m.doc = doc
	m.vp.SetContent(m.content())
	m.vp.GotoTop()
}

// SetSize updates the view dimensions
func (m *DetailModel) SetSize(width, height int) {
	m.ViewState.SetSize(width, height)
	m.vp.Width = width
	m.vp.Height = max(3, height-detailChrome)
	if m.doc.Path != "" {
		m.vp.SetContent(m.content())
	}
}

func (m *DetailModel) content() string {
	var b strings.Builder
	meta := m.doc.Metadata
	if meta.Author != "" {
		b.WriteString(styles.Label.Render("Author: ") + meta.Author + "\n")
	}
	if len(meta.Tags) > 0 {
		b.WriteString(styles.Label.Render("Tags: ") + strings.Join(meta.Tags, ", ") + "\n")
	}
	if meta.Estimate != "" {
		b.WriteString(styles.Label.Render("Estimate: ") + meta.Estimate + "\n")
	}

	b.WriteString("\n" + styles.Label.Render("Worklog") + "\n")
	for _, r := range m.doc.WorklogRanges() {
		b.WriteString("  " + render.FormatRange(r) + "\n")
	}
	if m.doc.IsActive() {
		b.WriteString("  " + styles.DocActive.Render("running") + "\n")
	}
	b.WriteString("  " + styles.Duration.Render("total "+domain.FormatDuration(m.doc.TotalDuration())) + "\n\n")

	b.WriteString(render.MarkdownOrPlain(m.doc.Body, m.Width))
	return b.String()
}

// Init initializes the detail view
func (m *DetailModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the detail view
func (m *DetailModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, DetailKeys.Back):
			return m, func() tea.Msg { return SwitchToBrowserMsg{} }
		case key.Matches(msg, DetailKeys.Edit):
			path := m.doc.Path
			return m, func() tea.Msg { return OpenEditorMsg{Path: path} }
		}
	}

	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

// View renders the detail view
func (m *DetailModel) View() string {
	return NewViewBuilder().
		Title(m.doc.TicketKey()).
		Subtitle(m.doc.Path).
		Raw(m.vp.View()).
		Line("").
		Help(DetailKeys.Back, DetailKeys.Edit).
		String()
}
