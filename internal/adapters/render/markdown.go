package render

import (
	"github.com/charmbracelet/glamour"
)

// Markdown renders a document body for the terminal. Width 0 keeps
// glamour's default word wrap.
func Markdown(body string, width int) (string, error) {
	opts := []glamour.TermRendererOption{glamour.WithAutoStyle()}
	if width > 0 {
		opts = append(opts, glamour.WithWordWrap(width))
	}
	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", err
	}
	return r.Render(body)
}

// MarkdownOrPlain falls back to the raw body when rendering fails
func MarkdownOrPlain(body string, width int) string {
	out, err := Markdown(body, width)
	if err != nil {
		return body
	}
	return out
}
