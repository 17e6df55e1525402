package render

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"timelog/internal/domain"
)

// RangeLayout is how a range's edges are printed in the query report
const RangeLayout = "2006-01-02 15:04:05"

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	numberStyle = cellStyle.Align(lipgloss.Right)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
)

// FormatRange renders a range as "start -> end: 1h 00m"
func FormatRange(r domain.Range) string {
	return r.Start.Format(RangeLayout) + " -> " + r.End.Format(RangeLayout) + ": " + domain.FormatDuration(r.Duration())
}

// QueryReport renders one row per document with its ranges, a subtotal row
// under each document and the grand total as the last row.
func QueryReport(docs []domain.Document) string {
	var rows [][]string
	var total time.Duration
	for i := range docs {
		doc := &docs[i]
		var lines []string
		var subtotal time.Duration
		for _, r := range doc.WorklogRanges() {
			lines = append(lines, FormatRange(r))
			subtotal += r.Duration()
		}
		if doc.IsActive() {
			lines = append(lines, "running")
		}
		rows = append(rows,
			[]string{doc.Name(), strings.Join(lines, "\n"), ""},
			[]string{"", "", domain.FormatDuration(subtotal)},
		)
		total += subtotal
	}
	rows = append(rows, []string{"", "", domain.FormatDuration(total)})

	return newTable("Ticket", "Log", "Duration").Rows(rows...).String()
}

// TagsReport renders the per-tag rollup followed by the grand total
func TagsReport(report domain.TagsReport) string {
	rows := make([][]string, 0, len(report.Tags)+1)
	for _, t := range report.Tags {
		rows = append(rows, []string{t.Tag, domain.FormatDuration(t.Duration)})
	}
	rows = append(rows, []string{"total", domain.FormatDuration(report.Total)})

	return newTable("Tag", "Duration").Rows(rows...).String()
}

// Paths renders one document path per line
func Paths(docs []domain.Document) string {
	var b strings.Builder
	for i := range docs {
		b.WriteString(docs[i].Path)
		b.WriteString("\n")
	}
	return b.String()
}

func newTable(headers ...string) *table.Table {
	last := len(headers) - 1
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == last:
				return numberStyle
			default:
				return cellStyle
			}
		})
}
