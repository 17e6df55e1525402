package render

import (
	"strings"
	"testing"
	"time"

	"timelog/internal/domain"
)

func TestFormatRange(t *testing.T) {
	r := domain.Range{
		Start: time.Date(2023, 4, 1, 9, 0, 0, 0, time.Local),
		End:   time.Date(2023, 4, 1, 10, 7, 0, 0, time.Local),
	}
	want := "2023-04-01 09:00:00 -> 2023-04-01 10:07:00: 1h 07m"
	if got := FormatRange(r); got != want {
		t.Errorf("FormatRange() = %q, want %q", got, want)
	}
}

func TestQueryReport(t *testing.T) {
	docs := []domain.Document{
		{
			Path: "/diary/ABC/ABC-1.md",
			Metadata: domain.Metadata{Worklog: []string{
				"2023-04-01T09:00:00,2023-04-01T10:00:00",
				"2023-04-01T11:00:00,2023-04-01T11:30:00",
			}},
		},
		{
			Path: "/diary/ABC/ABC-2.md",
			Metadata: domain.Metadata{Worklog: []string{
				"2023-04-02T09:00:00,2023-04-02T09:15:00",
				"2023-04-02T10:00:00,",
			}},
		},
	}

	out := QueryReport(docs)

	for _, want := range []string{
		"Ticket", "Log", "Duration",
		"ABC-1.md", "ABC-2.md",
		"2023-04-01 09:00:00 -> 2023-04-01 10:00:00: 1h 00m",
		"1h 30m", // ABC-1 subtotal
		"0h 15m", // ABC-2 subtotal
		"1h 45m", // grand total
		"running",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("QueryReport() missing %q in:\n%s", want, out)
		}
	}
}

func TestQueryReport_Empty(t *testing.T) {
	out := QueryReport(nil)
	if !strings.Contains(out, "0h 00m") {
		t.Errorf("QueryReport(nil) should still print a zero total, got:\n%s", out)
	}
}

func TestTagsReport(t *testing.T) {
	report := domain.TagsReport{
		Tags: []domain.TagTotal{
			{Tag: "backend", Duration: 90 * time.Minute},
			{Tag: "meetings", Duration: 30 * time.Minute},
		},
		Total: 2 * time.Hour,
	}

	out := TagsReport(report)

	for _, want := range []string{"Tag", "backend", "1h 30m", "meetings", "0h 30m", "total", "2h 00m"} {
		if !strings.Contains(out, want) {
			t.Errorf("TagsReport() missing %q in:\n%s", want, out)
		}
	}
	if strings.Index(out, "backend") > strings.Index(out, "meetings") {
		t.Error("TagsReport() should keep the report order")
	}
}

func TestPaths(t *testing.T) {
	docs := []domain.Document{{Path: "/a.md"}, {Path: "/b.md"}}
	if got := Paths(docs); got != "/a.md\n/b.md\n" {
		t.Errorf("Paths() = %q", got)
	}
}

func TestMarkdown(t *testing.T) {
	out, err := Markdown("# Fix login\n\nUsers cannot sign in.\n", 80)
	if err != nil {
		t.Fatalf("Markdown() error: %v", err)
	}
	for _, want := range []string{"Fix login", "Users cannot sign in."} {
		if !strings.Contains(out, want) {
			t.Errorf("Markdown() missing %q in:\n%s", want, out)
		}
	}
}
