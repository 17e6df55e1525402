package domain

import (
	"path/filepath"
	"testing"
)

func TestNewTicketDocument(t *testing.T) {
	ticket := &Ticket{
		Key:              "ABC-123",
		Summary:          "Fix login",
		Description:      "Users cannot sign in.",
		Creator:          "Jane Doe",
		OriginalEstimate: "1d",
	}

	tests := []struct {
		name     string
		base     string
		wantPath string
		wantTags []string
	}{
		{"no base", "", filepath.Join("/diary", "ABC", "ABC-123.md"), []string{"ABC", "ABC-123"}},
		{"with base", "work", filepath.Join("/diary", "work", "ABC", "ABC-123.md"), []string{"ABC", "ABC-123", "work"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewTicketDocument("/diary", tt.base, ticket)
			if d.Path != tt.wantPath {
				t.Errorf("Path = %q, want %q", d.Path, tt.wantPath)
			}
			if len(d.Metadata.Tags) != len(tt.wantTags) {
				t.Fatalf("Tags = %v, want %v", d.Metadata.Tags, tt.wantTags)
			}
			for i := range tt.wantTags {
				if d.Metadata.Tags[i] != tt.wantTags[i] {
					t.Errorf("Tags = %v, want %v", d.Metadata.Tags, tt.wantTags)
				}
			}
			if d.Metadata.Author != "Jane Doe" || d.Metadata.Estimate != "1d" {
				t.Errorf("Metadata = %+v", d.Metadata)
			}
			if d.Body != "# Fix login\n\nUsers cannot sign in.\n" {
				t.Errorf("Body = %q", d.Body)
			}
			if d.IsActive() || len(d.Metadata.Worklog) != 0 {
				t.Error("a new document starts with an empty worklog")
			}
		})
	}
}

func TestIsArchived(t *testing.T) {
	if !IsArchived("/diary", "/diary/archive/ABC/ABC-1.md") {
		t.Error("expected archived")
	}
	if IsArchived("/diary", "/diary/ABC/archive.md") {
		t.Error("a file named archive is not archived")
	}
}

func TestSyncEntries(t *testing.T) {
	d := doc("/diary/ABC/ABC-7.md",
		"2023-04-01T09:00:00,2023-04-01T10:30:00",
		"bad,entry",
		"2023-04-02T09:00:00,",
	)

	diag := NewDiagnostics(nil)
	entries := SyncEntries(&d, diag)
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %v", entries)
	}
	if diag.Len() != 1 || diag.Warnings[0].Entry != "bad,entry" {
		t.Errorf("warnings = %v, want the bad entry", diag.Warnings)
	}
	e := entries[0]
	if e.TicketKey != "ABC-7" || !e.Started.Equal(at("2023-04-01T09:00:00")) || e.DurationSeconds != 5400 {
		t.Errorf("entry = %+v", e)
	}
}

func TestDiagnostics_NilSafe(t *testing.T) {
	var diag *Diagnostics
	diag.Warn(Warning{Path: "/a.md"})
	if diag.Len() != 0 {
		t.Error("nil diagnostics should record nothing")
	}

	diag = NewDiagnostics(nil)
	diag.Warn(Warning{Path: "/a.md", Entry: "x", Err: ErrMalformedEntry})
	if diag.Len() != 1 {
		t.Errorf("Len() = %d", diag.Len())
	}
	if got := diag.Warnings[0].String(); got != `/a.md: entry "x": malformed worklog entry` {
		t.Errorf("String() = %q", got)
	}
}
