package domain

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func at(s string) time.Time {
	t, err := time.ParseInLocation(TimestampLayout, s, time.Local)
	if err != nil {
		panic(err)
	}
	return t
}

func doc(path string, worklog ...string) Document {
	return Document{Path: path, Metadata: Metadata{Worklog: worklog}}
}

func TestParseEntry(t *testing.T) {
	tests := []struct {
		name    string
		entry   string
		want    Range
		wantErr bool
	}{
		{
			name:  "closed",
			entry: "2023-04-01T09:00:00,2023-04-01T10:00:00",
			want:  Range{Start: at("2023-04-01T09:00:00"), End: at("2023-04-01T10:00:00")},
		},
		{
			name:  "space after separator",
			entry: "2023-04-01T09:00:00, 2023-04-01T10:00:00",
			want:  Range{Start: at("2023-04-01T09:00:00"), End: at("2023-04-01T10:00:00")},
		},
		{name: "open", entry: "2023-04-01T09:00:00,", wantErr: true},
		{name: "garbage end", entry: "2023-04-01T09:00:00,later", wantErr: true},
		{name: "garbage start", entry: "now,2023-04-01T10:00:00", wantErr: true},
		{name: "empty", entry: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseEntry(tt.entry)
			if tt.wantErr {
				if !errors.Is(err, ErrMalformedEntry) {
					t.Errorf("ParseEntry(%q) error = %v, want ErrMalformedEntry", tt.entry, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseEntry(%q) unexpected error: %v", tt.entry, err)
			}
			if !got.Start.Equal(tt.want.Start) || !got.End.Equal(tt.want.End) {
				t.Errorf("ParseEntry(%q) = %v, want %v", tt.entry, got, tt.want)
			}
		})
	}
}

func TestParseWorklog_WarnsOnMalformed(t *testing.T) {
	d := doc("/diary/ABC-1.md",
		"2023-04-01T09:00:00,2023-04-01T10:00:00",
		"yesterday,2023-04-01T10:00:00",
		"2023-04-02T09:00:00,",
	)

	ranges, warnings := d.ParseWorklog()
	if len(ranges) != 1 {
		t.Fatalf("expected 1 range, got %d", len(ranges))
	}
	if len(warnings) != 1 || warnings[0].Entry != "yesterday,2023-04-01T10:00:00" {
		t.Errorf("expected one warning for the malformed entry, got %v", warnings)
	}
	if warnings[0].Path != d.Path {
		t.Errorf("warning path = %q", warnings[0].Path)
	}
}

func TestIsActive(t *testing.T) {
	tests := []struct {
		name    string
		worklog []string
		want    bool
	}{
		{name: "empty", want: false},
		{name: "closed", worklog: []string{"2023-04-01T09:00:00,2023-04-01T10:00:00"}, want: false},
		{name: "trailing open", worklog: []string{"2023-04-01T09:00:00,2023-04-01T10:00:00", "2023-04-02T09:00:00,"}, want: true},
		{name: "open without separator", worklog: []string{"2023-04-02T09:00:00"}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := doc("/a.md", tt.worklog...)
			if got := d.IsActive(); got != tt.want {
				t.Errorf("IsActive() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStartStop(t *testing.T) {
	d := doc("/diary/ABC-1.md", "2023-04-01T09:00:00,2023-04-01T10:00:00")

	if err := d.Start(at("2023-04-02T09:00:00")); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if !d.IsActive() {
		t.Fatal("expected active after Start")
	}
	if got := d.Metadata.Worklog[1]; got != "2023-04-02T09:00:00," {
		t.Errorf("open entry = %q", got)
	}

	if err := d.Stop(at("2023-04-02T09:45:30")); err != nil {
		t.Fatalf("Stop failed: %v", err)
	}
	if d.IsActive() {
		t.Fatal("expected inactive after Stop")
	}
	if got := d.Metadata.Worklog[1]; got != "2023-04-02T09:00:00,2023-04-02T09:45:30" {
		t.Errorf("closed entry = %q", got)
	}

	ranges := d.WorklogRanges()
	if len(ranges) != 2 {
		t.Fatalf("expected 2 ranges, got %d", len(ranges))
	}
	if ranges[1].Duration() != 45*time.Minute+30*time.Second {
		t.Errorf("duration = %v", ranges[1].Duration())
	}
}

func TestStart_AlreadyActive(t *testing.T) {
	d := doc("/a.md", "2023-04-02T09:00:00,")

	err := d.Start(at("2023-04-02T10:00:00"))
	if !errors.Is(err, ErrAlreadyActive) {
		t.Fatalf("Start on active = %v, want ErrAlreadyActive", err)
	}
	if len(d.Metadata.Worklog) != 1 || d.Metadata.Worklog[0] != "2023-04-02T09:00:00," {
		t.Errorf("worklog changed: %v", d.Metadata.Worklog)
	}
}

func TestStop_NotActive(t *testing.T) {
	for _, worklog := range [][]string{nil, {"2023-04-01T09:00:00,2023-04-01T10:00:00"}} {
		d := doc("/a.md", worklog...)
		err := d.Stop(at("2023-04-02T10:00:00"))
		if !errors.Is(err, ErrNotActive) {
			t.Errorf("Stop on %v = %v, want ErrNotActive", worklog, err)
		}
		if len(d.Metadata.Worklog) != len(worklog) {
			t.Errorf("worklog changed: %v", d.Metadata.Worklog)
		}
	}
}

func TestStop_OpenEntryNotLast(t *testing.T) {
	d := doc("/a.md", "2023-04-01T09:00:00,", "2023-04-01T10:00:00,2023-04-01T11:00:00")

	err := d.Stop(at("2023-04-02T10:00:00"))
	if !errors.Is(err, ErrMalformedEntry) {
		t.Fatalf("Stop = %v, want ErrMalformedEntry", err)
	}
	if !strings.Contains(err.Error(), `entry 1 of 2 "2023-04-01T09:00:00,"`) {
		t.Errorf("Stop error should name the open entry, got %v", err)
	}

	err = d.Start(at("2023-04-02T10:00:00"))
	if !errors.Is(err, ErrAlreadyActive) || !errors.Is(err, ErrMalformedEntry) {
		t.Fatalf("Start = %v, want ErrAlreadyActive and ErrMalformedEntry", err)
	}
	if !strings.Contains(err.Error(), "entry 1 of 2") {
		t.Errorf("Start error should name the open entry, got %v", err)
	}
	if len(d.Metadata.Worklog) != 2 {
		t.Errorf("worklog changed: %v", d.Metadata.Worklog)
	}
}

func TestTicketKeyAndName(t *testing.T) {
	d := doc("/diary/work/ABC/ABC-123.md")
	if d.Name() != "ABC-123.md" {
		t.Errorf("Name() = %q", d.Name())
	}
	if d.TicketKey() != "ABC-123" {
		t.Errorf("TicketKey() = %q", d.TicketKey())
	}
}

func TestClone_Independent(t *testing.T) {
	d := doc("/a.md", "2023-04-01T09:00:00,2023-04-01T10:00:00")
	d.Metadata.Tags = []string{"x"}

	c := d.Clone()
	c.Metadata.Worklog[0] = "changed"
	c.Metadata.Tags[0] = "y"

	if d.Metadata.Worklog[0] == "changed" || d.Metadata.Tags[0] == "y" {
		t.Error("Clone shares slices with the original")
	}
}

func TestHasWork(t *testing.T) {
	d := doc("/a.md", "2023-04-01T09:00:00,2023-04-01T10:00:00")

	if !d.HasWorkAfter(at("2023-04-01T09:30:00")) || d.HasWorkAfter(at("2023-04-01T10:00:00")) {
		t.Error("HasWorkAfter should be strict on the range end")
	}
	if !d.HasWorkBefore(at("2023-04-01T09:30:00")) || d.HasWorkBefore(at("2023-04-01T09:00:00")) {
		t.Error("HasWorkBefore should be strict on the range start")
	}
}
