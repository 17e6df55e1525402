package domain

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// TimestampLayout is the worklog timestamp format: local wall clock, second
// precision, no offset (e.g. 2023-04-01T09:00:00).
const TimestampLayout = "2006-01-02T15:04:05"

// entrySeparator splits a raw worklog entry into its start and end parts
const entrySeparator = ","

var (
	ErrAlreadyActive  = errors.New("document is already active")
	ErrNotActive      = errors.New("document is not active")
	ErrMalformedEntry = errors.New("malformed worklog entry")
)

// Metadata is the structured header of a tracked document
type Metadata struct {
	Author   string   `yaml:"author,omitempty"`
	Date     string   `yaml:"date,omitempty"`
	Tags     []string `yaml:"tags"`
	Estimate string   `yaml:"estimate,omitempty"`
	Worklog  []string `yaml:"worklog"`
}

// Document is one tracked work item
type Document struct {
	Path     string
	Metadata Metadata
	Body     string
}

// DocumentUpdate is a full replacement of a stored document's header
type DocumentUpdate struct {
	Path     string
	Metadata Metadata
}

// Update returns the write request that persists d's metadata
func (d *Document) Update() DocumentUpdate {
	return DocumentUpdate{Path: d.Path, Metadata: d.Metadata}
}

// Range is a closed work session [Start, End)
type Range struct {
	Start time.Time
	End   time.Time
}

// Duration returns the length of the session
func (r Range) Duration() time.Duration {
	return r.End.Sub(r.Start)
}

// Name returns the last path segment, used as the display name
func (d *Document) Name() string {
	return filepath.Base(d.Path)
}

// TicketKey returns the file name without its extension (e.g. ABC-123)
func (d *Document) TicketKey() string {
	name := d.Name()
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// Clone returns a copy whose metadata slices can be rewritten without
// touching the original.
func (d *Document) Clone() Document {
	c := *d
	c.Metadata.Tags = append([]string(nil), d.Metadata.Tags...)
	c.Metadata.Worklog = append([]string(nil), d.Metadata.Worklog...)
	return c
}

func splitEntry(entry string) []string {
	parts := strings.Split(entry, entrySeparator)
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

// IsEntryComplete reports whether a raw entry has a non-empty end part
func IsEntryComplete(entry string) bool {
	parts := splitEntry(entry)
	return len(parts) > 1 && parts[0] != "" && parts[1] != ""
}

// IsActive reports whether any worklog entry is still open
func (d *Document) IsActive() bool {
	for _, entry := range d.Metadata.Worklog {
		if !IsEntryComplete(entry) {
			return true
		}
	}
	return false
}

// ParseEntry parses a closed raw entry into a Range
func ParseEntry(entry string) (Range, error) {
	if !IsEntryComplete(entry) {
		return Range{}, fmt.Errorf("%w: %q has no end timestamp", ErrMalformedEntry, entry)
	}
	parts := splitEntry(entry)
	start, err := time.ParseInLocation(TimestampLayout, parts[0], time.Local)
	if err != nil {
		return Range{}, fmt.Errorf("%w: start of %q: %v", ErrMalformedEntry, entry, err)
	}
	end, err := time.ParseInLocation(TimestampLayout, parts[1], time.Local)
	if err != nil {
		return Range{}, fmt.Errorf("%w: end of %q: %v", ErrMalformedEntry, entry, err)
	}
	return Range{Start: start, End: end}, nil
}

// ParseWorklog returns the ranges of every closed entry, plus a warning for
// each entry that could not be parsed. A well-formed open entry is skipped
// without a warning.
func (d *Document) ParseWorklog() ([]Range, []Warning) {
	var ranges []Range
	var warnings []Warning
	for _, entry := range d.Metadata.Worklog {
		if isOpenEntry(entry) {
			continue
		}
		r, err := ParseEntry(entry)
		if err != nil {
			warnings = append(warnings, Warning{Path: d.Path, Entry: entry, Err: err})
			continue
		}
		ranges = append(ranges, r)
	}
	return ranges, warnings
}

func isOpenEntry(entry string) bool {
	if IsEntryComplete(entry) {
		return false
	}
	_, err := time.ParseInLocation(TimestampLayout, splitEntry(entry)[0], time.Local)
	return err == nil
}

// WorklogRanges returns the ranges of every parsable closed entry
func (d *Document) WorklogRanges() []Range {
	ranges, _ := d.ParseWorklog()
	return ranges
}

// HasWorkAfter reports whether any range ends strictly after t
func (d *Document) HasWorkAfter(t time.Time) bool {
	for _, r := range d.WorklogRanges() {
		if r.End.After(t) {
			return true
		}
	}
	return false
}

// HasWorkBefore reports whether any range starts strictly before t
func (d *Document) HasWorkBefore(t time.Time) bool {
	for _, r := range d.WorklogRanges() {
		if r.Start.Before(t) {
			return true
		}
	}
	return false
}

// TotalDuration sums the duration of every parsable range
func (d *Document) TotalDuration() time.Duration {
	var total time.Duration
	for _, r := range d.WorklogRanges() {
		total += r.Duration()
	}
	return total
}

// strayOpenEntry returns the index of the first open entry that is not the
// last one. Stop can never close it; it has to be fixed by hand.
func (d *Document) strayOpenEntry() (int, bool) {
	last := len(d.Metadata.Worklog) - 1
	for i := 0; i < last; i++ {
		if !IsEntryComplete(d.Metadata.Worklog[i]) {
			return i, true
		}
	}
	return 0, false
}

func (d *Document) strayEntryError(i int) error {
	return fmt.Errorf("%w: entry %d of %d %q is open but is not the last entry",
		ErrMalformedEntry, i+1, len(d.Metadata.Worklog), d.Metadata.Worklog[i])
}

// CanStart returns the error Start would fail with, or nil
func (d *Document) CanStart() error {
	if !d.IsActive() {
		return nil
	}
	if i, ok := d.strayOpenEntry(); ok {
		return fmt.Errorf("%w: %w", ErrAlreadyActive, d.strayEntryError(i))
	}
	return ErrAlreadyActive
}

// Start opens a new worklog entry at now.
// Inactive -> Active; fails with ErrAlreadyActive otherwise.
func (d *Document) Start(now time.Time) error {
	if err := d.CanStart(); err != nil {
		return err
	}
	d.Metadata.Worklog = append(d.Metadata.Worklog, FormatTimestamp(now)+entrySeparator)
	return nil
}

// Stop closes the last worklog entry at now.
// Active -> Inactive; fails with ErrNotActive otherwise.
func (d *Document) Stop(now time.Time) error {
	if !d.IsActive() {
		return ErrNotActive
	}
	last := len(d.Metadata.Worklog) - 1
	entry := d.Metadata.Worklog[last]
	if IsEntryComplete(entry) {
		i, _ := d.strayOpenEntry()
		return d.strayEntryError(i)
	}
	start := splitEntry(entry)[0]
	if start == "" {
		return fmt.Errorf("%w: last entry %q has no start timestamp", ErrMalformedEntry, entry)
	}
	d.Metadata.Worklog[last] = start + entrySeparator + FormatTimestamp(now)
	return nil
}

// FormatTimestamp renders t in local time with second precision
func FormatTimestamp(t time.Time) string {
	return t.In(time.Local).Format(TimestampLayout)
}
