package domain

import (
	"fmt"
	"log/slog"
)

// Warning is a recoverable problem found while reading documents
type Warning struct {
	Path  string
	Entry string // raw worklog entry, empty for document-level problems
	Err   error
}

func (w Warning) String() string {
	if w.Entry == "" {
		return fmt.Sprintf("%s: %v", w.Path, w.Err)
	}
	return fmt.Sprintf("%s: entry %q: %v", w.Path, w.Entry, w.Err)
}

// Diagnostics collects warnings next to a primary result and mirrors them
// to a logger. A nil *Diagnostics discards everything.
type Diagnostics struct {
	Warnings []Warning
	logger   *slog.Logger
}

// NewDiagnostics creates a sink that logs through logger (may be nil)
func NewDiagnostics(logger *slog.Logger) *Diagnostics {
	return &Diagnostics{logger: logger}
}

// Warn records w
func (d *Diagnostics) Warn(w Warning) {
	if d == nil {
		return
	}
	d.Warnings = append(d.Warnings, w)
	if d.logger != nil {
		attrs := []any{"path", w.Path, "err", w.Err}
		if w.Entry != "" {
			attrs = append(attrs, "entry", w.Entry)
		}
		d.logger.Warn("skipping unreadable data", attrs...)
	}
}

// Len returns the number of recorded warnings
func (d *Diagnostics) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Warnings)
}
