package domain

import (
	"slices"
	"strings"
	"time"
)

// Window is the clipping window of a date query. A zero End means unbounded.
type Window struct {
	Start time.Time
	End   time.Time
}

// NewWindow builds the window from startDate at 00:00:00 to endDate at
// 23:59:59. A zero endDate leaves the window unbounded.
func NewWindow(startDate, endDate time.Time) Window {
	w := Window{Start: startOfDay(startDate)}
	if !endDate.IsZero() {
		y, m, d := endDate.Date()
		w.End = time.Date(y, m, d, 23, 59, 59, 0, time.Local)
	}
	return w
}

// Bounded reports whether the window has an end
func (w Window) Bounded() bool {
	return !w.End.IsZero()
}

// Contains reports whether r lies strictly inside the window. A range
// touching either edge is outside.
func (w Window) Contains(r Range) bool {
	if !r.Start.After(w.Start) {
		return false
	}
	return !w.Bounded() || r.End.Before(w.End)
}

// Overlaps is the coarse existence check run before clipping: some range
// ends after the window start and, when bounded, some range starts before
// the window end.
func (w Window) Overlaps(d *Document) bool {
	if !d.HasWorkAfter(w.Start) {
		return false
	}
	return !w.Bounded() || d.HasWorkBefore(w.End)
}

// FilterActive keeps documents with an open worklog entry
func FilterActive(docs []Document) []Document {
	return filter(docs, func(d *Document) bool { return d.IsActive() })
}

// FilterTags keeps documents sharing at least one tag with tags
func FilterTags(docs []Document, tags []string) []Document {
	return filter(docs, func(d *Document) bool {
		for _, t := range d.Metadata.Tags {
			if slices.Contains(tags, t) {
				return true
			}
		}
		return false
	})
}

// FilterPath keeps documents whose path contains substr
func FilterPath(docs []Document, substr string) []Document {
	return filter(docs, func(d *Document) bool { return strings.Contains(d.Path, substr) })
}

// ExactMatch picks the one document named exactly by s: first by full
// path, then by file name or ticket key. ok is false when no document or
// more than one document matches that way.
func ExactMatch(docs []Document, s string) (doc *Document, ok bool) {
	for i := range docs {
		if docs[i].Path == s {
			return &docs[i], true
		}
	}
	for i := range docs {
		if docs[i].Name() != s && docs[i].TicketKey() != s {
			continue
		}
		if doc != nil {
			return nil, false
		}
		doc = &docs[i]
	}
	return doc, doc != nil
}

// FilterPaths keeps documents whose path contains any of substrs
func FilterPaths(docs []Document, substrs []string) []Document {
	return filter(docs, func(d *Document) bool {
		for _, s := range substrs {
			if strings.Contains(d.Path, s) {
				return true
			}
		}
		return false
	})
}

// Clip returns copies of the documents overlapping w with their worklog
// rewritten to the entries strictly inside w. Documents left without
// entries are dropped. Unparsable entries are dropped and reported to diag.
func Clip(docs []Document, w Window, diag *Diagnostics) []Document {
	var out []Document
	for i := range docs {
		if !w.Overlaps(&docs[i]) {
			continue
		}
		doc := docs[i].Clone()
		var kept []string
		for _, entry := range doc.Metadata.Worklog {
			if isOpenEntry(entry) {
				continue
			}
			r, err := ParseEntry(entry)
			if err != nil {
				diag.Warn(Warning{Path: doc.Path, Entry: entry, Err: err})
				continue
			}
			if w.Contains(r) {
				kept = append(kept, entry)
			}
		}
		if len(kept) == 0 {
			continue
		}
		doc.Metadata.Worklog = kept
		out = append(out, doc)
	}
	return out
}

// ReportMalformed sends a warning to diag for every unparsable worklog
// entry of docs
func ReportMalformed(docs []Document, diag *Diagnostics) {
	for i := range docs {
		_, warnings := docs[i].ParseWorklog()
		for _, w := range warnings {
			diag.Warn(w)
		}
	}
}

// SortByFirstRange orders documents by the start of their first range.
// Documents without ranges sort first. The sort is stable.
func SortByFirstRange(docs []Document) {
	slices.SortStableFunc(docs, func(a, b Document) int {
		return firstStart(&a).Compare(firstStart(&b))
	})
}

func firstStart(d *Document) time.Time {
	ranges := d.WorklogRanges()
	if len(ranges) == 0 {
		return time.Time{}
	}
	return ranges[0].Start
}

func filter(docs []Document, keep func(*Document) bool) []Document {
	out := make([]Document, 0, len(docs))
	for i := range docs {
		if keep(&docs[i]) {
			out = append(out, docs[i])
		}
	}
	return out
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

// Query selects documents. Tags take precedence over Paths; Window, when
// set, clips and sorts whatever the selection stage kept.
type Query struct {
	Tags       []string
	Paths      []string
	Window     *Window
	ActiveOnly bool
}

// Run applies the query stages in order: select, clip, sort
func (q Query) Run(docs []Document, diag *Diagnostics) []Document {
	switch {
	case len(q.Tags) > 0:
		docs = FilterTags(docs, q.Tags)
	case len(q.Paths) > 0:
		docs = FilterPaths(docs, q.Paths)
	}
	if q.ActiveOnly {
		docs = FilterActive(docs)
	}
	if q.Window == nil {
		ReportMalformed(docs, diag)
		return docs
	}
	docs = Clip(docs, *q.Window, diag)
	SortByFirstRange(docs)
	return docs
}
