package domain

import "time"

// SyncEntry is one closed range ready to be uploaded to the ticket tracker
type SyncEntry struct {
	TicketKey       string
	Started         time.Time
	DurationSeconds int64
}

// SyncEntries lists the closed ranges of d in worklog order. Unparsable
// entries are left out and reported to diag.
func SyncEntries(d *Document, diag *Diagnostics) []SyncEntry {
	key := d.TicketKey()
	ranges, warnings := d.ParseWorklog()
	for _, w := range warnings {
		diag.Warn(w)
	}
	entries := make([]SyncEntry, 0, len(ranges))
	for _, r := range ranges {
		entries = append(entries, SyncEntry{
			TicketKey:       key,
			Started:         r.Start,
			DurationSeconds: int64(r.Duration() / time.Second),
		})
	}
	return entries
}
