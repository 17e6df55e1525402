package domain

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// ArchiveDir is the directory, relative to the repository root, that
// archived documents are moved into
const ArchiveDir = "archive"

// Ticket is an issue fetched from the ticket tracker
type Ticket struct {
	Key              string
	Summary          string
	Description      string
	Creator          string
	OriginalEstimate string
}

// Project returns the key prefix (ABC for ABC-123)
func (t *Ticket) Project() string {
	project, _, _ := strings.Cut(t.Key, "-")
	return project
}

// RemoteWorklog is a worklog already stored in the ticket tracker
type RemoteWorklog struct {
	ID               string
	Started          time.Time
	TimeSpentSeconds int64
}

// NewTicketDocument builds the document created for a fetched ticket:
// <root>/[<base>/]<PROJECT>/<KEY>.md, tagged with the project, the key and
// the base directory when given.
func NewTicketDocument(root, base string, t *Ticket) Document {
	project := t.Project()
	tags := []string{project, t.Key}
	dir := filepath.Join(root, project)
	if base != "" {
		tags = append(tags, base)
		dir = filepath.Join(root, base, project)
	}

	body := fmt.Sprintf("# %s\n\n%s\n", t.Summary, t.Description)
	return Document{
		Path: filepath.Join(dir, t.Key+".md"),
		Metadata: Metadata{
			Author:   t.Creator,
			Tags:     tags,
			Estimate: t.OriginalEstimate,
		},
		Body: body,
	}
}

// IsArchived reports whether path lies in the archive directory under root
func IsArchived(root, path string) bool {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	first, _, _ := strings.Cut(filepath.ToSlash(rel), "/")
	return first == ArchiveDir
}
