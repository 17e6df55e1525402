package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"timelog/internal/application"
	"timelog/internal/domain"
	"timelog/internal/ports"
)

// SyncResult counts what a worklog sync did
type SyncResult struct {
	Synced   []string
	Uploaded int
	Skipped  int
	Warnings []domain.Warning
	Message  string
}

// SyncWorklogCommand uploads the closed ranges of every matched document to
// the ticket tracker. A failed upload stops that document only.
type SyncWorklogCommand struct {
	repo    ports.DocumentRepository
	tracker ports.TicketTracker
	Paths   []string
	Logger  *slog.Logger
}

// NewSyncWorklogCommand creates a new SyncWorklogCommand
func NewSyncWorklogCommand(repo ports.DocumentRepository, tracker ports.TicketTracker, paths ...string) *SyncWorklogCommand {
	return &SyncWorklogCommand{repo: repo, tracker: tracker, Paths: paths}
}

// Execute runs the sync command
func (c *SyncWorklogCommand) Execute(ctx context.Context) (*SyncResult, error) {
	logger := loggerOr(c.Logger)
	diag := domain.NewDiagnostics(logger)
	matched, err := matchDocuments(c.repo, c.Paths, diag)
	if err != nil {
		return nil, err
	}

	result := &SyncResult{}
	var errs []error
	for i := range matched {
		doc := &matched[i]
		logger.Info("syncing worklogs", "path", doc.Path)
		uploaded, skipped, err := SyncDocument(ctx, c.tracker, doc, diag, logger)
		result.Uploaded += uploaded
		result.Skipped += skipped
		if err != nil {
			errs = append(errs, err)
			continue
		}
		result.Synced = append(result.Synced, doc.Path)
	}
	result.Warnings = diag.Warnings
	result.Message = fmt.Sprintf("Synced %d of %d documents: %d uploaded, %d already present",
		len(result.Synced), len(matched), result.Uploaded, result.Skipped)
	return result, errors.Join(errs...)
}

// SyncDocument uploads the closed ranges of doc in worklog order. Ranges
// whose start already exists remotely are skipped. The first failed upload
// aborts the rest. Unparsable entries are never uploaded; they go to diag.
func SyncDocument(ctx context.Context, tracker ports.TicketTracker, doc *domain.Document, diag *domain.Diagnostics, logger *slog.Logger) (uploaded, skipped int, err error) {
	logger = loggerOr(logger)
	key := doc.TicketKey()

	remote, err := tracker.ListWorklogs(ctx, key)
	if err != nil {
		return 0, 0, &application.SyncError{Path: doc.Path, Err: err}
	}
	existing := make(map[int64]bool, len(remote))
	for _, w := range remote {
		existing[w.Started.Unix()] = true
	}

	for _, entry := range domain.SyncEntries(doc, diag) {
		started := domain.FormatTimestamp(entry.Started)
		if existing[entry.Started.Unix()] {
			logger.Info("skipping existing worklog", "key", key, "started", started)
			skipped++
			continue
		}
		if err := ctx.Err(); err != nil {
			return uploaded, skipped, &application.SyncError{Path: doc.Path, Started: started, Err: err}
		}
		if err := tracker.AddWorklog(ctx, entry); err != nil {
			return uploaded, skipped, &application.SyncError{Path: doc.Path, Started: started, Err: err}
		}
		uploaded++
	}
	return uploaded, skipped, nil
}
