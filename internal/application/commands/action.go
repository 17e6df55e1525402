package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"timelog/internal/application"
	"timelog/internal/domain"
	"timelog/internal/ports"
)

// ActionResult contains the documents an action changed
type ActionResult struct {
	Done    []string
	Message string
}

// StartCommand starts tracking time on exactly one document. Any other
// running document is stopped first so only one timer runs at a time.
type StartCommand struct {
	repo   ports.DocumentRepository
	Path   string
	Now    Clock
	Logger *slog.Logger
}

// NewStartCommand creates a new StartCommand
func NewStartCommand(repo ports.DocumentRepository, path string) *StartCommand {
	return &StartCommand{repo: repo, Path: path}
}

// Validate checks if the start operation is valid
func (c *StartCommand) Validate() error {
	return application.ValidateRequired("path", c.Path)
}

// Execute runs the start command
func (c *StartCommand) Execute(ctx context.Context) (*ActionResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	logger := loggerOr(c.Logger)
	docs, err := c.repo.ListAll(domain.NewDiagnostics(logger))
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}

	target, err := c.resolve(docs)
	if err != nil {
		return nil, err
	}
	if err := target.CanStart(); err != nil {
		return nil, &application.TransitionError{Path: target.Path, Action: "start", Err: err}
	}

	t := now(c.Now)
	var stopped []string
	for _, doc := range domain.FilterActive(docs) {
		if doc.Path == target.Path {
			continue
		}
		if err := doc.Stop(t); err != nil {
			return nil, &application.TransitionError{Path: doc.Path, Action: "stop", Err: err}
		}
		if err := c.repo.Write(doc.Update()); err != nil {
			return nil, fmt.Errorf("failed to stop %s: %w", doc.Path, err)
		}
		logger.Info("stopped running document", "path", doc.Path)
		stopped = append(stopped, doc.Path)
	}

	if err := target.Start(t); err != nil {
		return nil, &application.TransitionError{Path: target.Path, Action: "start", Err: err}
	}
	if err := c.repo.Write(target.Update()); err != nil {
		return nil, fmt.Errorf("failed to start %s: %w", target.Path, err)
	}

	msg := fmt.Sprintf("Started %s", target.Name())
	if len(stopped) > 0 {
		msg += fmt.Sprintf(" (stopped %s)", strings.Join(stopped, ", "))
	}
	return &ActionResult{Done: []string{target.Path}, Message: msg}, nil
}

// resolve picks the start target. A document named exactly by Path wins
// over other documents whose path merely contains it.
func (c *StartCommand) resolve(docs []domain.Document) (domain.Document, error) {
	matched := domain.FilterPath(docs, c.Path)
	if len(matched) == 0 {
		return domain.Document{}, fmt.Errorf("%s: %w", c.Path, application.ErrNotFound)
	}
	if len(matched) == 1 {
		return matched[0], nil
	}
	if doc, ok := domain.ExactMatch(matched, c.Path); ok {
		return *doc, nil
	}
	return domain.Document{}, &application.ValidationError{
		Field:   "path",
		Message: fmt.Sprintf("%q matches %d documents, start needs exactly one", c.Path, len(matched)),
	}
}

// StopCommand stops tracking time on every matched document
type StopCommand struct {
	repo   ports.DocumentRepository
	Paths  []string
	Now    Clock
	Logger *slog.Logger
}

// NewStopCommand creates a new StopCommand
func NewStopCommand(repo ports.DocumentRepository, paths ...string) *StopCommand {
	return &StopCommand{repo: repo, Paths: paths}
}

// Execute runs the stop command. Documents that are not running are
// reported and left untouched; the others are still stopped.
func (c *StopCommand) Execute(ctx context.Context) (*ActionResult, error) {
	matched, err := matchDocuments(c.repo, c.Paths, domain.NewDiagnostics(loggerOr(c.Logger)))
	if err != nil {
		return nil, err
	}

	t := now(c.Now)
	result := &ActionResult{}
	var errs []error
	for _, doc := range matched {
		if err := doc.Stop(t); err != nil {
			errs = append(errs, &application.TransitionError{Path: doc.Path, Action: "stop", Err: err})
			continue
		}
		if err := c.repo.Write(doc.Update()); err != nil {
			errs = append(errs, fmt.Errorf("failed to stop %s: %w", doc.Path, err))
			continue
		}
		result.Done = append(result.Done, doc.Path)
	}
	result.Message = fmt.Sprintf("Stopped %d of %d documents", len(result.Done), len(matched))
	return result, errors.Join(errs...)
}

// ArchiveCommand moves every matched document into the archive directory
type ArchiveCommand struct {
	repo   ports.DocumentRepository
	Paths  []string
	Logger *slog.Logger
}

// NewArchiveCommand creates a new ArchiveCommand
func NewArchiveCommand(repo ports.DocumentRepository, paths ...string) *ArchiveCommand {
	return &ArchiveCommand{repo: repo, Paths: paths}
}

// Execute runs the archive command
func (c *ArchiveCommand) Execute(ctx context.Context) (*ActionResult, error) {
	matched, err := matchDocuments(c.repo, c.Paths, domain.NewDiagnostics(loggerOr(c.Logger)))
	if err != nil {
		return nil, err
	}

	result := &ActionResult{}
	var errs []error
	for _, doc := range matched {
		if domain.IsArchived(c.repo.Root(), doc.Path) {
			errs = append(errs, &application.ArchiveError{Path: doc.Path, Err: application.ErrAlreadyArchived})
			continue
		}
		if doc.IsActive() {
			errs = append(errs, &application.ArchiveError{Path: doc.Path, Err: application.ErrAlreadyActive})
			continue
		}
		newPath, err := c.repo.Archive(doc.Path)
		if err != nil {
			errs = append(errs, fmt.Errorf("failed to archive %s: %w", doc.Path, err))
			continue
		}
		result.Done = append(result.Done, newPath)
	}
	result.Message = fmt.Sprintf("Archived %d of %d documents", len(result.Done), len(matched))
	return result, errors.Join(errs...)
}
