package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"timelog/internal/application"
	"timelog/internal/domain"
	"timelog/internal/ports"
)

// QueryResult contains the documents a query selected and any warnings
// raised while reading them
type QueryResult struct {
	Documents []domain.Document
	Warnings  []domain.Warning
	Window    *domain.Window
}

// Total sums the durations of every selected document
func (r *QueryResult) Total() time.Duration {
	return domain.TotalDuration(r.Documents)
}

// TagsReport rolls the result up per tag
func (r *QueryResult) TagsReport() domain.TagsReport {
	return domain.SummarizeTags(r.Documents)
}

// QueryCommand selects documents by tags or path and optionally clips them
// to a date window. StartDate and EndDate accept the tokens understood by
// domain.ResolveDate.
type QueryCommand struct {
	repo       ports.DocumentRepository
	Tags       []string
	Paths      []string
	StartDate  string
	EndDate    string
	ActiveOnly bool
	Now        Clock
	Logger     *slog.Logger
}

// NewQueryCommand creates a new QueryCommand
func NewQueryCommand(repo ports.DocumentRepository) *QueryCommand {
	return &QueryCommand{repo: repo}
}

// Validate resolves the date tokens without touching the repository
func (c *QueryCommand) Validate() error {
	_, err := c.window()
	return err
}

func (c *QueryCommand) window() (*domain.Window, error) {
	if c.StartDate == "" {
		if c.EndDate != "" {
			return nil, &application.ValidationError{
				Field:   "endDate",
				Message: "end date requires a start date",
			}
		}
		return nil, nil
	}
	t := now(c.Now)
	start, err := application.ResolveDate("startDate", c.StartDate, t)
	if err != nil {
		return nil, err
	}
	end, err := application.ResolveDate("endDate", c.EndDate, t)
	if err != nil {
		return nil, err
	}
	w := domain.NewWindow(start, end)
	return &w, nil
}

// Execute runs the query. Date tokens are resolved before the repository
// is read, so a bad token aborts without any I/O.
func (c *QueryCommand) Execute(ctx context.Context) (*QueryResult, error) {
	window, err := c.window()
	if err != nil {
		return nil, err
	}

	diag := domain.NewDiagnostics(loggerOr(c.Logger))
	docs, err := c.repo.ListAll(diag)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}

	q := domain.Query{
		Tags:       c.Tags,
		Paths:      c.Paths,
		Window:     window,
		ActiveOnly: c.ActiveOnly,
	}
	return &QueryResult{
		Documents: q.Run(docs, diag),
		Warnings:  diag.Warnings,
		Window:    window,
	}, nil
}

// FindCommand returns the first document whose path contains Path
type FindCommand struct {
	repo   ports.DocumentRepository
	Path   string
	Logger *slog.Logger
}

// NewFindCommand creates a new FindCommand
func NewFindCommand(repo ports.DocumentRepository, path string) *FindCommand {
	return &FindCommand{repo: repo, Path: path}
}

// Execute runs the find command
func (c *FindCommand) Execute(ctx context.Context) (*domain.Document, error) {
	if err := application.ValidateRequired("path", c.Path); err != nil {
		return nil, err
	}
	matched, err := matchDocuments(c.repo, []string{c.Path}, domain.NewDiagnostics(loggerOr(c.Logger)))
	if err != nil {
		return nil, err
	}
	return &matched[0], nil
}
