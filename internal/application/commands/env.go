package commands

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"timelog/internal/application"
	"timelog/internal/domain"
	"timelog/internal/ports"
)

// Clock returns the current wall-clock time
type Clock func() time.Time

func now(c Clock) time.Time {
	if c == nil {
		return time.Now()
	}
	return c()
}

func loggerOr(l *slog.Logger) *slog.Logger {
	if l == nil {
		return slog.Default()
	}
	return l
}

// matchDocuments lists the repository and keeps documents whose path
// contains any of paths. No match is ErrNotFound.
func matchDocuments(repo ports.DocumentRepository, paths []string, diag *domain.Diagnostics) ([]domain.Document, error) {
	if len(paths) == 0 {
		return nil, &application.ValidationError{Field: "path", Message: "path is required"}
	}
	docs, err := repo.ListAll(diag)
	if err != nil {
		return nil, err
	}
	matched := domain.FilterPaths(docs, paths)
	if len(matched) == 0 {
		return nil, fmt.Errorf("%s: %w", strings.Join(paths, ", "), application.ErrNotFound)
	}
	return matched, nil
}
