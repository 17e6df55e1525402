package application

import (
	"errors"
	"fmt"

	"timelog/internal/domain"
)

// Sentinel errors for common conditions
var (
	ErrNotFound        = errors.New("not found")
	ErrAlreadyActive   = domain.ErrAlreadyActive
	ErrNotActive       = domain.ErrNotActive
	ErrAlreadyArchived = errors.New("already archived")
	ErrInvalidDate     = domain.ErrUnparsableDate
)

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// TransitionError is an illegal start or stop of a document's timer
type TransitionError struct {
	Path   string
	Action string
	Err    error
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("cannot %s %s: %v", e.Action, e.Path, e.Err)
}

func (e *TransitionError) Unwrap() error {
	return e.Err
}

// ArchiveError represents an archive-related failure
type ArchiveError struct {
	Path string
	Err  error
}

func (e *ArchiveError) Error() string {
	return fmt.Sprintf("cannot archive %s: %v", e.Path, e.Err)
}

func (e *ArchiveError) Unwrap() error {
	return e.Err
}

// SyncError is a failed worklog upload. The remaining ranges of the same
// document were not attempted.
type SyncError struct {
	Path    string
	Started string
	Err     error
}

func (e *SyncError) Error() string {
	if e.Started == "" {
		return fmt.Sprintf("sync %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("sync %s at %s: %v", e.Path, e.Started, e.Err)
}

func (e *SyncError) Unwrap() error {
	return e.Err
}
