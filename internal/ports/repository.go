package ports

import "timelog/internal/domain"

// DocumentRepository defines the interface for document storage operations.
// Every call reads or writes the store directly; nothing is cached.
type DocumentRepository interface {
	// ListAll returns every readable document. Unreadable documents are
	// reported to diag and left out.
	ListAll(diag *domain.Diagnostics) ([]domain.Document, error)

	// Write replaces the structured header of the document at update.Path,
	// leaving its body untouched
	Write(update domain.DocumentUpdate) error

	// Create stores a new document; it fails if the path is taken
	Create(doc domain.Document) error

	// Archive moves a document under the archive directory and returns its new path
	Archive(path string) (string, error)

	// Root returns the directory the repository reads from
	Root() string
}
