package filesystem

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"timelog/internal/domain"
	"timelog/internal/ports"
)

const documentExt = ".md"

// Repository implements ports.DocumentRepository over a directory tree of
// markdown documents with YAML front matter
type Repository struct {
	root string
}

// Ensure Repository implements DocumentRepository
var _ ports.DocumentRepository = (*Repository)(nil)

// NewRepository creates a new filesystem repository
func NewRepository(root string) *Repository {
	return &Repository{root: ExpandHome(root)}
}

// ExpandHome expands a leading ~ to the user's home directory
func ExpandHome(path string) string {
	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// Root returns the repository directory
func (r *Repository) Root() string {
	return r.root
}

// ListAll walks the repository and parses every markdown document, in
// lexical path order
func (r *Repository) ListAll(diag *domain.Diagnostics) ([]domain.Document, error) {
	if _, err := os.Stat(r.root); err != nil {
		return nil, fmt.Errorf("failed to read repository: %w", err)
	}

	var docs []domain.Document
	err := filepath.WalkDir(r.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			diag.Warn(domain.Warning{Path: path, Err: err})
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		// Skip hidden directories
		if d.IsDir() {
			if path != r.root && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.EqualFold(filepath.Ext(path), documentExt) {
			return nil
		}

		doc, err := readDocument(path)
		if err != nil {
			diag.Warn(domain.Warning{Path: path, Err: err})
			return nil
		}
		docs = append(docs, *doc)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return docs, nil
}

func readDocument(path string) (*domain.Document, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	meta, body, err := parseFrontmatter(string(content))
	if err != nil {
		return nil, err
	}
	return &domain.Document{Path: path, Metadata: *meta, Body: body}, nil
}

// Write replaces the front matter of an existing document
func (r *Repository) Write(update domain.DocumentUpdate) error {
	info, err := os.Stat(update.Path)
	if err != nil {
		return fmt.Errorf("failed to stat document: %w", err)
	}
	content, err := os.ReadFile(update.Path)
	if err != nil {
		return fmt.Errorf("failed to read document: %w", err)
	}

	fm, err := marshalFrontmatter(&update.Metadata)
	if err != nil {
		return err
	}

	updated := replaceFrontmatter(string(content), fm)
	if err := os.WriteFile(update.Path, []byte(updated), info.Mode().Perm()); err != nil {
		return fmt.Errorf("failed to write document: %w", err)
	}
	return nil
}

// Create writes a new document; an existing file at doc.Path is an error
func (r *Repository) Create(doc domain.Document) error {
	if err := os.MkdirAll(filepath.Dir(doc.Path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	fm, err := marshalFrontmatter(&doc.Metadata)
	if err != nil {
		return err
	}

	f, err := os.OpenFile(doc.Path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("document already exists: %s", doc.Path)
		}
		return fmt.Errorf("failed to create document: %w", err)
	}
	if _, err := f.WriteString(replaceFrontmatter(doc.Body, fm)); err != nil {
		f.Close()
		os.Remove(doc.Path)
		return fmt.Errorf("failed to write document: %w", err)
	}
	return f.Close()
}

// Archive moves a document to <root>/archive/<relative path>
func (r *Repository) Archive(path string) (string, error) {
	rel, err := filepath.Rel(r.root, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return "", fmt.Errorf("document is outside the repository: %s", path)
	}

	dst := filepath.Join(r.root, domain.ArchiveDir, rel)
	if _, err := os.Stat(dst); err == nil {
		return "", fmt.Errorf("archive destination already exists: %s", dst)
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return "", fmt.Errorf("failed to create archive directory: %w", err)
	}
	if err := os.Rename(path, dst); err != nil {
		return "", fmt.Errorf("failed to move document: %w", err)
	}
	return dst, nil
}
