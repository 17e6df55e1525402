package commands

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"timelog/internal/domain"
	"timelog/internal/ports"
)

var fixedNow = time.Date(2023, 4, 3, 12, 0, 0, 0, time.Local)

func fixedClock() time.Time { return fixedNow }

// fakeRepo is an in-memory DocumentRepository
type fakeRepo struct {
	root     string
	docs     []domain.Document
	writes   []domain.DocumentUpdate
	listErr  error
	writeErr error
}

var _ ports.DocumentRepository = (*fakeRepo)(nil)

func newFakeRepo(docs ...domain.Document) *fakeRepo {
	return &fakeRepo{root: "/diary", docs: docs}
}

func (r *fakeRepo) ListAll(*domain.Diagnostics) ([]domain.Document, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	out := make([]domain.Document, len(r.docs))
	for i := range r.docs {
		out[i] = r.docs[i].Clone()
	}
	return out, nil
}

func (r *fakeRepo) Write(u domain.DocumentUpdate) error {
	if r.writeErr != nil {
		return r.writeErr
	}
	for i := range r.docs {
		if r.docs[i].Path == u.Path {
			r.docs[i].Metadata = u.Metadata
			r.writes = append(r.writes, u)
			return nil
		}
	}
	return fmt.Errorf("no document at %s", u.Path)
}

func (r *fakeRepo) Create(doc domain.Document) error {
	for _, d := range r.docs {
		if d.Path == doc.Path {
			return errors.New("document already exists")
		}
	}
	r.docs = append(r.docs, doc)
	return nil
}

func (r *fakeRepo) Archive(path string) (string, error) {
	for i := range r.docs {
		if r.docs[i].Path == path {
			rel, _ := filepath.Rel(r.root, path)
			r.docs[i].Path = filepath.Join(r.root, domain.ArchiveDir, rel)
			return r.docs[i].Path, nil
		}
	}
	return "", fmt.Errorf("no document at %s", path)
}

func (r *fakeRepo) Root() string { return r.root }

// get returns a copy of the stored document at path
func (r *fakeRepo) get(path string) *domain.Document {
	for i := range r.docs {
		if r.docs[i].Path == path {
			d := r.docs[i].Clone()
			return &d
		}
	}
	return &domain.Document{Path: path}
}

// fakeTracker records uploads and can fail the n-th one
type fakeTracker struct {
	tickets  map[string]*domain.Ticket
	remote   map[string][]domain.RemoteWorklog
	added    []domain.SyncEntry
	failAt   int // 1-based upload number that fails, 0 never
	listErr  error
	fetchErr error
}

var _ ports.TicketTracker = (*fakeTracker)(nil)

func (f *fakeTracker) FetchTicket(_ context.Context, key string) (*domain.Ticket, error) {
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	t, ok := f.tickets[key]
	if !ok {
		return nil, errors.New("issue does not exist")
	}
	return t, nil
}

func (f *fakeTracker) ListWorklogs(_ context.Context, key string) ([]domain.RemoteWorklog, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.remote[key], nil
}

func (f *fakeTracker) AddWorklog(_ context.Context, e domain.SyncEntry) error {
	if f.failAt > 0 && len(f.added)+1 == f.failAt {
		f.failAt = 0
		return errors.New("remote rejected worklog")
	}
	f.added = append(f.added, e)
	return nil
}

func tracked(path string, tags []string, worklog ...string) domain.Document {
	return domain.Document{Path: path, Metadata: domain.Metadata{Tags: tags, Worklog: worklog}}
}
