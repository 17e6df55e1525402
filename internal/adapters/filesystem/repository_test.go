package filesystem

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"timelog/internal/domain"
)

const docABC1 = `---
author: Jane
date: 2023-04-01
tags: [ABC, ABC-1]
estimate: 2h
worklog:
  - 2023-04-01T09:00:00,2023-04-01T10:00:00
  - 2023-04-02T09:00:00,
---
# Login bug

Body text stays untouched.
`

func writeFile(t *testing.T, root, rel, content string) string {
	t.Helper()
	path := filepath.Join(root, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("failed to create dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", rel, err)
	}
	return path
}

func TestListAll(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "ABC/ABC-1.md", docABC1)
	writeFile(t, root, "ABC/ABC-2.md", "---\ntags: [ABC]\n---\n")
	writeFile(t, root, "notes.txt", "not a document")
	writeFile(t, root, ".git/HEAD.md", "---\ntags: [hidden]\n---\n")
	writeFile(t, root, "broken.md", "no front matter here")
	writeFile(t, root, "invalid.md", "---\ntags: [unterminated\n---\n")

	repo := NewRepository(root)
	diag := domain.NewDiagnostics(nil)
	docs, err := repo.ListAll(diag)
	if err != nil {
		t.Fatalf("ListAll failed: %v", err)
	}

	if len(docs) != 2 {
		t.Fatalf("expected 2 documents, got %d: %v", len(docs), docs)
	}
	if docs[0].Name() != "ABC-1.md" || docs[1].Name() != "ABC-2.md" {
		t.Errorf("unexpected order: %s, %s", docs[0].Path, docs[1].Path)
	}

	doc := docs[0]
	if doc.Metadata.Author != "Jane" || doc.Metadata.Date != "2023-04-01" || doc.Metadata.Estimate != "2h" {
		t.Errorf("unexpected metadata: %+v", doc.Metadata)
	}
	if len(doc.Metadata.Worklog) != 2 || doc.Metadata.Worklog[1] != "2023-04-02T09:00:00," {
		t.Errorf("unexpected worklog: %v", doc.Metadata.Worklog)
	}
	if !doc.IsActive() {
		t.Error("expected ABC-1 to be active")
	}
	if !strings.HasPrefix(doc.Body, "# Login bug") {
		t.Errorf("unexpected body: %q", doc.Body)
	}

	if diag.Len() != 2 {
		t.Errorf("expected 2 warnings (broken.md, invalid.md), got %d: %v", diag.Len(), diag.Warnings)
	}
}

func TestListAll_Idempotent(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "b/B-1.md", docABC1)
	writeFile(t, root, "a/A-1.md", docABC1)

	repo := NewRepository(root)
	first, err := repo.ListAll(nil)
	if err != nil {
		t.Fatal(err)
	}
	second, err := repo.ListAll(nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(first) != len(second) {
		t.Fatalf("lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].Path != second[i].Path || first[i].Body != second[i].Body {
			t.Errorf("document %d differs between listings", i)
		}
	}
}

func TestListAll_MissingRoot(t *testing.T) {
	repo := NewRepository(filepath.Join(t.TempDir(), "missing"))
	if _, err := repo.ListAll(nil); err == nil {
		t.Error("expected an error for a missing root")
	}
}

func TestWrite_PreservesBody(t *testing.T) {
	root := t.TempDir()
	path := writeFile(t, root, "ABC/ABC-1.md", docABC1)

	repo := NewRepository(root)
	docs, err := repo.ListAll(nil)
	if err != nil {
		t.Fatal(err)
	}
	doc := docs[0]
	doc.Metadata.Worklog[1] = "2023-04-02T09:00:00,2023-04-02T09:30:00"
	if err := repo.Write(doc.Update()); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(string(content), "---\n# Login bug\n\nBody text stays untouched.\n") {
		t.Errorf("body not preserved:\n%s", content)
	}

	docs, err = repo.ListAll(nil)
	if err != nil {
		t.Fatal(err)
	}
	if docs[0].IsActive() {
		t.Error("expected the document to be stopped after write")
	}
	if got := docs[0].Metadata.Tags; len(got) != 2 || got[1] != "ABC-1" {
		t.Errorf("tags not round-tripped: %v", got)
	}
}

func TestWrite_OmitsAbsentOptionalFields(t *testing.T) {
	root := t.TempDir()
	path := writeFile(t, root, "ABC/ABC-2.md", "---\ntags: [ABC]\nworklog: []\n---\nbody\n")

	repo := NewRepository(root)
	docs, err := repo.ListAll(nil)
	if err != nil {
		t.Fatal(err)
	}
	doc := docs[0]
	doc.Metadata.Worklog = append(doc.Metadata.Worklog, "2023-04-02T09:00:00,")
	if err := repo.Write(doc.Update()); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	for _, field := range []string{"author:", "date:", "estimate:"} {
		if strings.Contains(string(content), field) {
			t.Errorf("absent field %s written:\n%s", field, content)
		}
	}
	if !strings.Contains(string(content), "2023-04-02T09:00:00,") {
		t.Errorf("worklog entry missing:\n%s", content)
	}
}

func TestCreate(t *testing.T) {
	root := t.TempDir()
	repo := NewRepository(root)
	doc := domain.Document{
		Path:     filepath.Join(root, "work", "ABC", "ABC-9.md"),
		Metadata: domain.Metadata{Author: "Jane", Tags: []string{"ABC", "ABC-9", "work"}},
		Body:     "# Title\n\nDescription\n",
	}

	if err := repo.Create(doc); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	docs, err := repo.ListAll(nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(docs) != 1 || docs[0].Path != doc.Path || docs[0].Body != doc.Body {
		t.Fatalf("created document not listed as written: %+v", docs)
	}
	if len(docs[0].Metadata.Worklog) != 0 {
		t.Errorf("expected an empty worklog, got %v", docs[0].Metadata.Worklog)
	}

	if err := repo.Create(doc); err == nil {
		t.Error("expected an error when the document already exists")
	}
}

func TestArchive(t *testing.T) {
	root := t.TempDir()
	path := writeFile(t, root, "ABC/ABC-1.md", docABC1)
	repo := NewRepository(root)

	dst, err := repo.Archive(path)
	if err != nil {
		t.Fatalf("Archive failed: %v", err)
	}
	if want := filepath.Join(root, domain.ArchiveDir, "ABC", "ABC-1.md"); dst != want {
		t.Errorf("archived to %s, want %s", dst, want)
	}
	if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
		t.Error("source should be gone")
	}
	if !domain.IsArchived(root, dst) {
		t.Error("destination should be recognised as archived")
	}

	writeFile(t, root, "ABC/ABC-1.md", docABC1)
	if _, err := repo.Archive(path); err == nil {
		t.Error("expected an error when the archive destination exists")
	}

	if _, err := repo.Archive(filepath.Join(t.TempDir(), "x.md")); err == nil {
		t.Error("expected an error for a path outside the repository")
	}
}

func TestSplitFrontmatter(t *testing.T) {
	tests := []struct {
		name       string
		content    string
		wantHeader string
		wantBody   string
		wantOK     bool
	}{
		{"header and body", "---\na: 1\n---\nbody\n", "a: 1\n", "body\n", true},
		{"empty header", "---\n---\n", "", "", true},
		{"no opening delimiter", "a: 1\n---\n", "", "a: 1\n---\n", false},
		{"unterminated", "---\na: 1\n", "", "---\na: 1\n", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			header, body, ok := splitFrontmatter(tt.content)
			if header != tt.wantHeader || body != tt.wantBody || ok != tt.wantOK {
				t.Errorf("splitFrontmatter() = (%q, %q, %v), want (%q, %q, %v)",
					header, body, ok, tt.wantHeader, tt.wantBody, tt.wantOK)
			}
		})
	}
}

func TestReplaceFrontmatter(t *testing.T) {
	if got := replaceFrontmatter("---\nold: 1\n---\nbody\n", "new: 2\n"); got != "---\nnew: 2\n---\nbody\n" {
		t.Errorf("replace existing = %q", got)
	}
	if got := replaceFrontmatter("body\n", "new: 2\n"); got != "---\nnew: 2\n---\nbody\n" {
		t.Errorf("prepend = %q", got)
	}
}
