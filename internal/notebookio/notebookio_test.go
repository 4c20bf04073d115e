package notebookio

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/hpungsan/satchel/internal/note"
)

var testNow = time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

func TestExportImport_RoundTrip(t *testing.T) {
	book := note.NewBook()
	if _, err := book.Add("Project Plan", "roadmap for the quarter", []string{"work", "planning"}, testNow); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if _, err := book.Add("Groceries", "milk, eggs, bread, coffee", nil, testNow); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	path := filepath.Join(t.TempDir(), "notes.md")
	exported, err := Export(book, path)
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	if exported.Notes != 2 {
		t.Errorf("exported.Notes = %d, want 2", exported.Notes)
	}

	restored := note.NewBook()
	imported, err := Import(restored, path, testNow)
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	if imported.Imported != 2 || imported.Skipped != 0 {
		t.Fatalf("imported = %+v, want 2/0", imported)
	}

	notes := restored.Notes()
	if notes[0].Title().String() != "Project Plan" {
		t.Errorf("title = %q, want Project Plan", notes[0].Title())
	}
	if notes[0].Text().String() != "roadmap for the quarter" {
		t.Errorf("text = %q", notes[0].Text())
	}
	tags := notes[0].Tags()
	if len(tags) != 2 || tags[0].String() != "work" || tags[1].String() != "planning" {
		t.Errorf("tags = %v, want [work planning]", tags)
	}
	if len(notes[1].Tags()) != 0 {
		t.Errorf("tags = %v, want none", notes[1].Tags())
	}
}

func TestImport_SkipsInvalidSections(t *testing.T) {
	content := `## Valid Note

Tags: work

this body is long enough to pass validation

## Short

too short

## Another Valid Note

this body is also long enough to pass
`
	path := filepath.Join(t.TempDir(), "notes.md")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	book := note.NewBook()
	result, err := Import(book, path, testNow)
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	if result.Imported != 2 {
		t.Errorf("Imported = %d, want 2", result.Imported)
	}
	if result.Skipped != 1 {
		t.Errorf("Skipped = %d, want 1", result.Skipped)
	}
	if book.Len() != 2 {
		t.Errorf("book.Len() = %d, want 2", book.Len())
	}
}

func TestImport_IgnoresPreamble(t *testing.T) {
	content := `# My Notebook

Some introduction text outside any note section.

## Only Note

the single note body here
`
	path := filepath.Join(t.TempDir(), "notes.md")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	book := note.NewBook()
	result, err := Import(book, path, testNow)
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	if result.Imported != 1 {
		t.Fatalf("Imported = %d, want 1", result.Imported)
	}
	if book.Notes()[0].Title().String() != "Only Note" {
		t.Errorf("title = %q, want Only Note", book.Notes()[0].Title())
	}
}

func TestImport_MissingFile(t *testing.T) {
	book := note.NewBook()
	if _, err := Import(book, filepath.Join(t.TempDir(), "absent.md"), testNow); err == nil {
		t.Fatal("Import of missing file should fail")
	}
}
