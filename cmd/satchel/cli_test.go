package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/hpungsan/satchel/internal/contact"
	"github.com/hpungsan/satchel/internal/errors"
	"github.com/hpungsan/satchel/internal/note"
	"github.com/hpungsan/satchel/internal/store"
)

// setupSnapshot creates a seeded snapshot database and returns its path.
func setupSnapshot(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "satchel.db")

	db, err := store.Init(path)
	if err != nil {
		t.Fatalf("failed to init test store: %v", err)
	}
	defer db.Close()

	contacts := contact.NewBook()
	if _, err := contacts.AddContact("jane", "0501234567"); err != nil {
		t.Fatalf("seeding contact: %v", err)
	}
	notes := note.NewBook()
	stamp := time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)
	if _, err := notes.Add("Groceries", "buy milk and eggs", []string{"food"}, stamp); err != nil {
		t.Fatalf("seeding note: %v", err)
	}

	if _, err := store.Save(db, contacts, notes); err != nil {
		t.Fatalf("saving seed snapshot: %v", err)
	}
	return path
}

// runApp executes the CLI against a specific snapshot file.
func runApp(t *testing.T, path string, args ...string) error {
	t.Helper()
	// Keep config resolution away from the real home directory.
	t.Setenv("HOME", t.TempDir())
	app := newCLIApp()
	return app.Run(append([]string{"satchel", "--file", path}, args...))
}

func TestRevisionCommand(t *testing.T) {
	path := setupSnapshot(t)
	if err := runApp(t, path, "revision"); err != nil {
		t.Fatalf("revision failed: %v", err)
	}
}

func TestRevisionWithoutSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.db")
	err := runApp(t, path, "revision")
	if err == nil {
		t.Fatal("expected an error for an empty store")
	}
	if !strings.Contains(err.Error(), "NOT_FOUND") {
		t.Fatalf("expected a NOT_FOUND error, got %v", err)
	}
}

func TestExportCommand(t *testing.T) {
	path := setupSnapshot(t)
	out := filepath.Join(t.TempDir(), "notes.md")

	if err := runApp(t, path, "export", out); err != nil {
		t.Fatalf("export failed: %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("reading export: %v", err)
	}
	if !strings.Contains(string(data), "## Groceries") {
		t.Fatalf("export missing note heading:\n%s", data)
	}
}

func TestImportCommand(t *testing.T) {
	seeded := setupSnapshot(t)
	md := filepath.Join(t.TempDir(), "notes.md")
	if err := runApp(t, seeded, "export", md); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	fresh := filepath.Join(t.TempDir(), "fresh.db")
	if err := runApp(t, fresh, "import", md); err != nil {
		t.Fatalf("import failed: %v", err)
	}

	db, err := store.Init(fresh)
	if err != nil {
		t.Fatalf("reopening store: %v", err)
	}
	defer db.Close()
	_, notes, err := store.Load(db)
	if err != nil {
		t.Fatalf("loading snapshot: %v", err)
	}
	if notes.Len() != 1 {
		t.Fatalf("expected 1 imported note, got %d", notes.Len())
	}
}

func TestImportCommandRequiresPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.db")
	err := runApp(t, path, "import")
	if err == nil || !strings.Contains(err.Error(), "MISSING_ARGUMENT") {
		t.Fatalf("expected a MISSING_ARGUMENT error, got %v", err)
	}
}

func TestOutputErrorFormatsCode(t *testing.T) {
	err := outputError(errors.NewValidation("name must be at least 3 characters"))
	coder, ok := err.(cli.ExitCoder)
	if !ok {
		t.Fatalf("expected an ExitCoder, got %T", err)
	}
	if coder.ExitCode() != 1 {
		t.Fatalf("exit code = %d", coder.ExitCode())
	}
	if got := err.Error(); got != "[VALIDATION] name must be at least 3 characters" {
		t.Fatalf("message = %q", got)
	}
}
