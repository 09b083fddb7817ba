// ABOUTME: Tests for database lifecycle and schema initialization
// ABOUTME: Verifies open/close, idempotent init, and default paths
package sqlite

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
)

func TestOpenInMemory(t *testing.T) {
	db, err := OpenInMemory()
	if err != nil {
		t.Fatalf("OpenInMemory() error = %v", err)
	}
	defer func() { _ = db.Close() }()

	if db.Path() != ":memory:" {
		t.Errorf("Path() = %v, want :memory:", db.Path())
	}

	// All tables should exist
	tables := []string{
		"projects", "documents", "document_versions", "memory_entries",
		"tags", "document_tags", "memory_entry_tags",
		"memory_entry_documents", "memory_entry_relations",
	}
	for _, table := range tables {
		var name string
		err := db.QueryRow(context.Background(),
			"SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?", table).Scan(&name)
		if err != nil {
			t.Errorf("table %s missing: %v", table, err)
		}
	}
}

func TestOpenCreatesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "store.db")

	db, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}

	if db.Path() != path {
		t.Errorf("Path() = %v, want %v", db.Path(), path)
	}

	if err := db.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

func TestOpenIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "store.db")

	db1, err := Open(path)
	if err != nil {
		t.Fatalf("first Open() error = %v", err)
	}

	store := NewProjectStore(db1)
	if _, err := store.Create(context.Background(), "P1", "/p1", ""); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if err := db1.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	// Reopening must not recreate tables or lose data
	db2, err := Open(path)
	if err != nil {
		t.Fatalf("second Open() error = %v", err)
	}
	defer func() { _ = db2.Close() }()

	projects, err := NewProjectStore(db2).List(context.Background())
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(projects) != 1 {
		t.Errorf("project count after reopen = %v, want 1", len(projects))
	}
}

func TestDefaultDBPath(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/tmp/xdg-test")

	path := DefaultDBPath()
	if !strings.HasPrefix(path, "/tmp/xdg-test") {
		t.Errorf("DefaultDBPath() = %v, want under XDG_DATA_HOME", path)
	}
	if filepath.Base(path) != "projectkb.db" {
		t.Errorf("DefaultDBPath() file = %v, want projectkb.db", filepath.Base(path))
	}
}
