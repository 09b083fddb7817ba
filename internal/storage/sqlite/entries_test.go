// ABOUTME: Tests for memory entry operations
// ABOUTME: Covers CRUD, partial updates, and cascade delete
package sqlite

import (
	"context"
	"testing"

	"github.com/harper/projectkb/internal/models"
)

func TestEntryCRUD(t *testing.T) {
	db, err := OpenInMemory()
	if err != nil {
		t.Fatalf("OpenInMemory() error = %v", err)
	}
	defer func() { _ = db.Close() }()

	ctx := context.Background()
	p := newTestProject(t, db, "P", "/p")
	store := NewEntryStore(db)

	entry, err := store.Create(ctx, p.ID, "Decision", "decision", "use sqlite")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if entry.ID == 0 {
		t.Error("Create() should assign an id")
	}

	got, err := store.Get(ctx, entry.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.Title != "Decision" || got.Type != "decision" || got.Content != "use sqlite" {
		t.Errorf("Get() = %+v", got)
	}

	content := "use sqlite with WAL"
	updated, err := store.Update(ctx, entry.ID, models.EntryUpdate{Content: &content})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if updated.Content != content {
		t.Errorf("Content = %v, want %v", updated.Content, content)
	}
	if updated.Title != "Decision" {
		t.Errorf("Title should be unchanged, got %v", updated.Title)
	}

	list, err := store.ListByProject(ctx, p.ID)
	if err != nil {
		t.Fatalf("ListByProject() error = %v", err)
	}
	if len(list) != 1 {
		t.Errorf("len(list) = %v, want 1", len(list))
	}
}

func TestEntryErrors(t *testing.T) {
	db, err := OpenInMemory()
	if err != nil {
		t.Fatalf("OpenInMemory() error = %v", err)
	}
	defer func() { _ = db.Close() }()

	ctx := context.Background()
	p := newTestProject(t, db, "P", "/p")
	store := NewEntryStore(db)

	if _, err := store.Create(ctx, 999, "T", "note", "c"); !models.IsNotFound(err) {
		t.Errorf("Create(missing project) error = %v, want NotFoundError", err)
	}
	if _, err := store.Create(ctx, p.ID, "", "note", "c"); !models.IsValidation(err) {
		t.Errorf("Create(no title) error = %v, want ValidationError", err)
	}
	if _, err := store.Get(ctx, 42); !models.IsNotFound(err) {
		t.Errorf("Get(missing) error = %v, want NotFoundError", err)
	}
	if _, err := store.Update(ctx, 42, models.EntryUpdate{}); !models.IsNotFound(err) {
		t.Errorf("Update(missing) error = %v, want NotFoundError", err)
	}
	if _, err := store.Delete(ctx, 42); !models.IsNotFound(err) {
		t.Errorf("Delete(missing) error = %v, want NotFoundError", err)
	}
}

func TestEntryDeleteCascades(t *testing.T) {
	db, err := OpenInMemory()
	if err != nil {
		t.Fatalf("OpenInMemory() error = %v", err)
	}
	defer func() { _ = db.Close() }()

	ctx := context.Background()
	p := newTestProject(t, db, "P", "/p")
	store := NewEntryStore(db)
	tags := NewTagStore(db)
	documents := NewDocumentStore(db)
	relations := NewRelationStore(db)

	m1, err := store.Create(ctx, p.ID, "M1", "note", "one")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	m2, err := store.Create(ctx, p.ID, "M2", "note", "two")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	doc, err := documents.Create(ctx, p.ID, "D", "/p/d", "", "", "x")
	if err != nil {
		t.Fatalf("Create document error = %v", err)
	}

	if err := tags.AddToEntry(ctx, m1.ID, "draft"); err != nil {
		t.Fatalf("AddToEntry() error = %v", err)
	}
	if err := relations.LinkDocument(ctx, m1.ID, doc.ID); err != nil {
		t.Fatalf("LinkDocument() error = %v", err)
	}
	// Relations in both directions must go.
	if _, err := relations.Link(ctx, m1.ID, m2.ID, "related"); err != nil {
		t.Fatalf("Link() error = %v", err)
	}
	if _, err := relations.Link(ctx, m2.ID, m1.ID, "refs"); err != nil {
		t.Fatalf("Link() error = %v", err)
	}

	projectID, err := store.Delete(ctx, m1.ID)
	if err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if projectID != p.ID {
		t.Errorf("Delete() project id = %v, want %v", projectID, p.ID)
	}

	for _, table := range []string{"memory_entry_tags", "memory_entry_documents", "memory_entry_relations"} {
		var count int
		if err := db.QueryRow(ctx, "SELECT COUNT(*) FROM "+table).Scan(&count); err != nil {
			t.Fatalf("counting %s: %v", table, err)
		}
		if count != 0 {
			t.Errorf("%s count after delete = %v, want 0", table, count)
		}
	}

	if _, err := store.Get(ctx, m2.ID); err != nil {
		t.Errorf("sibling entry should survive, got %v", err)
	}
	if _, err := documents.Get(ctx, doc.ID); err != nil {
		t.Errorf("linked document should survive, got %v", err)
	}
}
