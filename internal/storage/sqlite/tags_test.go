// ABOUTME: Tests for tag operations on documents and memory entries
// ABOUTME: Covers normalization, idempotent attach, and no-op detach
package sqlite

import (
	"context"
	"testing"

	"github.com/harper/projectkb/internal/models"
)

func TestNormalizeTag(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Draft", "draft"},
		{"  URGENT  ", "urgent"},
		{"ok", "ok"},
		{"  ", ""},
	}
	for _, tt := range tests {
		if got := NormalizeTag(tt.in); got != tt.want {
			t.Errorf("NormalizeTag(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDocumentTags(t *testing.T) {
	db, err := OpenInMemory()
	if err != nil {
		t.Fatalf("OpenInMemory() error = %v", err)
	}
	defer func() { _ = db.Close() }()

	ctx := context.Background()
	p := newTestProject(t, db, "P", "/p")
	doc, err := NewDocumentStore(db).Create(ctx, p.ID, "D", "/p/d", "", "", "x")
	if err != nil {
		t.Fatalf("Create document error = %v", err)
	}
	tags := NewTagStore(db)

	if err := tags.AddToDocument(ctx, doc.ID, "Draft"); err != nil {
		t.Fatalf("AddToDocument() error = %v", err)
	}
	// Attaching the same tag again, in a different case, changes nothing.
	if err := tags.AddToDocument(ctx, doc.ID, "  draft "); err != nil {
		t.Fatalf("AddToDocument(again) error = %v", err)
	}
	if err := tags.AddToDocument(ctx, doc.ID, "review"); err != nil {
		t.Fatalf("AddToDocument() error = %v", err)
	}

	got, err := tags.ListForDocument(ctx, doc.ID)
	if err != nil {
		t.Fatalf("ListForDocument() error = %v", err)
	}
	want := []string{"draft", "review"}
	if len(got) != len(want) {
		t.Fatalf("tags = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("tags[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	if err := tags.RemoveFromDocument(ctx, doc.ID, "DRAFT"); err != nil {
		t.Fatalf("RemoveFromDocument() error = %v", err)
	}
	// Removing an absent tag is a no-op, not an error.
	if err := tags.RemoveFromDocument(ctx, doc.ID, "missing"); err != nil {
		t.Errorf("RemoveFromDocument(absent) error = %v", err)
	}

	got, err = tags.ListForDocument(ctx, doc.ID)
	if err != nil {
		t.Fatalf("ListForDocument() error = %v", err)
	}
	if len(got) != 1 || got[0] != "review" {
		t.Errorf("tags after remove = %v, want [review]", got)
	}
}

func TestEntryTags(t *testing.T) {
	db, err := OpenInMemory()
	if err != nil {
		t.Fatalf("OpenInMemory() error = %v", err)
	}
	defer func() { _ = db.Close() }()

	ctx := context.Background()
	p := newTestProject(t, db, "P", "/p")
	entry, err := NewEntryStore(db).Create(ctx, p.ID, "M", "note", "x")
	if err != nil {
		t.Fatalf("Create entry error = %v", err)
	}
	tags := NewTagStore(db)

	if err := tags.AddToEntry(ctx, entry.ID, "idea"); err != nil {
		t.Fatalf("AddToEntry() error = %v", err)
	}
	got, err := tags.ListForEntry(ctx, entry.ID)
	if err != nil {
		t.Fatalf("ListForEntry() error = %v", err)
	}
	if len(got) != 1 || got[0] != "idea" {
		t.Errorf("tags = %v, want [idea]", got)
	}

	if err := tags.RemoveFromEntry(ctx, entry.ID, "idea"); err != nil {
		t.Fatalf("RemoveFromEntry() error = %v", err)
	}
	got, err = tags.ListForEntry(ctx, entry.ID)
	if err != nil {
		t.Fatalf("ListForEntry() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("tags after remove = %v, want empty", got)
	}
}

func TestSharedTagSurvivesDetach(t *testing.T) {
	db, err := OpenInMemory()
	if err != nil {
		t.Fatalf("OpenInMemory() error = %v", err)
	}
	defer func() { _ = db.Close() }()

	ctx := context.Background()
	p := newTestProject(t, db, "P", "/p")
	documents := NewDocumentStore(db)
	tags := NewTagStore(db)

	d1, err := documents.Create(ctx, p.ID, "D1", "/p/d1", "", "", "x")
	if err != nil {
		t.Fatalf("Create d1 error = %v", err)
	}
	d2, err := documents.Create(ctx, p.ID, "D2", "/p/d2", "", "", "y")
	if err != nil {
		t.Fatalf("Create d2 error = %v", err)
	}

	if err := tags.AddToDocument(ctx, d1.ID, "shared"); err != nil {
		t.Fatalf("AddToDocument(d1) error = %v", err)
	}
	if err := tags.AddToDocument(ctx, d2.ID, "shared"); err != nil {
		t.Fatalf("AddToDocument(d2) error = %v", err)
	}
	if err := tags.RemoveFromDocument(ctx, d1.ID, "shared"); err != nil {
		t.Fatalf("RemoveFromDocument(d1) error = %v", err)
	}

	got, err := tags.ListForDocument(ctx, d2.ID)
	if err != nil {
		t.Fatalf("ListForDocument(d2) error = %v", err)
	}
	if len(got) != 1 || got[0] != "shared" {
		t.Errorf("d2 tags = %v, want [shared]", got)
	}
}

func TestTagErrors(t *testing.T) {
	db, err := OpenInMemory()
	if err != nil {
		t.Fatalf("OpenInMemory() error = %v", err)
	}
	defer func() { _ = db.Close() }()

	ctx := context.Background()
	p := newTestProject(t, db, "P", "/p")
	doc, err := NewDocumentStore(db).Create(ctx, p.ID, "D", "/p/d", "", "", "x")
	if err != nil {
		t.Fatalf("Create document error = %v", err)
	}
	tags := NewTagStore(db)

	if err := tags.AddToDocument(ctx, 999, "t"); !models.IsNotFound(err) {
		t.Errorf("AddToDocument(missing doc) error = %v, want NotFoundError", err)
	}
	if err := tags.AddToEntry(ctx, 999, "t"); !models.IsNotFound(err) {
		t.Errorf("AddToEntry(missing entry) error = %v, want NotFoundError", err)
	}
	if err := tags.AddToDocument(ctx, doc.ID, "   "); !models.IsValidation(err) {
		t.Errorf("AddToDocument(blank tag) error = %v, want ValidationError", err)
	}
}
