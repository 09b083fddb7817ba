// ABOUTME: Tag association operations for documents and memory entries
// ABOUTME: Tags are name-keyed and deduplicated across both association sets
package sqlite

import (
	"context"
	"database/sql"
	"strings"

	"github.com/harper/projectkb/internal/models"
)

// Entity kinds accepted by the tag operations.
const (
	KindDocument = "document"
	KindEntry    = "memory entry"
)

// TagStore handles tag rows and their associations
type TagStore struct {
	db *DB
}

// NewTagStore creates a new TagStore
func NewTagStore(db *DB) *TagStore {
	return &TagStore{db: db}
}

// NormalizeTag trims whitespace and lowercases a tag name.
func NormalizeTag(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// AddToDocument tags a document. Re-adding an existing tag is a no-op
// success.
func (s *TagStore) AddToDocument(ctx context.Context, documentID int64, name string) error {
	return s.add(ctx, KindDocument, documentID, name)
}

// RemoveFromDocument untags a document. Removing a tag that was never
// linked is a no-op success.
func (s *TagStore) RemoveFromDocument(ctx context.Context, documentID int64, name string) error {
	return s.remove(ctx, KindDocument, documentID, name)
}

// ListForDocument returns a document's tag names sorted alphabetically
func (s *TagStore) ListForDocument(ctx context.Context, documentID int64) ([]string, error) {
	return s.listTags(ctx, KindDocument, documentID)
}

// AddToEntry tags a memory entry
func (s *TagStore) AddToEntry(ctx context.Context, entryID int64, name string) error {
	return s.add(ctx, KindEntry, entryID, name)
}

// RemoveFromEntry untags a memory entry
func (s *TagStore) RemoveFromEntry(ctx context.Context, entryID int64, name string) error {
	return s.remove(ctx, KindEntry, entryID, name)
}

// ListForEntry returns a memory entry's tag names sorted alphabetically
func (s *TagStore) ListForEntry(ctx context.Context, entryID int64) ([]string, error) {
	return s.listTags(ctx, KindEntry, entryID)
}

func tagTables(kind string) (assocTable, idColumn string) {
	if kind == KindDocument {
		return "document_tags", "document_id"
	}
	return "memory_entry_tags", "memory_entry_id"
}

func (s *TagStore) checkEntity(ctx context.Context, kind string, id int64) error {
	table := "documents"
	if kind == KindEntry {
		table = "memory_entries"
	}
	var exists int
	err := s.db.QueryRow(ctx, "SELECT 1 FROM "+table+" WHERE id = ?", id).Scan(&exists)
	if err == sql.ErrNoRows {
		return &models.NotFoundError{Entity: kind, ID: id}
	}
	if err != nil {
		return &models.StorageError{Op: "checking " + kind, Err: err}
	}
	return nil
}

func (s *TagStore) add(ctx context.Context, kind string, id int64, name string) error {
	name = NormalizeTag(name)
	if name == "" {
		return &models.ValidationError{Reason: "tag name is required"}
	}
	if err := s.checkEntity(ctx, kind, id); err != nil {
		return err
	}

	assoc, idCol := tagTables(kind)

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return &models.StorageError{Op: "beginning transaction", Err: err}
	}
	defer func() { _ = tx.Rollback() }()

	// Get-or-create the shared tag row, then the association; both are
	// idempotent so a repeated add succeeds without a duplicate pair.
	if _, err := tx.ExecContext(ctx, "INSERT OR IGNORE INTO tags (name) VALUES (?)", name); err != nil {
		return &models.StorageError{Op: "creating tag", Err: err}
	}
	if _, err := tx.ExecContext(ctx,
		"INSERT OR IGNORE INTO "+assoc+" ("+idCol+", tag_name) VALUES (?, ?)", id, name); err != nil {
		return &models.StorageError{Op: "associating tag", Err: err}
	}

	if err := tx.Commit(); err != nil {
		return &models.StorageError{Op: "committing tag", Err: err}
	}

	return nil
}

func (s *TagStore) remove(ctx context.Context, kind string, id int64, name string) error {
	name = NormalizeTag(name)
	if name == "" {
		return &models.ValidationError{Reason: "tag name is required"}
	}
	if err := s.checkEntity(ctx, kind, id); err != nil {
		return err
	}

	assoc, idCol := tagTables(kind)
	if _, err := s.db.Exec(ctx,
		"DELETE FROM "+assoc+" WHERE "+idCol+" = ? AND tag_name = ?", id, name); err != nil {
		return &models.StorageError{Op: "removing tag", Err: err}
	}

	return nil
}

func (s *TagStore) listTags(ctx context.Context, kind string, id int64) ([]string, error) {
	if err := s.checkEntity(ctx, kind, id); err != nil {
		return nil, err
	}

	assoc, idCol := tagTables(kind)
	rows, err := s.db.Query(ctx,
		"SELECT tag_name FROM "+assoc+" WHERE "+idCol+" = ? ORDER BY tag_name", id)
	if err != nil {
		return nil, &models.StorageError{Op: "listing tags", Err: err}
	}
	defer func() { _ = rows.Close() }()

	var tags []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, &models.StorageError{Op: "scanning tag", Err: err}
		}
		tags = append(tags, name)
	}
	if err := rows.Err(); err != nil {
		return nil, &models.StorageError{Op: "listing tags", Err: err}
	}

	return tags, nil
}
