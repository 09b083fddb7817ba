// ABOUTME: Relationship graph operations between memory entries and documents
// ABOUTME: Relations are directed edges queried symmetrically from both ends
package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/harper/projectkb/internal/models"
)

// RelationStore handles the directed relation graph and the
// entry-to-document association set
type RelationStore struct {
	db *DB
}

// NewRelationStore creates a new RelationStore
func NewRelationStore(db *DB) *RelationStore {
	return &RelationStore{db: db}
}

// Link creates one directed relation from source to target. Self-loops
// are invalid; both endpoints must exist.
func (s *RelationStore) Link(ctx context.Context, sourceID, targetID int64, relationType string) (*models.MemoryRelation, error) {
	if sourceID == targetID {
		return nil, &models.ValidationError{Reason: "cannot link a memory entry to itself"}
	}

	for _, id := range []int64{sourceID, targetID} {
		var exists int
		err := s.db.QueryRow(ctx, "SELECT 1 FROM memory_entries WHERE id = ?", id).Scan(&exists)
		if err == sql.ErrNoRows {
			return nil, &models.NotFoundError{Entity: "memory entry", ID: id}
		}
		if err != nil {
			return nil, &models.StorageError{Op: "checking memory entry", Err: err}
		}
	}

	now := time.Now().UTC()
	res, err := s.db.Exec(ctx, `
		INSERT INTO memory_entry_relations (source_id, target_id, relation_type, created_at)
		VALUES (?, ?, ?, ?)
	`, sourceID, targetID, relationType, now)
	if err != nil {
		return nil, &models.StorageError{Op: "inserting relation", Err: err}
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, &models.StorageError{Op: "resolving relation id", Err: err}
	}

	return &models.MemoryRelation{
		ID:           id,
		SourceID:     sourceID,
		TargetID:     targetID,
		RelationType: relationType,
		CreatedAt:    now,
	}, nil
}

// ListRelated returns the union of outgoing and incoming relations for
// an entry, each joined with the opposite entry's title and tagged with
// its relation id for later unlink.
func (s *RelationStore) ListRelated(ctx context.Context, entryID int64) ([]models.RelatedEntry, error) {
	var exists int
	err := s.db.QueryRow(ctx, "SELECT 1 FROM memory_entries WHERE id = ?", entryID).Scan(&exists)
	if err == sql.ErrNoRows {
		return nil, &models.NotFoundError{Entity: "memory entry", ID: entryID}
	}
	if err != nil {
		return nil, &models.StorageError{Op: "checking memory entry", Err: err}
	}

	rows, err := s.db.Query(ctx, `
		SELECT r.id, ?, e.id, e.title, r.relation_type
		FROM memory_entry_relations r
		JOIN memory_entries e ON e.id = r.target_id
		WHERE r.source_id = ?
		UNION ALL
		SELECT r.id, ?, e.id, e.title, r.relation_type
		FROM memory_entry_relations r
		JOIN memory_entries e ON e.id = r.source_id
		WHERE r.target_id = ?
		ORDER BY 1
	`, models.DirectionOutgoing, entryID, models.DirectionIncoming, entryID)
	if err != nil {
		return nil, &models.StorageError{Op: "listing relations", Err: err}
	}
	defer func() { _ = rows.Close() }()

	var related []models.RelatedEntry
	for rows.Next() {
		var r models.RelatedEntry
		if err := rows.Scan(&r.RelationID, &r.Direction, &r.EntryID, &r.Title, &r.RelationType); err != nil {
			return nil, &models.StorageError{Op: "scanning relation", Err: err}
		}
		related = append(related, r)
	}
	if err := rows.Err(); err != nil {
		return nil, &models.StorageError{Op: "listing relations", Err: err}
	}

	return related, nil
}

// Unlink deletes exactly one relation row and returns the relation's
// source entry id so callers can navigate back to a sensible context.
func (s *RelationStore) Unlink(ctx context.Context, relationID int64) (int64, error) {
	var sourceID int64
	err := s.db.QueryRow(ctx,
		"SELECT source_id FROM memory_entry_relations WHERE id = ?", relationID).Scan(&sourceID)
	if err == sql.ErrNoRows {
		return 0, &models.NotFoundError{Entity: "relation", ID: relationID}
	}
	if err != nil {
		return 0, &models.StorageError{Op: "loading relation", Err: err}
	}

	if _, err := s.db.Exec(ctx,
		"DELETE FROM memory_entry_relations WHERE id = ?", relationID); err != nil {
		return 0, &models.StorageError{Op: "deleting relation", Err: err}
	}

	return sourceID, nil
}

// LinkDocument associates a memory entry with a document. Re-adding an
// existing pair is a no-op success.
func (s *RelationStore) LinkDocument(ctx context.Context, entryID, documentID int64) error {
	var exists int
	err := s.db.QueryRow(ctx, "SELECT 1 FROM memory_entries WHERE id = ?", entryID).Scan(&exists)
	if err == sql.ErrNoRows {
		return &models.NotFoundError{Entity: "memory entry", ID: entryID}
	}
	if err != nil {
		return &models.StorageError{Op: "checking memory entry", Err: err}
	}
	err = s.db.QueryRow(ctx, "SELECT 1 FROM documents WHERE id = ?", documentID).Scan(&exists)
	if err == sql.ErrNoRows {
		return &models.NotFoundError{Entity: "document", ID: documentID}
	}
	if err != nil {
		return &models.StorageError{Op: "checking document", Err: err}
	}

	if _, err := s.db.Exec(ctx, `
		INSERT OR IGNORE INTO memory_entry_documents (memory_entry_id, document_id)
		VALUES (?, ?)
	`, entryID, documentID); err != nil {
		return &models.StorageError{Op: "linking document", Err: err}
	}

	return nil
}

// UnlinkDocument removes an entry-to-document association if present.
func (s *RelationStore) UnlinkDocument(ctx context.Context, entryID, documentID int64) error {
	var exists int
	err := s.db.QueryRow(ctx, "SELECT 1 FROM memory_entries WHERE id = ?", entryID).Scan(&exists)
	if err == sql.ErrNoRows {
		return &models.NotFoundError{Entity: "memory entry", ID: entryID}
	}
	if err != nil {
		return &models.StorageError{Op: "checking memory entry", Err: err}
	}

	if _, err := s.db.Exec(ctx, `
		DELETE FROM memory_entry_documents WHERE memory_entry_id = ? AND document_id = ?
	`, entryID, documentID); err != nil {
		return &models.StorageError{Op: "unlinking document", Err: err}
	}

	return nil
}

// ListDocumentsForEntry returns the documents linked to a memory entry
func (s *RelationStore) ListDocumentsForEntry(ctx context.Context, entryID int64) ([]models.Document, error) {
	var exists int
	err := s.db.QueryRow(ctx, "SELECT 1 FROM memory_entries WHERE id = ?", entryID).Scan(&exists)
	if err == sql.ErrNoRows {
		return nil, &models.NotFoundError{Entity: "memory entry", ID: entryID}
	}
	if err != nil {
		return nil, &models.StorageError{Op: "checking memory entry", Err: err}
	}

	rows, err := s.db.Query(ctx, `
		SELECT d.id, d.project_id, d.name, d.path, d.type, d.content, d.version, d.created_at, d.updated_at
		FROM documents d
		JOIN memory_entry_documents med ON med.document_id = d.id
		WHERE med.memory_entry_id = ?
		ORDER BY d.id
	`, entryID)
	if err != nil {
		return nil, &models.StorageError{Op: "listing linked documents", Err: err}
	}
	defer func() { _ = rows.Close() }()

	var docs []models.Document
	for rows.Next() {
		var d models.Document
		if err := rows.Scan(&d.ID, &d.ProjectID, &d.Name, &d.Path, &d.Type, &d.Content, &d.Version, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, &models.StorageError{Op: "scanning linked document", Err: err}
		}
		docs = append(docs, d)
	}
	if err := rows.Err(); err != nil {
		return nil, &models.StorageError{Op: "listing linked documents", Err: err}
	}

	return docs, nil
}
