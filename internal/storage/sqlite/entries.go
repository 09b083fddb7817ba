// ABOUTME: Memory entry persistence operations
// ABOUTME: Deleting an entry cascades to its tags, links, and relations
package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/harper/projectkb/internal/models"
)

// EntryStore handles memory entry persistence
type EntryStore struct {
	db *DB
}

// NewEntryStore creates a new EntryStore
func NewEntryStore(db *DB) *EntryStore {
	return &EntryStore{db: db}
}

// Create inserts a memory entry into a project
func (s *EntryStore) Create(ctx context.Context, projectID int64, title, entryType, content string) (*models.MemoryEntry, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, &models.ValidationError{Reason: "entry title is required"}
	}

	var exists int
	err := s.db.QueryRow(ctx, "SELECT 1 FROM projects WHERE id = ?", projectID).Scan(&exists)
	if err == sql.ErrNoRows {
		return nil, &models.NotFoundError{Entity: "project", ID: projectID}
	}
	if err != nil {
		return nil, &models.StorageError{Op: "checking project", Err: err}
	}

	now := time.Now().UTC()
	res, err := s.db.Exec(ctx, `
		INSERT INTO memory_entries (project_id, title, type, content, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, projectID, title, entryType, content, now, now)
	if err != nil {
		return nil, &models.StorageError{Op: "inserting memory entry", Err: err}
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, &models.StorageError{Op: "resolving entry id", Err: err}
	}

	return &models.MemoryEntry{
		ID:        id,
		ProjectID: projectID,
		Title:     title,
		Type:      entryType,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Get retrieves a memory entry by id
func (s *EntryStore) Get(ctx context.Context, id int64) (*models.MemoryEntry, error) {
	var e models.MemoryEntry
	err := s.db.QueryRow(ctx, `
		SELECT id, project_id, title, type, content, created_at, updated_at
		FROM memory_entries
		WHERE id = ?
	`, id).Scan(&e.ID, &e.ProjectID, &e.Title, &e.Type, &e.Content, &e.CreatedAt, &e.UpdatedAt)

	if err == sql.ErrNoRows {
		return nil, &models.NotFoundError{Entity: "memory entry", ID: id}
	}
	if err != nil {
		return nil, &models.StorageError{Op: "loading memory entry", Err: err}
	}

	return &e, nil
}

// ListByProject returns a project's memory entries ordered by creation
func (s *EntryStore) ListByProject(ctx context.Context, projectID int64) ([]models.MemoryEntry, error) {
	return s.list(ctx, "WHERE project_id = ?", projectID)
}

// ListAll returns every memory entry in the store
func (s *EntryStore) ListAll(ctx context.Context) ([]models.MemoryEntry, error) {
	return s.list(ctx, "")
}

func (s *EntryStore) list(ctx context.Context, where string, args ...interface{}) ([]models.MemoryEntry, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, project_id, title, type, content, created_at, updated_at
		FROM memory_entries
		`+where+`
		ORDER BY id
	`, args...)
	if err != nil {
		return nil, &models.StorageError{Op: "listing memory entries", Err: err}
	}
	defer func() { _ = rows.Close() }()

	var entries []models.MemoryEntry
	for rows.Next() {
		var e models.MemoryEntry
		if err := rows.Scan(&e.ID, &e.ProjectID, &e.Title, &e.Type, &e.Content, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, &models.StorageError{Op: "scanning memory entry", Err: err}
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, &models.StorageError{Op: "listing memory entries", Err: err}
	}

	return entries, nil
}

// Update applies the non-nil fields of upd to the entry.
func (s *EntryStore) Update(ctx context.Context, id int64, upd models.EntryUpdate) (*models.MemoryEntry, error) {
	e, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if upd.IsZero() {
		return e, nil
	}

	if upd.Title != nil {
		e.Title = *upd.Title
	}
	if upd.Type != nil {
		e.Type = *upd.Type
	}
	if upd.Content != nil {
		e.Content = *upd.Content
	}
	if e.Title == "" {
		return nil, &models.ValidationError{Reason: "entry title is required"}
	}

	e.UpdatedAt = time.Now().UTC()
	_, err = s.db.Exec(ctx, `
		UPDATE memory_entries SET title = ?, type = ?, content = ?, updated_at = ?
		WHERE id = ?
	`, e.Title, e.Type, e.Content, e.UpdatedAt, id)
	if err != nil {
		return nil, &models.StorageError{Op: "updating memory entry", Err: err}
	}

	return e, nil
}

// Delete removes an entry together with its tag associations, document
// links, and every relation in either direction. Returns the owning
// project id so callers can navigate back to it.
func (s *EntryStore) Delete(ctx context.Context, id int64) (int64, error) {
	e, err := s.Get(ctx, id)
	if err != nil {
		return 0, err
	}

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return 0, &models.StorageError{Op: "beginning transaction", Err: err}
	}
	defer func() { _ = tx.Rollback() }()

	cascade := []struct {
		op    string
		query string
		both  bool
	}{
		{"deleting entry tags", "DELETE FROM memory_entry_tags WHERE memory_entry_id = ?", false},
		{"deleting entry links", "DELETE FROM memory_entry_documents WHERE memory_entry_id = ?", false},
		{"deleting entry relations", "DELETE FROM memory_entry_relations WHERE source_id = ? OR target_id = ?", true},
		{"deleting memory entry", "DELETE FROM memory_entries WHERE id = ?", false},
	}
	for _, step := range cascade {
		args := []interface{}{id}
		if step.both {
			args = append(args, id)
		}
		if _, err := tx.ExecContext(ctx, step.query, args...); err != nil {
			return 0, &models.StorageError{Op: step.op, Err: err}
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, &models.StorageError{Op: "committing entry deletion", Err: err}
	}

	return e.ProjectID, nil
}
