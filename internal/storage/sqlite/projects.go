// ABOUTME: Project persistence and activation operations
// ABOUTME: Enforces the single-active-project invariant and cascade deletes
package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/harper/projectkb/internal/models"
)

// ProjectStore handles project persistence
type ProjectStore struct {
	db *DB
}

// NewProjectStore creates a new ProjectStore
func NewProjectStore(db *DB) *ProjectStore {
	return &ProjectStore{db: db}
}

// Create inserts a new project. The project path must be unique.
func (s *ProjectStore) Create(ctx context.Context, name, path, description string) (*models.Project, error) {
	name = strings.TrimSpace(name)
	path = strings.TrimSpace(path)
	if name == "" {
		return nil, &models.ValidationError{Reason: "project name is required"}
	}
	if path == "" {
		return nil, &models.ValidationError{Reason: "project path is required"}
	}

	var exists int
	err := s.db.QueryRow(ctx, "SELECT 1 FROM projects WHERE path = ?", path).Scan(&exists)
	if err == nil {
		return nil, &models.ConflictError{Entity: "project", Field: "path", Value: path}
	}
	if err != sql.ErrNoRows {
		return nil, &models.StorageError{Op: "checking project path", Err: err}
	}

	now := time.Now().UTC()
	res, err := s.db.Exec(ctx, `
		INSERT INTO projects (name, description, path, is_active, created_at, updated_at)
		VALUES (?, ?, ?, 0, ?, ?)
	`, name, description, path, now, now)
	if err != nil {
		return nil, &models.StorageError{Op: "inserting project", Err: err}
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, &models.StorageError{Op: "resolving project id", Err: err}
	}

	return &models.Project{
		ID:          id,
		Name:        name,
		Description: description,
		Path:        path,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// Get retrieves a project by id
func (s *ProjectStore) Get(ctx context.Context, id int64) (*models.Project, error) {
	var p models.Project
	err := s.db.QueryRow(ctx, `
		SELECT id, name, description, path, is_active, created_at, updated_at
		FROM projects
		WHERE id = ?
	`, id).Scan(&p.ID, &p.Name, &p.Description, &p.Path, &p.IsActive, &p.CreatedAt, &p.UpdatedAt)

	if err == sql.ErrNoRows {
		return nil, &models.NotFoundError{Entity: "project", ID: id}
	}
	if err != nil {
		return nil, &models.StorageError{Op: "loading project", Err: err}
	}

	return &p, nil
}

// GetActive retrieves the active project, or nil if no project is active.
func (s *ProjectStore) GetActive(ctx context.Context) (*models.Project, error) {
	var p models.Project
	err := s.db.QueryRow(ctx, `
		SELECT id, name, description, path, is_active, created_at, updated_at
		FROM projects
		WHERE is_active = 1
	`).Scan(&p.ID, &p.Name, &p.Description, &p.Path, &p.IsActive, &p.CreatedAt, &p.UpdatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, &models.StorageError{Op: "loading active project", Err: err}
	}

	return &p, nil
}

// List returns all projects ordered by creation
func (s *ProjectStore) List(ctx context.Context) ([]models.Project, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, name, description, path, is_active, created_at, updated_at
		FROM projects
		ORDER BY id
	`)
	if err != nil {
		return nil, &models.StorageError{Op: "listing projects", Err: err}
	}
	defer func() { _ = rows.Close() }()

	var projects []models.Project
	for rows.Next() {
		var p models.Project
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Path, &p.IsActive, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, &models.StorageError{Op: "scanning project", Err: err}
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, &models.StorageError{Op: "listing projects", Err: err}
	}

	return projects, nil
}

// Update applies the non-nil fields of upd to the project.
func (s *ProjectStore) Update(ctx context.Context, id int64, upd models.ProjectUpdate) (*models.Project, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if upd.IsZero() {
		return p, nil
	}

	if upd.Name != nil {
		p.Name = *upd.Name
	}
	if upd.Description != nil {
		p.Description = *upd.Description
	}
	if upd.Path != nil {
		p.Path = *upd.Path
	}
	if p.Name == "" {
		return nil, &models.ValidationError{Reason: "project name is required"}
	}
	if p.Path == "" {
		return nil, &models.ValidationError{Reason: "project path is required"}
	}

	var other int64
	err = s.db.QueryRow(ctx, "SELECT id FROM projects WHERE path = ? AND id != ?", p.Path, id).Scan(&other)
	if err == nil {
		return nil, &models.ConflictError{Entity: "project", Field: "path", Value: p.Path}
	}
	if err != sql.ErrNoRows {
		return nil, &models.StorageError{Op: "checking project path", Err: err}
	}

	p.UpdatedAt = time.Now().UTC()
	_, err = s.db.Exec(ctx, `
		UPDATE projects SET name = ?, description = ?, path = ?, updated_at = ?
		WHERE id = ?
	`, p.Name, p.Description, p.Path, p.UpdatedAt, id)
	if err != nil {
		return nil, &models.StorageError{Op: "updating project", Err: err}
	}

	return p, nil
}

// SetActive activates the project with the given id and deactivates every
// other project, all in one transaction. Activating an already-active
// project is a no-op success.
func (s *ProjectStore) SetActive(ctx context.Context, id int64) (*models.Project, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return nil, &models.StorageError{Op: "beginning transaction", Err: err}
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now().UTC()
	// Clear-then-set as one atomic write pair; no lock outside the tx.
	if _, err := tx.ExecContext(ctx, "UPDATE projects SET is_active = 0 WHERE is_active = 1 AND id != ?", id); err != nil {
		return nil, &models.StorageError{Op: "deactivating projects", Err: err}
	}
	if !p.IsActive {
		if _, err := tx.ExecContext(ctx, "UPDATE projects SET is_active = 1, updated_at = ? WHERE id = ?", now, id); err != nil {
			return nil, &models.StorageError{Op: "activating project", Err: err}
		}
		p.IsActive = true
		p.UpdatedAt = now
	}

	if err := tx.Commit(); err != nil {
		return nil, &models.StorageError{Op: "committing activation", Err: err}
	}

	return p, nil
}

// Delete removes a project and everything it owns: documents with their
// versions and tag associations, memory entries with their tag and
// document associations, and any relation touching the project's entries.
func (s *ProjectStore) Delete(ctx context.Context, id int64) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return &models.StorageError{Op: "beginning transaction", Err: err}
	}
	defer func() { _ = tx.Rollback() }()

	// Application-level cascade so no orphan rows survive regardless of
	// the engine's foreign key enforcement.
	cascade := []struct {
		op    string
		query string
	}{
		{"deleting document tags", `DELETE FROM document_tags WHERE document_id IN (SELECT id FROM documents WHERE project_id = ?)`},
		{"deleting document links", `DELETE FROM memory_entry_documents WHERE document_id IN (SELECT id FROM documents WHERE project_id = ?)`},
		{"deleting document versions", `DELETE FROM document_versions WHERE document_id IN (SELECT id FROM documents WHERE project_id = ?)`},
		{"deleting documents", `DELETE FROM documents WHERE project_id = ?`},
		{"deleting entry tags", `DELETE FROM memory_entry_tags WHERE memory_entry_id IN (SELECT id FROM memory_entries WHERE project_id = ?)`},
		{"deleting entry links", `DELETE FROM memory_entry_documents WHERE memory_entry_id IN (SELECT id FROM memory_entries WHERE project_id = ?)`},
		{"deleting entry relations", `DELETE FROM memory_entry_relations WHERE source_id IN (SELECT id FROM memory_entries WHERE project_id = ?) OR target_id IN (SELECT id FROM memory_entries WHERE project_id = ?)`},
		{"deleting memory entries", `DELETE FROM memory_entries WHERE project_id = ?`},
		{"deleting project", `DELETE FROM projects WHERE id = ?`},
	}
	for _, step := range cascade {
		args := []interface{}{id}
		if strings.Count(step.query, "?") == 2 {
			args = append(args, id)
		}
		if _, err := tx.ExecContext(ctx, step.query, args...); err != nil {
			return &models.StorageError{Op: step.op, Err: err}
		}
	}

	if err := tx.Commit(); err != nil {
		return &models.StorageError{Op: "committing project deletion", Err: err}
	}

	return nil
}
