// ABOUTME: Document persistence with append-only version history
// ABOUTME: Document content/version are only ever written alongside a version row
package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/harper/projectkb/internal/models"
)

// DocumentStore handles document and version persistence
type DocumentStore struct {
	db *DB
}

// NewDocumentStore creates a new DocumentStore
func NewDocumentStore(db *DB) *DocumentStore {
	return &DocumentStore{db: db}
}

// Create inserts a document together with its first version in one
// transaction. The document path must be unique within the project.
func (s *DocumentStore) Create(ctx context.Context, projectID int64, name, path, docType, version, content string) (*models.Document, error) {
	name = strings.TrimSpace(name)
	path = strings.TrimSpace(path)
	if name == "" {
		return nil, &models.ValidationError{Reason: "document name is required"}
	}
	if path == "" {
		return nil, &models.ValidationError{Reason: "document path is required"}
	}
	if version == "" {
		version = "1.0.0"
	}

	var exists int
	err := s.db.QueryRow(ctx, "SELECT 1 FROM projects WHERE id = ?", projectID).Scan(&exists)
	if err == sql.ErrNoRows {
		return nil, &models.NotFoundError{Entity: "project", ID: projectID}
	}
	if err != nil {
		return nil, &models.StorageError{Op: "checking project", Err: err}
	}

	err = s.db.QueryRow(ctx, "SELECT 1 FROM documents WHERE project_id = ? AND path = ?", projectID, path).Scan(&exists)
	if err == nil {
		return nil, &models.ConflictError{Entity: "document", Field: "path", Value: path}
	}
	if err != sql.ErrNoRows {
		return nil, &models.StorageError{Op: "checking document path", Err: err}
	}

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return nil, &models.StorageError{Op: "beginning transaction", Err: err}
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now().UTC()
	res, err := tx.ExecContext(ctx, `
		INSERT INTO documents (project_id, name, path, type, content, version, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, projectID, name, path, docType, content, version, now, now)
	if err != nil {
		return nil, &models.StorageError{Op: "inserting document", Err: err}
	}
	docID, err := res.LastInsertId()
	if err != nil {
		return nil, &models.StorageError{Op: "resolving document id", Err: err}
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO document_versions (document_id, version, content, created_at)
		VALUES (?, ?, ?, ?)
	`, docID, version, content, now); err != nil {
		return nil, &models.StorageError{Op: "inserting initial version", Err: err}
	}

	if err := tx.Commit(); err != nil {
		return nil, &models.StorageError{Op: "committing document", Err: err}
	}

	return &models.Document{
		ID:        docID,
		ProjectID: projectID,
		Name:      name,
		Path:      path,
		Type:      docType,
		Content:   content,
		Version:   version,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Get retrieves a document by id
func (s *DocumentStore) Get(ctx context.Context, id int64) (*models.Document, error) {
	var d models.Document
	err := s.db.QueryRow(ctx, `
		SELECT id, project_id, name, path, type, content, version, created_at, updated_at
		FROM documents
		WHERE id = ?
	`, id).Scan(&d.ID, &d.ProjectID, &d.Name, &d.Path, &d.Type, &d.Content, &d.Version, &d.CreatedAt, &d.UpdatedAt)

	if err == sql.ErrNoRows {
		return nil, &models.NotFoundError{Entity: "document", ID: id}
	}
	if err != nil {
		return nil, &models.StorageError{Op: "loading document", Err: err}
	}

	return &d, nil
}

// ListByProject returns a project's documents ordered by creation
func (s *DocumentStore) ListByProject(ctx context.Context, projectID int64) ([]models.Document, error) {
	return s.list(ctx, "WHERE project_id = ?", projectID)
}

// ListAll returns every document in the store
func (s *DocumentStore) ListAll(ctx context.Context) ([]models.Document, error) {
	return s.list(ctx, "")
}

func (s *DocumentStore) list(ctx context.Context, where string, args ...interface{}) ([]models.Document, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, project_id, name, path, type, content, version, created_at, updated_at
		FROM documents
		`+where+`
		ORDER BY id
	`, args...)
	if err != nil {
		return nil, &models.StorageError{Op: "listing documents", Err: err}
	}
	defer func() { _ = rows.Close() }()

	var docs []models.Document
	for rows.Next() {
		var d models.Document
		if err := rows.Scan(&d.ID, &d.ProjectID, &d.Name, &d.Path, &d.Type, &d.Content, &d.Version, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, &models.StorageError{Op: "scanning document", Err: err}
		}
		docs = append(docs, d)
	}
	if err := rows.Err(); err != nil {
		return nil, &models.StorageError{Op: "listing documents", Err: err}
	}

	return docs, nil
}

// UpdateMeta applies the non-nil metadata fields of upd. Content and
// version are never touched here.
func (s *DocumentStore) UpdateMeta(ctx context.Context, id int64, upd models.DocumentUpdate) (*models.Document, error) {
	d, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if upd.IsZero() {
		return d, nil
	}

	if upd.Name != nil {
		d.Name = *upd.Name
	}
	if upd.Path != nil {
		d.Path = *upd.Path
	}
	if upd.Type != nil {
		d.Type = *upd.Type
	}
	if d.Name == "" {
		return nil, &models.ValidationError{Reason: "document name is required"}
	}
	if d.Path == "" {
		return nil, &models.ValidationError{Reason: "document path is required"}
	}

	var other int64
	err = s.db.QueryRow(ctx, "SELECT id FROM documents WHERE project_id = ? AND path = ? AND id != ?", d.ProjectID, d.Path, id).Scan(&other)
	if err == nil {
		return nil, &models.ConflictError{Entity: "document", Field: "path", Value: d.Path}
	}
	if err != sql.ErrNoRows {
		return nil, &models.StorageError{Op: "checking document path", Err: err}
	}

	d.UpdatedAt = time.Now().UTC()
	_, err = s.db.Exec(ctx, `
		UPDATE documents SET name = ?, path = ?, type = ?, updated_at = ?
		WHERE id = ?
	`, d.Name, d.Path, d.Type, d.UpdatedAt, id)
	if err != nil {
		return nil, &models.StorageError{Op: "updating document metadata", Err: err}
	}

	return d, nil
}

// AddVersion appends a new version and mirrors its content and version
// string onto the parent document, both in one transaction. A duplicate
// version string for the same document is a conflict.
func (s *DocumentStore) AddVersion(ctx context.Context, documentID int64, version, content string) (*models.Document, *models.DocumentVersion, error) {
	if version == "" {
		return nil, nil, &models.ValidationError{Reason: "version string is required"}
	}

	d, err := s.Get(ctx, documentID)
	if err != nil {
		return nil, nil, err
	}

	var exists int
	err = s.db.QueryRow(ctx, "SELECT 1 FROM document_versions WHERE document_id = ? AND version = ?", documentID, version).Scan(&exists)
	if err == nil {
		return nil, nil, &models.ConflictError{Entity: "document version", Field: "version", Value: version}
	}
	if err != sql.ErrNoRows {
		return nil, nil, &models.StorageError{Op: "checking version string", Err: err}
	}

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return nil, nil, &models.StorageError{Op: "beginning transaction", Err: err}
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now().UTC()
	res, err := tx.ExecContext(ctx, `
		INSERT INTO document_versions (document_id, version, content, created_at)
		VALUES (?, ?, ?, ?)
	`, documentID, version, content, now)
	if err != nil {
		return nil, nil, &models.StorageError{Op: "inserting version", Err: err}
	}
	versionID, err := res.LastInsertId()
	if err != nil {
		return nil, nil, &models.StorageError{Op: "resolving version id", Err: err}
	}

	// Mirror update; committing one without the other would break the
	// content/version invariant, hence the shared transaction.
	if _, err := tx.ExecContext(ctx, `
		UPDATE documents SET content = ?, version = ?, updated_at = ?
		WHERE id = ?
	`, content, version, now, documentID); err != nil {
		return nil, nil, &models.StorageError{Op: "mirroring version onto document", Err: err}
	}

	if err := tx.Commit(); err != nil {
		return nil, nil, &models.StorageError{Op: "committing version", Err: err}
	}

	d.Content = content
	d.Version = version
	d.UpdatedAt = now

	return d, &models.DocumentVersion{
		ID:         versionID,
		DocumentID: documentID,
		Version:    version,
		Content:    content,
		CreatedAt:  now,
	}, nil
}

// ListVersions returns a document's version history ordered by creation
func (s *DocumentStore) ListVersions(ctx context.Context, documentID int64) ([]models.DocumentVersion, error) {
	if _, err := s.Get(ctx, documentID); err != nil {
		return nil, err
	}

	rows, err := s.db.Query(ctx, `
		SELECT id, document_id, version, content, created_at
		FROM document_versions
		WHERE document_id = ?
		ORDER BY created_at, id
	`, documentID)
	if err != nil {
		return nil, &models.StorageError{Op: "listing versions", Err: err}
	}
	defer func() { _ = rows.Close() }()

	var versions []models.DocumentVersion
	for rows.Next() {
		var v models.DocumentVersion
		if err := rows.Scan(&v.ID, &v.DocumentID, &v.Version, &v.Content, &v.CreatedAt); err != nil {
			return nil, &models.StorageError{Op: "scanning version", Err: err}
		}
		versions = append(versions, v)
	}
	if err := rows.Err(); err != nil {
		return nil, &models.StorageError{Op: "listing versions", Err: err}
	}

	return versions, nil
}

// GetVersion retrieves a single version snapshot by its id
func (s *DocumentStore) GetVersion(ctx context.Context, versionID int64) (*models.DocumentVersion, error) {
	var v models.DocumentVersion
	err := s.db.QueryRow(ctx, `
		SELECT id, document_id, version, content, created_at
		FROM document_versions
		WHERE id = ?
	`, versionID).Scan(&v.ID, &v.DocumentID, &v.Version, &v.Content, &v.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, &models.NotFoundError{Entity: "document version", ID: versionID}
	}
	if err != nil {
		return nil, &models.StorageError{Op: "loading version", Err: err}
	}

	return &v, nil
}

// Delete removes a document, its versions, and its associations.
func (s *DocumentStore) Delete(ctx context.Context, id int64) (int64, error) {
	d, err := s.Get(ctx, id)
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
	}{
		{"deleting document tags", "DELETE FROM document_tags WHERE document_id = ?"},
		{"deleting document links", "DELETE FROM memory_entry_documents WHERE document_id = ?"},
		{"deleting document versions", "DELETE FROM document_versions WHERE document_id = ?"},
		{"deleting document", "DELETE FROM documents WHERE id = ?"},
	}
	for _, step := range cascade {
		if _, err := tx.ExecContext(ctx, step.query, id); err != nil {
			return 0, &models.StorageError{Op: step.op, Err: err}
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, &models.StorageError{Op: "committing document deletion", Err: err}
	}

	// Owning project id lets callers redirect to a sensible context.
	return d.ProjectID, nil
}
