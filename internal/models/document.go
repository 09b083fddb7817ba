// ABOUTME: Document and DocumentVersion types with append-only history
// ABOUTME: Document content/version always mirror the latest version row
package models

import "time"

// Document is a named content object belonging to a project. Its Content
// and Version fields always equal those of its most recent
// DocumentVersion; they are never written independently.
type Document struct {
	ID        int64     `json:"id"`
	ProjectID int64     `json:"project_id"`
	Name      string    `json:"name"`
	Path      string    `json:"path"`
	Type      string    `json:"type"`
	Content   string    `json:"content"`
	Version   string    `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DocumentVersion is an immutable snapshot of a document's content.
type DocumentVersion struct {
	ID         int64     `json:"id"`
	DocumentID int64     `json:"document_id"`
	Version    string    `json:"version"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"created_at"`
}

// DocumentUpdate enumerates the mutable metadata fields. Content and
// Version are deliberately absent: they change only through AddVersion.
type DocumentUpdate struct {
	Name *string
	Path *string
	Type *string
}

// IsZero reports whether the update would change nothing.
func (u DocumentUpdate) IsZero() bool {
	return u.Name == nil && u.Path == nil && u.Type == nil
}
