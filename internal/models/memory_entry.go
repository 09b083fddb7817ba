// ABOUTME: MemoryEntry is a freeform note scoped to a project
// ABOUTME: Entries are taggable and linkable to documents and other entries
package models

import "time"

// MemoryEntry is a freeform record owned by a project.
type MemoryEntry struct {
	ID        int64     `json:"id"`
	ProjectID int64     `json:"project_id"`
	Title     string    `json:"title"`
	Type      string    `json:"type"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// EntryUpdate enumerates the mutable memory entry fields.
type EntryUpdate struct {
	Title   *string
	Type    *string
	Content *string
}

// IsZero reports whether the update would change nothing.
func (u EntryUpdate) IsZero() bool {
	return u.Title == nil && u.Type == nil && u.Content == nil
}
