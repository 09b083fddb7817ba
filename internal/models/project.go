// ABOUTME: Project is the top-level scope that owns documents and memory entries
// ABOUTME: At most one project is active at a time, enforced transactionally
package models

import "time"

// Project is a named workspace owning documents and memory entries.
type Project struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Path        string    `json:"path"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ProjectUpdate enumerates the mutable project fields. A nil field is
// left untouched. The active flag is not here: activation goes through
// SetActiveProject so the single-active invariant holds.
type ProjectUpdate struct {
	Name        *string
	Description *string
	Path        *string
}

// IsZero reports whether the update would change nothing.
func (u ProjectUpdate) IsZero() bool {
	return u.Name == nil && u.Description == nil && u.Path == nil
}
