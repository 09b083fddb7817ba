// ABOUTME: MemoryRelation is a directed, optionally typed edge between entries
// ABOUTME: RelatedEntry is the symmetric view joined with the opposite title
package models

import "time"

// Relation directions as seen from the entry being queried.
const (
	DirectionOutgoing = "outgoing"
	DirectionIncoming = "incoming"
)

// MemoryRelation is a directed edge between two memory entries.
// Self-loops are invalid.
type MemoryRelation struct {
	ID           int64     `json:"id"`
	SourceID     int64     `json:"source_id"`
	TargetID     int64     `json:"target_id"`
	RelationType string    `json:"relation_type,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// RelatedEntry is one row of a symmetric relation lookup: the relation
// id (for unlink), the direction relative to the queried entry, and the
// opposite entry's id and title.
type RelatedEntry struct {
	RelationID   int64  `json:"relation_id"`
	Direction    string `json:"direction"`
	EntryID      int64  `json:"entry_id"`
	Title        string `json:"title"`
	RelationType string `json:"relation_type,omitempty"`
}
