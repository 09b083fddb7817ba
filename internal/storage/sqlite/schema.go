// ABOUTME: SQLite database schema for the project knowledge store
// ABOUTME: Creates all tables and indexes; initialization is idempotent
package sqlite

// Schema contains all SQL statements for database initialization.
// The foreign keys declare ON DELETE CASCADE as a safety net, but the
// stores issue explicit cascading deletes inside their transactions so
// behavior does not depend on pragma state.
const Schema = `
-- Projects table (at most one row has is_active = 1)
CREATE TABLE IF NOT EXISTS projects (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    path TEXT NOT NULL UNIQUE,
    is_active INTEGER NOT NULL DEFAULT 0,
    created_at DATETIME NOT NULL,
    updated_at DATETIME NOT NULL
);

-- Documents table (content/version mirror the latest document_versions row)
CREATE TABLE IF NOT EXISTS documents (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    project_id INTEGER NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
    name TEXT NOT NULL,
    path TEXT NOT NULL,
    type TEXT NOT NULL,
    content TEXT NOT NULL,
    version TEXT NOT NULL,
    created_at DATETIME NOT NULL,
    updated_at DATETIME NOT NULL,
    UNIQUE(project_id, path)
);

-- Append-only version history
CREATE TABLE IF NOT EXISTS document_versions (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    document_id INTEGER NOT NULL REFERENCES documents(id) ON DELETE CASCADE,
    version TEXT NOT NULL,
    content TEXT NOT NULL,
    created_at DATETIME NOT NULL,
    UNIQUE(document_id, version)
);

-- Memory entries table
CREATE TABLE IF NOT EXISTS memory_entries (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    project_id INTEGER NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
    title TEXT NOT NULL,
    type TEXT NOT NULL,
    content TEXT NOT NULL,
    created_at DATETIME NOT NULL,
    updated_at DATETIME NOT NULL
);

-- Tags are deduplicated by name across both association sets
CREATE TABLE IF NOT EXISTS tags (
    name TEXT PRIMARY KEY
);

CREATE TABLE IF NOT EXISTS document_tags (
    document_id INTEGER NOT NULL REFERENCES documents(id) ON DELETE CASCADE,
    tag_name TEXT NOT NULL REFERENCES tags(name) ON DELETE CASCADE,
    PRIMARY KEY (document_id, tag_name)
);

CREATE TABLE IF NOT EXISTS memory_entry_tags (
    memory_entry_id INTEGER NOT NULL REFERENCES memory_entries(id) ON DELETE CASCADE,
    tag_name TEXT NOT NULL REFERENCES tags(name) ON DELETE CASCADE,
    PRIMARY KEY (memory_entry_id, tag_name)
);

-- Memory entry <-> document association set
CREATE TABLE IF NOT EXISTS memory_entry_documents (
    memory_entry_id INTEGER NOT NULL REFERENCES memory_entries(id) ON DELETE CASCADE,
    document_id INTEGER NOT NULL REFERENCES documents(id) ON DELETE CASCADE,
    PRIMARY KEY (memory_entry_id, document_id)
);

-- Directed relations between memory entries
CREATE TABLE IF NOT EXISTS memory_entry_relations (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    source_id INTEGER NOT NULL REFERENCES memory_entries(id) ON DELETE CASCADE,
    target_id INTEGER NOT NULL REFERENCES memory_entries(id) ON DELETE CASCADE,
    relation_type TEXT NOT NULL DEFAULT '',
    created_at DATETIME NOT NULL
);

-- Indexes for efficient querying
CREATE INDEX IF NOT EXISTS idx_projects_active ON projects(is_active);
CREATE INDEX IF NOT EXISTS idx_documents_project ON documents(project_id);
CREATE INDEX IF NOT EXISTS idx_versions_document ON document_versions(document_id);
CREATE INDEX IF NOT EXISTS idx_entries_project ON memory_entries(project_id);
CREATE INDEX IF NOT EXISTS idx_relations_source ON memory_entry_relations(source_id);
CREATE INDEX IF NOT EXISTS idx_relations_target ON memory_entry_relations(target_id);
`

// SchemaVersion is the current schema version
const SchemaVersion = 1
