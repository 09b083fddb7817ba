// ABOUTME: Storage facade owning the SQLite engine for the process
// ABOUTME: The single operation surface shared by both transports
package storage

import (
	"context"

	"github.com/harper/projectkb/internal/models"
	"github.com/harper/projectkb/internal/storage/sqlite"
)

// Storage owns one database engine and exposes every consistency
// operation. Both front-ends receive the same Storage and must not
// touch the database directly; schema initialization happens in Open
// and is idempotent, so whichever front-end starts first wins without
// coordination.
type Storage struct {
	db        *sqlite.DB
	projects  *sqlite.ProjectStore
	documents *sqlite.DocumentStore
	entries   *sqlite.EntryStore
	tags      *sqlite.TagStore
	relations *sqlite.RelationStore
}

// Open opens (or creates) the store at path. An empty path means the
// default XDG location.
func Open(path string) (*Storage, error) {
	if path == "" {
		path = sqlite.DefaultDBPath()
	}
	db, err := sqlite.Open(path)
	if err != nil {
		return nil, err
	}
	return newStorage(db), nil
}

// OpenInMemory creates an in-memory store (for testing)
func OpenInMemory() (*Storage, error) {
	db, err := sqlite.OpenInMemory()
	if err != nil {
		return nil, err
	}
	return newStorage(db), nil
}

func newStorage(db *sqlite.DB) *Storage {
	return &Storage{
		db:        db,
		projects:  sqlite.NewProjectStore(db),
		documents: sqlite.NewDocumentStore(db),
		entries:   sqlite.NewEntryStore(db),
		tags:      sqlite.NewTagStore(db),
		relations: sqlite.NewRelationStore(db),
	}
}

// Close releases the engine. Safe to call once regardless of which
// front-end triggers shutdown.
func (s *Storage) Close() error {
	return s.db.Close()
}

// Path returns the database file path
func (s *Storage) Path() string {
	return s.db.Path()
}

// --- Projects ---

func (s *Storage) CreateProject(ctx context.Context, name, path, description string) (*models.Project, error) {
	return s.projects.Create(ctx, name, path, description)
}

func (s *Storage) GetProject(ctx context.Context, id int64) (*models.Project, error) {
	return s.projects.Get(ctx, id)
}

func (s *Storage) GetActiveProject(ctx context.Context) (*models.Project, error) {
	return s.projects.GetActive(ctx)
}

func (s *Storage) ListProjects(ctx context.Context) ([]models.Project, error) {
	return s.projects.List(ctx)
}

func (s *Storage) UpdateProject(ctx context.Context, id int64, upd models.ProjectUpdate) (*models.Project, error) {
	return s.projects.Update(ctx, id, upd)
}

func (s *Storage) SetActiveProject(ctx context.Context, id int64) (*models.Project, error) {
	return s.projects.SetActive(ctx, id)
}

func (s *Storage) DeleteProject(ctx context.Context, id int64) error {
	return s.projects.Delete(ctx, id)
}

// --- Documents ---

func (s *Storage) CreateDocument(ctx context.Context, projectID int64, name, path, docType, version, content string) (*models.Document, error) {
	return s.documents.Create(ctx, projectID, name, path, docType, version, content)
}

func (s *Storage) GetDocument(ctx context.Context, id int64) (*models.Document, error) {
	return s.documents.Get(ctx, id)
}

func (s *Storage) ListDocuments(ctx context.Context, projectID int64) ([]models.Document, error) {
	return s.documents.ListByProject(ctx, projectID)
}

func (s *Storage) ListAllDocuments(ctx context.Context) ([]models.Document, error) {
	return s.documents.ListAll(ctx)
}

func (s *Storage) UpdateDocumentMeta(ctx context.Context, id int64, upd models.DocumentUpdate) (*models.Document, error) {
	return s.documents.UpdateMeta(ctx, id, upd)
}

func (s *Storage) AddDocumentVersion(ctx context.Context, documentID int64, version, content string) (*models.Document, *models.DocumentVersion, error) {
	return s.documents.AddVersion(ctx, documentID, version, content)
}

func (s *Storage) ListDocumentVersions(ctx context.Context, documentID int64) ([]models.DocumentVersion, error) {
	return s.documents.ListVersions(ctx, documentID)
}

func (s *Storage) GetDocumentVersion(ctx context.Context, versionID int64) (*models.DocumentVersion, error) {
	return s.documents.GetVersion(ctx, versionID)
}

// DeleteDocument removes a document and returns its owning project id.
func (s *Storage) DeleteDocument(ctx context.Context, id int64) (int64, error) {
	return s.documents.Delete(ctx, id)
}

// --- Memory entries ---

func (s *Storage) CreateMemoryEntry(ctx context.Context, projectID int64, title, entryType, content string) (*models.MemoryEntry, error) {
	return s.entries.Create(ctx, projectID, title, entryType, content)
}

func (s *Storage) GetMemoryEntry(ctx context.Context, id int64) (*models.MemoryEntry, error) {
	return s.entries.Get(ctx, id)
}

func (s *Storage) ListMemoryEntries(ctx context.Context, projectID int64) ([]models.MemoryEntry, error) {
	return s.entries.ListByProject(ctx, projectID)
}

func (s *Storage) ListAllMemoryEntries(ctx context.Context) ([]models.MemoryEntry, error) {
	return s.entries.ListAll(ctx)
}

func (s *Storage) UpdateMemoryEntry(ctx context.Context, id int64, upd models.EntryUpdate) (*models.MemoryEntry, error) {
	return s.entries.Update(ctx, id, upd)
}

// DeleteMemoryEntry removes an entry and returns its owning project id.
func (s *Storage) DeleteMemoryEntry(ctx context.Context, id int64) (int64, error) {
	return s.entries.Delete(ctx, id)
}

// --- Tags ---

func (s *Storage) AddTagToDocument(ctx context.Context, documentID int64, name string) error {
	return s.tags.AddToDocument(ctx, documentID, name)
}

func (s *Storage) RemoveTagFromDocument(ctx context.Context, documentID int64, name string) error {
	return s.tags.RemoveFromDocument(ctx, documentID, name)
}

func (s *Storage) ListTagsForDocument(ctx context.Context, documentID int64) ([]string, error) {
	return s.tags.ListForDocument(ctx, documentID)
}

func (s *Storage) AddTagToEntry(ctx context.Context, entryID int64, name string) error {
	return s.tags.AddToEntry(ctx, entryID, name)
}

func (s *Storage) RemoveTagFromEntry(ctx context.Context, entryID int64, name string) error {
	return s.tags.RemoveFromEntry(ctx, entryID, name)
}

func (s *Storage) ListTagsForEntry(ctx context.Context, entryID int64) ([]string, error) {
	return s.tags.ListForEntry(ctx, entryID)
}

// --- Relations ---

func (s *Storage) LinkEntries(ctx context.Context, sourceID, targetID int64, relationType string) (*models.MemoryRelation, error) {
	return s.relations.Link(ctx, sourceID, targetID, relationType)
}

func (s *Storage) ListRelatedEntries(ctx context.Context, entryID int64) ([]models.RelatedEntry, error) {
	return s.relations.ListRelated(ctx, entryID)
}

// UnlinkEntries deletes a relation and returns its source entry id.
func (s *Storage) UnlinkEntries(ctx context.Context, relationID int64) (int64, error) {
	return s.relations.Unlink(ctx, relationID)
}

func (s *Storage) LinkEntryToDocument(ctx context.Context, entryID, documentID int64) error {
	return s.relations.LinkDocument(ctx, entryID, documentID)
}

func (s *Storage) UnlinkEntryFromDocument(ctx context.Context, entryID, documentID int64) error {
	return s.relations.UnlinkDocument(ctx, entryID, documentID)
}

func (s *Storage) ListDocumentsForEntry(ctx context.Context, entryID int64) ([]models.Document, error) {
	return s.relations.ListDocumentsForEntry(ctx, entryID)
}
