// ABOUTME: Tests for the storage facade
// ABOUTME: Exercises a full workflow across projects, documents, entries, tags, and relations
package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harper/projectkb/internal/models"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()
	store, err := OpenInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestOpenDefaultPath(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", t.TempDir())

	store, err := Open("")
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	assert.NotEmpty(t, store.Path())
}

func TestFullWorkflow(t *testing.T) {
	ctx := context.Background()
	store := newTestStorage(t)

	// Project setup.
	p1, err := store.CreateProject(ctx, "P1", "/p1", "first")
	require.NoError(t, err)
	_, err = store.SetActiveProject(ctx, p1.ID)
	require.NoError(t, err)

	active, err := store.GetActiveProject(ctx)
	require.NoError(t, err)
	require.NotNil(t, active)
	assert.Equal(t, p1.ID, active.ID)

	// Document with a version history.
	d1, err := store.CreateDocument(ctx, p1.ID, "D1", "/p1/d1", "text/markdown", "1.0", "hello")
	require.NoError(t, err)
	assert.Equal(t, "hello", d1.Content)

	updated, ver, err := store.AddDocumentVersion(ctx, d1.ID, "1.1", "world")
	require.NoError(t, err)
	assert.Equal(t, "world", updated.Content)
	assert.Equal(t, "1.1", ver.Version)

	versions, err := store.ListDocumentVersions(ctx, d1.ID)
	require.NoError(t, err)
	require.Len(t, versions, 2)
	assert.Equal(t, "1.0", versions[0].Version)
	assert.Equal(t, "1.1", versions[1].Version)

	// Tagging twice leaves a single association.
	require.NoError(t, store.AddTagToDocument(ctx, d1.ID, "draft"))
	require.NoError(t, store.AddTagToDocument(ctx, d1.ID, "Draft"))
	docTags, err := store.ListTagsForDocument(ctx, d1.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"draft"}, docTags)

	// Memory entries linked to each other and the document.
	m1, err := store.CreateMemoryEntry(ctx, p1.ID, "M1", "note", "first note")
	require.NoError(t, err)
	m2, err := store.CreateMemoryEntry(ctx, p1.ID, "M2", "decision", "second note")
	require.NoError(t, err)

	rel, err := store.LinkEntries(ctx, m1.ID, m2.ID, "related")
	require.NoError(t, err)
	require.NoError(t, store.LinkEntryToDocument(ctx, m1.ID, d1.ID))

	related, err := store.ListRelatedEntries(ctx, m1.ID)
	require.NoError(t, err)
	require.Len(t, related, 1)
	assert.Equal(t, models.DirectionOutgoing, related[0].Direction)
	assert.Equal(t, m2.ID, related[0].EntryID)
	assert.Equal(t, "M2", related[0].Title)

	linkedDocs, err := store.ListDocumentsForEntry(ctx, m1.ID)
	require.NoError(t, err)
	require.Len(t, linkedDocs, 1)
	assert.Equal(t, d1.ID, linkedDocs[0].ID)

	// Unlink navigates back to the source entry.
	sourceID, err := store.UnlinkEntries(ctx, rel.ID)
	require.NoError(t, err)
	assert.Equal(t, m1.ID, sourceID)

	related, err = store.ListRelatedEntries(ctx, m1.ID)
	require.NoError(t, err)
	assert.Empty(t, related)

	// Deleting the entry reports its owning project.
	projectID, err := store.DeleteMemoryEntry(ctx, m1.ID)
	require.NoError(t, err)
	assert.Equal(t, p1.ID, projectID)

	// Project delete takes everything with it.
	require.NoError(t, store.DeleteProject(ctx, p1.ID))
	_, err = store.GetDocument(ctx, d1.ID)
	assert.True(t, models.IsNotFound(err))
	_, err = store.GetMemoryEntry(ctx, m2.ID)
	assert.True(t, models.IsNotFound(err))

	active, err = store.GetActiveProject(ctx)
	require.NoError(t, err)
	assert.Nil(t, active)
}

func TestErrorTaxonomyThroughFacade(t *testing.T) {
	ctx := context.Background()
	store := newTestStorage(t)

	_, err := store.GetProject(ctx, 42)
	assert.True(t, models.IsNotFound(err))

	_, err = store.CreateProject(ctx, "", "/p", "")
	assert.True(t, models.IsValidation(err))

	_, err = store.CreateProject(ctx, "P", "/p", "")
	require.NoError(t, err)
	_, err = store.CreateProject(ctx, "Other", "/p", "")
	assert.True(t, models.IsConflict(err))
}
