// ABOUTME: Tests for MCP tool handlers
// ABOUTME: Verifies argument validation, error mapping, and JSON result payloads
package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harper/projectkb/internal/storage"
)

func newTestHandlers(t *testing.T) *Handlers {
	t.Helper()
	store, err := storage.OpenInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return &Handlers{storage: store}
}

func callRequest(args map[string]any) mcp.CallToolRequest {
	var request mcp.CallToolRequest
	request.Params.Arguments = args
	return request
}

// resultText extracts the text payload from a tool result.
func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, result.Content)
	text, ok := mcp.AsTextContent(result.Content[0])
	require.True(t, ok, "expected text content")
	return text.Text
}

func TestCreateAndGetProject(t *testing.T) {
	ctx := context.Background()
	h := newTestHandlers(t)

	result, err := h.CreateProject(ctx, callRequest(map[string]any{
		"name": "Alpha",
		"path": "/alpha",
	}))
	require.NoError(t, err)
	require.False(t, result.IsError)

	var created struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
	}
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &created))
	assert.Equal(t, "Alpha", created.Name)

	result, err = h.GetProject(ctx, callRequest(map[string]any{
		"project_id": float64(created.ID),
	}))
	require.NoError(t, err)
	assert.False(t, result.IsError)
}

func TestCreateProjectMissingArgs(t *testing.T) {
	h := newTestHandlers(t)

	result, err := h.CreateProject(context.Background(), callRequest(map[string]any{
		"name": "Alpha",
	}))
	require.NoError(t, err)
	assert.True(t, result.IsError)
}

func TestGetProjectNotFound(t *testing.T) {
	h := newTestHandlers(t)

	result, err := h.GetProject(context.Background(), callRequest(map[string]any{
		"project_id": float64(42),
	}))
	require.NoError(t, err)
	assert.True(t, result.IsError)
	assert.Contains(t, resultText(t, result), "not found")
}

func TestDocumentVersionTools(t *testing.T) {
	ctx := context.Background()
	h := newTestHandlers(t)

	p, err := h.storage.CreateProject(ctx, "P", "/p", "")
	require.NoError(t, err)

	result, err := h.AddDocument(ctx, callRequest(map[string]any{
		"project_id": float64(p.ID),
		"name":       "D",
		"path":       "/p/d",
		"content":    "hello",
	}))
	require.NoError(t, err)
	require.False(t, result.IsError)

	var doc struct {
		ID int64 `json:"id"`
	}
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &doc))

	result, err = h.AddDocumentVersion(ctx, callRequest(map[string]any{
		"document_id": float64(doc.ID),
		"version":     "1.1",
		"content":     "world",
	}))
	require.NoError(t, err)
	require.False(t, result.IsError)

	// Duplicate version label maps to a tool error.
	result, err = h.AddDocumentVersion(ctx, callRequest(map[string]any{
		"document_id": float64(doc.ID),
		"version":     "1.1",
		"content":     "again",
	}))
	require.NoError(t, err)
	assert.True(t, result.IsError)

	result, err = h.GetDocumentContent(ctx, callRequest(map[string]any{
		"document_id": float64(doc.ID),
	}))
	require.NoError(t, err)
	require.False(t, result.IsError)

	var content struct {
		Version string `json:"version"`
		Content string `json:"content"`
	}
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &content))
	assert.Equal(t, "1.1", content.Version)
	assert.Equal(t, "world", content.Content)
}

func TestTagToolsReturnCurrentSet(t *testing.T) {
	ctx := context.Background()
	h := newTestHandlers(t)

	p, err := h.storage.CreateProject(ctx, "P", "/p", "")
	require.NoError(t, err)
	entry, err := h.storage.CreateMemoryEntry(ctx, p.ID, "M", "note", "x")
	require.NoError(t, err)

	result, err := h.AddTagToMemoryEntry(ctx, callRequest(map[string]any{
		"entry_id": float64(entry.ID),
		"tag":      "Draft",
	}))
	require.NoError(t, err)
	require.False(t, result.IsError)

	var payload struct {
		Tags []string `json:"tags"`
	}
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &payload))
	assert.Equal(t, []string{"draft"}, payload.Tags)
}

func TestRelationTools(t *testing.T) {
	ctx := context.Background()
	h := newTestHandlers(t)

	p, err := h.storage.CreateProject(ctx, "P", "/p", "")
	require.NoError(t, err)
	m1, err := h.storage.CreateMemoryEntry(ctx, p.ID, "M1", "note", "one")
	require.NoError(t, err)
	m2, err := h.storage.CreateMemoryEntry(ctx, p.ID, "M2", "note", "two")
	require.NoError(t, err)

	// Self-links are rejected before hitting the graph.
	result, err := h.LinkMemoryEntries(ctx, callRequest(map[string]any{
		"source_id": float64(m1.ID),
		"target_id": float64(m1.ID),
	}))
	require.NoError(t, err)
	assert.True(t, result.IsError)

	result, err = h.LinkMemoryEntries(ctx, callRequest(map[string]any{
		"source_id": float64(m1.ID),
		"target_id": float64(m2.ID),
	}))
	require.NoError(t, err)
	require.False(t, result.IsError)

	var rel struct {
		ID           int64  `json:"id"`
		RelationType string `json:"relation_type"`
	}
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &rel))
	assert.Equal(t, "related", rel.RelationType)

	result, err = h.UnlinkMemoryEntries(ctx, callRequest(map[string]any{
		"relation_id": float64(rel.ID),
	}))
	require.NoError(t, err)
	require.False(t, result.IsError)

	var unlinked struct {
		SourceID int64 `json:"source_id"`
	}
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &unlinked))
	assert.Equal(t, m1.ID, unlinked.SourceID)
}
