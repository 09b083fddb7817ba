// ABOUTME: MCP tool handler implementations for memory entry operations
// ABOUTME: Covers entry CRUD, entry tags, document links, and the relation graph
package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/harper/projectkb/internal/models"
)

// AddMemoryEntry handles the add_memory_entry tool
func (h *Handlers) AddMemoryEntry(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	projectID, err := requireID(request, "project_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	title, err := request.RequireString("title")
	if err != nil {
		return mcp.NewToolResultError("title argument is required and must be a string"), nil
	}
	entryType := request.GetString("type", "")
	content := request.GetString("content", "")

	entry, err := h.storage.CreateMemoryEntry(ctx, projectID, title, entryType, content)
	if err != nil {
		return errorResult(err)
	}
	return jsonResult(entry)
}

// ListMemoryEntries handles the list_memory_entries tool
func (h *Handlers) ListMemoryEntries(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	projectID, err := requireID(request, "project_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	entries, err := h.storage.ListMemoryEntries(ctx, projectID)
	if err != nil {
		return errorResult(err)
	}
	if entries == nil {
		entries = []models.MemoryEntry{}
	}
	return jsonResult(map[string]interface{}{"entries": entries})
}

// GetMemoryEntry handles the get_memory_entry tool
func (h *Handlers) GetMemoryEntry(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	entryID, err := requireID(request, "entry_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	entry, err := h.storage.GetMemoryEntry(ctx, entryID)
	if err != nil {
		return errorResult(err)
	}
	return jsonResult(entry)
}

// UpdateMemoryEntry handles the update_memory_entry tool
func (h *Handlers) UpdateMemoryEntry(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	entryID, err := requireID(request, "entry_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	upd := models.EntryUpdate{
		Title:   optionalString(request, "title"),
		Type:    optionalString(request, "type"),
		Content: optionalString(request, "content"),
	}

	entry, err := h.storage.UpdateMemoryEntry(ctx, entryID, upd)
	if err != nil {
		return errorResult(err)
	}
	return jsonResult(entry)
}

// DeleteMemoryEntry handles the delete_memory_entry tool
func (h *Handlers) DeleteMemoryEntry(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	entryID, err := requireID(request, "entry_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	projectID, err := h.storage.DeleteMemoryEntry(ctx, entryID)
	if err != nil {
		return errorResult(err)
	}
	return jsonResult(map[string]interface{}{"deleted": true, "entry_id": entryID, "project_id": projectID})
}

// AddTagToMemoryEntry handles the add_tag_to_memory_entry tool
func (h *Handlers) AddTagToMemoryEntry(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	entryID, err := requireID(request, "entry_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	tag, err := request.RequireString("tag")
	if err != nil {
		return mcp.NewToolResultError("tag argument is required and must be a string"), nil
	}

	if err := h.storage.AddTagToEntry(ctx, entryID, tag); err != nil {
		return errorResult(err)
	}
	return h.listEntryTags(ctx, entryID)
}

// RemoveTagFromMemoryEntry handles the remove_tag_from_memory_entry tool
func (h *Handlers) RemoveTagFromMemoryEntry(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	entryID, err := requireID(request, "entry_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	tag, err := request.RequireString("tag")
	if err != nil {
		return mcp.NewToolResultError("tag argument is required and must be a string"), nil
	}

	if err := h.storage.RemoveTagFromEntry(ctx, entryID, tag); err != nil {
		return errorResult(err)
	}
	return h.listEntryTags(ctx, entryID)
}

// ListTagsForMemoryEntry handles the list_tags_for_memory_entry tool
func (h *Handlers) ListTagsForMemoryEntry(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	entryID, err := requireID(request, "entry_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return h.listEntryTags(ctx, entryID)
}

func (h *Handlers) listEntryTags(ctx context.Context, entryID int64) (*mcp.CallToolResult, error) {
	tags, err := h.storage.ListTagsForEntry(ctx, entryID)
	if err != nil {
		return errorResult(err)
	}
	if tags == nil {
		tags = []string{}
	}
	return jsonResult(map[string]interface{}{"entry_id": entryID, "tags": tags})
}

// LinkMemoryEntryToDocument handles the link_memory_entry_to_document tool
func (h *Handlers) LinkMemoryEntryToDocument(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	entryID, err := requireID(request, "entry_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	documentID, err := requireID(request, "document_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if err := h.storage.LinkEntryToDocument(ctx, entryID, documentID); err != nil {
		return errorResult(err)
	}
	return jsonResult(map[string]interface{}{"linked": true, "entry_id": entryID, "document_id": documentID})
}

// UnlinkMemoryEntryFromDocument handles the unlink_memory_entry_from_document tool
func (h *Handlers) UnlinkMemoryEntryFromDocument(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	entryID, err := requireID(request, "entry_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	documentID, err := requireID(request, "document_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if err := h.storage.UnlinkEntryFromDocument(ctx, entryID, documentID); err != nil {
		return errorResult(err)
	}
	return jsonResult(map[string]interface{}{"linked": false, "entry_id": entryID, "document_id": documentID})
}

// ListDocumentsForMemoryEntry handles the list_documents_for_memory_entry tool
func (h *Handlers) ListDocumentsForMemoryEntry(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	entryID, err := requireID(request, "entry_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	docs, err := h.storage.ListDocumentsForEntry(ctx, entryID)
	if err != nil {
		return errorResult(err)
	}
	if docs == nil {
		docs = []models.Document{}
	}
	return jsonResult(map[string]interface{}{"entry_id": entryID, "documents": docs})
}

// LinkMemoryEntries handles the link_memory_entries tool
func (h *Handlers) LinkMemoryEntries(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sourceID, err := requireID(request, "source_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	targetID, err := requireID(request, "target_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	relationType := request.GetString("relation_type", "related")

	rel, err := h.storage.LinkEntries(ctx, sourceID, targetID, relationType)
	if err != nil {
		return errorResult(err)
	}
	return jsonResult(rel)
}

// ListRelatedMemoryEntries handles the list_related_memory_entries tool
func (h *Handlers) ListRelatedMemoryEntries(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	entryID, err := requireID(request, "entry_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	related, err := h.storage.ListRelatedEntries(ctx, entryID)
	if err != nil {
		return errorResult(err)
	}
	if related == nil {
		related = []models.RelatedEntry{}
	}
	return jsonResult(map[string]interface{}{"entry_id": entryID, "related": related})
}

// UnlinkMemoryEntries handles the unlink_memory_entries tool
func (h *Handlers) UnlinkMemoryEntries(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	relationID, err := requireID(request, "relation_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	sourceID, err := h.storage.UnlinkEntries(ctx, relationID)
	if err != nil {
		return errorResult(err)
	}
	return jsonResult(map[string]interface{}{"unlinked": true, "relation_id": relationID, "source_id": sourceID})
}
