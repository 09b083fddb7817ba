// ABOUTME: MCP tool handler implementations for document operations
// ABOUTME: Covers document CRUD, version history, and document tags
package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/harper/projectkb/internal/models"
)

// AddDocument handles the add_document tool
func (h *Handlers) AddDocument(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	projectID, err := requireID(request, "project_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	name, err := request.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError("name argument is required and must be a string"), nil
	}
	path, err := request.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError("path argument is required and must be a string"), nil
	}
	docType := request.GetString("type", "")
	version := request.GetString("version", "")
	content := request.GetString("content", "")

	doc, err := h.storage.CreateDocument(ctx, projectID, name, path, docType, version, content)
	if err != nil {
		return errorResult(err)
	}
	return jsonResult(doc)
}

// ListDocumentsForProject handles the list_documents_for_project tool
func (h *Handlers) ListDocumentsForProject(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	projectID, err := requireID(request, "project_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	docs, err := h.storage.ListDocuments(ctx, projectID)
	if err != nil {
		return errorResult(err)
	}
	if docs == nil {
		docs = []models.Document{}
	}
	return jsonResult(map[string]interface{}{"documents": docs})
}

// GetDocumentContent handles the get_document_content tool
func (h *Handlers) GetDocumentContent(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	documentID, err := requireID(request, "document_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	doc, err := h.storage.GetDocument(ctx, documentID)
	if err != nil {
		return errorResult(err)
	}
	return jsonResult(map[string]interface{}{
		"document_id": doc.ID,
		"version":     doc.Version,
		"content":     doc.Content,
	})
}

// UpdateDocument handles the update_document tool
func (h *Handlers) UpdateDocument(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	documentID, err := requireID(request, "document_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	upd := models.DocumentUpdate{
		Name: optionalString(request, "name"),
		Path: optionalString(request, "path"),
		Type: optionalString(request, "type"),
	}

	doc, err := h.storage.UpdateDocumentMeta(ctx, documentID, upd)
	if err != nil {
		return errorResult(err)
	}
	return jsonResult(doc)
}

// DeleteDocument handles the delete_document tool
func (h *Handlers) DeleteDocument(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	documentID, err := requireID(request, "document_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	projectID, err := h.storage.DeleteDocument(ctx, documentID)
	if err != nil {
		return errorResult(err)
	}
	return jsonResult(map[string]interface{}{"deleted": true, "document_id": documentID, "project_id": projectID})
}

// AddDocumentVersion handles the add_document_version tool
func (h *Handlers) AddDocumentVersion(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	documentID, err := requireID(request, "document_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	version, err := request.RequireString("version")
	if err != nil {
		return mcp.NewToolResultError("version argument is required and must be a string"), nil
	}
	content, err := request.RequireString("content")
	if err != nil {
		return mcp.NewToolResultError("content argument is required and must be a string"), nil
	}

	doc, ver, err := h.storage.AddDocumentVersion(ctx, documentID, version, content)
	if err != nil {
		return errorResult(err)
	}
	return jsonResult(map[string]interface{}{"document": doc, "version": ver})
}

// ListDocumentVersions handles the list_document_versions tool
func (h *Handlers) ListDocumentVersions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	documentID, err := requireID(request, "document_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	versions, err := h.storage.ListDocumentVersions(ctx, documentID)
	if err != nil {
		return errorResult(err)
	}
	if versions == nil {
		versions = []models.DocumentVersion{}
	}
	return jsonResult(map[string]interface{}{"versions": versions})
}

// GetDocumentVersionContent handles the get_document_version_content tool
func (h *Handlers) GetDocumentVersionContent(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	versionID, err := requireID(request, "version_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	ver, err := h.storage.GetDocumentVersion(ctx, versionID)
	if err != nil {
		return errorResult(err)
	}
	return jsonResult(ver)
}

// AddTagToDocument handles the add_tag_to_document tool
func (h *Handlers) AddTagToDocument(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	documentID, err := requireID(request, "document_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	tag, err := request.RequireString("tag")
	if err != nil {
		return mcp.NewToolResultError("tag argument is required and must be a string"), nil
	}

	if err := h.storage.AddTagToDocument(ctx, documentID, tag); err != nil {
		return errorResult(err)
	}
	return h.listDocumentTags(ctx, documentID)
}

// RemoveTagFromDocument handles the remove_tag_from_document tool
func (h *Handlers) RemoveTagFromDocument(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	documentID, err := requireID(request, "document_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	tag, err := request.RequireString("tag")
	if err != nil {
		return mcp.NewToolResultError("tag argument is required and must be a string"), nil
	}

	if err := h.storage.RemoveTagFromDocument(ctx, documentID, tag); err != nil {
		return errorResult(err)
	}
	return h.listDocumentTags(ctx, documentID)
}

// ListTagsForDocument handles the list_tags_for_document tool
func (h *Handlers) ListTagsForDocument(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	documentID, err := requireID(request, "document_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return h.listDocumentTags(ctx, documentID)
}

func (h *Handlers) listDocumentTags(ctx context.Context, documentID int64) (*mcp.CallToolResult, error) {
	tags, err := h.storage.ListTagsForDocument(ctx, documentID)
	if err != nil {
		return errorResult(err)
	}
	if tags == nil {
		tags = []string{}
	}
	return jsonResult(map[string]interface{}{"document_id": documentID, "tags": tags})
}
