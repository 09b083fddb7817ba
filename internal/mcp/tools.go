// ABOUTME: MCP tool definitions and registration for the projectkb server
// ABOUTME: Defines JSON schemas for all knowledge store tools
package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/harper/projectkb/internal/storage"
)

func intProp(description string) map[string]interface{} {
	return map[string]interface{}{"type": "integer", "description": description}
}

func strProp(description string) map[string]interface{} {
	return map[string]interface{}{"type": "string", "description": description}
}

// RegisterTools registers all MCP tools with the server
func RegisterTools(server *mcpserver.MCPServer, store *storage.Storage) *Handlers {
	handlers := &Handlers{storage: store}

	// Project tools

	server.AddTool(mcp.Tool{
		Name:        "list_projects",
		Description: "List all projects in the knowledge store.",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, handlers.ListProjects)

	server.AddTool(mcp.Tool{
		Name:        "create_project",
		Description: "Create a new project. The path must be unique across all projects.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"name":        strProp("Project name"),
				"path":        strProp("Filesystem path identifying the project; unique"),
				"description": strProp("Optional project description"),
			},
			Required: []string{"name", "path"},
		},
	}, handlers.CreateProject)

	server.AddTool(mcp.Tool{
		Name:        "get_project",
		Description: "Get a project by id.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"project_id": intProp("Project id"),
			},
			Required: []string{"project_id"},
		},
	}, handlers.GetProject)

	server.AddTool(mcp.Tool{
		Name:        "update_project",
		Description: "Update a project's name, description, or path. Only provided fields change; the active flag cannot be set this way.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"project_id":  intProp("Project id"),
				"name":        strProp("New project name"),
				"description": strProp("New project description"),
				"path":        strProp("New project path; must stay unique"),
			},
			Required: []string{"project_id"},
		},
	}, handlers.UpdateProject)

	server.AddTool(mcp.Tool{
		Name:        "delete_project",
		Description: "Delete a project and everything it owns: documents, version history, memory entries, tags, links, and relations.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"project_id": intProp("Project id"),
			},
			Required: []string{"project_id"},
		},
	}, handlers.DeleteProject)

	server.AddTool(mcp.Tool{
		Name:        "set_active_project",
		Description: "Mark a project as the active one. Any previously active project is deactivated first.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"project_id": intProp("Project id"),
			},
			Required: []string{"project_id"},
		},
	}, handlers.SetActiveProject)

	// Document tools

	server.AddTool(mcp.Tool{
		Name:        "add_document",
		Description: "Add a document to a project. Records the initial content as the first history version.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"project_id": intProp("Owning project id"),
				"name":       strProp("Document name"),
				"path":       strProp("Document path; unique within the project"),
				"type":       strProp("Optional document type, e.g. text/markdown"),
				"version":    strProp("Optional initial version label (default 1.0.0)"),
				"content":    strProp("Initial document content"),
			},
			Required: []string{"project_id", "name", "path"},
		},
	}, handlers.AddDocument)

	server.AddTool(mcp.Tool{
		Name:        "list_documents_for_project",
		Description: "List all documents belonging to a project.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"project_id": intProp("Project id"),
			},
			Required: []string{"project_id"},
		},
	}, handlers.ListDocumentsForProject)

	server.AddTool(mcp.Tool{
		Name:        "get_document_content",
		Description: "Get the latest content and version label of a document.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"document_id": intProp("Document id"),
			},
			Required: []string{"document_id"},
		},
	}, handlers.GetDocumentContent)

	server.AddTool(mcp.Tool{
		Name:        "update_document",
		Description: "Update a document's metadata (name, path, type). Content changes go through add_document_version.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"document_id": intProp("Document id"),
				"name":        strProp("New document name"),
				"path":        strProp("New document path; must stay unique within the project"),
				"type":        strProp("New document type"),
			},
			Required: []string{"document_id"},
		},
	}, handlers.UpdateDocument)

	server.AddTool(mcp.Tool{
		Name:        "delete_document",
		Description: "Delete a document along with its version history, tags, and entry links.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"document_id": intProp("Document id"),
			},
			Required: []string{"document_id"},
		},
	}, handlers.DeleteDocument)

	server.AddTool(mcp.Tool{
		Name:        "add_document_version",
		Description: "Append a new version to a document's history and make it the document's current content. Version labels are unique per document.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"document_id": intProp("Document id"),
				"version":     strProp("Version label, e.g. 1.1"),
				"content":     strProp("Content of the new version"),
			},
			Required: []string{"document_id", "version", "content"},
		},
	}, handlers.AddDocumentVersion)

	server.AddTool(mcp.Tool{
		Name:        "list_document_versions",
		Description: "List a document's version history, oldest first.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"document_id": intProp("Document id"),
			},
			Required: []string{"document_id"},
		},
	}, handlers.ListDocumentVersions)

	server.AddTool(mcp.Tool{
		Name:        "get_document_version_content",
		Description: "Get the content of one historical document version.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"version_id": intProp("Document version id"),
			},
			Required: []string{"version_id"},
		},
	}, handlers.GetDocumentVersionContent)

	server.AddTool(mcp.Tool{
		Name:        "add_tag_to_document",
		Description: "Attach a tag to a document. Tag names are lowercased; attaching an existing tag is a no-op.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"document_id": intProp("Document id"),
				"tag":         strProp("Tag name"),
			},
			Required: []string{"document_id", "tag"},
		},
	}, handlers.AddTagToDocument)

	server.AddTool(mcp.Tool{
		Name:        "remove_tag_from_document",
		Description: "Detach a tag from a document. Removing an absent tag is a no-op.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"document_id": intProp("Document id"),
				"tag":         strProp("Tag name"),
			},
			Required: []string{"document_id", "tag"},
		},
	}, handlers.RemoveTagFromDocument)

	server.AddTool(mcp.Tool{
		Name:        "list_tags_for_document",
		Description: "List the tags attached to a document.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"document_id": intProp("Document id"),
			},
			Required: []string{"document_id"},
		},
	}, handlers.ListTagsForDocument)

	// Memory entry tools

	server.AddTool(mcp.Tool{
		Name:        "add_memory_entry",
		Description: "Add a memory entry (note, decision, observation) to a project.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"project_id": intProp("Owning project id"),
				"title":      strProp("Entry title"),
				"type":       strProp("Entry type, e.g. note or decision"),
				"content":    strProp("Entry content"),
			},
			Required: []string{"project_id", "title"},
		},
	}, handlers.AddMemoryEntry)

	server.AddTool(mcp.Tool{
		Name:        "list_memory_entries",
		Description: "List all memory entries belonging to a project.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"project_id": intProp("Project id"),
			},
			Required: []string{"project_id"},
		},
	}, handlers.ListMemoryEntries)

	server.AddTool(mcp.Tool{
		Name:        "get_memory_entry",
		Description: "Get a memory entry by id.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"entry_id": intProp("Memory entry id"),
			},
			Required: []string{"entry_id"},
		},
	}, handlers.GetMemoryEntry)

	server.AddTool(mcp.Tool{
		Name:        "update_memory_entry",
		Description: "Update a memory entry's title, type, or content. Only provided fields change.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"entry_id": intProp("Memory entry id"),
				"title":    strProp("New entry title"),
				"type":     strProp("New entry type"),
				"content":  strProp("New entry content"),
			},
			Required: []string{"entry_id"},
		},
	}, handlers.UpdateMemoryEntry)

	server.AddTool(mcp.Tool{
		Name:        "delete_memory_entry",
		Description: "Delete a memory entry along with its tags, document links, and relations in both directions.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"entry_id": intProp("Memory entry id"),
			},
			Required: []string{"entry_id"},
		},
	}, handlers.DeleteMemoryEntry)

	server.AddTool(mcp.Tool{
		Name:        "add_tag_to_memory_entry",
		Description: "Attach a tag to a memory entry. Tag names are lowercased; attaching an existing tag is a no-op.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"entry_id": intProp("Memory entry id"),
				"tag":      strProp("Tag name"),
			},
			Required: []string{"entry_id", "tag"},
		},
	}, handlers.AddTagToMemoryEntry)

	server.AddTool(mcp.Tool{
		Name:        "remove_tag_from_memory_entry",
		Description: "Detach a tag from a memory entry. Removing an absent tag is a no-op.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"entry_id": intProp("Memory entry id"),
				"tag":      strProp("Tag name"),
			},
			Required: []string{"entry_id", "tag"},
		},
	}, handlers.RemoveTagFromMemoryEntry)

	server.AddTool(mcp.Tool{
		Name:        "list_tags_for_memory_entry",
		Description: "List the tags attached to a memory entry.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"entry_id": intProp("Memory entry id"),
			},
			Required: []string{"entry_id"},
		},
	}, handlers.ListTagsForMemoryEntry)

	// Cross-link tools

	server.AddTool(mcp.Tool{
		Name:        "link_memory_entry_to_document",
		Description: "Associate a memory entry with a document. Linking an already linked pair is a no-op.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"entry_id":    intProp("Memory entry id"),
				"document_id": intProp("Document id"),
			},
			Required: []string{"entry_id", "document_id"},
		},
	}, handlers.LinkMemoryEntryToDocument)

	server.AddTool(mcp.Tool{
		Name:        "unlink_memory_entry_from_document",
		Description: "Remove the association between a memory entry and a document.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"entry_id":    intProp("Memory entry id"),
				"document_id": intProp("Document id"),
			},
			Required: []string{"entry_id", "document_id"},
		},
	}, handlers.UnlinkMemoryEntryFromDocument)

	server.AddTool(mcp.Tool{
		Name:        "list_documents_for_memory_entry",
		Description: "List the documents associated with a memory entry.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"entry_id": intProp("Memory entry id"),
			},
			Required: []string{"entry_id"},
		},
	}, handlers.ListDocumentsForMemoryEntry)

	server.AddTool(mcp.Tool{
		Name:        "link_memory_entries",
		Description: "Create a directed, typed relation between two memory entries. An entry cannot be linked to itself.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"source_id":     intProp("Source memory entry id"),
				"target_id":     intProp("Target memory entry id"),
				"relation_type": strProp("Relation type (default: related)"),
			},
			Required: []string{"source_id", "target_id"},
		},
	}, handlers.LinkMemoryEntries)

	server.AddTool(mcp.Tool{
		Name:        "list_related_memory_entries",
		Description: "List entries related to an entry, both outgoing and incoming, each with its direction and relation id.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"entry_id": intProp("Memory entry id"),
			},
			Required: []string{"entry_id"},
		},
	}, handlers.ListRelatedMemoryEntries)

	server.AddTool(mcp.Tool{
		Name:        "unlink_memory_entries",
		Description: "Delete one relation between memory entries by its relation id. Returns the source entry id.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"relation_id": intProp("Relation id from list_related_memory_entries"),
			},
			Required: []string{"relation_id"},
		},
	}, handlers.UnlinkMemoryEntries)

	return handlers
}
