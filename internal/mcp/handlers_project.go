// ABOUTME: MCP tool handler implementations for project operations
// ABOUTME: Covers project CRUD and the single active project selector
package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/harper/projectkb/internal/models"
)

// ListProjects handles the list_projects tool
func (h *Handlers) ListProjects(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	projects, err := h.storage.ListProjects(ctx)
	if err != nil {
		return errorResult(err)
	}
	if projects == nil {
		projects = []models.Project{}
	}
	return jsonResult(map[string]interface{}{"projects": projects})
}

// CreateProject handles the create_project tool
func (h *Handlers) CreateProject(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := request.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError("name argument is required and must be a string"), nil
	}
	path, err := request.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError("path argument is required and must be a string"), nil
	}
	description := request.GetString("description", "")

	project, err := h.storage.CreateProject(ctx, name, path, description)
	if err != nil {
		return errorResult(err)
	}
	return jsonResult(project)
}

// GetProject handles the get_project tool
func (h *Handlers) GetProject(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := requireID(request, "project_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	project, err := h.storage.GetProject(ctx, id)
	if err != nil {
		return errorResult(err)
	}
	return jsonResult(project)
}

// UpdateProject handles the update_project tool
func (h *Handlers) UpdateProject(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := requireID(request, "project_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	upd := models.ProjectUpdate{
		Name:        optionalString(request, "name"),
		Description: optionalString(request, "description"),
		Path:        optionalString(request, "path"),
	}

	project, err := h.storage.UpdateProject(ctx, id, upd)
	if err != nil {
		return errorResult(err)
	}
	return jsonResult(project)
}

// DeleteProject handles the delete_project tool
func (h *Handlers) DeleteProject(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := requireID(request, "project_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if err := h.storage.DeleteProject(ctx, id); err != nil {
		return errorResult(err)
	}
	return jsonResult(map[string]interface{}{"deleted": true, "project_id": id})
}

// SetActiveProject handles the set_active_project tool
func (h *Handlers) SetActiveProject(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := requireID(request, "project_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	project, err := h.storage.SetActiveProject(ctx, id)
	if err != nil {
		return errorResult(err)
	}
	return jsonResult(project)
}
