// ABOUTME: Shared MCP handler state and result helpers
// ABOUTME: Maps storage errors to tool error results and values to JSON results
package mcp

import (
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/harper/projectkb/internal/storage"
)

// Handlers contains the handler functions for all MCP tools
type Handlers struct {
	storage *storage.Storage
}

// jsonResult marshals a response value into a text tool result.
func jsonResult(v interface{}) (*mcp.CallToolResult, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

// errorResult converts a storage error into a tool error result. The
// taxonomy types already carry readable messages, so the text is passed
// through as-is.
func errorResult(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

// requireID extracts a positive integer id argument.
func requireID(request mcp.CallToolRequest, key string) (int64, error) {
	v, err := request.RequireInt(key)
	if err != nil {
		return 0, fmt.Errorf("%s argument is required and must be an integer", key)
	}
	if v <= 0 {
		return 0, fmt.Errorf("%s must be a positive integer", key)
	}
	return int64(v), nil
}

// optionalString returns a pointer to the argument value when the
// caller supplied it, nil when absent. Update tools use this to tell
// "not provided" apart from "set to empty".
func optionalString(request mcp.CallToolRequest, key string) *string {
	args := request.GetArguments()
	if v, ok := args[key].(string); ok {
		return &v
	}
	return nil
}
