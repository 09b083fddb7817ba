// ABOUTME: Tests for MCP and web command structure
// ABOUTME: Verifies command metadata without starting servers

package commands

import (
	"strings"
	"testing"
)

func TestNewMCPCmd(t *testing.T) {
	cmd := NewMCPCmd()

	if cmd.Use != "mcp" {
		t.Errorf("Use = %q, want %q", cmd.Use, "mcp")
	}

	if cmd.RunE == nil {
		t.Error("RunE should be set")
	}

	if !strings.Contains(cmd.Example, "projectkb mcp") {
		t.Error("Example should show how to start the server")
	}
}

func TestNewWebCmd(t *testing.T) {
	cmd := NewWebCmd()

	if cmd.Use != "web" {
		t.Errorf("Use = %q, want %q", cmd.Use, "web")
	}

	if cmd.RunE == nil {
		t.Error("RunE should be set")
	}

	if !strings.Contains(cmd.Example, "projectkb web") {
		t.Error("Example should show how to start the server")
	}
}
