// ABOUTME: Main entry point for the projectkb MCP server with stdio transport
// ABOUTME: Initializes storage and the MCP server with all knowledge store tools
package main

import (
	"log"

	"github.com/joho/godotenv"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/harper/projectkb/internal/config"
	"github.com/harper/projectkb/internal/mcp"
	"github.com/harper/projectkb/internal/storage"
)

func main() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found (this is okay for production): %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}
	defer store.Close()

	server := mcpserver.NewMCPServer(
		"Project Knowledge Store",
		"0.1.0",
	)

	mcp.RegisterTools(server, store)

	log.Println("projectkb MCP server starting on stdio...")
	if err := mcpserver.ServeStdio(server); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
