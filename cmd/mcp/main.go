// Package main provides the entry point for the TubeRec MCP server.
//
// This MCP server allows AI agents (Claude Code, Cursor, Cline, Windsurf) to
// search the video catalogue, record interactions, and fetch personalized
// recommendations programmatically.
//
// Configuration:
//
//	TUBEREC_API_URL - Base URL of the API (default: http://localhost:8080)
//
// Usage with Claude Code:
//
//	claude mcp add tuberec --transport stdio \
//	  --env TUBEREC_API_URL=http://localhost:8080 \
//	  -- /path/to/tuberec-mcp
package main

import (
	"log"
	"os"

	"github.com/tuberec/tuberec/cmd/mcp/client"
	"github.com/tuberec/tuberec/cmd/mcp/server"
)

func main() {
	apiURL := os.Getenv("TUBEREC_API_URL")
	if apiURL == "" {
		apiURL = "http://localhost:8080"
	}

	apiClient := client.NewClient(apiURL)
	srv := server.NewServer(apiClient)

	if err := srv.Run(); err != nil {
		log.Fatal(err)
	}
}
