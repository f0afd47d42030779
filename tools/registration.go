package tools

import (
	"github.com/jakenesler/askapi/ask"
	"github.com/mark3labs/mcp-go/server"
)

// RegisterAll registers all tools with the MCP server.
func RegisterAll(s *server.MCPServer, asker *ask.Asker) {
	registerAskTool(s, asker)
}
