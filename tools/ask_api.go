package tools

import (
	"context"

	"github.com/jakenesler/askapi/ask"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// AskToolName is the name the tool is discovered under.
const AskToolName = "askApi"

const askToolDescription = "Ask a question of the REST API documented by the configured OpenAPI/Swagger document. " +
	"The endpoint and its parameters are chosen from the documentation, the call is made, and the raw response body is returned."

// NewAskTool describes the askApi tool.
func NewAskTool() mcp.Tool {
	return mcp.NewTool(AskToolName,
		mcp.WithDescription(askToolDescription),
		mcp.WithString("question", mcp.Required(), mcp.Description("User question in natural language")),
	)
}

func registerAskTool(s *server.MCPServer, asker *ask.Asker) {
	s.AddTool(NewAskTool(), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleAsk(ctx, req, asker)
	})
}

func handleAsk(ctx context.Context, req mcp.CallToolRequest, asker *ask.Asker) (*mcp.CallToolResult, error) {
	question := mcp.ParseString(req, "question", "")
	return mcp.NewToolResultText(asker.Answer(ctx, question)), nil
}
