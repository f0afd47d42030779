package tools

import (
	"context"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jakenesler/askapi/ask"
	"github.com/jakenesler/askapi/executor"
	"github.com/jakenesler/askapi/openapi"
)

type echoExecutor struct{}

func (echoExecutor) Execute(_ context.Context, req executor.Request) (executor.Result, error) {
	return executor.Result{Output: req.Method + " " + req.URL}, nil
}

func TestNewAskTool(t *testing.T) {
	tool := NewAskTool()
	assert.Equal(t, "askApi", tool.Name)
	assert.NotEmpty(t, tool.Description)
	assert.Contains(t, tool.InputSchema.Properties, "question")
	assert.Equal(t, []string{"question"}, tool.InputSchema.Required)
}

func TestHandleAsk(t *testing.T) {
	asker := ask.New(ask.Config{BaseURL: "http://api"},
		openapi.StaticFetcher(`{"paths": {"/weather": {"get": {"summary": "current weather"}}}}`),
		echoExecutor{},
	)

	req := mcp.CallToolRequest{}
	req.Params.Name = AskToolName
	req.Params.Arguments = map[string]any{"question": "weather please"}

	res, err := handleAsk(context.Background(), req, asker)
	require.NoError(t, err)
	require.False(t, res.IsError)
	require.Len(t, res.Content, 1)

	text, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok)
	assert.Equal(t, "GET http://api/weather", text.Text)
}
