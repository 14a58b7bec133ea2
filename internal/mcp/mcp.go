// Package mcp provides the senor MCP server, exposing command capture
// as a tool so MCP clients can archive colored terminal sessions.
package mcp

import (
	_ "embed"

	"github.com/deixis/senor"
	"github.com/deixis/senor/internal/pipeline"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

//go:embed instructions.md
var Instructions string

// handler holds shared dependencies for all tool handlers.
type handler struct {
	engine *pipeline.Engine
}

// NewServer creates an MCP server with the senor tools registered.
// Runs triggered over MCP are quiet: captured output is returned in
// the tool result instead of being echoed to the server's console.
func NewServer(engine *pipeline.Engine) *mcp.Server {
	h := &handler{engine: engine}

	opts := &mcp.ServerOptions{
		Instructions: Instructions,
		Capabilities: &mcp.ServerCapabilities{
			Tools: &mcp.ToolCapabilities{ListChanged: false},
		},
	}
	s := mcp.NewServer(&mcp.Implementation{Name: "senor", Version: senor.Version}, opts)

	mcp.AddTool(s, &mcp.Tool{
		Name: "senor_run",
		Description: `Run a command, capture its colored output, and save an HTML snapshot.

The command runs with color forced on (CLICOLOR_FORCE=1). The snapshot is a
self-contained HTML file; unless an output path is given, it lands under the
system temp directory at a name derived from the command and output digest.`,
	}, h.runHandler)

	return s
}

// textResult is a helper to build a text-only tool result.
func textResult(text string) (*mcp.CallToolResult, any, error) {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}, nil, nil
}

// errorResult is a helper to build an error tool result.
func errorResult(text string) (*mcp.CallToolResult, any, error) {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
		IsError: true,
	}, nil, nil
}
