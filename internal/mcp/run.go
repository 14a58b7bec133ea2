package mcp

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/deixis/senor/internal/pipeline"
	"github.com/deixis/senor/internal/render"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type runParams struct {
	Command []string `json:"command" jsonschema:"The command to run: program name followed by its arguments. Must be non-empty."`
	Theme   string   `json:"theme,omitempty" jsonschema:"Snapshot color theme: light or dark. Default: dark."`
	Output  string   `json:"output,omitempty" jsonschema:"Explicit snapshot file path. Default: derived from the command and output digest under the system temp directory."`
}

func (h *handler) runHandler(ctx context.Context, req *mcp.CallToolRequest, params runParams) (*mcp.CallToolResult, any, error) {
	if len(params.Command) == 0 {
		return errorResult("no command specified")
	}

	theme, err := render.ParseTheme(params.Theme)
	if err != nil {
		return errorResult(err.Error())
	}

	outcome, err := h.engine.Run(ctx, params.Command, pipeline.Options{
		Output: params.Output,
		Theme:  theme,
		Quiet:  true,
	})
	if err != nil {
		return errorResult(fmt.Sprintf("run failed: %v", err))
	}

	return textResult(formatRun(outcome))
}

func formatRun(outcome *pipeline.Outcome) string {
	res := outcome.Result

	var b strings.Builder
	fmt.Fprintf(&b, "Run: %s\n", res.RunID)
	fmt.Fprintf(&b, "Exit code: %d\n", res.ExitCode)
	fmt.Fprintf(&b, "Elapsed: %s\n", res.Elapsed.Round(time.Millisecond))
	fmt.Fprintf(&b, "Snapshot: %s\n", outcome.Path)

	if res.Output != "" {
		fmt.Fprintf(&b, "\nOutput:\n%s", res.Output)
	}
	return b.String()
}
