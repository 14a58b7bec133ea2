// Package pipeline sequences a full senor run: capture the child's
// output, print the console summary, render the snapshot, and write it
// to disk. It is consumed by both the MCP server and the CLI.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/deixis/senor/internal/capture"
	"github.com/deixis/senor/internal/config"
	"github.com/deixis/senor/internal/render"
	"github.com/deixis/senor/internal/snapshot"
)

// Options select per-run behaviour on top of the loaded config.
type Options struct {
	Output string       // explicit snapshot path; bypasses derivation
	Theme  render.Theme // document theme
	Quiet  bool         // suppress live echo and console summary (MCP mode)
}

// Outcome is what a completed run produced.
type Outcome struct {
	Result *capture.Result
	Path   string // where the snapshot was written
}

// Engine holds shared dependencies for runs.
type Engine struct {
	Config     *config.Config
	Renderer   render.Renderer
	Console    io.Writer // stdout echo and summary destination; defaults to os.Stdout
	ErrConsole io.Writer // stderr echo; defaults to os.Stderr
}

// Run executes argv and materialises the snapshot. The child's output
// is echoed live (unless Quiet), then the summary block is printed,
// and only afterwards is the document rendered and written — a
// rendering or write failure therefore leaves the console output
// intact. The child's exit code is reported in the Outcome, never as
// an error.
func (e *Engine) Run(ctx context.Context, argv []string, opts Options) (*Outcome, error) {
	if len(argv) == 0 {
		return nil, fmt.Errorf("no command specified")
	}

	c := capture.New()
	c.ForceEnv = e.Config.ForceEnv
	c.Stdout = e.console()
	c.Stderr = e.errConsole()
	if opts.Quiet {
		c.Stdout = io.Discard
		c.Stderr = io.Discard
	}

	res, err := c.Run(ctx, argv)
	if err != nil {
		return nil, err
	}

	command := strings.Join(argv, " ")
	if !opts.Quiet {
		e.printSummary(command, res)
	}

	path := snapshot.Resolve(argv, res.Output, opts.Output, e.Config.Dir)

	markup, err := e.Renderer.Render(res.Output)
	if err != nil {
		return nil, fmt.Errorf("converting output of %s to HTML: %w", command, err)
	}

	doc := render.Document(markup, command, opts.Theme)
	if err := snapshot.Write(path, doc); err != nil {
		return nil, err
	}

	if !opts.Quiet {
		fmt.Fprintf(e.console(), "Output saved to %s\n", path)
	}

	return &Outcome{Result: res, Path: path}, nil
}

// printSummary writes the separator block: the command line with its
// duration suffix, then the full captured text terminated by a newline.
func (e *Engine) printSummary(command string, res *capture.Result) {
	w := e.console()
	fmt.Fprint(w, "\n---\n")
	fmt.Fprintf(w, "❯ %s%s\n", command, FormatDuration(res.Elapsed))
	fmt.Fprint(w, res.Output)
	if !strings.HasSuffix(res.Output, "\n") {
		fmt.Fprintln(w)
	}
	fmt.Fprint(w, "---\n\n")
}

func (e *Engine) console() io.Writer {
	if e.Console != nil {
		return e.Console
	}
	return os.Stdout
}

func (e *Engine) errConsole() io.Writer {
	if e.ErrConsole != nil {
		return e.ErrConsole
	}
	return os.Stderr
}
