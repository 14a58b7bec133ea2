// Command senor runs a child command, mirrors its colored output live,
// and saves a self-contained HTML snapshot of the session.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/deixis/senor"
	"github.com/deixis/senor/internal/config"
	senormcp "github.com/deixis/senor/internal/mcp"
	"github.com/deixis/senor/internal/pipeline"
	"github.com/deixis/senor/internal/render"
	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("senor: ")

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "run":
		runMain(args) // exits with the child's code
	case "mcp":
		if err := mcpMain(args); err != nil {
			log.Fatal(err)
		}
	case "version":
		fmt.Println(senor.Version)
	case "help", "-h", "--help":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "senor: unknown command %q\n", cmd)
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `Usage: senor <command> [flags] [args]

Commands:
  run         Run a command, echo its output, and save an HTML snapshot
  mcp         Start the MCP server
  version     Print the version
  help        Show this help

Use "senor <command> -h" for command-specific flags.`)
}

// --- run ---

func runMain(args []string) {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	output := fs.String("output", "", "snapshot file path (default: derived under the system temp directory)")
	themeFlag := fs.String("theme", "", "snapshot color theme: light or dark (default: dark)")
	_ = fs.Parse(args)

	argv := fs.Args()
	if len(argv) == 0 {
		log.Fatal("no command specified")
	}

	engine, cfg, err := newEngine()
	if err != nil {
		log.Fatal(err)
	}

	name := *themeFlag
	if name == "" {
		name = cfg.Theme
	}
	theme, err := render.ParseTheme(name)
	if err != nil {
		log.Fatal(err)
	}

	outcome, err := engine.Run(context.Background(), argv, pipeline.Options{
		Output: *output,
		Theme:  theme,
	})
	if err != nil {
		log.Fatal(err)
	}

	os.Exit(outcome.Result.ExitCode)
}

// --- mcp ---

func mcpMain(args []string) error {
	fs := flag.NewFlagSet("mcp", flag.ExitOnError)
	instructions := fs.Bool("instructions", false, "print model instructions and exit")
	_ = fs.Parse(args)

	if *instructions {
		fmt.Print(senormcp.Instructions)
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	engine, _, err := newEngine()
	if err != nil {
		return err
	}

	server := senormcp.NewServer(engine)
	return server.Run(ctx, &mcpsdk.StdioTransport{})
}

func newEngine() (*pipeline.Engine, *config.Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, nil, fmt.Errorf("determining working directory: %w", err)
	}
	cfg, err := config.Load(cwd)
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}

	engine := &pipeline.Engine{
		Config:     cfg,
		Renderer:   render.ANSI(),
		Console:    os.Stdout,
		ErrConsole: os.Stderr,
	}
	return engine, cfg, nil
}
