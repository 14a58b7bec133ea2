// Package capture runs a child command with color output forced on,
// echoing every line to the console the moment it is read while
// accumulating the full output for later rendering.
//
// Draining is strictly sequential: stdout is read to end-of-stream
// before stderr is touched. A child that fills its stderr pipe while
// stdout is still open can stall under this scheme; commands that
// finish one stream before saturating the other are unaffected.
package capture

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/google/uuid"
)

// colorForce makes color-aware programs emit ANSI codes even though
// their output goes to a pipe rather than a terminal.
const colorForce = "CLICOLOR_FORCE=1"

// Capturer spawns commands and tees their output.
type Capturer struct {
	// Echo sinks for live output. Defaults: os.Stdout and os.Stderr.
	Stdout io.Writer
	Stderr io.Writer

	// ForceEnv entries are appended to the inherited environment in
	// addition to CLICOLOR_FORCE, for tools that honour other
	// variables (e.g. FORCE_COLOR=1).
	ForceEnv []string
}

// New creates a Capturer echoing to the process's own stdout and stderr.
func New() *Capturer {
	return &Capturer{Stdout: os.Stdout, Stderr: os.Stderr}
}

// Run spawns argv[0] with argv[1:] as arguments and drains both output
// streams, stdout first. Every line is echoed as it arrives and
// appended to the combined buffer, so the echoed bytes and the
// captured text agree exactly. The child's stdin is left at the
// default; its stdout and stderr are pipes, never the parent's own
// handles.
//
// A child that exits non-zero is not an error: the code is reported in
// the Result. Run fails only when the program cannot be started, a
// stream read faults, or termination cannot be observed.
func (c *Capturer) Run(ctx context.Context, argv []string) (*Result, error) {
	if len(argv) == 0 {
		return nil, fmt.Errorf("no command specified")
	}

	started := time.Now()

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Env = append(os.Environ(), append([]string{colorForce}, c.ForceEnv...)...)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("opening stdout pipe for %s: %w", argv[0], err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return nil, fmt.Errorf("opening stderr pipe for %s: %w", argv[0], err)
	}

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("starting %s: %w", argv[0], err)
	}

	var buf bytes.Buffer
	if err := tee(stdout, c.Stdout, &buf, "stdout", argv[0]); err != nil {
		return nil, err
	}
	if err := tee(stderr, c.Stderr, &buf, "stderr", argv[0]); err != nil {
		return nil, err
	}

	exitCode := 0
	if err := cmd.Wait(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
			if exitCode < 0 {
				// Terminated by a signal; no code to report.
				exitCode = 1
			}
		} else {
			return nil, fmt.Errorf("waiting for %s: %w", argv[0], err)
		}
	}

	return &Result{
		RunID:    uuid.New().String(),
		Output:   strings.ToValidUTF8(buf.String(), "�"),
		ExitCode: exitCode,
		Elapsed:  time.Since(started),
	}, nil
}

// tee reads r split on line-feed bytes. Each line, including a final
// partial line with no terminator, is written to echo followed by a
// newline and appended to buf the same way. Lines are passed through
// byte for byte. Read faults and echo-write faults are reported
// against the named stream and program so the failing stage is
// identifiable.
func tee(r io.Reader, echo io.Writer, buf *bytes.Buffer, stream, program string) error {
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadBytes('\n')
		line = bytes.TrimSuffix(line, []byte{'\n'})
		if len(line) > 0 || err == nil {
			if _, werr := echo.Write(append(line, '\n')); werr != nil {
				return fmt.Errorf("echoing %s of %s: %w", stream, program, werr)
			}
			buf.Write(line)
			buf.WriteByte('\n')
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("reading %s of %s: %w", stream, program, err)
		}
	}
}
