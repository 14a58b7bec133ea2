package capture

import "time"

// Result holds everything captured from one child run.
type Result struct {
	RunID    string        // unique identifier for this run
	Output   string        // combined output, stdout fully then stderr fully, one '\n' per line
	ExitCode int           // child exit code (1 if it terminated without one)
	Elapsed  time.Duration // wall-clock time from spawn to observed termination
}
