package domain

import "time"

// Outcome tells how a compiler invocation ended
type Outcome int

const (
	// Completed means the process ran and exited on its own
	Completed Outcome = iota
	// TimedOut means the process was killed after the run timeout
	TimedOut
	// LaunchError means the process could not be started at all
	LaunchError
	// Interrupted means the run was cancelled from outside, e.g. Ctrl-C
	Interrupted
)

func (o Outcome) String() string {
	switch o {
	case Completed:
		return "completed"
	case TimedOut:
		return "timed out"
	case LaunchError:
		return "invocation error"
	case Interrupted:
		return "interrupted"
	}
	return "unknown"
}

// RunResult is the captured outcome of invoking the compiler on one example
type RunResult struct {
	File   ExampleFile
	Stdout string
	Stderr string
	// ExitCode is only meaningful when Outcome is Completed
	ExitCode int
	Outcome  Outcome
	// Err describes the failure for TimedOut, LaunchError and Interrupted
	Err      string
	Duration time.Duration
}

// Output returns stdout followed by stderr
func (r RunResult) Output() string {
	return r.Stdout + r.Stderr
}
