package execution

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
	"time"

	"corpustest/internal/config"
	"corpustest/internal/domain"
)

// waitDelay bounds how long Wait keeps reading pipes after the child was
// killed, in case a grandchild still holds them open.
const waitDelay = 2 * time.Second

// Runner invokes the compiler on a single example
type Runner struct {
	timeout   time.Duration
	maxOutput int
	flags     []string
	logger    *slog.Logger
}

// NewRunner creates a new Runner
func NewRunner(cfg *config.Config, logger *slog.Logger) *Runner {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = config.DefaultTimeout
	}
	return &Runner{
		timeout:   timeout,
		maxOutput: cfg.MaxOutput,
		flags:     []string{config.ASTFlag},
		logger:    logger,
	}
}

// Run executes `<executable> <example> --ast` and captures its output.
// It always returns a RunResult: timeouts and launch failures are reported
// through the result's Outcome, never as an error.
func (r *Runner) Run(ctx context.Context, executable string, example domain.ExampleFile) domain.RunResult {
	runCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	args := append([]string{example.Path}, r.flags...)
	cmd := exec.CommandContext(runCtx, executable, args...)
	cmd.WaitDelay = waitDelay

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &limitWriter{buf: &stdout, limit: r.maxOutput}
	cmd.Stderr = &limitWriter{buf: &stderr, limit: r.maxOutput}

	r.logger.Debug("invoking compiler", "executable", executable, "args", args, "timeout", r.timeout)

	start := time.Now()
	runErr := cmd.Run()

	result := domain.RunResult{
		File:     example,
		Stdout:   text(&stdout),
		Stderr:   text(&stderr),
		ExitCode: -1,
		Duration: time.Since(start),
	}

	switch {
	case runErr != nil && ctx.Err() != nil:
		// Cancelled or expired by the caller, not by our own timeout
		result.Outcome = domain.Interrupted
		result.Err = "interrupted: " + ctx.Err().Error()
	case runErr != nil && errors.Is(runCtx.Err(), context.DeadlineExceeded):
		result.Outcome = domain.TimedOut
		result.Err = fmt.Sprintf("timed out after %s", r.timeout)
	case cmd.ProcessState != nil:
		// The process ran. ErrWaitDelay only means a leftover child kept
		// the output pipes open after the compiler exited.
		result.Outcome = domain.Completed
		result.ExitCode = cmd.ProcessState.ExitCode()
		if errors.Is(runErr, exec.ErrWaitDelay) {
			r.logger.Warn("compiler left output pipes open after exiting", "example", example.Name)
		}
	default:
		// Binary missing, not executable, or similar
		result.Outcome = domain.LaunchError
		result.Err = runErr.Error()
	}

	r.logger.Debug("compiler finished",
		"example", example.Name,
		"outcome", result.Outcome.String(),
		"exit_code", result.ExitCode,
		"duration", result.Duration.Round(time.Millisecond),
	)

	return result
}

// text decodes captured output, dropping invalid UTF-8 sequences
func text(buf *bytes.Buffer) string {
	return strings.ToValidUTF8(buf.String(), "")
}

// limitWriter writes up to limit bytes to buf, then silently discards the rest.
type limitWriter struct {
	buf   *bytes.Buffer
	limit int
}

func (w *limitWriter) Write(p []byte) (int, error) {
	if w.limit <= 0 {
		return w.buf.Write(p)
	}
	remaining := w.limit - w.buf.Len()
	if remaining <= 0 {
		return len(p), nil // discard
	}
	if len(p) > remaining {
		// Report all bytes as consumed to avoid short write errors from io.Copy
		w.buf.Write(p[:remaining])
		return len(p), nil
	}
	return w.buf.Write(p)
}
