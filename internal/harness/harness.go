// Package harness drives a corpus run: every example is handed to the
// compiler in discovery order, classified, and folded into a RunSummary.
package harness

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/sourcegraph/conc/panics"

	"corpustest/internal/classify"
	"corpustest/internal/domain"
)

// ErrExamplesFailed is returned by the run command when at least one example
// failed. The summary has already been printed when it is returned.
var ErrExamplesFailed = errors.New("examples failed")

// Invoker runs the compiler on one example
type Invoker interface {
	Run(ctx context.Context, executable string, example domain.ExampleFile) domain.RunResult
}

// Classifier turns a run result into a verdict
type Classifier interface {
	Classify(result domain.RunResult) domain.Verdict
}

// Reporter receives progress as the run advances
type Reporter interface {
	Record(index, total int, rec domain.Record)
	Progress(passed, failed int)
	Summary(s *domain.RunSummary)
}

// Harness runs a corpus sequentially
type Harness struct {
	invoker    Invoker
	classifier Classifier
	reporter   Reporter
	logger     *slog.Logger
	newRunID   func() string
}

// New creates a Harness
func New(invoker Invoker, classifier Classifier, reporter Reporter, logger *slog.Logger) *Harness {
	return &Harness{
		invoker:    invoker,
		classifier: classifier,
		reporter:   reporter,
		logger:     logger,
		newRunID:   uuid.NewString,
	}
}

// Run processes every example, in order, and returns the completed summary.
// A failing, hanging or crashing example never stops the ones after it.
// If ctx is cancelled the remaining examples are still recorded, as
// failures, so that Total always equals len(examples).
func (h *Harness) Run(ctx context.Context, executable string, examples []domain.ExampleFile) *domain.RunSummary {
	summary := domain.NewRunSummary(h.newRunID())
	h.logger.Debug("starting run", "run_id", summary.RunID, "compiler", executable, "examples", len(examples))

	for i, example := range examples {
		rec := h.runOne(ctx, executable, example)
		summary.Add(rec)

		h.reporter.Record(i+1, len(examples), rec)
		h.reporter.Progress(summary.Passed, summary.Failed)
	}

	summary.Duration = time.Since(summary.Started)
	h.reporter.Summary(summary)
	return summary
}

// runOne never panics: anything that escapes invocation or classification
// becomes a failed verdict for this example.
func (h *Harness) runOne(ctx context.Context, executable string, example domain.ExampleFile) domain.Record {
	start := time.Now()
	rec := domain.Record{File: example}

	if err := ctx.Err(); err != nil {
		rec.Verdict = domain.Fail(fmt.Sprintf("not run: %v", err))
		return rec
	}

	var pc panics.Catcher
	pc.Try(func() {
		result := h.invoker.Run(ctx, executable, example)
		rec.Verdict = h.classifier.Classify(result)
		if !rec.Verdict.Passed() {
			rec.Line = classify.DiagnosticLine(result.Stderr)
		}
		h.logger.Debug("example finished",
			"example", example.Name,
			"outcome", result.Outcome.String(),
			"exit_code", result.ExitCode,
			"passed", rec.Verdict.Passed(),
		)
	})
	if r := pc.Recovered(); r != nil {
		h.logger.Warn("example crashed the harness", "example", example.Name, "panic", r.Value)
		rec.Verdict = domain.Fail(classify.Truncate(fmt.Sprintf("internal error: %v", r.Value), classify.MessageLimit))
		rec.Line = 0
	}

	rec.Duration = time.Since(start)
	return rec
}
