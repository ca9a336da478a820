package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"corpustest/internal/classify"
	"corpustest/internal/config"
	"corpustest/internal/discovery"
	"corpustest/internal/domain"
	"corpustest/internal/execution"
	"corpustest/internal/harness"
	"corpustest/internal/history"
	"corpustest/internal/locator"
	"corpustest/internal/logging"
	"corpustest/internal/storage"
	"corpustest/internal/ui"
)

const (
	compilerHint = "Build the compiler first or point --compiler (or CORPUSTEST_COMPILER) at it."
	corpusHint   = "Add example programs to the corpus directory, or change it with --corpus."
)

// RunCommand handles the run command
type RunCommand struct {
	config  *config.Config
	filter  *discovery.Filter
	storage storage.Storage
}

// NewRunCommand creates a new RunCommand
func NewRunCommand(cfg *config.Config, filter *discovery.Filter, st storage.Storage) *RunCommand {
	return &RunCommand{
		config:  cfg,
		filter:  filter,
		storage: st,
	}
}

// Execute runs the command
func (rc *RunCommand) Execute(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	logger := logging.New(cmd.ErrOrStderr(), rc.config.Flags.Verbose)
	reporter := ui.NewReporter(out)

	// Locate the compiler before touching the corpus
	executable, err := locator.Locate(rc.config.GetCompilerCandidates())
	if err != nil {
		reporter.Fatal(err, compilerHint)
		return reported(err)
	}

	examples, err := discover(rc.config, rc.filter)
	if err != nil {
		reporter.Fatal(err, corpusHint)
		return reported(err)
	}
	if len(examples) == 0 {
		err := fmt.Errorf("%w in %s", discovery.ErrNoExamples, rc.config.GetCorpusPath())
		reporter.Fatal(err, corpusHint)
		return reported(err)
	}

	reporter.Header(executable, rc.config.GetCorpusPath(), len(examples))
	if rc.config.Flags.Progress {
		reporter.SetProgress(ui.NewProgressBar(len(examples), cmd.ErrOrStderr()))
	}

	classifier := classify.NewClassifierWith(rc.config.MarkerTokens, rc.config.MarkerPhrases)
	h := harness.New(execution.NewRunner(rc.config, logger), classifier, reporter, logger)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	summary := h.Run(ctx, executable, examples)

	report := domain.NewRunReport(summary, executable, rc.config.GetCorpusPath())
	rc.persist(ctx, out, logger, report)

	if !summary.AllPassed() {
		return reported(harness.ErrExamplesFailed)
	}
	return nil
}

// persist saves and records the report when asked to. Failures here are
// logged and never change the run's outcome.
func (rc *RunCommand) persist(ctx context.Context, out io.Writer, logger *slog.Logger, report *domain.RunReport) {
	if rc.config.Flags.Save {
		if err := rc.storage.Save(report); err != nil {
			logger.Warn("failed to save run report", "error", err)
		} else {
			fmt.Fprintf(out, "Report saved to %s\n", rc.config.GetOutputPath())
		}
	}

	recorder := history.NewRecorder(rc.config.HistoryDSN, logger)
	if recorder.Enabled() {
		if err := recorder.Record(ctx, report); err != nil {
			logger.Warn("failed to record run history", "error", err)
		}
	}
}
