package ui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"corpustest/internal/domain"
)

const banner = "════════════════════════════════════════════════════════════"

var (
	passColor  = color.New(color.FgGreen)
	failColor  = color.New(color.FgRed)
	warnColor  = color.New(color.FgYellow)
	titleColor = color.New(color.FgCyan, color.Bold)
)

// Reporter prints the live report of a corpus run
type Reporter struct {
	out      io.Writer
	progress *ProgressBar
}

// NewReporter creates a Reporter writing to out
func NewReporter(out io.Writer) *Reporter {
	return &Reporter{out: out}
}

// SetProgress attaches a progress bar that is kept below the status lines
func (r *Reporter) SetProgress(progress *ProgressBar) {
	r.progress = progress
}

// Header announces the compiler and corpus about to be tested
func (r *Reporter) Header(compiler, corpusDir string, count int) {
	r.section("Compiler regression run")
	passColor.Fprintf(r.out, "✓ Compiler: %s\n", compiler)
	passColor.Fprintf(r.out, "✓ Found %d example(s) in %s\n\n", count, corpusDir)
}

// Fatal reports a precondition failure that stops the run before any
// example is attempted
func (r *Reporter) Fatal(err error, hint string) {
	failColor.Fprintf(r.out, "✗ %v\n", err)
	if hint != "" {
		fmt.Fprintln(r.out, hint)
	}
}

// Record prints the status line of one example as soon as it is classified
func (r *Reporter) Record(index, total int, rec domain.Record) {
	if r.progress != nil {
		r.progress.Clear()
	}

	counter := fmt.Sprintf("[%*d/%d]", len(fmt.Sprint(total)), index, total)
	elapsed := rec.Duration.Round(time.Millisecond)
	if rec.Verdict.Passed() {
		fmt.Fprintf(r.out, "%s %s %s (%s)\n", counter, passColor.Sprint("✓ PASS"), rec.File.Name, elapsed)
	} else {
		fmt.Fprintf(r.out, "%s %s %s - %s\n", counter, failColor.Sprint("✗ FAIL"), rec.File.Name, oneLine(rec.Verdict.Message))
	}
}

// Progress forwards the running counters to the progress bar, if any
func (r *Reporter) Progress(passed, failed int) {
	if r.progress != nil {
		r.progress.Update(passed, failed)
	}
}

// Summary prints the totals, the success rate and the failing examples
func (r *Reporter) Summary(s *domain.RunSummary) {
	if r.progress != nil {
		r.progress.Finish()
	}

	r.section("Summary")

	rate := FormatRate(s)

	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetStyle(table.StyleRounded)
	t.AppendRows([]table.Row{
		{"Total examples", s.Total},
		{"Passed", s.Passed},
		{"Failed", s.Failed},
		{"Success rate", rate},
		{"Duration", s.Duration.Round(time.Millisecond)},
		{"Run ID", s.RunID},
	})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
	})
	t.Render()

	// One line with all three counters for scripts grepping the output
	fmt.Fprintf(r.out, "\nTotal: %d | Passed: %d | Failed: %d\n", s.Total, s.Passed, s.Failed)
	fmt.Fprintf(r.out, "Success Rate: %s\n", rate)

	if failures := s.Failures(); len(failures) > 0 {
		warnColor.Fprintf(r.out, "\nFailing examples:\n")
		for _, rec := range failures {
			fmt.Fprintf(r.out, "  - %s: %s\n", rec.File.Name, oneLine(rec.Verdict.Message))
		}
	}

	fmt.Fprintln(r.out)
	if s.AllPassed() {
		passColor.Fprintln(r.out, "✓ All examples passed!")
	} else {
		failColor.Fprintf(r.out, "✗ %d example(s) failed\n", s.Failed)
	}
}

func (r *Reporter) section(title string) {
	titleColor.Fprintf(r.out, "\n%s\n  %s\n%s\n\n", banner, title, banner)
}

// FormatRate renders the success rate with one decimal, or N/A when no
// example ran
func FormatRate(s *domain.RunSummary) string {
	rate, ok := s.SuccessRate()
	if !ok {
		return "N/A"
	}
	return fmt.Sprintf("%.1f%%", rate)
}

// oneLine flattens a multi-line diagnostic for single-line display
func oneLine(msg string) string {
	return strings.Join(strings.Fields(msg), " ")
}
