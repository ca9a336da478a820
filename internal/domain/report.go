package domain

import "time"

// RunReportMeta contains metadata about a corpus run
type RunReportMeta struct {
	RunID           string  `json:"run_id"`
	Compiler        string  `json:"compiler"`
	CorpusDir       string  `json:"corpus_dir"`
	TotalExamples   int     `json:"total_examples"`
	PassedExamples  int     `json:"passed_examples"`
	FailedExamples  int     `json:"failed_examples"`
	SuccessRate     float64 `json:"success_rate"`
	Duration        string  `json:"duration"`
	DurationSeconds float64 `json:"duration_seconds"`
	Timestamp       string  `json:"timestamp"`
}

// RunReportEntry is the persisted form of one Record
type RunReportEntry struct {
	Name     string  `json:"name"`
	Path     string  `json:"path"`
	Passed   bool    `json:"passed"`
	Message  string  `json:"message,omitempty"`
	Line     int     `json:"line,omitempty"`
	Seconds  float64 `json:"seconds"`
	Resolved bool    `json:"resolved,omitempty"` // Marked in the failures viewer
}

// RunReport is the complete JSON structure of a saved run
type RunReport struct {
	Meta    RunReportMeta    `json:"meta"`
	Details []RunReportEntry `json:"details"`
}

// NewRunReport converts a summary into its persisted form
func NewRunReport(s *RunSummary, compiler, corpusDir string) *RunReport {
	rate, _ := s.SuccessRate()
	report := &RunReport{
		Meta: RunReportMeta{
			RunID:           s.RunID,
			Compiler:        compiler,
			CorpusDir:       corpusDir,
			TotalExamples:   s.Total,
			PassedExamples:  s.Passed,
			FailedExamples:  s.Failed,
			SuccessRate:     rate,
			Duration:        s.Duration.String(),
			DurationSeconds: s.Duration.Seconds(),
			Timestamp:       s.Started.Format(time.RFC3339),
		},
		Details: make([]RunReportEntry, 0, len(s.Records)),
	}
	for _, rec := range s.Records {
		report.Details = append(report.Details, RunReportEntry{
			Name:    rec.File.Name,
			Path:    rec.File.Path,
			Passed:  rec.Verdict.Passed(),
			Message: rec.Verdict.Message,
			Line:    rec.Line,
			Seconds: rec.Duration.Seconds(),
		})
	}
	return report
}

// FailedEntries returns the indexes of failing entries
func (r *RunReport) FailedEntries() []int {
	var idx []int
	for i, entry := range r.Details {
		if !entry.Passed {
			idx = append(idx, i)
		}
	}
	return idx
}
