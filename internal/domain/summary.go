package domain

import "time"

// Record pairs an example with the verdict it received
type Record struct {
	File     ExampleFile
	Verdict  Verdict
	Line     int // First source line reported by the compiler, 0 if none
	Duration time.Duration
}

// RunSummary accumulates verdicts across one harness invocation.
// Passed+Failed always equals Total, and Records keeps discovery order.
type RunSummary struct {
	RunID    string
	Started  time.Time
	Duration time.Duration
	Passed   int
	Failed   int
	Total    int
	Records  []Record
}

// NewRunSummary creates an empty summary for the given run
func NewRunSummary(runID string) *RunSummary {
	return &RunSummary{RunID: runID, Started: time.Now()}
}

// Add records one verdict and updates the counters
func (s *RunSummary) Add(rec Record) {
	s.Records = append(s.Records, rec)
	s.Total++
	if rec.Verdict.Passed() {
		s.Passed++
	} else {
		s.Failed++
	}
}

// SuccessRate returns passed/total*100. ok is false when nothing ran.
func (s *RunSummary) SuccessRate() (rate float64, ok bool) {
	if s.Total == 0 {
		return 0, false
	}
	return float64(s.Passed) / float64(s.Total) * 100, true
}

// Failures returns the failing records in discovery order
func (s *RunSummary) Failures() []Record {
	var failures []Record
	for _, rec := range s.Records {
		if !rec.Verdict.Passed() {
			failures = append(failures, rec)
		}
	}
	return failures
}

// AllPassed reports whether no example failed
func (s *RunSummary) AllPassed() bool {
	return s.Failed == 0
}
