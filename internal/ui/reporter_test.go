package ui

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"corpustest/internal/domain"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

func scenarioSummary() *domain.RunSummary {
	s := domain.NewRunSummary("run-1")
	s.Add(domain.Record{File: domain.ExampleFile{Name: "01_ok.src"}, Verdict: domain.Pass("matched token success"), Duration: 12 * time.Millisecond})
	s.Add(domain.Record{File: domain.ExampleFile{Name: "02_bad.src"}, Verdict: domain.Fail("parse error: line 3"), Line: 3})
	s.Duration = 40 * time.Millisecond
	return s
}

func TestReporter_Record(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf)
	s := scenarioSummary()

	r.Record(1, 2, s.Records[0])
	r.Record(2, 2, s.Records[1])

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 2)
	assert.Equal(t, "[1/2] ✓ PASS 01_ok.src (12ms)", lines[0])
	assert.Equal(t, "[2/2] ✗ FAIL 02_bad.src - parse error: line 3", lines[1])
}

func TestReporter_RecordPadsCounter(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf)
	r.Record(3, 12, domain.Record{File: domain.ExampleFile{Name: "03.arabic"}, Verdict: domain.Fail("boom\n  at x")})

	assert.Equal(t, "[ 3/12] ✗ FAIL 03.arabic - boom at x\n", buf.String())
}

func TestReporter_Summary(t *testing.T) {
	var buf bytes.Buffer
	NewReporter(&buf).Summary(scenarioSummary())
	out := buf.String()

	assert.Contains(t, out, "Total: 2 | Passed: 1 | Failed: 1")
	assert.Contains(t, out, "Success Rate: 50.0%")
	assert.Contains(t, out, "Failing examples:")
	assert.Contains(t, out, "  - 02_bad.src: parse error: line 3")
	assert.NotContains(t, out, "- 01_ok.src")
	assert.Contains(t, out, "run-1")
	assert.Contains(t, out, "✗ 1 example(s) failed")
}

func TestReporter_SummaryAllPassed(t *testing.T) {
	var buf bytes.Buffer
	s := domain.NewRunSummary("run-2")
	s.Add(domain.Record{File: domain.ExampleFile{Name: "01.arabic"}, Verdict: domain.Pass("")})

	NewReporter(&buf).Summary(s)
	out := buf.String()

	assert.Contains(t, out, "Success Rate: 100.0%")
	assert.NotContains(t, out, "Failing examples")
	assert.Contains(t, out, "✓ All examples passed!")
}

func TestReporter_Fatal(t *testing.T) {
	var buf bytes.Buffer
	NewReporter(&buf).Fatal(errors.New("compiler executable not found"), "build the compiler first")

	assert.Equal(t, "✗ compiler executable not found\nbuild the compiler first\n", buf.String())
}

func TestFormatRate(t *testing.T) {
	empty := domain.NewRunSummary("")
	assert.Equal(t, "N/A", FormatRate(empty))

	s := domain.NewRunSummary("")
	s.Add(domain.Record{Verdict: domain.Pass("")})
	s.Add(domain.Record{Verdict: domain.Fail("x")})
	s.Add(domain.Record{Verdict: domain.Fail("x")})
	assert.Equal(t, "33.3%", FormatRate(s))
}
