// Package classify turns a captured compiler run into a pass/fail verdict.
//
// A run passes when its output carries a recognized success marker OR the
// compiler exited with status 0. A compiler that prints a success banner
// and then crashes is therefore still classified as passed; this leniency
// is a documented limitation and must not be tightened here.
package classify

import (
	"strings"

	"github.com/acarl005/stripansi"

	"corpustest/internal/domain"
)

const (
	// MessageLimit is the maximum length, in characters, of a failure message
	MessageLimit = 100
	// UnknownFailure is used when a failing run wrote nothing to stderr
	UnknownFailure = "unknown failure"
)

// Classifier evaluates RunResults against an ordered list of markers
type Classifier struct {
	markers []Marker
}

// NewClassifier creates a Classifier. With no markers given the defaults
// are used.
func NewClassifier(markers ...Marker) *Classifier {
	if len(markers) == 0 {
		markers = DefaultMarkers()
	}
	return &Classifier{markers: markers}
}

// NewClassifierWith appends extra token and phrase markers to the defaults
func NewClassifierWith(tokens, phrases []string) *Classifier {
	markers := DefaultMarkers()
	for _, token := range tokens {
		markers = append(markers, Token(token))
	}
	for _, phrase := range phrases {
		markers = append(markers, Phrase(phrase))
	}
	return NewClassifier(markers...)
}

// Markers returns the markers in evaluation order
func (c *Classifier) Markers() []Marker {
	return c.markers
}

// Classify produces the verdict for one run. The first matching rule wins.
func (c *Classifier) Classify(result domain.RunResult) domain.Verdict {
	switch result.Outcome {
	case domain.TimedOut, domain.LaunchError, domain.Interrupted:
		msg := result.Err
		if msg == "" {
			msg = result.Outcome.String()
		}
		return domain.Fail(Truncate(msg, MessageLimit))
	}

	output := stripansi.Strip(result.Output())
	for _, marker := range c.markers {
		if marker.Match(output) {
			return domain.Pass("matched " + marker.Name())
		}
	}

	if result.ExitCode == 0 {
		return domain.Pass("exit status 0")
	}

	stderr := strings.TrimSpace(stripansi.Strip(result.Stderr))
	if stderr == "" {
		return domain.Fail(UnknownFailure)
	}
	return domain.Fail(Truncate(stderr, MessageLimit))
}

// Truncate returns the first n characters (runes) of s
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
