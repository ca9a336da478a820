package classify

import (
	"regexp"
	"strconv"

	"github.com/acarl005/stripansi"
)

// Matches "line 3", "Line: 12" and the compiler's "في السطر 7"
var linePattern = regexp.MustCompile(`(?i)(?:\bline|السطر)\s*:?\s*(\d+)`)

// DiagnosticLine returns the first source line number mentioned in the
// compiler's stderr, or 0 if it names none.
func DiagnosticLine(stderr string) int {
	match := linePattern.FindStringSubmatch(stripansi.Strip(stderr))
	if len(match) < 2 {
		return 0
	}
	n, err := strconv.Atoi(match[1])
	if err != nil {
		return 0
	}
	return n
}
