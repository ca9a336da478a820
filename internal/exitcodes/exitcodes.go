// Package exitcodes defines the process exit codes of corpustest.
//
//   - Success (0): every example passed
//   - Failure (1): one or more examples failed, or the run could not start
//     (no compiler found, empty corpus, bad configuration)
package exitcodes

const (
	Success = 0
	Failure = 1
)

// FromError maps the error returned by a command to the process exit code
func FromError(err error) int {
	if err != nil {
		return Failure
	}
	return Success
}
