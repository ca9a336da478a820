// Package locator resolves the compiler executable from a list of
// candidate paths.
package locator

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrNotFound is returned when none of the candidates exist
var ErrNotFound = errors.New("compiler executable not found")

// Locate returns the first candidate that exists on the filesystem, made
// absolute so it is never looked up on PATH. The binary is not executed or
// validated beyond existence.
func Locate(candidates []string) (string, error) {
	for _, candidate := range candidates {
		if candidate == "" {
			continue
		}
		info, err := os.Stat(candidate)
		if err != nil || info.IsDir() {
			continue
		}
		if abs, err := filepath.Abs(candidate); err == nil {
			return abs, nil
		}
		return candidate, nil
	}
	return "", fmt.Errorf("%w (tried: %s)", ErrNotFound, strings.Join(candidates, ", "))
}
