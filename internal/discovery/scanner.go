package discovery

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"corpustest/internal/domain"
)

// ErrNoExamples is returned by callers when a scan finds nothing to run
var ErrNoExamples = errors.New("no examples found")

// NamePredicate decides whether a file name belongs to the corpus
type NamePredicate func(name string) bool

// DigitPrefix accepts names starting with an ASCII digit, e.g. 01_hello.arabic
func DigitPrefix(name string) bool {
	return name != "" && name[0] >= '0' && name[0] <= '9'
}

// Scanner finds example files in a corpus directory
type Scanner struct {
	extension string
	predicate NamePredicate
}

// NewScanner creates a Scanner matching the given extension. A nil
// predicate accepts every name.
func NewScanner(extension string, predicate NamePredicate) *Scanner {
	return &Scanner{extension: extension, predicate: predicate}
}

// Scan returns the examples directly inside root, sorted by name
func (s *Scanner) Scan(root string) ([]domain.ExampleFile, error) {
	// Clean and validate the root path
	root = filepath.Clean(root)
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("corpus path does not exist: %s", root)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("corpus path is not a directory: %s", root)
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("read corpus directory: %w", err)
	}

	var examples []domain.ExampleFile
	for _, entry := range entries {
		name := entry.Name()
		// Skip directories and hidden files (starting with .)
		if entry.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}
		if s.extension != "" && !strings.EqualFold(filepath.Ext(name), s.extension) {
			continue
		}
		if s.predicate != nil && !s.predicate(name) {
			continue
		}
		examples = append(examples, domain.ExampleFile{
			Path: filepath.Join(root, name),
			Name: name,
		})
	}

	sort.Slice(examples, func(i, j int) bool {
		return examples[i].Name < examples[j].Name
	})

	return examples, nil
}
