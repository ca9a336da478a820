package discovery

import (
	"path/filepath"
	"strings"

	"corpustest/internal/domain"
)

// Filter filters examples by name pattern
type Filter struct{}

// NewFilter creates a new Filter
func NewFilter() *Filter {
	return &Filter{}
}

// FilterByName filters examples by name pattern using wildcard matching.
// Supports patterns like "03_*" or "*loop*"; a pattern without wildcards
// matches as a substring. Order is preserved.
func (f *Filter) FilterByName(examples []domain.ExampleFile, pattern string) []domain.ExampleFile {
	if pattern == "" {
		return examples
	}

	var filtered []domain.ExampleFile
	for _, example := range examples {
		if f.matches(example.Name, pattern) {
			filtered = append(filtered, example)
		}
	}
	return filtered
}

func (f *Filter) matches(name, pattern string) bool {
	// filepath.Match supports * and ? wildcards
	if matched, err := filepath.Match(pattern, name); err == nil && matched {
		return true
	}

	if !strings.ContainsAny(pattern, "*?") {
		return strings.Contains(name, pattern)
	}

	// Looser match for "*part*other*": every non-empty part must appear in order
	if strings.Contains(pattern, "*") {
		rest := name
		hasPart := false
		for _, part := range strings.Split(pattern, "*") {
			if part == "" {
				continue
			}
			hasPart = true
			idx := strings.Index(rest, part)
			if idx < 0 {
				return false
			}
			rest = rest[idx+len(part):]
		}
		return hasPart
	}

	return false
}
