package discovery

import (
	"testing"

	"corpustest/internal/domain"
)

func examples(names ...string) []domain.ExampleFile {
	files := make([]domain.ExampleFile, 0, len(names))
	for _, name := range names {
		files = append(files, domain.ExampleFile{Path: "Examples/" + name, Name: name})
	}
	return files
}

func TestFilter_FilterByName(t *testing.T) {
	filter := NewFilter()

	tests := []struct {
		name     string
		examples []domain.ExampleFile
		pattern  string
		expected int // Expected number of matches
	}{
		{
			name:     "empty pattern returns all",
			examples: examples("01_hello.arabic", "02_if.arabic", "03_loop.arabic"),
			pattern:  "",
			expected: 3,
		},
		{
			name:     "wildcard pattern matches prefix",
			examples: examples("01_hello.arabic", "02_if.arabic", "03_loop.arabic"),
			pattern:  "02_*",
			expected: 1,
		},
		{
			name:     "wildcard pattern matches substring",
			examples: examples("01_hello.arabic", "03_loop.arabic", "07_nested_loop.arabic"),
			pattern:  "*loop*",
			expected: 2,
		},
		{
			name:     "simple contains match",
			examples: examples("01_hello.arabic", "02_if.arabic"),
			pattern:  "hello",
			expected: 1,
		},
		{
			name:     "no matches",
			examples: examples("01_hello.arabic", "02_if.arabic"),
			pattern:  "*procedure*",
			expected: 0,
		},
		{
			name:     "parts must appear in order",
			examples: examples("05_while_loop.arabic", "06_loop_while.arabic"),
			pattern:  "*while*loop*",
			expected: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := filter.FilterByName(tt.examples, tt.pattern)
			if len(result) != tt.expected {
				t.Errorf("expected %d matches, got %d", tt.expected, len(result))
			}
		})
	}
}

func TestFilter_FilterByName_EdgeCases(t *testing.T) {
	filter := NewFilter()

	t.Run("empty example list", func(t *testing.T) {
		result := filter.FilterByName(nil, "*.arabic")
		if len(result) != 0 {
			t.Errorf("expected empty result, got %d items", len(result))
		}
	})

	t.Run("order is preserved", func(t *testing.T) {
		result := filter.FilterByName(examples("01_a_x", "02_b", "03_a_y"), "*a_*")
		if len(result) != 2 || result[0].Name != "01_a_x" || result[1].Name != "03_a_y" {
			t.Errorf("unexpected result %v", result)
		}
	})

	t.Run("bare star matches everything", func(t *testing.T) {
		result := filter.FilterByName(examples("01_hello.arabic"), "*")
		if len(result) != 1 {
			t.Errorf("expected 1 match, got %d", len(result))
		}
	})
}
