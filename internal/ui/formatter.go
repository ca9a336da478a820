package ui

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/fatih/color"

	"corpustest/internal/config"
	"corpustest/internal/discovery"
	"corpustest/internal/domain"
)

// Formatter formats and displays the discovered corpus
type Formatter struct {
	config *config.Config
	parser *discovery.Parser
	out    io.Writer
}

// NewFormatter creates a new Formatter
func NewFormatter(cfg *config.Config, parser *discovery.Parser, out io.Writer) *Formatter {
	return &Formatter{
		config: cfg,
		parser: parser,
		out:    out,
	}
}

// PrintExampleList prints the corpus as a tree, optionally with the program
// and procedures each example declares. Names in failed (from the last saved
// report) are marked with [F].
func (f *Formatter) PrintExampleList(examples []domain.ExampleFile, details bool, failed map[string]struct{}) {
	passColor.Fprintf(f.out, "Found %d example(s) in %s:\n\n", len(examples), f.config.GetCorpusPath())

	cyan := color.New(color.FgCyan)
	for i, example := range examples {
		isLast := i == len(examples)-1

		failMarker := ""
		if _, ok := failed[example.Name]; ok {
			failMarker = " " + color.RedString("[F]")
		}

		branch := "├── "
		if isLast {
			branch = "└── "
		}
		cyan.Fprintf(f.out, "%s%s", branch, f.displayPath(example.Path))
		fmt.Fprintf(f.out, "%s\n", failMarker)

		if !details {
			continue
		}

		indent := "│   "
		if isLast {
			indent = "    "
		}
		for _, line := range f.detailLines(example) {
			fmt.Fprintf(f.out, "%s%s\n", indent, line)
		}
	}
}

func (f *Formatter) detailLines(example domain.ExampleFile) []string {
	info, err := f.parser.Inspect(example.Path)
	if err != nil {
		return []string{"└── " + color.RedString("(unreadable: %v)", err)}
	}

	program := info.Program
	if program == "" {
		program = color.RedString("(no program declaration)")
	} else {
		program = color.YellowString(program)
	}
	lines := []string{fmt.Sprintf("├── program: %s", program)}
	if len(info.Procedures) > 0 {
		lines = append(lines, fmt.Sprintf("├── procedures: %s", strings.Join(info.Procedures, ", ")))
	}
	lines = append(lines, fmt.Sprintf("└── lines: %d", info.Lines))
	return lines
}

// displayPath returns path relative to the project for cleaner display
func (f *Formatter) displayPath(path string) string {
	rel, err := filepath.Rel(f.config.ProjectPath, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}
	return filepath.ToSlash(rel)
}

// FailedNames returns the names of failing examples in a saved report
func FailedNames(report *domain.RunReport) map[string]struct{} {
	names := make(map[string]struct{})
	if report == nil {
		return names
	}
	for _, idx := range report.FailedEntries() {
		names[report.Details[idx].Name] = struct{}{}
	}
	return names
}
