package discovery

import (
	"fmt"
	"os"
	"regexp"
	"strings"
	"unicode/utf8"
)

// ExampleInfo describes the content of one example source file
type ExampleInfo struct {
	Program    string   // Declared program name, empty if none
	Procedures []string // Declared procedure names, in source order
	Lines      int
}

var (
	// برنامج <name>;
	programPattern = regexp.MustCompile(`(?m)^\s*برنامج\s+([\p{L}\p{N}_]+)`)
	// إجراء <name>(
	procedurePattern = regexp.MustCompile(`(?m)^\s*إجراء\s+([\p{L}\p{N}_]+)`)
)

// Parser reads example files to describe what they declare
type Parser struct{}

// NewParser creates a new Parser
func NewParser() *Parser {
	return &Parser{}
}

// Inspect reads filePath and extracts its program and procedure names
func (p *Parser) Inspect(filePath string) (*ExampleInfo, error) {
	content, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading file %s: %w", filePath, err)
	}
	if !utf8.Valid(content) {
		return nil, fmt.Errorf("file %s is not valid UTF-8", filePath)
	}

	text := string(content)
	info := &ExampleInfo{Lines: countLines(text)}

	if match := programPattern.FindStringSubmatch(text); len(match) > 1 {
		info.Program = match[1]
	}
	for _, match := range procedurePattern.FindAllStringSubmatch(text, -1) {
		if len(match) > 1 {
			info.Procedures = append(info.Procedures, match[1])
		}
	}

	return info, nil
}

func countLines(text string) int {
	if text == "" {
		return 0
	}
	n := strings.Count(text, "\n")
	if !strings.HasSuffix(text, "\n") {
		n++
	}
	return n
}
