package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// File is the optional .corpustest.yaml in the project directory.
// All fields are optional; zero values keep the defaults.
type File struct {
	Compiler   []string    `yaml:"compiler"` // candidates probed before the defaults
	RawTimeout string      `yaml:"timeout"` // e.g. "10s", "1m"
	MaxOutput  int         `yaml:"max_output"`
	Corpus     CorpusFile  `yaml:"corpus"`
	Markers    MarkersFile `yaml:"markers"`
	Output     OutputFile  `yaml:"output"`
	History    HistoryFile `yaml:"history"`
}

// CorpusFile selects the example files
type CorpusFile struct {
	Dir         string `yaml:"dir"`
	Extension   string `yaml:"extension"`
	DigitPrefix *bool  `yaml:"digit_prefix"`
}

// MarkersFile adds success markers to the built-in list
type MarkersFile struct {
	Tokens  []string `yaml:"tokens"`  // case-insensitive substrings
	Phrases []string `yaml:"phrases"` // exact substrings
}

// OutputFile controls where --save writes the report
type OutputFile struct {
	Dir  string `yaml:"dir"`
	File string `yaml:"file"`
}

// HistoryFile configures the MySQL run history
type HistoryFile struct {
	DSN string `yaml:"dsn"`
}

// readFile parses path. A missing file yields an empty File.
func readFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &File{}, nil
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	f := &File{}
	if err := yaml.Unmarshal(data, f); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return f, nil
}

// Timeout returns the configured timeout, or zero when unset
func (f *File) Timeout() (time.Duration, error) {
	if f.RawTimeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(f.RawTimeout)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("invalid timeout %q", f.RawTimeout)
	}
	return d, nil
}

func (f *File) applyTo(c *Config) error {
	if len(f.Compiler) > 0 {
		c.CompilerCandidates = append(append([]string{}, f.Compiler...), c.CompilerCandidates...)
	}
	timeout, err := f.Timeout()
	if err != nil {
		return err
	}
	if timeout > 0 {
		c.Timeout = timeout
	}
	if f.MaxOutput > 0 {
		c.MaxOutput = f.MaxOutput
	}
	if f.Corpus.Dir != "" {
		c.CorpusDir = f.Corpus.Dir
	}
	if f.Corpus.Extension != "" {
		c.Extension = f.Corpus.Extension
	}
	if f.Corpus.DigitPrefix != nil {
		c.DigitPrefix = *f.Corpus.DigitPrefix
	}
	c.MarkerTokens = append(c.MarkerTokens, f.Markers.Tokens...)
	c.MarkerPhrases = append(c.MarkerPhrases, f.Markers.Phrases...)
	if f.Output.Dir != "" {
		c.OutputJSONDir = f.Output.Dir
	}
	if f.Output.File != "" {
		c.OutputJSONFile = f.Output.File
	}
	if f.History.DSN != "" {
		c.HistoryDSN = f.History.DSN
	}
	return nil
}
