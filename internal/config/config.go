package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Project settings
	ProjectPath string
	CorpusDir   string

	// Corpus selection
	Extension   string
	DigitPrefix bool

	// Compiler invocation
	Compiler           string // explicit path from flag or env, never falls back
	CompilerCandidates []string
	Timeout            time.Duration
	MaxOutput          int

	// Extra success markers on top of the built-in ones
	MarkerTokens  []string
	MarkerPhrases []string

	// Output settings
	OutputJSONFile string
	OutputJSONDir  string
	HistoryDSN     string

	// Command flags
	Flags Flags
}

// Flags holds command-line flags
type Flags struct {
	ProjectPath string
	ConfigFile  string
	Compiler    string
	CorpusDir   string
	NameFilter  string
	AllFiles    bool
	Timeout     time.Duration
	Save        bool
	Progress    bool
	Verbose     bool
	NoColor     bool
	Details     bool
	HistoryDSN  string
}

// New creates a new Config with defaults
func New() *Config {
	cfg := &Config{
		ProjectPath:    DefaultProjectPath,
		CorpusDir:      DefaultCorpusDir,
		Extension:      DefaultExtension,
		DigitPrefix:    true,
		Timeout:        DefaultTimeout,
		MaxOutput:      DefaultMaxOutput,
		OutputJSONFile: DefaultOutputJSONFile,
		OutputJSONDir:  DefaultOutputJSONDir,
	}
	// Copy default candidates
	cfg.CompilerCandidates = make([]string, len(DefaultCompilerCandidates))
	copy(cfg.CompilerCandidates, DefaultCompilerCandidates)
	return cfg
}

// Load creates a config and applies the config file, environment and flags
func Load(flags Flags) (*Config, error) {
	cfg := New()
	if err := cfg.Apply(flags); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Apply layers the config file, environment and flags over the current
// values. Flags win over environment, environment wins over the file.
func (c *Config) Apply(flags Flags) error {
	c.Flags = flags
	if flags.ProjectPath != "" {
		c.ProjectPath = flags.ProjectPath
	}

	// .env is optional, variables already set in the process take precedence
	envPath := filepath.Join(c.ProjectPath, DefaultEnvFile)
	if err := godotenv.Load(envPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("load %s: %w", envPath, err)
	}

	file, err := readFile(c.configFilePath())
	if err != nil {
		return err
	}
	if err := file.applyTo(c); err != nil {
		return err
	}

	if err := c.applyEnv(); err != nil {
		return err
	}
	c.applyFlags()
	return nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvCompiler); v != "" {
		c.Compiler = v
	}
	if v := os.Getenv(EnvCorpusDir); v != "" {
		c.CorpusDir = v
	}
	if v := os.Getenv(EnvTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return fmt.Errorf("invalid %s %q", EnvTimeout, v)
		}
		c.Timeout = d
	}
	if v := os.Getenv(EnvHistoryDSN); v != "" {
		c.HistoryDSN = v
	}
	return nil
}

func (c *Config) applyFlags() {
	f := c.Flags
	if f.Compiler != "" {
		c.Compiler = f.Compiler
	}
	if f.CorpusDir != "" {
		c.CorpusDir = f.CorpusDir
	}
	if f.AllFiles {
		c.DigitPrefix = false
	}
	if f.Timeout > 0 {
		c.Timeout = f.Timeout
	}
	if f.HistoryDSN != "" {
		c.HistoryDSN = f.HistoryDSN
	}
}

func (c *Config) configFilePath() string {
	if c.Flags.ConfigFile != "" {
		return c.Flags.ConfigFile
	}
	return filepath.Join(c.ProjectPath, DefaultConfigFile)
}

// GetCorpusPath returns the corpus directory, relative to the project path
// unless it is absolute
func (c *Config) GetCorpusPath() string {
	return c.resolve(c.CorpusDir)
}

// GetCompilerCandidates returns the candidate compiler paths resolved
// against the project path, in probing order. An explicit compiler is the
// only candidate.
func (c *Config) GetCompilerCandidates() []string {
	if c.Compiler != "" {
		return []string{c.resolve(c.Compiler)}
	}
	paths := make([]string, 0, len(c.CompilerCandidates))
	for _, candidate := range c.CompilerCandidates {
		paths = append(paths, c.resolve(candidate))
	}
	return paths
}

// GetOutputPath returns the absolute path to the output JSON file so run and
// failures read and write the same file regardless of cwd.
func (c *Config) GetOutputPath() string {
	p := filepath.Join(c.ProjectPath, c.OutputJSONDir, c.OutputJSONFile)
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}

func (c *Config) resolve(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.ProjectPath, p)
}
