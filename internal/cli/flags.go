package cli

import (
	"time"

	"corpustest/internal/config"
)

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

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		ProjectPath: f.ProjectPath,
		ConfigFile:  f.ConfigFile,
		Compiler:    f.Compiler,
		CorpusDir:   f.CorpusDir,
		NameFilter:  f.NameFilter,
		AllFiles:    f.AllFiles,
		Timeout:     f.Timeout,
		Save:        f.Save,
		Progress:    f.Progress,
		Verbose:     f.Verbose,
		NoColor:     f.NoColor,
		Details:     f.Details,
		HistoryDSN:  f.HistoryDSN,
	}
}
