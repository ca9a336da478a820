package config

import "time"

const (
	// DefaultProjectPath is the default project path
	DefaultProjectPath = "."
	// DefaultCorpusDir is the example corpus directory, relative to the project
	DefaultCorpusDir = "Examples"
	// DefaultExtension is the file extension of example sources
	DefaultExtension = ".arabic"
	// ASTFlag asks the compiler for parse-only output. It is part of the
	// compiler's command-line contract and is not configurable.
	ASTFlag = "--ast"
	// DefaultTimeout bounds a single compiler invocation
	DefaultTimeout = 10 * time.Second
	// DefaultMaxOutput caps captured stdout and stderr, each
	DefaultMaxOutput = 1 << 20
	// DefaultOutputJSONFile is the default output JSON file name
	DefaultOutputJSONFile = "corpus-results.json"
	// DefaultOutputJSONDir is the default output directory
	DefaultOutputJSONDir = "storage"
	// DefaultConfigFile is the optional YAML file read from the project path
	DefaultConfigFile = ".corpustest.yaml"
	// DefaultEnvFile is the optional dotenv file read from the project path
	DefaultEnvFile = ".env"
)

// Environment variables that override the config file
const (
	EnvCompiler   = "CORPUSTEST_COMPILER"
	EnvCorpusDir  = "CORPUSTEST_CORPUS"
	EnvTimeout    = "CORPUSTEST_TIMEOUT"
	EnvHistoryDSN = "CORPUSTEST_HISTORY_DSN"
)

// DefaultCompilerCandidates are probed in order when locating the compiler
var DefaultCompilerCandidates = []string{
	"Compiler/build/Release/ArabicCompiler.exe",
	"IDE/ArabicCompiler.exe",
	"ArabicCompiler.exe",
	"Compiler/build/ArabicCompiler",
}
