package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_GetCorpusPath(t *testing.T) {
	tests := []struct {
		name     string
		config   *Config
		expected string
	}{
		{
			name:     "default path",
			config:   &Config{ProjectPath: ".", CorpusDir: "Examples"},
			expected: "Examples",
		},
		{
			name:     "relative to project",
			config:   &Config{ProjectPath: "/project", CorpusDir: "Examples"},
			expected: "/project/Examples",
		},
		{
			name:     "absolute corpus path",
			config:   &Config{ProjectPath: "/project", CorpusDir: "/absolute/path"},
			expected: "/absolute/path",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.config.GetCorpusPath()
			if result != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, result)
			}
		})
	}
}

func TestNew(t *testing.T) {
	cfg := New()

	if cfg.ProjectPath != DefaultProjectPath {
		t.Errorf("expected ProjectPath %s, got %s", DefaultProjectPath, cfg.ProjectPath)
	}

	if cfg.Timeout != DefaultTimeout {
		t.Errorf("expected Timeout %s, got %s", DefaultTimeout, cfg.Timeout)
	}

	if len(cfg.CompilerCandidates) != len(DefaultCompilerCandidates) {
		t.Errorf("expected %d candidates, got %d", len(DefaultCompilerCandidates), len(cfg.CompilerCandidates))
	}

	// Mutating the copy must not touch the defaults
	cfg.CompilerCandidates[0] = "changed"
	if DefaultCompilerCandidates[0] == "changed" {
		t.Error("New must copy the default candidates")
	}
}

func TestConfig_GetCompilerCandidates(t *testing.T) {
	cfg := New()
	cfg.ProjectPath = "/repo"
	cfg.CompilerCandidates = []string{"bin/cc", "/usr/local/bin/cc"}

	assert.Equal(t, []string{"/repo/bin/cc", "/usr/local/bin/cc"}, cfg.GetCompilerCandidates())

	t.Run("explicit compiler replaces the candidates", func(t *testing.T) {
		cfg.Compiler = "out/cc"
		assert.Equal(t, []string{"/repo/out/cc"}, cfg.GetCompilerCandidates())
	})
}

func TestLoad_Layering(t *testing.T) {
	dir := t.TempDir()
	yamlContent := `
compiler:
  - build/from-yaml
timeout: 30s
corpus:
  dir: Samples
  extension: .src
  digit_prefix: false
markers:
  tokens: [ok]
  phrases: ["all good"]
output:
  file: out.json
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, DefaultConfigFile), []byte(yamlContent), 0644))

	t.Run("file overrides defaults", func(t *testing.T) {
		cfg, err := Load(Flags{ProjectPath: dir})
		require.NoError(t, err)

		assert.Equal(t, 30*time.Second, cfg.Timeout)
		assert.Equal(t, "Samples", cfg.CorpusDir)
		assert.Equal(t, ".src", cfg.Extension)
		assert.False(t, cfg.DigitPrefix)
		assert.Equal(t, []string{"ok"}, cfg.MarkerTokens)
		assert.Equal(t, []string{"all good"}, cfg.MarkerPhrases)
		assert.Equal(t, "build/from-yaml", cfg.CompilerCandidates[0])
		assert.Equal(t, filepath.Join(dir, "storage", "out.json"), cfg.GetOutputPath())
	})

	t.Run("environment overrides file", func(t *testing.T) {
		t.Setenv(EnvCorpusDir, "FromEnv")
		t.Setenv(EnvTimeout, "5s")
		t.Setenv(EnvCompiler, "env-cc")

		cfg, err := Load(Flags{ProjectPath: dir})
		require.NoError(t, err)

		assert.Equal(t, "FromEnv", cfg.CorpusDir)
		assert.Equal(t, 5*time.Second, cfg.Timeout)
		assert.Equal(t, "env-cc", cfg.Compiler)
		assert.Equal(t, []string{filepath.Join(dir, "env-cc")}, cfg.GetCompilerCandidates())
	})

	t.Run("flags override environment", func(t *testing.T) {
		t.Setenv(EnvCorpusDir, "FromEnv")
		t.Setenv(EnvCompiler, "env-cc")

		cfg, err := Load(Flags{
			ProjectPath: dir,
			CorpusDir:   "FromFlag",
			Compiler:    "flag-cc",
			Timeout:     time.Second,
		})
		require.NoError(t, err)

		assert.Equal(t, "FromFlag", cfg.CorpusDir)
		assert.Equal(t, time.Second, cfg.Timeout)
		assert.Equal(t, "flag-cc", cfg.Compiler)
		assert.Equal(t, "build/from-yaml", cfg.CompilerCandidates[0])
	})
}

func TestLoad_DotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, DefaultEnvFile), []byte(EnvHistoryDSN+"=user:pw@tcp(db:3306)/corpus\n"), 0644))
	// t.Setenv restores the variable afterwards; godotenv only sets unset ones
	t.Setenv(EnvHistoryDSN, "")
	require.NoError(t, os.Unsetenv(EnvHistoryDSN))

	cfg, err := Load(Flags{ProjectPath: dir})
	require.NoError(t, err)
	assert.Equal(t, "user:pw@tcp(db:3306)/corpus", cfg.HistoryDSN)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("invalid yaml", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, DefaultConfigFile), []byte("timeout: [unterminated"), 0644))
		_, err := Load(Flags{ProjectPath: dir})
		assert.Error(t, err)
	})

	t.Run("invalid timeout in file", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, DefaultConfigFile), []byte("timeout: soon"), 0644))
		_, err := Load(Flags{ProjectPath: dir})
		assert.ErrorContains(t, err, "invalid timeout")
	})

	t.Run("missing explicit config file is fine", func(t *testing.T) {
		dir := t.TempDir()
		cfg, err := Load(Flags{ProjectPath: dir, ConfigFile: filepath.Join(dir, "nope.yaml")})
		require.NoError(t, err)
		assert.Equal(t, DefaultTimeout, cfg.Timeout)
	})

	t.Run("all files flag disables digit prefix", func(t *testing.T) {
		cfg, err := Load(Flags{ProjectPath: t.TempDir(), AllFiles: true})
		require.NoError(t, err)
		assert.False(t, cfg.DigitPrefix)
	})
}
