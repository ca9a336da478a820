package storage

import (
	"errors"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"corpustest/internal/config"
	"corpustest/internal/domain"
)

func TestJSONStorage_SaveLoad(t *testing.T) {
	cfg := config.New()
	cfg.ProjectPath = t.TempDir()
	st := NewJSONStorage(cfg)

	summary := domain.NewRunSummary("run-7")
	summary.Duration = 2 * time.Second
	summary.Add(domain.Record{File: domain.ExampleFile{Name: "01.arabic", Path: "Examples/01.arabic"}, Verdict: domain.Pass("exit status 0")})
	summary.Add(domain.Record{File: domain.ExampleFile{Name: "02.arabic", Path: "Examples/02.arabic"}, Verdict: domain.Fail("❌ خطأ نحوي"), Line: 4})
	report := domain.NewRunReport(summary, "/bin/cc", "Examples")

	require.NoError(t, st.Save(report))

	_, err := os.Stat(cfg.GetOutputPath())
	require.NoError(t, err)
	_, err = os.Stat(cfg.GetOutputPath() + ".tmp")
	assert.True(t, os.IsNotExist(err), "temporary file should be renamed away")

	loaded, err := st.Load()
	require.NoError(t, err)
	assert.Equal(t, report, loaded)

	t.Run("resolved flag round trips", func(t *testing.T) {
		loaded.Details[1].Resolved = true
		require.NoError(t, st.Save(loaded))

		again, err := st.Load()
		require.NoError(t, err)
		assert.True(t, again.Details[1].Resolved)
	})
}

func TestJSONStorage_LoadErrors(t *testing.T) {
	t.Run("missing report", func(t *testing.T) {
		cfg := config.New()
		cfg.ProjectPath = t.TempDir()

		_, err := NewJSONStorage(cfg).Load()
		assert.True(t, errors.Is(err, ErrNoReport))
	})

	t.Run("corrupt report", func(t *testing.T) {
		cfg := config.New()
		cfg.ProjectPath = t.TempDir()
		require.NoError(t, os.MkdirAll(cfg.ProjectPath+"/"+cfg.OutputJSONDir, 0755))
		require.NoError(t, os.WriteFile(cfg.GetOutputPath(), []byte("{not json"), 0644))

		_, err := NewJSONStorage(cfg).Load()
		assert.ErrorContains(t, err, "parse report")
	})
}
