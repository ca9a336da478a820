package history

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"corpustest/internal/domain"
	"corpustest/internal/logging"
)

func TestNormalizeDSN(t *testing.T) {
	t.Run("adds parse time and timeout", func(t *testing.T) {
		dsn, err := NormalizeDSN("ci:secret@tcp(db:3306)/compiler_runs")
		require.NoError(t, err)

		assert.Contains(t, dsn, "ci:secret@tcp(db:3306)/compiler_runs?")
		assert.Contains(t, dsn, "parseTime=true")
		assert.Contains(t, dsn, "timeout=5s")
	})

	t.Run("keeps explicit options", func(t *testing.T) {
		dsn, err := NormalizeDSN("ci@tcp(db:3306)/runs?timeout=1s")
		require.NoError(t, err)

		assert.Contains(t, dsn, "timeout=1s")
		assert.NotContains(t, dsn, "timeout=5s")
	})

	t.Run("requires a database name", func(t *testing.T) {
		_, err := NormalizeDSN("ci@tcp(db:3306)/")
		assert.ErrorContains(t, err, "no database name")
	})

	t.Run("rejects malformed DSN", func(t *testing.T) {
		_, err := NormalizeDSN("not a dsn")
		assert.Error(t, err)
	})
}

func TestRecorder_Enabled(t *testing.T) {
	assert.False(t, NewRecorder("", logging.Discard()).Enabled())
	assert.True(t, NewRecorder("u@tcp(h:3306)/d", logging.Discard()).Enabled())
}

func TestRecorder_RecordUnreachable(t *testing.T) {
	// Port 1 on loopback refuses connections immediately
	rec := NewRecorder("u:p@tcp(127.0.0.1:1)/runs?timeout=500ms", logging.Discard())

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	summary := domain.NewRunSummary("run-1")
	err := rec.Record(ctx, domain.NewRunReport(summary, "cc", "Examples"))
	assert.ErrorContains(t, err, "ping history database")
}

func TestNullString(t *testing.T) {
	assert.False(t, nullString("").Valid)
	assert.Equal(t, "boom", nullString("boom").String)
}
