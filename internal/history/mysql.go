// Package history records finished corpus runs in MySQL so pass rates can
// be tracked across compiler revisions.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-sql-driver/mysql"

	"corpustest/internal/domain"
)

const (
	createRunsTable = "CREATE TABLE IF NOT EXISTS corpus_runs (" +
		"run_id VARCHAR(36) NOT NULL PRIMARY KEY," +
		"started_at DATETIME NOT NULL," +
		"compiler VARCHAR(1024) NOT NULL," +
		"corpus_dir VARCHAR(1024) NOT NULL," +
		"total INT NOT NULL," +
		"passed INT NOT NULL," +
		"failed INT NOT NULL," +
		"duration_ms BIGINT NOT NULL" +
		") CHARACTER SET utf8mb4"

	createResultsTable = "CREATE TABLE IF NOT EXISTS corpus_results (" +
		"run_id VARCHAR(36) NOT NULL," +
		"position INT NOT NULL," +
		"name VARCHAR(255) NOT NULL," +
		"passed BOOLEAN NOT NULL," +
		"message TEXT," +
		"line INT NOT NULL DEFAULT 0," +
		"duration_ms BIGINT NOT NULL," +
		"PRIMARY KEY (run_id, position)" +
		") CHARACTER SET utf8mb4"

	insertRun = "INSERT INTO corpus_runs " +
		"(run_id, started_at, compiler, corpus_dir, total, passed, failed, duration_ms) " +
		"VALUES (?, ?, ?, ?, ?, ?, ?, ?)"

	insertResult = "INSERT INTO corpus_results " +
		"(run_id, position, name, passed, message, line, duration_ms) " +
		"VALUES (?, ?, ?, ?, ?, ?, ?)"
)

// connectTimeout is the dial timeout used when the DSN sets none
const connectTimeout = 5 * time.Second

// Recorder writes run reports to a MySQL database
type Recorder struct {
	dsn    string
	logger *slog.Logger
}

// NewRecorder creates a Recorder for the given DSN
// (user:password@tcp(host:3306)/dbname).
func NewRecorder(dsn string, logger *slog.Logger) *Recorder {
	return &Recorder{dsn: dsn, logger: logger}
}

// Enabled reports whether a DSN was configured
func (r *Recorder) Enabled() bool {
	return r.dsn != ""
}

// Record stores the report in one transaction, creating the tables if needed
func (r *Recorder) Record(ctx context.Context, report *domain.RunReport) error {
	dsn, err := NormalizeDSN(r.dsn)
	if err != nil {
		return err
	}

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return fmt.Errorf("failed to open history database: %w", err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to ping history database: %w", err)
	}

	for _, stmt := range []string{createRunsTable, createResultsTable} {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create history tables: %w", err)
		}
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	meta := report.Meta
	started, err := time.Parse(time.RFC3339, meta.Timestamp)
	if err != nil {
		started = time.Now()
	}
	if _, err := tx.ExecContext(ctx, insertRun,
		meta.RunID, started.UTC(), meta.Compiler, meta.CorpusDir,
		meta.TotalExamples, meta.PassedExamples, meta.FailedExamples,
		int64(meta.DurationSeconds*1000),
	); err != nil {
		return fmt.Errorf("failed to insert run %s: %w", meta.RunID, err)
	}

	for i, entry := range report.Details {
		if _, err := tx.ExecContext(ctx, insertResult,
			meta.RunID, i+1, entry.Name, entry.Passed, nullString(entry.Message),
			entry.Line, int64(entry.Seconds*1000),
		); err != nil {
			return fmt.Errorf("failed to insert result %s: %w", entry.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit run %s: %w", meta.RunID, err)
	}

	r.logger.Debug("recorded run history", "run_id", meta.RunID, "results", len(report.Details))
	return nil
}

// NormalizeDSN validates dsn and sets the options the recorder relies on
func NormalizeDSN(dsn string) (string, error) {
	cfg, err := mysql.ParseDSN(dsn)
	if err != nil {
		return "", fmt.Errorf("invalid history DSN: %w", err)
	}
	if cfg.DBName == "" {
		return "", fmt.Errorf("invalid history DSN: no database name")
	}
	cfg.ParseTime = true
	if cfg.Timeout == 0 {
		cfg.Timeout = connectTimeout
	}
	return cfg.FormatDSN(), nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
