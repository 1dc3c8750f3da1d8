// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package session persists the remembered output directory and a small
// journal of past batch runs in a local SQLite database. Deleting the
// database loses nothing but that memory.
package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/officepdf/pkg/types"
)

const lastOutputDirKey = "last_output_dir"

// Store manages the session SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the session database at path, creating the schema
// and any missing parent directories.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating session directory %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening session database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS batches (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			started_at TEXT NOT NULL,
			output_dir TEXT,
			converted INTEGER NOT NULL,
			failed INTEGER NOT NULL,
			cancelled INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS results (
			batch_id INTEGER NOT NULL REFERENCES batches(id),
			position INTEGER NOT NULL,
			source TEXT NOT NULL,
			status TEXT NOT NULL,
			pdf TEXT,
			error TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_results_batch ON results(batch_id)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// LastOutputDir returns the remembered output directory, or "" when none
// has been recorded yet.
func (s *Store) LastOutputDir(ctx context.Context) (string, error) {
	var v string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM settings WHERE key = ?`, lastOutputDirKey,
	).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("reading last output directory: %w", err)
	}
	return v, nil
}

// SetLastOutputDir remembers dir as the last-used output directory.
func (s *Store) SetLastOutputDir(ctx context.Context, dir string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO settings(key, value) VALUES(?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		lastOutputDirKey, dir,
	)
	if err != nil {
		return fmt.Errorf("saving last output directory: %w", err)
	}
	return nil
}

// BatchRecord is one journaled batch run.
type BatchRecord struct {
	ID        int64
	StartedAt time.Time
	OutputDir string
	Converted int
	Failed    int
	Cancelled int
}

// ResultRecord is one journaled per-file outcome.
type ResultRecord struct {
	Source string
	Status types.ConversionStatus
	PDF    string
	Error  string
}

// RecordBatch journals a completed batch and its per-file results,
// returning the batch id.
func (s *Store) RecordBatch(ctx context.Context, startedAt time.Time, outputDir string, summary types.BatchSummary) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO batches(started_at, output_dir, converted, failed, cancelled)
		 VALUES(?, ?, ?, ?, ?)`,
		startedAt.UTC().Format(time.RFC3339), outputDir,
		summary.Succeeded, summary.Failed, summary.Cancelled,
	)
	if err != nil {
		return 0, fmt.Errorf("inserting batch: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading batch id: %w", err)
	}

	for i, r := range summary.Results {
		var errText string
		if r.Err != nil {
			errText = r.Err.Error()
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO results(batch_id, position, source, status, pdf, error)
			 VALUES(?, ?, ?, ?, ?, ?)`,
			id, i, r.Input.Path, string(r.Status), r.PDFPath, errText,
		); err != nil {
			return 0, fmt.Errorf("inserting result %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing batch: %w", err)
	}
	return id, nil
}

// Recent returns the n most recent batches, newest first.
func (s *Store) Recent(ctx context.Context, n int) ([]BatchRecord, error) {
	if n <= 0 {
		n = 10
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, started_at, output_dir, converted, failed, cancelled
		 FROM batches ORDER BY id DESC LIMIT ?`, n,
	)
	if err != nil {
		return nil, fmt.Errorf("querying batches: %w", err)
	}
	defer rows.Close()

	var records []BatchRecord
	for rows.Next() {
		var r BatchRecord
		var started string
		if err := rows.Scan(&r.ID, &started, &r.OutputDir, &r.Converted, &r.Failed, &r.Cancelled); err != nil {
			return nil, fmt.Errorf("scanning batch: %w", err)
		}
		if ts, err := time.Parse(time.RFC3339, started); err == nil {
			r.StartedAt = ts
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// ResultsFor returns the per-file outcomes of one batch, in input order.
func (s *Store) ResultsFor(ctx context.Context, batchID int64) ([]ResultRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT source, status, pdf, error FROM results
		 WHERE batch_id = ? ORDER BY position`, batchID,
	)
	if err != nil {
		return nil, fmt.Errorf("querying results: %w", err)
	}
	defer rows.Close()

	var records []ResultRecord
	for rows.Next() {
		var r ResultRecord
		var status string
		if err := rows.Scan(&r.Source, &status, &r.PDF, &r.Error); err != nil {
			return nil, fmt.Errorf("scanning result: %w", err)
		}
		r.Status = types.ConversionStatus(status)
		records = append(records, r)
	}
	return records, rows.Err()
}
