// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history persists a record of finished conversion runs and
// their per-page outcomes in a SQLite database.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/sankhodeep/PDF2MD/pkg/types"
)

const dbFile = "history.db"

// Store manages the run history SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the history database at dir/history.db, creating
// the schema if it does not exist.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating history directory: %w", err)
	}

	dbPath := filepath.Join(dir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
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
		`CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			started_at TEXT NOT NULL,
			finished_at TEXT NOT NULL,
			input_path TEXT NOT NULL,
			output_path TEXT NOT NULL,
			start_page INTEGER NOT NULL,
			end_page INTEGER NOT NULL,
			status TEXT NOT NULL,
			pages_ok INTEGER NOT NULL,
			pages_failed INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS run_pages (
			run_id INTEGER NOT NULL REFERENCES runs(id),
			page INTEGER NOT NULL,
			status TEXT NOT NULL,
			reason TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_run_pages_run_id ON run_pages(run_id)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Record inserts one finished run and its per-page outcomes, returning
// the run's row ID.
func (s *Store) Record(ctx context.Context, rec types.RunRecord, pages []types.PageResult) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO runs (started_at, finished_at, input_path, output_path,
			start_page, end_page, status, pages_ok, pages_failed)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.StartedAt.UTC().Format(time.RFC3339),
		rec.FinishedAt.UTC().Format(time.RFC3339),
		rec.InputPath,
		rec.OutputPath,
		rec.StartPage,
		rec.EndPage,
		string(rec.Status),
		rec.PagesOK,
		rec.PagesFailed,
	)
	if err != nil {
		return 0, fmt.Errorf("inserting run: %w", err)
	}

	runID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading run ID: %w", err)
	}

	for _, p := range pages {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO run_pages (run_id, page, status, reason) VALUES (?, ?, ?, ?)`,
			runID, p.Page, string(p.Status), p.Reason,
		); err != nil {
			return 0, fmt.Errorf("inserting page %d: %w", p.Page, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing run: %w", err)
	}
	return runID, nil
}

// List returns the most recent runs, newest first. A limit of zero means
// no limit.
func (s *Store) List(ctx context.Context, limit int) ([]types.RunRecord, error) {
	query := `SELECT id, started_at, finished_at, input_path, output_path,
		start_page, end_page, status, pages_ok, pages_failed
	FROM runs ORDER BY id DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var records []types.RunRecord
	for rows.Next() {
		var (
			rec                   types.RunRecord
			startedAt, finishedAt string
			status                string
		)
		if err := rows.Scan(&rec.ID, &startedAt, &finishedAt, &rec.InputPath,
			&rec.OutputPath, &rec.StartPage, &rec.EndPage, &status,
			&rec.PagesOK, &rec.PagesFailed); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		rec.Status = types.RunPhase(status)
		if rec.StartedAt, err = time.Parse(time.RFC3339, startedAt); err != nil {
			return nil, fmt.Errorf("parsing started_at for run %d: %w", rec.ID, err)
		}
		if rec.FinishedAt, err = time.Parse(time.RFC3339, finishedAt); err != nil {
			return nil, fmt.Errorf("parsing finished_at for run %d: %w", rec.ID, err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Pages returns the per-page outcomes of one run in page order.
func (s *Store) Pages(ctx context.Context, runID int64) ([]types.PageResult, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT page, status, reason FROM run_pages WHERE run_id = ? ORDER BY page`, runID)
	if err != nil {
		return nil, fmt.Errorf("querying pages for run %d: %w", runID, err)
	}
	defer rows.Close()

	var results []types.PageResult
	for rows.Next() {
		var (
			r      types.PageResult
			status string
			reason sql.NullString
		)
		if err := rows.Scan(&r.Page, &status, &reason); err != nil {
			return nil, fmt.Errorf("scanning page: %w", err)
		}
		r.Status = types.PageStatus(status)
		r.Reason = reason.String
		results = append(results, r)
	}
	return results, rows.Err()
}
