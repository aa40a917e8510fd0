package ledger

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Row is one recorded fingerprint.
type Row struct {
	ID           int64
	RunID        string
	CreatedAt    time.Time
	ImagePath    string
	Modification string
	Algorithm    string
	Bits         int
	Fingerprint  string
}

// Store manages the results database.
type Store struct {
	db *sql.DB
}

// Open creates or opens the database at path and applies migrations.
func Open(ctx context.Context, path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("ensure ledger directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.ExecContext(ctx, pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db}
	if err := store.applyMigrations(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Record inserts rows in a single transaction, stamping each with runID and
// the current time.
func (s *Store) Record(ctx context.Context, runID string, rows []Row) error {
	if runID == "" {
		return errors.New("record results: run id is required")
	}
	if len(rows) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin record tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO results (
            run_id, created_at, image_path, modification, algorithm, bits, fingerprint
        ) VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	timestamp := time.Now().UTC().Format(time.RFC3339Nano)
	for _, row := range rows {
		if _, err := stmt.ExecContext(ctx, runID, timestamp, row.ImagePath, row.Modification, row.Algorithm, row.Bits, row.Fingerprint); err != nil {
			return fmt.Errorf("insert result: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit results: %w", err)
	}
	return nil
}

// Recent returns up to limit rows, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Row, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx, `SELECT id, run_id, created_at, image_path, modification, algorithm, bits, fingerprint
        FROM results ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query results: %w", err)
	}
	defer rows.Close()

	var out []Row
	for rows.Next() {
		var row Row
		var created string
		if err := rows.Scan(&row.ID, &row.RunID, &created, &row.ImagePath, &row.Modification, &row.Algorithm, &row.Bits, &row.Fingerprint); err != nil {
			return nil, fmt.Errorf("scan result: %w", err)
		}
		if ts, err := time.Parse(time.RFC3339Nano, created); err == nil {
			row.CreatedAt = ts
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate results: %w", err)
	}
	return out, nil
}
