package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gofrs/flock"
	_ "modernc.org/sqlite"

	"github.com/amishk599/jobinsights/internal/model"
)

// Ensure SQLiteStore implements model.JobStore.
var _ model.JobStore = (*SQLiteStore)(nil)

var (
	// ErrStoreLocked is returned by Replace when another import holds the store.
	ErrStoreLocked = errors.New("store is locked by another import")
	// ErrNotDataset is returned when a database has no jobs table.
	ErrNotDataset = errors.New("not a jobinsights dataset (no jobs table)")
	// ErrReadOnly is returned by Replace on a store opened for reading.
	ErrReadOnly = errors.New("store is opened read-only")
)

// SQLiteStore keeps one job listings dataset in a SQLite database.
type SQLiteStore struct {
	db   *sql.DB
	lock *flock.Flock // <dbPath>.lock, held for the duration of an import; nil when read-only
}

// NewSQLiteStore opens (or creates) a SQLite database at dbPath and ensures the
// jobs table exists.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite db: %w", err)
	}

	// Verify the connection is alive.
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging sqlite db: %w", err)
	}

	createTable := `CREATE TABLE IF NOT EXISTS jobs (
		row_id     INTEGER PRIMARY KEY AUTOINCREMENT,
		job_type   TEXT NOT NULL,
		industry   TEXT NOT NULL,
		min_salary TEXT NOT NULL,
		max_salary TEXT NOT NULL,
		fields     TEXT NOT NULL DEFAULT '{}'
	)`
	if _, err := db.Exec(createTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating jobs table: %w", err)
	}

	return &SQLiteStore{db: db, lock: flock.New(dbPath + ".lock")}, nil
}

// NewSQLiteReadOnly opens an existing database without creating or altering
// anything. It fails with ErrNotDataset if the jobs table is absent.
func NewSQLiteReadOnly(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", "file:"+dbPath+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("opening sqlite db: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging sqlite db: %w", err)
	}

	var tables int
	err = db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = 'jobs'").Scan(&tables)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("inspecting schema: %w", err)
	}
	if tables == 0 {
		db.Close()
		return nil, fmt.Errorf("%s: %w", dbPath, ErrNotDataset)
	}

	return &SQLiteStore{db: db}, nil
}

// Replace swaps the stored dataset for jobs in a single transaction, keeping
// their order. It fails with ErrStoreLocked rather than wait for a concurrent
// import.
func (s *SQLiteStore) Replace(ctx context.Context, jobs []model.Job) error {
	if s.lock == nil {
		return ErrReadOnly
	}
	locked, err := s.lock.TryLock()
	if err != nil {
		return fmt.Errorf("locking store: %w", err)
	}
	if !locked {
		return ErrStoreLocked
	}
	defer s.lock.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning import: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM jobs"); err != nil {
		return fmt.Errorf("clearing jobs: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		"INSERT INTO jobs (job_type, industry, min_salary, max_salary, fields) VALUES (?, ?, ?, ?, ?)")
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for i, j := range jobs {
		fields, err := json.Marshal(j.Fields)
		if err != nil {
			return fmt.Errorf("encoding fields of row %d: %w", i+1, err)
		}
		if _, err := stmt.ExecContext(ctx, j.JobType, j.Industry, j.MinSalary, j.MaxSalary, string(fields)); err != nil {
			return fmt.Errorf("inserting row %d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing import: %w", err)
	}
	return nil
}

// Jobs returns the stored dataset in insertion order.
func (s *SQLiteStore) Jobs(ctx context.Context) ([]model.Job, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT job_type, industry, min_salary, max_salary, fields FROM jobs ORDER BY row_id")
	if err != nil {
		return nil, fmt.Errorf("querying jobs: %w", err)
	}
	defer rows.Close()

	jobs := make([]model.Job, 0)
	for rows.Next() {
		var (
			j      model.Job
			fields string
		)
		if err := rows.Scan(&j.JobType, &j.Industry, &j.MinSalary, &j.MaxSalary, &fields); err != nil {
			return nil, fmt.Errorf("scanning job: %w", err)
		}
		if err := json.Unmarshal([]byte(fields), &j.Fields); err != nil {
			return nil, fmt.Errorf("decoding fields: %w", err)
		}
		jobs = append(jobs, j)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating jobs: %w", err)
	}
	return jobs, nil
}

// Count returns the number of stored rows.
func (s *SQLiteStore) Count(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM jobs").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting jobs: %w", err)
	}
	return count, nil
}

// Close closes the underlying database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
