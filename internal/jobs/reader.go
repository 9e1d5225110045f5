// Package jobs loads job listings datasets from CSV files or SQLite databases.
package jobs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/amishk599/jobinsights/internal/model"
	"github.com/amishk599/jobinsights/internal/store"
)

// Ensure the readers implement model.JobReader.
var (
	_ model.JobReader = (*SQLiteReader)(nil)
	_ model.JobReader = (*FileReader)(nil)
)

// SQLiteReader reads a dataset previously imported into a SQLite database.
type SQLiteReader struct{}

func NewSQLiteReader() *SQLiteReader { return &SQLiteReader{} }

// Read opens the database at path read-only and returns its jobs. The file
// must exist and hold a jobs table written by an import.
func (r *SQLiteReader) Read(ctx context.Context, path string) ([]model.Job, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("opening dataset: %w", err)
	}
	s, err := store.NewSQLiteReadOnly(path)
	if err != nil {
		return nil, err
	}
	defer s.Close()
	return s.Jobs(ctx)
}

// FileReader picks a reader from the source's file extension.
type FileReader struct {
	csv    *CSVReader
	sqlite *SQLiteReader
}

// NewReader returns a reader that handles .csv files and SQLite databases
// (.db, .sqlite, .sqlite3).
func NewReader() *FileReader {
	return &FileReader{csv: NewCSVReader(), sqlite: NewSQLiteReader()}
}

func (r *FileReader) Read(ctx context.Context, source string) ([]model.Job, error) {
	switch ext := strings.ToLower(filepath.Ext(source)); ext {
	case ".csv":
		return r.csv.Read(ctx, source)
	case ".db", ".sqlite", ".sqlite3":
		return r.sqlite.Read(ctx, source)
	default:
		return nil, fmt.Errorf("unsupported dataset extension %q", ext)
	}
}
