package db

import (
	"fmt"
	"time"
)

// Run is one recorded build invocation.
type Run struct {
	RunID         int64
	CreatedAt     time.Time
	SourcePath    string
	OutputDir     string
	PageCount     int
	CodeFileCount int
	WarningCount  int
	Language      string
}

// InsertRun records a completed build, returning the run_id.
func (db *DB) InsertRun(sourcePath, outputDir string, pageCount, codeFileCount, warningCount int, language string) (int64, error) {
	result, err := db.Exec(`
		INSERT INTO runs (source_path, output_dir, page_count, code_file_count, warning_count, language)
		VALUES (?, ?, ?, ?, ?, ?)
	`, sourcePath, outputDir, pageCount, codeFileCount, warningCount, language)
	if err != nil {
		return 0, fmt.Errorf("failed to insert run: %w", err)
	}

	runID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get run ID: %w", err)
	}
	return runID, nil
}

// ListRuns returns the most recent runs, newest first.
func (db *DB) ListRuns(limit int) ([]Run, error) {
	rows, err := db.Query(`
		SELECT run_id, created_at, source_path, output_dir, page_count, code_file_count, warning_count, language
		FROM runs
		ORDER BY run_id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.RunID, &r.CreatedAt, &r.SourcePath, &r.OutputDir,
			&r.PageCount, &r.CodeFileCount, &r.WarningCount, &r.Language); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate runs: %w", err)
	}
	return runs, nil
}

// GetRunByID returns a single run.
func (db *DB) GetRunByID(runID int64) (*Run, error) {
	var r Run
	err := db.QueryRow(`
		SELECT run_id, created_at, source_path, output_dir, page_count, code_file_count, warning_count, language
		FROM runs WHERE run_id = ?
	`, runID).Scan(&r.RunID, &r.CreatedAt, &r.SourcePath, &r.OutputDir,
		&r.PageCount, &r.CodeFileCount, &r.WarningCount, &r.Language)
	if err != nil {
		return nil, fmt.Errorf("failed to get run: %w", err)
	}
	return &r, nil
}
