package store

import (
	"fmt"
	"strings"
	"time"
)

// ImportLog is one row of the upload history.
type ImportLog struct {
	ID           int64      `json:"id"`
	Filename     string     `json:"filename"`
	FileHash     string     `json:"fileHash"`
	FileSize     int64      `json:"fileSize"`
	FileKind     string     `json:"fileKind"`
	Year         int        `json:"year"`
	MonthsLoaded []string   `json:"monthsLoaded"`
	RecordCount  int        `json:"recordCount"`
	Status       string     `json:"status"`
	ErrorMessage string     `json:"errorMessage,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	CompletedAt  *time.Time `json:"completedAt,omitempty"`
}

// CreateImportLog records the start of an upload and returns its id.
func (s *Store) CreateImportLog(filename, fileHash string, fileSize int64, fileKind string, year int) (int64, error) {
	res, err := s.db.Exec(`
		INSERT INTO import_logs (filename, file_hash, file_size, file_kind, year, status)
		VALUES (?, ?, ?, ?, ?, 'processing')
	`, filename, fileHash, fileSize, fileKind, year)
	if err != nil {
		return 0, fmt.Errorf("create import log: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get import log id: %w", err)
	}
	return id, nil
}

// CompleteImportLog marks an upload as done or failed.
func (s *Store) CompleteImportLog(id int64, monthsLoaded []string, recordCount int, status, errorMessage string) error {
	_, err := s.db.Exec(`
		UPDATE import_logs SET
			months_loaded = ?,
			record_count = ?,
			status = ?,
			error_message = ?,
			completed_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`, strings.Join(monthsLoaded, ","), recordCount, status, errorMessage, id)
	if err != nil {
		return fmt.Errorf("update import log: %w", err)
	}
	return nil
}

// RecentImports returns the newest entries of the upload history.
func (s *Store) RecentImports(limit int) ([]ImportLog, error) {
	rows, err := s.db.Query(`
		SELECT id, filename, file_hash, file_size, file_kind, year,
		       months_loaded, record_count, status, error_message,
		       created_at, completed_at
		FROM import_logs
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("query import logs: %w", err)
	}
	defer rows.Close()

	var logs []ImportLog
	for rows.Next() {
		var (
			log    ImportLog
			months string
		)
		if err := rows.Scan(&log.ID, &log.Filename, &log.FileHash, &log.FileSize,
			&log.FileKind, &log.Year, &months, &log.RecordCount,
			&log.Status, &log.ErrorMessage, &log.CreatedAt, &log.CompletedAt); err != nil {
			return nil, fmt.Errorf("scan import log: %w", err)
		}
		if months != "" {
			log.MonthsLoaded = strings.Split(months, ",")
		}
		logs = append(logs, log)
	}
	return logs, rows.Err()
}
