package store

import (
	"fmt"
	"time"
)

// RunLog 검증 실행 이력 한 건
type RunLog struct {
	ID             string    `json:"id"`
	Filename       string    `json:"filename"`
	FileSize       int64     `json:"file_size"`
	TotalRecords   int       `json:"total_records"`
	ValidRecords   int       `json:"valid_records"`
	InvalidRecords int       `json:"invalid_records"`
	ErrorCount     int       `json:"error_count"`
	WarningCount   int       `json:"warning_count"`
	Status         string    `json:"status"`
	ErrorMessage   string    `json:"error_message"`
	DurationMs     int64     `json:"duration_ms"`
	StartedAt      time.Time `json:"started_at"`
}

// CreateRun 실행 이력 생성 (처리 시작 시점)
func (s *Store) CreateRun(id, filename string, fileSize int64) error {
	_, err := s.db.Exec(`
		INSERT INTO validation_runs (id, filename, file_size, status)
		VALUES (?, ?, ?, 'processing')
	`, id, filename, fileSize)
	if err != nil {
		return fmt.Errorf("failed to create run log: %w", err)
	}
	return nil
}

// CompleteRun 실행 이력 완료 갱신
func (s *Store) CompleteRun(id string, totalRecords, validRecords, invalidRecords, errorCount, warningCount int, status, errorMessage string, duration time.Duration) error {
	_, err := s.db.Exec(`
		UPDATE validation_runs SET
			total_records = ?,
			valid_records = ?,
			invalid_records = ?,
			error_count = ?,
			warning_count = ?,
			status = ?,
			error_message = ?,
			duration_ms = ?,
			completed_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`, totalRecords, validRecords, invalidRecords, errorCount, warningCount, status, errorMessage, duration.Milliseconds(), id)
	if err != nil {
		return fmt.Errorf("failed to update run log: %w", err)
	}
	return nil
}

// ListRuns 최근 실행 이력 조회
func (s *Store) ListRuns(limit int) ([]RunLog, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.Query(`
		SELECT id, filename, file_size, total_records, valid_records, invalid_records,
		       error_count, warning_count, status, error_message, duration_ms, started_at
		FROM validation_runs
		ORDER BY started_at DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list run logs: %w", err)
	}
	defer rows.Close()

	var logs []RunLog
	for rows.Next() {
		var l RunLog
		if err := rows.Scan(&l.ID, &l.Filename, &l.FileSize, &l.TotalRecords, &l.ValidRecords,
			&l.InvalidRecords, &l.ErrorCount, &l.WarningCount, &l.Status, &l.ErrorMessage,
			&l.DurationMs, &l.StartedAt); err != nil {
			return nil, fmt.Errorf("failed to scan run log: %w", err)
		}
		logs = append(logs, l)
	}
	return logs, rows.Err()
}
