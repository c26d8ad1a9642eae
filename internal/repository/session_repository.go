// Package repository persists ingestion audit records.
package repository

import (
	"database/sql"
	"fmt"

	"github.com/pitchlab/mocap-backend-go/internal/models"
)

// SessionRepository handles database operations for ingestion sessions
type SessionRepository struct {
	db *sql.DB
}

// NewSessionRepository creates a new session repository
func NewSessionRepository(db *sql.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// Create records one ingestion session
func (r *SessionRepository) Create(session *models.IngestSession) error {
	query := `
		INSERT INTO ingest_sessions (
			id, created_at, centers_file, rotations_file, metrics_file,
			frame_count, joint_count, duration_seconds, dropped_rows,
			repaired_quaternions, using_fallback, mean_bone_length
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.Exec(query,
		session.ID,
		session.CreatedAt,
		session.CentersFile,
		session.RotationsFile,
		session.MetricsFile,
		session.FrameCount,
		session.JointCount,
		session.DurationSeconds,
		session.DroppedRows,
		session.RepairedQuaternions,
		session.UsingFallback,
		session.MeanBoneLength,
	)
	if err != nil {
		return fmt.Errorf("failed to create ingest session: %w", err)
	}
	return nil
}

// GetByID retrieves a single ingestion session by ID
func (r *SessionRepository) GetByID(id string) (*models.IngestSession, error) {
	query := `SELECT id, created_at, centers_file, rotations_file, metrics_file,
		frame_count, joint_count, duration_seconds, dropped_rows,
		repaired_quaternions, using_fallback, mean_bone_length
		FROM ingest_sessions WHERE id = ?`

	var s models.IngestSession
	err := r.db.QueryRow(query, id).Scan(
		&s.ID, &s.CreatedAt, &s.CentersFile, &s.RotationsFile, &s.MetricsFile,
		&s.FrameCount, &s.JointCount, &s.DurationSeconds, &s.DroppedRows,
		&s.RepairedQuaternions, &s.UsingFallback, &s.MeanBoneLength,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get ingest session: %w", err)
	}

	return &s, nil
}

// List retrieves ingestion sessions newest first with pagination
func (r *SessionRepository) List(page, pageSize int) ([]models.IngestSession, int64, error) {
	var total int64
	err := r.db.QueryRow("SELECT COUNT(*) FROM ingest_sessions").Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count ingest sessions: %w", err)
	}

	query := `SELECT id, created_at, centers_file, rotations_file, metrics_file,
		frame_count, joint_count, duration_seconds, dropped_rows,
		repaired_quaternions, using_fallback, mean_bone_length
		FROM ingest_sessions ORDER BY created_at DESC LIMIT ? OFFSET ?`

	rows, err := r.db.Query(query, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list ingest sessions: %w", err)
	}
	defer rows.Close()

	var sessions []models.IngestSession
	for rows.Next() {
		var s models.IngestSession
		err := rows.Scan(
			&s.ID, &s.CreatedAt, &s.CentersFile, &s.RotationsFile, &s.MetricsFile,
			&s.FrameCount, &s.JointCount, &s.DurationSeconds, &s.DroppedRows,
			&s.RepairedQuaternions, &s.UsingFallback, &s.MeanBoneLength,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan ingest session: %w", err)
		}
		sessions = append(sessions, s)
	}

	return sessions, total, rows.Err()
}
