package database

import (
	"database/sql"
	"lumina/models"
	"time"
)

// ==================== SCHEDULED SESSION OPERATIONS ====================

func (r *Repository) CreateSession(offerID, studentID int64, scheduledAt time.Time) (int64, error) {
	res, err := r.db.Exec(`
		INSERT INTO tutoring_sessions (offer_id, student_id, scheduled_at, status)
		VALUES (?, ?, ?, ?)
	`, offerID, studentID, scheduledAt, models.SessionPending)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// GetSessionByID returns nil when the session does not exist.
func (r *Repository) GetSessionByID(sessionID int64) (*models.TutoringSession, error) {
	var s models.TutoringSession
	err := r.db.QueryRow(`
		SELECT id, offer_id, student_id, scheduled_at, status, created_at
		FROM tutoring_sessions
		WHERE id = ?
	`, sessionID).Scan(&s.ID, &s.OfferID, &s.StudentID, &s.ScheduledAt, &s.Status, &s.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *Repository) querySessions(query string, args ...any) ([]models.TutoringSession, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sessions := make([]models.TutoringSession, 0)
	for rows.Next() {
		var s models.TutoringSession
		if err := rows.Scan(
			&s.ID, &s.OfferID, &s.StudentID, &s.ScheduledAt, &s.Status, &s.CreatedAt,
		); err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}

	return sessions, rows.Err()
}

// ListSessionsByStudent returns the student's scheduled sessions, soonest
// first.
func (r *Repository) ListSessionsByStudent(studentID int64) ([]models.TutoringSession, error) {
	return r.querySessions(`
		SELECT id, offer_id, student_id, scheduled_at, status, created_at
		FROM tutoring_sessions
		WHERE student_id = ?
		ORDER BY scheduled_at ASC
	`, studentID)
}

// ListSessionsByTutor returns sessions booked against any of the tutor's
// offers, soonest first.
func (r *Repository) ListSessionsByTutor(tutorID int64) ([]models.TutoringSession, error) {
	return r.querySessions(`
		SELECT s.id, s.offer_id, s.student_id, s.scheduled_at, s.status, s.created_at
		FROM tutoring_sessions s
		INNER JOIN offers o ON o.id = s.offer_id
		WHERE o.tutor_id = ?
		ORDER BY s.scheduled_at ASC
	`, tutorID)
}

func (r *Repository) UpdateSessionStatus(sessionID int64, status string) error {
	_, err := r.db.Exec(
		"UPDATE tutoring_sessions SET status = ? WHERE id = ?", status, sessionID,
	)
	return err
}
