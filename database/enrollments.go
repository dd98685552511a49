package database

import (
	"database/sql"
	"lumina/models"
)

// ==================== ENROLLMENT OPERATIONS ====================

// GetEnrollment looks up the (user, offer) pair. Returns nil when the
// user is not enrolled.
func (r *Repository) GetEnrollment(userID, offerID int64) (*models.Enrollment, error) {
	var e models.Enrollment
	err := r.db.QueryRow(`
		SELECT id, user_id, offer_id, created_at
		FROM enrollments
		WHERE user_id = ? AND offer_id = ?
	`, userID, offerID).Scan(&e.ID, &e.UserID, &e.OfferID, &e.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// CreateEnrollment inserts the pair. The UNIQUE(user_id, offer_id) index
// backs the duplicate pre-check done by the service.
func (r *Repository) CreateEnrollment(userID, offerID int64) (int64, error) {
	res, err := r.db.Exec(
		"INSERT INTO enrollments (user_id, offer_id) VALUES (?, ?)",
		userID, offerID,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// ListEnrollments returns the user's enrollments joined with their offers,
// most recent enrollment first.
func (r *Repository) ListEnrollments(userID int64) ([]models.EnrolledOffer, error) {
	rows, err := r.db.Query(`
		SELECT e.id, e.created_at, `+prefixedOfferColumns("o")+`
		FROM enrollments e
		INNER JOIN offers o ON o.id = e.offer_id
		WHERE e.user_id = ?
		ORDER BY e.id DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	enrolled := make([]models.EnrolledOffer, 0)
	for rows.Next() {
		var v models.EnrolledOffer
		o := &v.Offer
		if err := rows.Scan(
			&v.EnrollmentID, &v.EnrolledAt,
			&o.ID, &o.TutorID, &o.Subject, &o.Category, &o.Level, &o.Description,
			&o.Price, &o.Modality, &o.Duration, &o.Location, &o.TutorName, &o.CreatedAt,
		); err != nil {
			return nil, err
		}
		enrolled = append(enrolled, v)
	}

	return enrolled, rows.Err()
}
