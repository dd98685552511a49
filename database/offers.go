package database

import (
	"database/sql"
	"lumina/models"
)

// ==================== OFFER OPERATIONS ====================

const offerColumns = `id, tutor_id, subject, category, level, COALESCE(description, ''),
	   price, modality, duration, COALESCE(location, ''), COALESCE(tutor_name, ''), created_at`

// prefixedOfferColumns qualifies the offer column list with a table alias
// for join queries (enrollments, saved offers).
func prefixedOfferColumns(alias string) string {
	return alias + `.id, ` + alias + `.tutor_id, ` + alias + `.subject, ` +
		alias + `.category, ` + alias + `.level, COALESCE(` + alias + `.description, ''), ` +
		alias + `.price, ` + alias + `.modality, ` + alias + `.duration, ` +
		`COALESCE(` + alias + `.location, ''), COALESCE(` + alias + `.tutor_name, ''), ` +
		alias + `.created_at`
}

func scanOffer(scan func(dest ...any) error) (models.Offer, error) {
	var o models.Offer
	err := scan(
		&o.ID, &o.TutorID, &o.Subject, &o.Category, &o.Level, &o.Description,
		&o.Price, &o.Modality, &o.Duration, &o.Location, &o.TutorName, &o.CreatedAt,
	)
	return o, err
}

// CreateOffer inserts a new offer and returns the generated id. No field
// validation happens here; that is the caller's job.
func (r *Repository) CreateOffer(offer *models.Offer) (int64, error) {
	res, err := r.db.Exec(`
		INSERT INTO offers (tutor_id, subject, category, level, description,
			price, modality, duration, location, tutor_name)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		offer.TutorID, offer.Subject, offer.Category, offer.Level, offer.Description,
		offer.Price, offer.Modality, offer.Duration, offer.Location, offer.TutorName,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r *Repository) GetOfferByID(offerID int64) (*models.Offer, error) {
	row := r.db.QueryRow(
		`SELECT `+offerColumns+` FROM offers WHERE id = ?`, offerID,
	)
	o, err := scanOffer(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// UpdateOffer overwrites the editable fields of an offer by id. No
// optimistic-concurrency check; last writer wins.
func (r *Repository) UpdateOffer(offerID int64, offer *models.Offer) error {
	_, err := r.db.Exec(`
		UPDATE offers SET
			subject = ?,
			category = ?,
			level = ?,
			description = ?,
			price = ?,
			modality = ?,
			duration = ?,
			location = ?
		WHERE id = ?
	`,
		offer.Subject, offer.Category, offer.Level, offer.Description,
		offer.Price, offer.Modality, offer.Duration, offer.Location, offerID,
	)
	return err
}

func (r *Repository) DeleteOffer(offerID int64) error {
	_, err := r.db.Exec("DELETE FROM offers WHERE id = ?", offerID)
	return err
}

func (r *Repository) queryOffers(query string, args ...any) ([]models.Offer, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	// Initialize with empty slice to avoid returning nil
	offers := make([]models.Offer, 0)
	for rows.Next() {
		o, err := scanOffer(rows.Scan)
		if err != nil {
			return nil, err
		}
		offers = append(offers, o)
	}

	return offers, rows.Err()
}

// ListOffers returns every offer, newest first. Unfiltered and unbounded.
func (r *Repository) ListOffers() ([]models.Offer, error) {
	return r.queryOffers(
		`SELECT ` + offerColumns + ` FROM offers ORDER BY id DESC`,
	)
}

// ListOffersByTutor returns a tutor's own offers, newest first.
func (r *Repository) ListOffersByTutor(tutorID int64) ([]models.Offer, error) {
	return r.queryOffers(
		`SELECT `+offerColumns+` FROM offers WHERE tutor_id = ? ORDER BY id DESC`,
		tutorID,
	)
}

// SearchOffers filters by subject or category, case-insensitively.
func (r *Repository) SearchOffers(query string) ([]models.Offer, error) {
	pattern := "%" + query + "%"
	return r.queryOffers(
		`SELECT `+offerColumns+` FROM offers
		 WHERE subject LIKE ? OR category LIKE ?
		 ORDER BY id DESC`,
		pattern, pattern,
	)
}
