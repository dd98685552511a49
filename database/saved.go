package database

import (
	"database/sql"
	"lumina/models"
)

// ==================== SAVED OFFER OPERATIONS ====================

func (r *Repository) GetSavedOffer(userID, offerID int64) (*models.SavedOffer, error) {
	var s models.SavedOffer
	err := r.db.QueryRow(`
		SELECT id, user_id, offer_id, created_at
		FROM saved_offers
		WHERE user_id = ? AND offer_id = ?
	`, userID, offerID).Scan(&s.ID, &s.UserID, &s.OfferID, &s.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *Repository) SaveOffer(userID, offerID int64) (int64, error) {
	res, err := r.db.Exec(
		"INSERT INTO saved_offers (user_id, offer_id) VALUES (?, ?)",
		userID, offerID,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r *Repository) UnsaveOffer(userID, offerID int64) error {
	_, err := r.db.Exec(
		"DELETE FROM saved_offers WHERE user_id = ? AND offer_id = ?",
		userID, offerID,
	)
	return err
}

// ListSaved returns the user's bookmarks joined with their offers, most
// recently saved first.
func (r *Repository) ListSaved(userID int64) ([]models.SavedOfferView, error) {
	rows, err := r.db.Query(`
		SELECT s.id, s.created_at, `+prefixedOfferColumns("o")+`
		FROM saved_offers s
		INNER JOIN offers o ON o.id = s.offer_id
		WHERE s.user_id = ?
		ORDER BY s.id DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	saved := make([]models.SavedOfferView, 0)
	for rows.Next() {
		var v models.SavedOfferView
		o := &v.Offer
		if err := rows.Scan(
			&v.SavedID, &v.SavedAt,
			&o.ID, &o.TutorID, &o.Subject, &o.Category, &o.Level, &o.Description,
			&o.Price, &o.Modality, &o.Duration, &o.Location, &o.TutorName, &o.CreatedAt,
		); err != nil {
			return nil, err
		}
		saved = append(saved, v)
	}

	return saved, rows.Err()
}
