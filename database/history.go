package database

import "lumina/models"

// ==================== HISTORY OPERATIONS ====================

// LogHistory appends an entry to the user's audit trail. Entries are never
// updated or deleted.
func (r *Repository) LogHistory(userID int64, action, detail string) error {
	_, err := r.db.Exec(
		"INSERT INTO history (user_id, action, detail) VALUES (?, ?, ?)",
		userID, action, detail,
	)
	return err
}

// ListHistory returns the user's activity, newest first.
func (r *Repository) ListHistory(userID int64) ([]models.HistoryEntry, error) {
	rows, err := r.db.Query(`
		SELECT id, user_id, action, COALESCE(detail, ''), created_at
		FROM history
		WHERE user_id = ?
		ORDER BY id DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]models.HistoryEntry, 0)
	for rows.Next() {
		var e models.HistoryEntry
		if err := rows.Scan(
			&e.ID, &e.UserID, &e.Action, &e.Detail, &e.CreatedAt,
		); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}
