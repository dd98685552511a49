package database

import "lumina/models"

// ==================== NOTIFICATION OPERATIONS ====================

func (r *Repository) CreateNotification(userID int64, title, body string) error {
	_, err := r.db.Exec(
		"INSERT INTO notifications (user_id, title, body) VALUES (?, ?, ?)",
		userID, title, body,
	)
	return err
}

// ListNotifications returns the user's notifications, newest first.
func (r *Repository) ListNotifications(userID int64) ([]models.Notification, error) {
	rows, err := r.db.Query(`
		SELECT id, user_id, title, body, read, created_at
		FROM notifications
		WHERE user_id = ?
		ORDER BY id DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	notifications := make([]models.Notification, 0)
	for rows.Next() {
		var n models.Notification
		if err := rows.Scan(
			&n.ID, &n.UserID, &n.Title, &n.Body, &n.Read, &n.CreatedAt,
		); err != nil {
			return nil, err
		}
		notifications = append(notifications, n)
	}

	return notifications, rows.Err()
}

// MarkNotificationRead flips the read flag. Scoped to the owner, so one
// user cannot touch another's notifications. Notifications are never
// deleted or otherwise mutated.
func (r *Repository) MarkNotificationRead(userID, notificationID int64) error {
	_, err := r.db.Exec(
		"UPDATE notifications SET read = 1 WHERE id = ? AND user_id = ?",
		notificationID, userID,
	)
	return err
}

func (r *Repository) CountUnreadNotifications(userID int64) (int, error) {
	var count int
	err := r.db.QueryRow(
		"SELECT COUNT(1) FROM notifications WHERE user_id = ? AND read = 0",
		userID,
	).Scan(&count)
	return count, err
}
