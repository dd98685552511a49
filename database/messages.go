package database

import "lumina/models"

// ==================== MESSAGE OPERATIONS ====================

func (r *Repository) CreateMessage(senderID, recipientID int64, text string) (int64, error) {
	res, err := r.db.Exec(
		"INSERT INTO messages (sender_id, recipient_id, text) VALUES (?, ?, ?)",
		senderID, recipientID, text,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// ListConversation returns every message between the two users in send
// order, regardless of direction. Symmetric in its arguments.
func (r *Repository) ListConversation(userA, userB int64) ([]models.Message, error) {
	rows, err := r.db.Query(`
		SELECT id, sender_id, recipient_id, text, read, created_at
		FROM messages
		WHERE (sender_id = ? AND recipient_id = ?)
		   OR (sender_id = ? AND recipient_id = ?)
		ORDER BY id ASC
	`, userA, userB, userB, userA)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	messages := make([]models.Message, 0)
	for rows.Next() {
		var m models.Message
		if err := rows.Scan(
			&m.ID, &m.SenderID, &m.RecipientID, &m.Text, &m.Read, &m.CreatedAt,
		); err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}

	return messages, rows.Err()
}

// MarkConversationRead marks the reader's incoming messages from the other
// user as read. Outgoing messages are untouched.
func (r *Repository) MarkConversationRead(readerID, otherID int64) error {
	_, err := r.db.Exec(`
		UPDATE messages SET read = 1
		WHERE recipient_id = ? AND sender_id = ? AND read = 0
	`, readerID, otherID)
	return err
}
