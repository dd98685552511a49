package database

import (
	"database/sql"
	"lumina/models"
)

// ==================== USER OPERATIONS ====================

const userColumns = `id, name, COALESCE(birth_date, ''), email, COALESCE(university, ''),
	   password, user_type, COALESCE(alias, ''), COALESCE(photo, ''), created_at`

func scanUser(row *sql.Row) (*models.User, error) {
	var user models.User
	err := row.Scan(
		&user.ID, &user.Name, &user.BirthDate, &user.Email, &user.University,
		&user.Password, &user.UserType, &user.Alias, &user.Photo, &user.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserByID retrieves a user by ID, including the password digest
func (r *Repository) GetUserByID(userID int64) (*models.User, error) {
	return scanUser(r.db.QueryRow(
		`SELECT `+userColumns+` FROM users WHERE id = ?`, userID,
	))
}

// GetUserByEmail does an exact lookup against the stored email. Callers
// lowercase before calling; this layer does not normalize.
func (r *Repository) GetUserByEmail(email string) (*models.User, error) {
	return scanUser(r.db.QueryRow(
		`SELECT `+userColumns+` FROM users WHERE email = ?`, email,
	))
}

// CreateUser inserts a new user row and returns the generated id.
// The password must already be hashed.
func (r *Repository) CreateUser(user *models.User) (int64, error) {
	res, err := r.db.Exec(`
		INSERT INTO users (name, birth_date, email, university, password, user_type)
		VALUES (?, ?, ?, ?, ?, ?)
	`, user.Name, user.BirthDate, user.Email, user.University, user.Password, user.UserType)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// UpdateProfile overwrites the editable profile fields. Last writer wins.
func (r *Repository) UpdateProfile(userID int64, name, birthDate, alias, photo string) error {
	_, err := r.db.Exec(`
		UPDATE users SET
			name = ?,
			birth_date = ?,
			alias = ?,
			photo = ?
		WHERE id = ?
	`, name, birthDate, alias, photo, userID)
	return err
}

func (r *Repository) UpdateUserType(userID int64, userType string) error {
	_, err := r.db.Exec(
		"UPDATE users SET user_type = ? WHERE id = ?", userType, userID,
	)
	return err
}

// UpdatePassword replaces the stored digest for the given email.
func (r *Repository) UpdatePassword(email, digest string) error {
	_, err := r.db.Exec(
		"UPDATE users SET password = ? WHERE email = ?", digest, email,
	)
	return err
}
