package database

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

type DB struct {
	*sql.DB
}

func New(dbPath string) (*DB, error) {
	// Ensure directory exists
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	// Open database
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Configure connection pool
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	// Enable WAL mode for better concurrency
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	// Enable foreign keys
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	return &DB{db}, nil
}

// migration is one schema step. Steps are additive only and applied at
// most once, tracked in schema_migrations.
type migration struct {
	version int
	stmts   []string
}

var migrations = []migration{
	{
		version: 1,
		stmts: []string{
			`CREATE TABLE IF NOT EXISTS users (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				name TEXT NOT NULL,
				birth_date TEXT,
				email TEXT UNIQUE NOT NULL,
				university TEXT,
				password TEXT NOT NULL,
				user_type TEXT NOT NULL DEFAULT 'estudiante',
				created_at DATETIME DEFAULT CURRENT_TIMESTAMP
			)`,

			`CREATE TABLE IF NOT EXISTS offers (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				tutor_id INTEGER NOT NULL,
				subject TEXT NOT NULL,
				category TEXT NOT NULL,
				level TEXT NOT NULL,
				description TEXT,
				price TEXT NOT NULL,
				modality TEXT NOT NULL,
				duration TEXT NOT NULL,
				location TEXT,
				tutor_name TEXT,
				created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
				FOREIGN KEY (tutor_id) REFERENCES users(id)
			)`,

			`CREATE TABLE IF NOT EXISTS enrollments (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				user_id INTEGER NOT NULL,
				offer_id INTEGER NOT NULL,
				created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
				FOREIGN KEY (user_id) REFERENCES users(id),
				FOREIGN KEY (offer_id) REFERENCES offers(id),
				UNIQUE(user_id, offer_id)
			)`,

			`CREATE TABLE IF NOT EXISTS saved_offers (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				user_id INTEGER NOT NULL,
				offer_id INTEGER NOT NULL,
				created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
				FOREIGN KEY (user_id) REFERENCES users(id),
				FOREIGN KEY (offer_id) REFERENCES offers(id),
				UNIQUE(user_id, offer_id)
			)`,

			`CREATE TABLE IF NOT EXISTS notifications (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				user_id INTEGER NOT NULL,
				title TEXT NOT NULL,
				body TEXT NOT NULL,
				read INTEGER NOT NULL DEFAULT 0,
				created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
				FOREIGN KEY (user_id) REFERENCES users(id)
			)`,

			`CREATE TABLE IF NOT EXISTS history (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				user_id INTEGER NOT NULL,
				action TEXT NOT NULL,
				detail TEXT,
				created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
				FOREIGN KEY (user_id) REFERENCES users(id)
			)`,

			`CREATE TABLE IF NOT EXISTS messages (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				sender_id INTEGER NOT NULL,
				recipient_id INTEGER NOT NULL,
				text TEXT NOT NULL,
				read INTEGER NOT NULL DEFAULT 0,
				created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
				FOREIGN KEY (sender_id) REFERENCES users(id),
				FOREIGN KEY (recipient_id) REFERENCES users(id)
			)`,

			`CREATE TABLE IF NOT EXISTS tutoring_sessions (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				offer_id INTEGER NOT NULL,
				student_id INTEGER NOT NULL,
				scheduled_at DATETIME NOT NULL,
				status TEXT NOT NULL DEFAULT 'pendiente',
				created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
				FOREIGN KEY (offer_id) REFERENCES offers(id),
				FOREIGN KEY (student_id) REFERENCES users(id)
			)`,

			// Indexes for the hot list queries
			`CREATE INDEX IF NOT EXISTS idx_offers_tutor ON offers(tutor_id)`,
			`CREATE INDEX IF NOT EXISTS idx_enrollments_user ON enrollments(user_id)`,
			`CREATE INDEX IF NOT EXISTS idx_saved_offers_user ON saved_offers(user_id)`,
			`CREATE INDEX IF NOT EXISTS idx_notifications_user ON notifications(user_id)`,
			`CREATE INDEX IF NOT EXISTS idx_history_user ON history(user_id)`,
			`CREATE INDEX IF NOT EXISTS idx_messages_pair ON messages(sender_id, recipient_id)`,
		},
	},
	{
		// Profile fields added after the first release
		version: 2,
		stmts: []string{
			`ALTER TABLE users ADD COLUMN alias TEXT`,
			`ALTER TABLE users ADD COLUMN photo TEXT`,
		},
	},
}

// Migrate applies all pending schema migrations in version order. Applied
// versions are recorded in schema_migrations, so calling this on every
// process start is safe and never touches existing data.
func (db *DB) Migrate() error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`)
	if err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	for _, m := range migrations {
		var applied int
		err := db.QueryRow(
			"SELECT COUNT(1) FROM schema_migrations WHERE version = ?", m.version,
		).Scan(&applied)
		if err != nil {
			return fmt.Errorf("failed to check migration %d: %w", m.version, err)
		}
		if applied > 0 {
			continue
		}

		for _, stmt := range m.stmts {
			if _, err := db.Exec(stmt); err != nil {
				return fmt.Errorf("migration %d failed: %w", m.version, err)
			}
		}

		if _, err := db.Exec(
			"INSERT INTO schema_migrations (version) VALUES (?)", m.version,
		); err != nil {
			return fmt.Errorf("failed to record migration %d: %w", m.version, err)
		}
	}

	return nil
}

func (db *DB) Close() error {
	return db.DB.Close()
}
