package setup

import (
	"log/slog"
	"lumina/app"
	"lumina/database"
	"lumina/session"
)

// InitDatabase initializes the SQLite database and runs migrations
func InitDatabase(dbPath string, logger *slog.Logger) (*database.DB, error) {
	db, err := database.New(dbPath)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, err
	}

	logger.Info("database initialized", "path", dbPath)
	return db, nil
}

// InitApp initializes the application with all dependencies
func InitApp(db *database.DB, logger *slog.Logger) *app.App {
	repo := database.NewRepository(db)

	sessionStore := session.NewStore()
	sessionStore.StartCleanupRoutine()
	logger.Info("session store initialized")

	application := app.New(repo, sessionStore, logger)
	logger.Info("application initialized with dependency injection")

	return application
}

// Shutdown performs graceful shutdown of all services
func Shutdown(db *database.DB, logger *slog.Logger) {
	logger.Info("shutting down services...")

	if db != nil {
		db.Close()
		logger.Info("database closed")
	}
}
