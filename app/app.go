package app

import (
	"log/slog"
	"lumina/database"
	"lumina/services"
	"lumina/session"
	"lumina/validator"
)

// App holds all application dependencies
// This struct is the central point for dependency injection
type App struct {
	Repo         *database.Repository
	AuthService  *services.AuthService
	Profiles     *services.ProfileService
	Offers       *services.OfferService
	Enrollments  *services.EnrollmentService
	Bookmarks    *services.BookmarkService
	SessionStore *session.Store
	Validator    *validator.Validator
	Logger       *slog.Logger
}

// New creates a new App instance with all dependencies
func New(repo *database.Repository, sessionStore *session.Store, logger *slog.Logger) *App {
	return &App{
		Repo:         repo,
		AuthService:  services.NewAuthService(repo),
		Profiles:     services.NewProfileService(repo),
		Offers:       services.NewOfferService(repo, repo),
		Enrollments:  services.NewEnrollmentService(repo),
		Bookmarks:    services.NewBookmarkService(repo),
		SessionStore: sessionStore,
		Validator:    validator.New(),
		Logger:       logger,
	}
}
