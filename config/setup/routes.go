package setup

import (
	"lumina/app"
	"lumina/handlers"
	"lumina/middleware"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

// RegisterRoutes registers all application routes
func RegisterRoutes(fiberApp *fiber.App, application *app.App) {

	// Public routes
	fiberApp.Get("/health", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"status": "ok"}) })

	// Auth routes
	fiberApp.Post("/api/auth/register", handlers.Register(application))
	fiberApp.Post("/api/auth/login", handlers.Login(application))
	fiberApp.Post("/api/auth/logout", handlers.Logout(application))
	fiberApp.Get("/api/auth/me", handlers.Me(application))
	fiberApp.Post("/api/auth/password-reset", handlers.ResetPassword(application))

	// Protected API routes
	api := fiberApp.Group("/api", middleware.AuthRequired(application.SessionStore), limiter.New(limiter.Config{
		Max:        100,
		Expiration: time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			if userID, ok := c.Locals("userID").(int64); ok {
				return "user:" + strconv.FormatInt(userID, 10)
			}
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Rate limit exceeded for your account",
			})
		},
	}))

	// Offers
	api.Get("/offers", handlers.ListOffers(application))
	api.Get("/offers/search", handlers.SearchOffers(application))
	api.Get("/offers/mine", handlers.MyOffers(application))
	api.Get("/offers/:id", handlers.GetOffer(application))
	api.Post("/offers", handlers.PublishOffer(application))
	api.Put("/offers/:id", handlers.UpdateOffer(application))
	api.Delete("/offers/:id", handlers.DeleteOffer(application))

	// Enrollments and bookmarks
	api.Post("/offers/:id/enroll", handlers.Enroll(application))
	api.Get("/enrollments", handlers.ListEnrollments(application))
	api.Post("/offers/:id/save", handlers.SaveOffer(application))
	api.Delete("/offers/:id/save", handlers.UnsaveOffer(application))
	api.Get("/saved", handlers.ListSaved(application))

	// Notifications and history
	api.Get("/notifications", handlers.ListNotifications(application))
	api.Get("/notifications/unread", handlers.UnreadCount(application))
	api.Put("/notifications/:id/read", handlers.MarkNotificationRead(application))
	api.Get("/history", handlers.ListHistory(application))

	// Messaging
	api.Post("/messages", handlers.SendMessage(application))
	api.Get("/messages/:userId", handlers.GetConversation(application))
	api.Put("/messages/:userId/read", handlers.MarkConversationRead(application))

	// Profile
	api.Put("/profile", handlers.UpdateProfile(application))
	api.Put("/profile/user-type", handlers.ChangeUserType(application))

	// Scheduled sessions
	api.Post("/sessions", handlers.ScheduleSession(application))
	api.Get("/sessions", handlers.MySessions(application))
	api.Put("/sessions/:id/status", handlers.UpdateSessionStatus(application))
}
