package handlers

import (
	"lumina/app"
	"lumina/middleware"

	"github.com/gofiber/fiber/v2"
)

// ListHistory returns the user's activity trail, newest first.
func ListHistory(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := middleware.GetUserID(c)

		entries, err := a.Repo.ListHistory(userID)
		if err != nil {
			return serverError(c, "Failed to fetch history", err)
		}

		return success(c, fiber.Map{"historial": entries})
	}
}
