package handlers

import (
	"lumina/app"
	"lumina/middleware"

	"github.com/gofiber/fiber/v2"
)

// SaveOffer bookmarks an offer for the authenticated user.
func SaveOffer(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		offerID, err := c.ParamsInt("id")
		if err != nil || offerID < 1 {
			return badRequest(c, "Invalid offer id")
		}

		userID := middleware.GetUserID(c)

		saved, err := a.Bookmarks.Save(userID, int64(offerID))
		if err != nil {
			return serviceError(c, err)
		}

		return created(c, fiber.Map{"ok": true, "guardada": saved})
	}
}

// UnsaveOffer removes a bookmark.
func UnsaveOffer(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		offerID, err := c.ParamsInt("id")
		if err != nil || offerID < 1 {
			return badRequest(c, "Invalid offer id")
		}

		userID := middleware.GetUserID(c)

		if err := a.Bookmarks.Unsave(userID, int64(offerID)); err != nil {
			return serverError(c, "Failed to remove saved offer", err)
		}

		return success(c, fiber.Map{"ok": true})
	}
}

// ListSaved returns the user's bookmarks with their offers.
func ListSaved(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := middleware.GetUserID(c)

		saved, err := a.Bookmarks.List(userID)
		if err != nil {
			return serverError(c, "Failed to fetch saved offers", err)
		}

		return success(c, fiber.Map{"guardadas": saved})
	}
}
