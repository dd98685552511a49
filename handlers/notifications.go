package handlers

import (
	"lumina/app"
	"lumina/middleware"

	"github.com/gofiber/fiber/v2"
)

// ListNotifications returns the user's notifications, newest first.
func ListNotifications(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := middleware.GetUserID(c)

		notifications, err := a.Repo.ListNotifications(userID)
		if err != nil {
			return serverError(c, "Failed to fetch notifications", err)
		}

		return success(c, fiber.Map{"notificaciones": notifications})
	}
}

// UnreadCount returns the number of unread notifications.
func UnreadCount(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := middleware.GetUserID(c)

		count, err := a.Repo.CountUnreadNotifications(userID)
		if err != nil {
			return serverError(c, "Failed to count notifications", err)
		}

		return success(c, fiber.Map{"unread": count})
	}
}

// MarkNotificationRead flips a notification's read flag. The update is
// scoped to the caller's own rows.
func MarkNotificationRead(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		notificationID, err := c.ParamsInt("id")
		if err != nil || notificationID < 1 {
			return badRequest(c, "Invalid notification id")
		}

		userID := middleware.GetUserID(c)

		if err := a.Repo.MarkNotificationRead(userID, int64(notificationID)); err != nil {
			return serverError(c, "Failed to mark notification read", err)
		}

		return success(c, fiber.Map{"ok": true})
	}
}
