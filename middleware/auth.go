package middleware

import (
	"lumina/models"
	"lumina/session"

	"github.com/gofiber/fiber/v2"
)

// AuthRequired rejects requests without a valid session cookie and puts
// the session's user snapshot into request locals.
func AuthRequired(sessionStore *session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sessionID := c.Cookies("session_id")
		if sessionID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"ok":    false,
				"error": "Missing session",
			})
		}

		sess, err := sessionStore.Get(sessionID)
		if err != nil || sess == nil {
			c.ClearCookie("session_id")
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"ok":    false,
				"error": "Invalid or expired session",
			})
		}

		c.Locals("sessionID", sessionID)
		c.Locals("userID", sess.User.ID)
		c.Locals("user", sess.User)
		return c.Next()
	}
}

// GetUserID returns the authenticated user's id, or 0 when the request
// carries no session.
func GetUserID(c *fiber.Ctx) int64 {
	userID, ok := c.Locals("userID").(int64)
	if !ok {
		return 0
	}
	return userID
}

// GetUser returns the session's user snapshot.
func GetUser(c *fiber.Ctx) (models.User, bool) {
	user, ok := c.Locals("user").(models.User)
	return user, ok
}
