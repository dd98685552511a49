package handlers

import (
	"lumina/app"
	"lumina/middleware"
	"lumina/models"

	"github.com/gofiber/fiber/v2"
)

// SendMessage appends a message to the conversation with the recipient.
func SendMessage(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.SendMessageRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		userID := middleware.GetUserID(c)

		id, err := a.Repo.CreateMessage(userID, req.RecipientID, req.Text)
		if err != nil {
			return serverError(c, "Failed to send message", err)
		}

		return created(c, fiber.Map{"ok": true, "id": id})
	}
}

// GetConversation returns every message between the user and the other
// party, oldest first.
func GetConversation(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		otherID, err := c.ParamsInt("userId")
		if err != nil || otherID < 1 {
			return badRequest(c, "Invalid user id")
		}

		userID := middleware.GetUserID(c)

		messages, err := a.Repo.ListConversation(userID, int64(otherID))
		if err != nil {
			return serverError(c, "Failed to fetch conversation", err)
		}

		return success(c, fiber.Map{"mensajes": messages})
	}
}

// MarkConversationRead marks the user's incoming messages from the other
// party as read.
func MarkConversationRead(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		otherID, err := c.ParamsInt("userId")
		if err != nil || otherID < 1 {
			return badRequest(c, "Invalid user id")
		}

		userID := middleware.GetUserID(c)

		if err := a.Repo.MarkConversationRead(userID, int64(otherID)); err != nil {
			return serverError(c, "Failed to mark conversation read", err)
		}

		return success(c, fiber.Map{"ok": true})
	}
}
