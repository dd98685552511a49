package handlers

import (
	"lumina/app"
	"lumina/middleware"
	"lumina/models"

	"github.com/gofiber/fiber/v2"
)

// UpdateProfile overwrites the editable profile fields and refreshes the
// session snapshot with the re-read row.
func UpdateProfile(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.UpdateProfileRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		userID := middleware.GetUserID(c)

		user, err := a.Profiles.Update(userID, &req)
		if err != nil {
			return serviceError(c, err)
		}

		refreshSession(c, a, user)

		return success(c, fiber.Map{"ok": true, "user": user})
	}
}

// ChangeUserType switches the account role.
func ChangeUserType(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.ChangeUserTypeRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		userID := middleware.GetUserID(c)

		user, err := a.Profiles.ChangeUserType(userID, req.UserType)
		if err != nil {
			return serviceError(c, err)
		}

		refreshSession(c, a, user)

		return success(c, fiber.Map{"ok": true, "user": user})
	}
}

// refreshSession replaces the session's user snapshot so later requests
// see the fresh row.
func refreshSession(c *fiber.Ctx, a *app.App, user *models.User) {
	sessionID, ok := c.Locals("sessionID").(string)
	if !ok || sessionID == "" {
		return
	}
	sess, err := a.SessionStore.Get(sessionID)
	if err != nil || sess == nil {
		return
	}
	sess.User = *user
	a.SessionStore.Update(sessionID, sess)
}
