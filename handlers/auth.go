package handlers

import (
	"errors"
	"lumina/app"
	"lumina/config"
	"lumina/models"
	"lumina/services"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Register creates a new account. Email is normalized here; the service
// and store treat it as an opaque exact-match key.
func Register(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.RegisterRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		req.Email = strings.ToLower(strings.TrimSpace(req.Email))

		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		user, err := a.AuthService.Register(&req)
		if err != nil {
			if errors.Is(err, services.ErrDuplicateEmail) {
				return conflict(c, "DuplicateEmail")
			}
			return serverError(c, "Failed to register user", err)
		}

		return created(c, fiber.Map{"ok": true, "user": user})
	}
}

// Login verifies credentials and opens a session.
func Login(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.LoginRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		req.Email = strings.ToLower(strings.TrimSpace(req.Email))

		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		user, err := a.AuthService.Login(req.Email, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUnknownEmail):
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
					"ok": false, "reason": "UnknownEmail",
				})
			case errors.Is(err, services.ErrWrongPassword):
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
					"ok": false, "reason": "WrongPassword",
				})
			default:
				return serverError(c, "Login failed", err)
			}
		}

		sess, err := a.SessionStore.Create(*user)
		if err != nil {
			return serverError(c, "Failed to create session", err)
		}

		c.Cookie(&fiber.Cookie{
			Name:     "session_id",
			Value:    sess.ID,
			Expires:  sess.ExpiresAt,
			HTTPOnly: true,
			Secure:   config.AppConfig.Env == "production",
			SameSite: "Lax",
			Path:     "/",
		})

		return success(c, fiber.Map{"ok": true, "user": user})
	}
}

// Logout closes the session.
func Logout(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sessionID := c.Cookies("session_id")
		if sessionID != "" {
			a.SessionStore.Delete(sessionID)
		}

		c.ClearCookie("session_id")

		return success(c, fiber.Map{"ok": true})
	}
}

// Me returns the current session's user snapshot.
func Me(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sessionID := c.Cookies("session_id")
		if sessionID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"authenticated": false,
			})
		}

		sess, err := a.SessionStore.Get(sessionID)
		if err != nil || sess == nil {
			c.ClearCookie("session_id")
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"authenticated": false,
			})
		}

		a.SessionStore.Update(sessionID, sess)

		return success(c, fiber.Map{
			"authenticated": true,
			"user":          sess.User,
		})
	}
}

// ResetPassword replaces the password for an existing account.
func ResetPassword(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.ResetPasswordRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		req.Email = strings.ToLower(strings.TrimSpace(req.Email))

		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		if err := a.AuthService.ResetPassword(req.Email, req.NewPassword); err != nil {
			if errors.Is(err, services.ErrUnknownEmail) {
				return notFound(c, "No account with that email")
			}
			return serverError(c, "Failed to reset password", err)
		}

		return success(c, fiber.Map{"ok": true})
	}
}
