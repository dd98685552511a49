package handlers

import (
	"errors"
	"log/slog"
	"lumina/services"
	"lumina/validator"

	"github.com/gofiber/fiber/v2"
)

func success(c *fiber.Ctx, data fiber.Map) error {
	return c.JSON(data)
}

func created(c *fiber.Ctx, data fiber.Map) error {
	return c.Status(fiber.StatusCreated).JSON(data)
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"ok": false, "error": message})
}

func serverError(c *fiber.Ctx, message string, err error) error {
	requestID := ""
	if id, ok := c.Locals("requestID").(string); ok {
		requestID = id
	}

	slog.Error("server error",
		"request_id", requestID,
		"method", c.Method(),
		"path", c.Path(),
		"message", message,
		"error", err,
	)

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"ok": false, "error": message})
}

func validationError(c *fiber.Ctx, err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"ok":     false,
			"error":  verrs.Error(),
			"fields": verrs,
		})
	}
	return badRequest(c, err.Error())
}

// conflict maps a domain rejection (duplicate pair, wrong owner, ...) to
// a result descriptor. Message generation stays at this boundary; the
// service only exposes the sentinel.
func conflict(c *fiber.Ctx, reason string) error {
	return c.Status(fiber.StatusConflict).JSON(fiber.Map{"ok": false, "reason": reason})
}

func notFound(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"ok": false, "error": message})
}

func forbidden(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"ok": false, "error": message})
}

// serviceError converts a known service sentinel into its JSON shape and
// falls back to a 500 for anything unexpected.
func serviceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrOfferNotFound):
		return notFound(c, "Offer not found")
	case errors.Is(err, services.ErrUserNotFound):
		return notFound(c, "User not found")
	case errors.Is(err, services.ErrNotTutor):
		return forbidden(c, "Only tutors can publish offers")
	case errors.Is(err, services.ErrNotOfferOwner):
		return forbidden(c, "Offer belongs to another user")
	case errors.Is(err, services.ErrLocationRequired):
		return badRequest(c, "Location is required for in-person offers")
	case errors.Is(err, services.ErrAlreadyEnrolled):
		return conflict(c, "AlreadyEnrolled")
	case errors.Is(err, services.ErrAlreadySaved):
		return conflict(c, "AlreadySaved")
	default:
		return serverError(c, "Operation failed", err)
	}
}
