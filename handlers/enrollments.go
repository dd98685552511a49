package handlers

import (
	"lumina/app"
	"lumina/middleware"

	"github.com/gofiber/fiber/v2"
)

// Enroll registers the authenticated user on an offer. A duplicate pair
// yields {ok:false, reason:"AlreadyEnrolled"}.
func Enroll(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		offerID, err := c.ParamsInt("id")
		if err != nil || offerID < 1 {
			return badRequest(c, "Invalid offer id")
		}

		userID := middleware.GetUserID(c)

		enrollment, err := a.Enrollments.Enroll(userID, int64(offerID))
		if err != nil {
			return serviceError(c, err)
		}

		return created(c, fiber.Map{"ok": true, "inscripcion": enrollment})
	}
}

// ListEnrollments returns the user's enrollments with their offers.
func ListEnrollments(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := middleware.GetUserID(c)

		enrolled, err := a.Enrollments.List(userID)
		if err != nil {
			return serverError(c, "Failed to fetch enrollments", err)
		}

		return success(c, fiber.Map{"inscripciones": enrolled})
	}
}
