package handlers

import (
	"lumina/app"
	"lumina/middleware"
	"lumina/models"

	"github.com/gofiber/fiber/v2"
)

// ListOffers returns every published offer, newest first.
func ListOffers(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		offers, err := a.Offers.List()
		if err != nil {
			return serverError(c, "Failed to fetch offers", err)
		}
		return success(c, fiber.Map{"tutorias": offers})
	}
}

// SearchOffers filters offers by subject or category.
func SearchOffers(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		offers, err := a.Offers.Search(c.Query("q"))
		if err != nil {
			return serverError(c, "Failed to search offers", err)
		}
		return success(c, fiber.Map{"tutorias": offers})
	}
}

// MyOffers returns the authenticated tutor's own offers.
func MyOffers(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := middleware.GetUserID(c)

		offers, err := a.Offers.ListByTutor(userID)
		if err != nil {
			return serverError(c, "Failed to fetch offers", err)
		}
		return success(c, fiber.Map{"tutorias": offers})
	}
}

// GetOffer returns a single offer by id.
func GetOffer(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		offerID, err := c.ParamsInt("id")
		if err != nil || offerID < 1 {
			return badRequest(c, "Invalid offer id")
		}

		offer, err := a.Offers.Get(int64(offerID))
		if err != nil {
			return serviceError(c, err)
		}
		return success(c, fiber.Map{"tutoria": offer})
	}
}

// PublishOffer creates a new offer owned by the authenticated user.
func PublishOffer(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.PublishOfferRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		userID := middleware.GetUserID(c)

		offer, err := a.Offers.Publish(userID, &req)
		if err != nil {
			return serviceError(c, err)
		}

		return created(c, fiber.Map{"ok": true, "tutoria": offer})
	}
}

// UpdateOffer overwrites an offer's editable fields. Owner only.
func UpdateOffer(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		offerID, err := c.ParamsInt("id")
		if err != nil || offerID < 1 {
			return badRequest(c, "Invalid offer id")
		}

		var req models.PublishOfferRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		userID := middleware.GetUserID(c)

		offer, err := a.Offers.Edit(userID, int64(offerID), &req)
		if err != nil {
			return serviceError(c, err)
		}

		return success(c, fiber.Map{"ok": true, "tutoria": offer})
	}
}

// DeleteOffer removes an offer. Owner only.
func DeleteOffer(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		offerID, err := c.ParamsInt("id")
		if err != nil || offerID < 1 {
			return badRequest(c, "Invalid offer id")
		}

		userID := middleware.GetUserID(c)

		if err := a.Offers.Remove(userID, int64(offerID)); err != nil {
			return serviceError(c, err)
		}

		return success(c, fiber.Map{"ok": true})
	}
}
