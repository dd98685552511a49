package handlers

import (
	"lumina/app"
	"lumina/middleware"
	"lumina/models"
	"time"

	"github.com/gofiber/fiber/v2"
)

// ScheduleSession books a session against an offer for the authenticated
// student.
func ScheduleSession(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.ScheduleSessionRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		scheduledAt, err := time.Parse(time.RFC3339, req.ScheduledAt)
		if err != nil {
			return badRequest(c, "fecha must be an RFC 3339 timestamp")
		}

		offer, err := a.Repo.GetOfferByID(req.OfferID)
		if err != nil {
			return serverError(c, "Failed to fetch offer", err)
		}
		if offer == nil {
			return notFound(c, "Offer not found")
		}

		userID := middleware.GetUserID(c)

		id, err := a.Repo.CreateSession(req.OfferID, userID, scheduledAt)
		if err != nil {
			return serverError(c, "Failed to schedule session", err)
		}

		// Best effort, same policy as enroll+notify.
		_ = a.Repo.CreateNotification(
			offer.TutorID,
			"Solicitud de tutoría",
			"Un estudiante agendó una sesión de "+offer.Subject,
		)

		return created(c, fiber.Map{"ok": true, "id": id})
	}
}

// MySessions returns the authenticated user's sessions: the ones they
// booked as a student plus the ones booked against their offers.
func MySessions(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := middleware.GetUserID(c)

		asStudent, err := a.Repo.ListSessionsByStudent(userID)
		if err != nil {
			return serverError(c, "Failed to fetch sessions", err)
		}

		asTutor, err := a.Repo.ListSessionsByTutor(userID)
		if err != nil {
			return serverError(c, "Failed to fetch sessions", err)
		}

		return success(c, fiber.Map{
			"como_estudiante": asStudent,
			"como_tutor":      asTutor,
		})
	}
}

// UpdateSessionStatus confirms or cancels a scheduled session. Only the
// booking student or the offer's tutor may change the state.
func UpdateSessionStatus(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sessionID, err := c.ParamsInt("id")
		if err != nil || sessionID < 1 {
			return badRequest(c, "Invalid session id")
		}

		var req struct {
			Status string `json:"estado"`
		}
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		switch req.Status {
		case models.SessionConfirmed, models.SessionCancelled:
		default:
			return badRequest(c, "estado must be confirmada or cancelada")
		}

		sess, err := a.Repo.GetSessionByID(int64(sessionID))
		if err != nil {
			return serverError(c, "Failed to fetch session", err)
		}
		if sess == nil {
			return notFound(c, "Session not found")
		}

		userID := middleware.GetUserID(c)

		if userID != sess.StudentID {
			// The offer may have been deleted since booking; then only
			// the student can still touch the session.
			offer, err := a.Repo.GetOfferByID(sess.OfferID)
			if err != nil {
				return serverError(c, "Failed to fetch offer", err)
			}
			if offer == nil || offer.TutorID != userID {
				return forbidden(c, "Session belongs to another user")
			}
		}

		if err := a.Repo.UpdateSessionStatus(int64(sessionID), req.Status); err != nil {
			return serverError(c, "Failed to update session", err)
		}

		return success(c, fiber.Map{"ok": true})
	}
}
