package handlers_test

import (
	"lumina/app"
	"lumina/handlers"
	"lumina/models"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newAuthedApp returns a Fiber app that injects the given user's session
// locals, bypassing the cookie check.
func newAuthedApp(user models.User) *fiber.App {
	fiberApp := fiber.New()
	fiberApp.Use(func(c *fiber.Ctx) error {
		c.Locals("sessionID", "test-session-id")
		c.Locals("userID", user.ID)
		c.Locals("user", user)
		return c.Next()
	})
	return fiberApp
}

func createUser(t *testing.T, application *app.App, email, userType string) models.User {
	t.Helper()

	id, err := application.Repo.CreateUser(&models.User{
		Name:       "Test User",
		Email:      email,
		Password:   "digest",
		UserType:   userType,
		University: "Universidad Nacional",
	})
	require.NoError(t, err)
	return models.User{ID: id, Name: "Test User", Email: email, UserType: userType}
}

func offerPayload() map[string]any {
	return map[string]any{
		"materia":     "Cálculo Diferencial",
		"categoria":   "Matemáticas",
		"nivel":       "Intermedio",
		"descripcion": "Repaso de límites y derivadas",
		"precio":      "15000",
		"modalidad":   "En línea",
		"duracion":    "1 hora",
	}
}

func TestPublishOfferHandler(t *testing.T) {
	application, cleanup := setupTestApp(t)
	defer cleanup()

	tutor := createUser(t, application, "tutor@uni.edu", models.UserTypeTutor)
	student := createUser(t, application, "student@uni.edu", models.UserTypeStudent)

	t.Run("Success - Tutor publishes", func(t *testing.T) {
		fiberApp := newAuthedApp(tutor)
		fiberApp.Post("/api/offers", handlers.PublishOffer(application))

		req := jsonRequest(t, http.MethodPost, "/api/offers", offerPayload())
		resp, err := fiberApp.Test(req, -1)
		require.NoError(t, err)

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		body := decodeBody(t, resp)
		offer := body["tutoria"].(map[string]interface{})
		assert.Equal(t, "Cálculo Diferencial", offer["materia"])
		assert.Equal(t, "Test User", offer["tutorNombre"])
	})

	t.Run("Forbidden - Student cannot publish", func(t *testing.T) {
		fiberApp := newAuthedApp(student)
		fiberApp.Post("/api/offers", handlers.PublishOffer(application))

		req := jsonRequest(t, http.MethodPost, "/api/offers", offerPayload())
		resp, err := fiberApp.Test(req, -1)
		require.NoError(t, err)

		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("Bad request - In-person offer without location", func(t *testing.T) {
		fiberApp := newAuthedApp(tutor)
		fiberApp.Post("/api/offers", handlers.PublishOffer(application))

		payload := offerPayload()
		payload["modalidad"] = "Presencial"

		req := jsonRequest(t, http.MethodPost, "/api/offers", payload)
		resp, err := fiberApp.Test(req, -1)
		require.NoError(t, err)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestOfferOwnershipHandlers(t *testing.T) {
	application, cleanup := setupTestApp(t)
	defer cleanup()

	owner := createUser(t, application, "owner@uni.edu", models.UserTypeTutor)
	other := createUser(t, application, "other@uni.edu", models.UserTypeTutor)

	offerID, err := application.Repo.CreateOffer(&models.Offer{
		TutorID:   owner.ID,
		Subject:   "Física I",
		Category:  "Ciencias",
		Level:     "Básico",
		Price:     "12000",
		Modality:  models.ModalityOnline,
		Duration:  "1 hora",
		TutorName: owner.Name,
	})
	require.NoError(t, err)

	t.Run("Forbidden - Non-owner cannot delete", func(t *testing.T) {
		fiberApp := newAuthedApp(other)
		fiberApp.Delete("/api/offers/:id", handlers.DeleteOffer(application))

		req := httptest.NewRequest(http.MethodDelete, "/api/offers/1", nil)
		resp, err := fiberApp.Test(req, -1)
		require.NoError(t, err)

		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("Success - Owner deletes", func(t *testing.T) {
		fiberApp := newAuthedApp(owner)
		fiberApp.Delete("/api/offers/:id", handlers.DeleteOffer(application))

		req := httptest.NewRequest(http.MethodDelete, "/api/offers/1", nil)
		resp, err := fiberApp.Test(req, -1)
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		offer, err := application.Repo.GetOfferByID(offerID)
		require.NoError(t, err)
		assert.Nil(t, offer)
	})
}

func TestEnrollHandler(t *testing.T) {
	application, cleanup := setupTestApp(t)
	defer cleanup()

	tutor := createUser(t, application, "tutor@uni.edu", models.UserTypeTutor)
	student := createUser(t, application, "student@uni.edu", models.UserTypeStudent)

	_, err := application.Repo.CreateOffer(&models.Offer{
		TutorID:   tutor.ID,
		Subject:   "Cálculo Diferencial",
		Category:  "Matemáticas",
		Level:     "Intermedio",
		Price:     "15000",
		Modality:  models.ModalityOnline,
		Duration:  "1 hora",
		TutorName: tutor.Name,
	})
	require.NoError(t, err)

	fiberApp := newAuthedApp(student)
	fiberApp.Post("/api/offers/:id/enroll", handlers.Enroll(application))
	fiberApp.Get("/api/enrollments", handlers.ListEnrollments(application))

	t.Run("Success - First enrollment", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/offers/1/enroll", nil)
		resp, err := fiberApp.Test(req, -1)
		require.NoError(t, err)

		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		// The tutor was notified
		count, err := application.Repo.CountUnreadNotifications(tutor.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, count)

		// And the student's history grew
		entries, err := application.Repo.ListHistory(student.ID)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "inscripcion", entries[0].Action)
	})

	t.Run("Conflict - Second enrollment on the same offer", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/offers/1/enroll", nil)
		resp, err := fiberApp.Test(req, -1)
		require.NoError(t, err)

		assert.Equal(t, http.StatusConflict, resp.StatusCode)
		body := decodeBody(t, resp)
		assert.Equal(t, false, body["ok"])
		assert.Equal(t, "AlreadyEnrolled", body["reason"])
	})

	t.Run("Not found - Missing offer", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/offers/999/enroll", nil)
		resp, err := fiberApp.Test(req, -1)
		require.NoError(t, err)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("List includes the joined offer", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/enrollments", nil)
		resp, err := fiberApp.Test(req, -1)
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		body := decodeBody(t, resp)
		enrolled := body["inscripciones"].([]interface{})
		require.Len(t, enrolled, 1)

		first := enrolled[0].(map[string]interface{})
		offer := first["tutoria"].(map[string]interface{})
		assert.Equal(t, "Cálculo Diferencial", offer["materia"])
	})
}

func TestSavedOfferHandlers(t *testing.T) {
	application, cleanup := setupTestApp(t)
	defer cleanup()

	tutor := createUser(t, application, "tutor@uni.edu", models.UserTypeTutor)
	student := createUser(t, application, "student@uni.edu", models.UserTypeStudent)

	_, err := application.Repo.CreateOffer(&models.Offer{
		TutorID:   tutor.ID,
		Subject:   "Química Orgánica",
		Category:  "Ciencias",
		Level:     "Avanzado",
		Price:     "20000",
		Modality:  models.ModalityOnline,
		Duration:  "2 horas",
		TutorName: tutor.Name,
	})
	require.NoError(t, err)

	fiberApp := newAuthedApp(student)
	fiberApp.Post("/api/offers/:id/save", handlers.SaveOffer(application))
	fiberApp.Delete("/api/offers/:id/save", handlers.UnsaveOffer(application))
	fiberApp.Get("/api/saved", handlers.ListSaved(application))

	t.Run("Save, duplicate, list, unsave", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/offers/1/save", nil)
		resp, err := fiberApp.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		req = httptest.NewRequest(http.MethodPost, "/api/offers/1/save", nil)
		resp, err = fiberApp.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
		body := decodeBody(t, resp)
		assert.Equal(t, "AlreadySaved", body["reason"])

		req = httptest.NewRequest(http.MethodGet, "/api/saved", nil)
		resp, err = fiberApp.Test(req, -1)
		require.NoError(t, err)
		body = decodeBody(t, resp)
		saved := body["guardadas"].([]interface{})
		assert.Len(t, saved, 1)

		req = httptest.NewRequest(http.MethodDelete, "/api/offers/1/save", nil)
		resp, err = fiberApp.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		// Removing again is a no-op, not an error
		req = httptest.NewRequest(http.MethodDelete, "/api/offers/1/save", nil)
		resp, err = fiberApp.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})
}
