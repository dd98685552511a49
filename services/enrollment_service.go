package services

import (
	"fmt"
	"lumina/models"
)

// EnrollmentService handles enrollments and their follow-up writes.
type EnrollmentService struct {
	repo EnrollmentRepository
}

func NewEnrollmentService(repo EnrollmentRepository) *EnrollmentService {
	return &EnrollmentService{repo: repo}
}

// Enroll registers the user on an offer. Duplicates are rejected via a
// pre-check on the (user, offer) pair. On success the offer owner is
// notified and a history entry is appended; both are separate statements
// issued after the insert, so a crash in between can leave an enrollment
// without its notification.
func (es *EnrollmentService) Enroll(userID, offerID int64) (*models.Enrollment, error) {
	offer, err := es.repo.GetOfferByID(offerID)
	if err != nil {
		return nil, err
	}
	if offer == nil {
		return nil, ErrOfferNotFound
	}

	existing, err := es.repo.GetEnrollment(userID, offerID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrAlreadyEnrolled
	}

	id, err := es.repo.CreateEnrollment(userID, offerID)
	if err != nil {
		return nil, err
	}

	// Best effort from here on: the enrollment is already committed.
	_ = es.repo.CreateNotification(
		offer.TutorID,
		"Nueva inscripción",
		fmt.Sprintf("Un estudiante se inscribió a tu tutoría de %s", offer.Subject),
	)
	_ = es.repo.LogHistory(
		userID,
		"inscripcion",
		fmt.Sprintf("Te inscribiste a %s", offer.Subject),
	)

	return &models.Enrollment{ID: id, UserID: userID, OfferID: offerID}, nil
}

// List returns the user's enrollments joined with their offers, most
// recent first.
func (es *EnrollmentService) List(userID int64) ([]models.EnrolledOffer, error) {
	return es.repo.ListEnrollments(userID)
}
