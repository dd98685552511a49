package services

import (
	"lumina/models"
	"strings"
)

// OfferService handles business logic for tutoring offers.
type OfferService struct {
	userRepo  UserRepository
	offerRepo OfferRepository
}

func NewOfferService(userRepo UserRepository, offerRepo OfferRepository) *OfferService {
	return &OfferService{
		userRepo:  userRepo,
		offerRepo: offerRepo,
	}
}

// Publish creates a new offer owned by the given user. Only tutor-capable
// accounts may publish, and in-person offers must carry a location. The
// owner's display name is copied onto the row at publish time.
func (os *OfferService) Publish(userID int64, req *models.PublishOfferRequest) (*models.Offer, error) {
	user, err := os.userRepo.GetUserByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if user.UserType != models.UserTypeTutor && user.UserType != models.UserTypeBoth {
		return nil, ErrNotTutor
	}

	if req.Modality == models.ModalityInPerson && strings.TrimSpace(req.Location) == "" {
		return nil, ErrLocationRequired
	}

	offer := &models.Offer{
		TutorID:     userID,
		Subject:     strings.TrimSpace(req.Subject),
		Category:    req.Category,
		Level:       req.Level,
		Description: req.Description,
		Price:       req.Price,
		Modality:    req.Modality,
		Duration:    req.Duration,
		Location:    req.Location,
		TutorName:   user.Name,
	}

	id, err := os.offerRepo.CreateOffer(offer)
	if err != nil {
		return nil, err
	}

	offer.ID = id
	return offer, nil
}

// Edit overwrites an offer's editable fields. Only the owner may edit.
func (os *OfferService) Edit(userID, offerID int64, req *models.PublishOfferRequest) (*models.Offer, error) {
	existing, err := os.offerRepo.GetOfferByID(offerID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrOfferNotFound
	}
	if existing.TutorID != userID {
		return nil, ErrNotOfferOwner
	}

	if req.Modality == models.ModalityInPerson && strings.TrimSpace(req.Location) == "" {
		return nil, ErrLocationRequired
	}

	updated := &models.Offer{
		Subject:     strings.TrimSpace(req.Subject),
		Category:    req.Category,
		Level:       req.Level,
		Description: req.Description,
		Price:       req.Price,
		Modality:    req.Modality,
		Duration:    req.Duration,
		Location:    req.Location,
	}

	if err := os.offerRepo.UpdateOffer(offerID, updated); err != nil {
		return nil, err
	}

	return os.offerRepo.GetOfferByID(offerID)
}

// Remove deletes an offer. Only the owner may delete.
func (os *OfferService) Remove(userID, offerID int64) error {
	existing, err := os.offerRepo.GetOfferByID(offerID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrOfferNotFound
	}
	if existing.TutorID != userID {
		return ErrNotOfferOwner
	}

	return os.offerRepo.DeleteOffer(offerID)
}

// Get retrieves a single offer.
func (os *OfferService) Get(offerID int64) (*models.Offer, error) {
	offer, err := os.offerRepo.GetOfferByID(offerID)
	if err != nil {
		return nil, err
	}
	if offer == nil {
		return nil, ErrOfferNotFound
	}
	return offer, nil
}

// List returns every published offer, newest first.
func (os *OfferService) List() ([]models.Offer, error) {
	return os.offerRepo.ListOffers()
}

// ListByTutor returns the tutor's own offers, newest first.
func (os *OfferService) ListByTutor(tutorID int64) ([]models.Offer, error) {
	return os.offerRepo.ListOffersByTutor(tutorID)
}

// Search filters offers by subject or category. An empty query returns
// the full list.
func (os *OfferService) Search(query string) ([]models.Offer, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return os.offerRepo.ListOffers()
	}
	return os.offerRepo.SearchOffers(query)
}
