package services

import (
	"fmt"
	"lumina/models"
)

// BookmarkService handles saved offers.
type BookmarkService struct {
	repo BookmarkRepository
}

func NewBookmarkService(repo BookmarkRepository) *BookmarkService {
	return &BookmarkService{repo: repo}
}

// Save bookmarks an offer for the user. Duplicates are rejected. The
// history entry is a best-effort follow-up write.
func (bs *BookmarkService) Save(userID, offerID int64) (*models.SavedOffer, error) {
	offer, err := bs.repo.GetOfferByID(offerID)
	if err != nil {
		return nil, err
	}
	if offer == nil {
		return nil, ErrOfferNotFound
	}

	existing, err := bs.repo.GetSavedOffer(userID, offerID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrAlreadySaved
	}

	id, err := bs.repo.SaveOffer(userID, offerID)
	if err != nil {
		return nil, err
	}

	_ = bs.repo.LogHistory(
		userID,
		"materia_guardada",
		fmt.Sprintf("Guardaste %s", offer.Subject),
	)

	return &models.SavedOffer{ID: id, UserID: userID, OfferID: offerID}, nil
}

// Unsave removes a bookmark. Removing a bookmark that does not exist is
// not an error.
func (bs *BookmarkService) Unsave(userID, offerID int64) error {
	return bs.repo.UnsaveOffer(userID, offerID)
}

// List returns the user's bookmarks joined with their offers, most
// recently saved first.
func (bs *BookmarkService) List(userID int64) ([]models.SavedOfferView, error) {
	return bs.repo.ListSaved(userID)
}
