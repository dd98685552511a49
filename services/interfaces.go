package services

import "lumina/models"

// UserRepository defines the interface for user data access
type UserRepository interface {
	GetUserByID(userID int64) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	CreateUser(user *models.User) (int64, error)
	UpdateProfile(userID int64, name, birthDate, alias, photo string) error
	UpdateUserType(userID int64, userType string) error
	UpdatePassword(email, digest string) error
}

// OfferRepository defines the interface for offer data access
type OfferRepository interface {
	CreateOffer(offer *models.Offer) (int64, error)
	GetOfferByID(offerID int64) (*models.Offer, error)
	UpdateOffer(offerID int64, offer *models.Offer) error
	DeleteOffer(offerID int64) error
	ListOffers() ([]models.Offer, error)
	ListOffersByTutor(tutorID int64) ([]models.Offer, error)
	SearchOffers(query string) ([]models.Offer, error)
}

// EnrollmentRepository defines the interface for enrollment data access
type EnrollmentRepository interface {
	GetEnrollment(userID, offerID int64) (*models.Enrollment, error)
	CreateEnrollment(userID, offerID int64) (int64, error)
	ListEnrollments(userID int64) ([]models.EnrolledOffer, error)
	GetOfferByID(offerID int64) (*models.Offer, error)
	CreateNotification(userID int64, title, body string) error
	LogHistory(userID int64, action, detail string) error
}

// BookmarkRepository defines the interface for saved-offer data access
type BookmarkRepository interface {
	GetSavedOffer(userID, offerID int64) (*models.SavedOffer, error)
	SaveOffer(userID, offerID int64) (int64, error)
	UnsaveOffer(userID, offerID int64) error
	ListSaved(userID int64) ([]models.SavedOfferView, error)
	GetOfferByID(offerID int64) (*models.Offer, error)
	LogHistory(userID int64, action, detail string) error
}

// ProfileRepository defines the interface for profile data access
type ProfileRepository interface {
	GetUserByID(userID int64) (*models.User, error)
	UpdateProfile(userID int64, name, birthDate, alias, photo string) error
	UpdateUserType(userID int64, userType string) error
	LogHistory(userID int64, action, detail string) error
}
