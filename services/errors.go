package services

import "errors"

// Common service-level errors. The handler layer maps these to result
// descriptors; repositories never produce them directly.
var (
	// Identity errors
	ErrDuplicateEmail = errors.New("email already registered")
	ErrUnknownEmail   = errors.New("no account with that email")
	ErrWrongPassword  = errors.New("wrong password")
	ErrUserNotFound   = errors.New("user not found")

	// Offer errors
	ErrOfferNotFound    = errors.New("offer not found")
	ErrNotTutor         = errors.New("only tutors can publish offers")
	ErrNotOfferOwner    = errors.New("offer belongs to another user")
	ErrLocationRequired = errors.New("location is required for in-person offers")

	// Enrollment and bookmark errors
	ErrAlreadyEnrolled = errors.New("already enrolled in this offer")
	ErrAlreadySaved    = errors.New("offer already saved")
)
