package services

import (
	"lumina/models"
	"strings"
)

// ProfileService handles profile mutations and their history side effects.
type ProfileService struct {
	repo ProfileRepository
}

func NewProfileService(repo ProfileRepository) *ProfileService {
	return &ProfileService{repo: repo}
}

// Update overwrites the editable profile fields, appends a history entry
// and re-reads the row so the caller can refresh its session snapshot.
// The history write is best-effort: a failure there does not undo the
// profile update.
func (ps *ProfileService) Update(userID int64, req *models.UpdateProfileRequest) (*models.User, error) {
	name := strings.TrimSpace(req.Name)

	user, err := ps.repo.GetUserByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if err := ps.repo.UpdateProfile(userID, name, req.BirthDate, req.Alias, req.Photo); err != nil {
		return nil, err
	}

	_ = ps.repo.LogHistory(userID, "perfil_actualizado", "Actualizaste tu perfil")

	return ps.repo.GetUserByID(userID)
}

// ChangeUserType switches the account between estudiante, tutor and ambos.
func (ps *ProfileService) ChangeUserType(userID int64, userType string) (*models.User, error) {
	user, err := ps.repo.GetUserByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if err := ps.repo.UpdateUserType(userID, userType); err != nil {
		return nil, err
	}

	return ps.repo.GetUserByID(userID)
}
