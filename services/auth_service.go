package services

import (
	"crypto/sha256"
	"encoding/hex"
	"lumina/models"
)

// AuthService handles registration and credential verification against the
// local store. No tokens are issued here; the caller decides what to do
// with the returned user row.
type AuthService struct {
	repo UserRepository
}

func NewAuthService(repo UserRepository) *AuthService {
	return &AuthService{repo: repo}
}

// HashPassword returns the hex-encoded SHA-256 digest of the plaintext.
// Deterministic and unsalted: the same input always yields the same
// digest, which the login comparison depends on.
func HashPassword(plaintext string) string {
	sum := sha256.Sum256([]byte(plaintext))
	return hex.EncodeToString(sum[:])
}

// Register creates a new account. The email must already be normalized
// (trimmed, lowercased) by the caller; format and password strength are
// validated upstream.
func (as *AuthService) Register(req *models.RegisterRequest) (*models.User, error) {
	existing, err := as.repo.GetUserByEmail(req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateEmail
	}

	user := &models.User{
		Name:       req.Name,
		BirthDate:  req.BirthDate,
		Email:      req.Email,
		University: req.University,
		Password:   HashPassword(req.Password),
		UserType:   req.UserType,
	}

	id, err := as.repo.CreateUser(user)
	if err != nil {
		return nil, err
	}

	user.ID = id
	return user, nil
}

// Login verifies the credentials and returns the full stored row,
// password digest included.
func (as *AuthService) Login(email, password string) (*models.User, error) {
	user, err := as.repo.GetUserByEmail(email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUnknownEmail
	}

	if HashPassword(password) != user.Password {
		return nil, ErrWrongPassword
	}

	return user, nil
}

// ResetPassword replaces the stored digest for an existing account.
func (as *AuthService) ResetPassword(email, newPassword string) error {
	user, err := as.repo.GetUserByEmail(email)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUnknownEmail
	}

	return as.repo.UpdatePassword(email, HashPassword(newPassword))
}
