package services

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	apperrors "nestegg/internal/errors"
	"nestegg/internal/models"
	"nestegg/internal/validator"
)

// identityService is the GORM-backed identity backend.
type identityService struct {
	db *gorm.DB
}

// NewIdentityService creates a new IdentityServicer.
func NewIdentityService(db *gorm.DB) IdentityServicer {
	return &identityService{db: db}
}

// CreateIdentity registers a new identity with a bcrypt-hashed password.
func (s *identityService) CreateIdentity(email, password, displayName string) (*models.Identity, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if !validator.IsValidEmail(email) {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "email must look like local@domain.tld")
	}
	if !validator.IsValidPassword(password) {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "password must be at least 6 characters")
	}

	var count int64
	s.db.Model(&models.Identity{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		return nil, apperrors.ErrDuplicateEmail
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	identity := &models.Identity{
		Email:        email,
		PasswordHash: string(hash),
		DisplayName:  strings.TrimSpace(displayName),
	}
	if err := s.db.Create(identity).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrPersistence, err)
	}

	return identity, nil
}

// Authenticate verifies the credentials and returns the matching identity.
func (s *identityService) Authenticate(email, password string) (*models.Identity, error) {
	var identity models.Identity
	err := s.db.Where("email = ?", strings.ToLower(strings.TrimSpace(email))).First(&identity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if bcrypt.CompareHashAndPassword([]byte(identity.PasswordHash), []byte(password)) != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	return &identity, nil
}

// IdentityByID retrieves an identity by its id.
func (s *identityService) IdentityByID(id string) (*models.Identity, error) {
	var identity models.Identity
	if err := s.db.Where("id = ?", id).First(&identity).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrIdentityNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &identity, nil
}

// StoreSessionHash records the hash of the identity's current session token.
func (s *identityService) StoreSessionHash(id, tokenHash string) error {
	if err := s.db.Model(&models.Identity{}).Where("id = ?", id).
		Update("session_hash", tokenHash).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrPersistence, err)
	}
	return nil
}

// EndSession clears the identity's session hash. Ending a session that does
// not exist is not an error.
func (s *identityService) EndSession(id string) error {
	if err := s.db.Model(&models.Identity{}).Where("id = ?", id).
		Update("session_hash", "").Error; err != nil {
		return apperrors.Wrap(apperrors.ErrPersistence, err)
	}
	return nil
}
