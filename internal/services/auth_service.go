package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "nestegg/internal/errors"
	"nestegg/internal/models"
	"nestegg/internal/session"
)

// authService is the session manager. It composes the identity backend with
// the profile store and is the only writer of the session registry.
type authService struct {
	db       *gorm.DB
	identity IdentityServicer
	sessions *session.Registry
}

// NewAuthService creates a new AuthServicer.
func NewAuthService(db *gorm.DB, identity IdentityServicer, sessions *session.Registry) AuthServicer {
	return &authService{db: db, identity: identity, sessions: sessions}
}

// SignUp creates a backend identity, then the owner profile keyed by the
// identity's id. A profile write failure after the identity exists surfaces
// as PROFILE_CREATE_FAILED so the caller can detect the partial state and
// retry; the next login self-heals it.
func (s *authService) SignUp(email, password, displayName string) (*models.User, error) {
	identity, err := s.identity.CreateIdentity(email, password, displayName)
	if err != nil {
		return nil, err
	}

	profile := &models.User{
		ID:          identity.ID,
		Email:       identity.Email,
		DisplayName: identity.DisplayName,
	}
	if err := s.db.Create(profile).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrProfileCreateFailed, err)
	}

	s.sessions.SignIn(profile)
	return profile, nil
}

// LogIn authenticates and fetches the owner profile. A missing profile
// (identity created out-of-band, or a sign-up whose profile write failed) is
// self-healed: a minimal profile is synthesized from the identity record and
// persisted before returning. Fallback display text for empty fields is a
// rendering concern, not applied here.
func (s *authService) LogIn(email, password string) (*models.User, error) {
	identity, err := s.identity.Authenticate(email, password)
	if err != nil {
		return nil, err
	}

	profile, err := s.profileByID(identity.ID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrProfileFetchFailed) {
			return nil, err
		}
		profile = &models.User{
			ID:          identity.ID,
			Email:       identity.Email,
			DisplayName: identity.DisplayName,
		}
		if createErr := s.db.Create(profile).Error; createErr != nil {
			return nil, apperrors.Wrap(apperrors.ErrProfileCreateFailed, createErr)
		}
	}

	s.sessions.SignIn(profile)
	return profile, nil
}

// FetchCurrentOwner returns the profile for the current backend session. An
// empty identityID means no session exists: the result is absent, not an
// error.
func (s *authService) FetchCurrentOwner(identityID string) (*models.User, error) {
	if identityID == "" {
		return nil, nil
	}

	profile, err := s.profileByID(identityID)
	if err != nil {
		return nil, err
	}

	s.sessions.SignIn(profile)
	return profile, nil
}

// UpdateDisplayName patches only the display-name field, then re-fetches to
// refresh the session slot. With no session it silently succeeds as a no-op
// (documented quirk).
func (s *authService) UpdateDisplayName(identityID, name string) error {
	if identityID == "" {
		return nil
	}

	if err := s.db.Model(&models.User{}).Where("id = ?", identityID).
		Update("display_name", name).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrPersistence, err)
	}

	// The patch already succeeded; a failed refresh only leaves the slot
	// stale, so its error is not surfaced.
	if profile, err := s.profileByID(identityID); err == nil {
		s.sessions.Refresh(profile)
	}
	return nil
}

// SignOut ends the backend session and clears the session slot. If the
// backend call fails, the slot is left untouched and the failure is
// returned.
func (s *authService) SignOut(identityID string) error {
	if err := s.identity.EndSession(identityID); err != nil {
		return err
	}
	s.sessions.SignOut(identityID)
	return nil
}

// StoreSession records the hash of a freshly issued session token.
func (s *authService) StoreSession(identityID, tokenHash string) error {
	return s.identity.StoreSessionHash(identityID, tokenHash)
}

// profileByID loads the profile record for an identity. A missing record is
// PROFILE_FETCH_FAILED; any other read failure is a decode error.
func (s *authService) profileByID(id string) (*models.User, error) {
	var profile models.User
	if err := s.db.Where("id = ?", id).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProfileFetchFailed
		}
		return nil, apperrors.Wrap(apperrors.ErrDecodeFailed, err)
	}
	return &profile, nil
}
