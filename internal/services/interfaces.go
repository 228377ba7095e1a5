package services

import "nestegg/internal/models"

// IdentityServicer is the identity backend contract: email/password
// registration and login, session bookkeeping, and sign-out.
type IdentityServicer interface {
	CreateIdentity(email, password, displayName string) (*models.Identity, error)
	Authenticate(email, password string) (*models.Identity, error)
	IdentityByID(id string) (*models.Identity, error)
	StoreSessionHash(id, tokenHash string) error
	EndSession(id string) error
}

// AuthServicer defines the session manager contract. The identityID
// arguments carry the current backend session; an empty identityID means no
// session exists.
type AuthServicer interface {
	SignUp(email, password, displayName string) (*models.User, error)
	LogIn(email, password string) (*models.User, error)
	FetchCurrentOwner(identityID string) (*models.User, error)
	UpdateDisplayName(identityID, name string) error
	SignOut(identityID string) error
	StoreSession(identityID, tokenHash string) error
}

// InvestmentServicer defines owner-scoped CRUD over investment records.
type InvestmentServicer interface {
	Create(ownerID string, inv *models.Investment) (*models.Investment, error)
	List(ownerID string) ([]models.Investment, error)
	Get(ownerID, id string) (*models.Investment, error)
	Update(inv *models.Investment) (*models.Investment, error)
	Delete(ownerID, id string) error
}
