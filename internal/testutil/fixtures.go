package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"

	"nestegg/internal/models"
	"nestegg/internal/uuid"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestIdentity creates an identity with a hashed password and unique email.
func CreateTestIdentity(t *testing.T, db *gorm.DB) *models.Identity {
	t.Helper()
	email := fmt.Sprintf("owner%d@test.com", nextID())
	return CreateTestIdentityWithEmail(t, db, email)
}

// CreateTestIdentityWithEmail creates an identity with the given email.
// The password is always "password123".
func CreateTestIdentityWithEmail(t *testing.T, db *gorm.DB, email string) *models.Identity {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	identity := &models.Identity{
		Email:        email,
		PasswordHash: string(hash),
		DisplayName:  fmt.Sprintf("Owner %d", nextID()),
	}
	if err := db.Create(identity).Error; err != nil {
		t.Fatalf("failed to create test identity: %v", err)
	}
	return identity
}

// CreateTestOwner creates an identity together with its profile record.
func CreateTestOwner(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()

	identity := CreateTestIdentity(t, db)
	user := &models.User{
		ID:          identity.ID,
		Email:       identity.Email,
		DisplayName: identity.DisplayName,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test owner profile: %v", err)
	}
	return user
}

// CreateTestProfile creates a bare profile record not backed by an identity.
func CreateTestProfile(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()

	user := &models.User{
		ID:          uuid.New(),
		Email:       fmt.Sprintf("owner%d@test.com", nextID()),
		DisplayName: "Test Owner",
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test profile: %v", err)
	}
	return user
}

// CreateTestInvestment creates a monthly-compounded savings investment for the owner.
func CreateTestInvestment(t *testing.T, db *gorm.DB, ownerID string) *models.Investment {
	t.Helper()

	inv := &models.Investment{
		UserID:            ownerID,
		Name:              fmt.Sprintf("Test Investment %d", nextID()),
		InitialAmount:     10000,
		InterestRate:      5,
		Years:             10,
		Kind:              models.KindSavingsAccount,
		CompoundingPolicy: models.CompoundMonthly,
	}
	if err := db.Create(inv).Error; err != nil {
		t.Fatalf("failed to create test investment: %v", err)
	}
	return inv
}
