package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "nestegg/internal/errors"
	"nestegg/internal/models"
	"nestegg/internal/uuid"
)

// investmentService is the owner-scoped investment repository. Every query
// is filtered by the owner's id; it never reads or writes across owners.
type investmentService struct {
	db *gorm.DB
}

// NewInvestmentService creates a new InvestmentServicer.
func NewInvestmentService(db *gorm.DB) InvestmentServicer {
	return &investmentService{db: db}
}

// Create validates and persists a new investment under the owner, assigning
// a fresh id when the record has none.
func (s *investmentService) Create(ownerID string, inv *models.Investment) (*models.Investment, error) {
	if ownerID == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "owner id is required")
	}

	inv.UserID = ownerID
	inv.Normalize()
	if err := inv.Validate(); err != nil {
		return nil, err
	}

	if inv.ID == "" {
		inv.ID = uuid.New()
	}
	if err := s.db.Create(inv).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrPersistence, err)
	}

	return inv, nil
}

// List returns every investment the owner holds. An owner with none gets an
// empty slice. A read failure aborts the whole fetch; no partial results.
func (s *investmentService) List(ownerID string) ([]models.Investment, error) {
	if ownerID == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "owner id is required")
	}

	var investments []models.Investment
	if err := s.db.Where("user_id = ?", ownerID).Find(&investments).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrDecodeFailed, err)
	}
	return investments, nil
}

// Get retrieves a single investment by owner and id.
func (s *investmentService) Get(ownerID, id string) (*models.Investment, error) {
	if ownerID == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "owner id is required")
	}

	var inv models.Investment
	if err := s.db.Where("id = ? AND user_id = ?", id, ownerID).First(&inv).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvestmentNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrDecodeFailed, err)
	}
	return &inv, nil
}

// Update overwrites the full record at the same owner/id. Fields omitted
// from the incoming record are wiped, not preserved; this is a full replace,
// not a patch. Concurrent updates on the same id race last-write-wins.
func (s *investmentService) Update(inv *models.Investment) (*models.Investment, error) {
	if inv.ID == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "investment id is required")
	}
	if inv.UserID == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "owner id is required")
	}

	inv.Normalize()
	if err := inv.Validate(); err != nil {
		return nil, err
	}

	// The id must not resolve to another owner's record.
	var existing models.Investment
	err := s.db.Select("user_id").Where("id = ?", inv.ID).First(&existing).Error
	switch {
	case err == nil:
		if existing.UserID != inv.UserID {
			return nil, apperrors.ErrInvestmentNotFound
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		// Absent record: the write materializes it at owner/id, matching
		// document-store set semantics.
	default:
		return nil, apperrors.Wrap(apperrors.ErrDecodeFailed, err)
	}

	if err := s.db.Save(inv).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrPersistence, err)
	}
	return inv, nil
}

// Delete removes the record at owner/id. Deleting an id that does not exist
// is not an error; the record is treated as already deleted.
func (s *investmentService) Delete(ownerID, id string) error {
	if ownerID == "" {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "owner id is required")
	}

	if err := s.db.Where("id = ? AND user_id = ?", id, ownerID).
		Delete(&models.Investment{}).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrPersistence, err)
	}
	return nil
}
