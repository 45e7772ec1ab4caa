package repositories

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"leadpilot/lead-intent-api/internal/models"
)

type OfferRepository interface {
	Create(offer *models.Offer) error
	FindByID(id uuid.UUID) (*models.Offer, error)
	ListByOwner(ownerID uuid.UUID) ([]models.Offer, error)
}

type offerRepository struct {
	db *gorm.DB
}

func NewOfferRepository(db *gorm.DB) OfferRepository {
	return &offerRepository{db: db}
}

// Create implements OfferRepository.
func (o *offerRepository) Create(offer *models.Offer) error {
	if err := o.db.Create(offer).Error; err != nil {
		return fmt.Errorf("failed to create offer: %w", err)
	}

	return nil
}

// FindByID implements OfferRepository.
func (o *offerRepository) FindByID(id uuid.UUID) (*models.Offer, error) {
	var offer models.Offer
	if err := o.db.Where("id = ?", id).First(&offer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find offer: %w", err)
	}

	return &offer, nil
}

// ListByOwner implements OfferRepository.
func (o *offerRepository) ListByOwner(ownerID uuid.UUID) ([]models.Offer, error) {
	var offers []models.Offer
	err := o.db.
		Where("added_by_id = ?", ownerID).
		Order("created_at DESC").
		Find(&offers).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list offers: %w", err)
	}

	return offers, nil
}
