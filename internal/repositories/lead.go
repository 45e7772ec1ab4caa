package repositories

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"leadpilot/lead-intent-api/internal/models"
)

type LeadRepository interface {
	CreateBatch(leads []*models.Lead) error
	ListByOwner(ownerID uuid.UUID) ([]models.Lead, error)
	FindUnscoredForOffer(ownerID, offerID uuid.UUID) ([]models.Lead, error)
}

type leadRepository struct {
	db *gorm.DB
}

func NewLeadRepository(db *gorm.DB) LeadRepository {
	return &leadRepository{db: db}
}

// CreateBatch implements LeadRepository. The batch is inserted inside a
// single transaction: either every lead of an upload is ingested or none.
func (l *leadRepository) CreateBatch(leads []*models.Lead) error {
	if len(leads) == 0 {
		return nil
	}

	err := l.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&leads).Error
	})
	if err != nil {
		return fmt.Errorf("failed to create leads: %w", err)
	}

	return nil
}

// ListByOwner implements LeadRepository.
func (l *leadRepository) ListByOwner(ownerID uuid.UUID) ([]models.Lead, error) {
	var leads []models.Lead
	err := l.db.
		Where("added_by_id = ?", ownerID).
		Order("created_at ASC").
		Find(&leads).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list leads: %w", err)
	}

	return leads, nil
}

// FindUnscoredForOffer implements LeadRepository. It returns the caller's
// leads that have no result for the given offer yet.
func (l *leadRepository) FindUnscoredForOffer(ownerID, offerID uuid.UUID) ([]models.Lead, error) {
	var leads []models.Lead
	err := l.db.
		Where("added_by_id = ?", ownerID).
		Where("NOT EXISTS (SELECT 1 FROM results WHERE results.lead_id = leads.id AND results.offer_id = ?)", offerID).
		Order("created_at ASC").
		Find(&leads).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find unscored leads: %w", err)
	}

	return leads, nil
}
