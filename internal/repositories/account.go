package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"leadpilot/lead-intent-api/internal/models"
)

type AccountRepository interface {
	Create(account *models.Account) error
	FindByEmail(email string) (*models.Account, error)
}

type accountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepository{db: db}
}

// Create implements AccountRepository.
func (a *accountRepository) Create(account *models.Account) error {
	if err := a.db.Create(account).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("failed to create account: %w", err)
	}

	return nil
}

// FindByEmail implements AccountRepository.
func (a *accountRepository) FindByEmail(email string) (*models.Account, error) {
	var account models.Account
	if err := a.db.Where("email = ?", email).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find account: %w", err)
	}

	return &account, nil
}
