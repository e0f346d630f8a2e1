package postgres

import (
	"context"

	"pawmart/internal/domain/entity"
	domainerrors "pawmart/internal/domain/errors"
	"pawmart/internal/domain/repository"
	"pawmart/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// petOwnerRepository implements the domain.PetOwnerRepository interface using GORM.
type petOwnerRepository struct {
	db *gorm.DB
}

// NewPetOwnerRepository is the constructor for petOwnerRepository.
func NewPetOwnerRepository(db *gorm.DB) repository.PetOwnerRepository {
	return &petOwnerRepository{db: db}
}

// FindByAccountID retrieves the pet-owner profile owned by the given account.
func (repo *petOwnerRepository) FindByAccountID(ctx context.Context, accountID uuid.UUID) (*entity.PetOwnerProfile, error) {
	var profileM model.PetOwnerProfileModel
	err := repo.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		First(&profileM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPetOwnerNotFound
		}

		return nil, errors.Wrap(err, "failed to find pet owner by account id")
	}

	return toPetOwnerProfileDomain(&profileM), nil
}

// Update persists the profile fields of an existing pet-owner profile.
func (repo *petOwnerRepository) Update(ctx context.Context, profile *entity.PetOwnerProfile) error {
	profileM := fromPetOwnerProfileDomain(profile)

	if err := repo.db.WithContext(ctx).Save(profileM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update pet owner profile")
	}

	profile.UpdatedAt = profileM.UpdatedAt

	return nil
}

// SoftDelete marks the pet-owner profile as deleted without removing the row.
func (repo *petOwnerRepository) SoftDelete(ctx context.Context, accountID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Delete(&model.PetOwnerProfileModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete pet owner profile")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPetOwnerNotFound
	}

	return nil
}
