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

// entrepreneurRepository implements the domain.EntrepreneurRepository interface using GORM.
type entrepreneurRepository struct {
	db *gorm.DB
}

// NewEntrepreneurRepository is the constructor for entrepreneurRepository.
func NewEntrepreneurRepository(db *gorm.DB) repository.EntrepreneurRepository {
	return &entrepreneurRepository{db: db}
}

// FindByID retrieves an entrepreneur profile by its own ID.
func (repo *entrepreneurRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.EntrepreneurProfile, error) {
	var profileM model.EntrepreneurProfileModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&profileM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrEntrepreneurNotFound
		}

		return nil, errors.Wrap(err, "failed to find entrepreneur by id")
	}

	return toEntrepreneurProfileDomain(&profileM), nil
}

// FindByEmail retrieves an entrepreneur profile through the owning account's
// email address. The join keeps soft-deleted accounts out of the result.
func (repo *entrepreneurRepository) FindByEmail(ctx context.Context, email string) (*entity.EntrepreneurProfile, error) {
	var profileM model.EntrepreneurProfileModel
	err := repo.db.WithContext(ctx).
		Joins("JOIN accounts ON accounts.id = entrepreneur_profiles.account_id AND accounts.deleted_at IS NULL").
		Where("accounts.email = ?", email).
		First(&profileM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrEntrepreneurNotFound
		}

		return nil, errors.Wrap(err, "failed to find entrepreneur by email")
	}

	return toEntrepreneurProfileDomain(&profileM), nil
}

// FindByTaxID retrieves an entrepreneur profile by its tax identifier.
func (repo *entrepreneurRepository) FindByTaxID(ctx context.Context, taxID string) (*entity.EntrepreneurProfile, error) {
	var profileM model.EntrepreneurProfileModel
	err := repo.db.WithContext(ctx).
		Where("tax_id = ?", taxID).
		First(&profileM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrEntrepreneurNotFound
		}

		return nil, errors.Wrap(err, "failed to find entrepreneur by tax id")
	}

	return toEntrepreneurProfileDomain(&profileM), nil
}

// ListAll returns every non-deleted entrepreneur profile, newest first.
func (repo *entrepreneurRepository) ListAll(ctx context.Context) ([]*entity.EntrepreneurProfile, error) {
	var profileMs []*model.EntrepreneurProfileModel
	err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&profileMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list entrepreneurs")
	}

	return toEntrepreneurProfileDomains(profileMs), nil
}

// ListByState returns the non-deleted profiles in the given state, newest
// first. An empty result is not an error.
func (repo *entrepreneurRepository) ListByState(ctx context.Context, state entity.ApprovalState) ([]*entity.EntrepreneurProfile, error) {
	var profileMs []*model.EntrepreneurProfileModel
	err := repo.db.WithContext(ctx).
		Where("state = ?", state.String()).
		Order("created_at DESC").
		Find(&profileMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list entrepreneurs by state")
	}

	return toEntrepreneurProfileDomains(profileMs), nil
}

// Update persists the full profile, state and commission included, as one write.
func (repo *entrepreneurRepository) Update(ctx context.Context, profile *entity.EntrepreneurProfile) error {
	profileM := fromEntrepreneurProfileDomain(profile)

	if err := repo.db.WithContext(ctx).Save(profileM).Error; err != nil {
		if uniqueViolationOn(err, "tax_id") {
			return domainerrors.ErrDuplicateTaxID
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update entrepreneur profile")
	}

	profile.UpdatedAt = profileM.UpdatedAt

	return nil
}

// SoftDelete marks the entrepreneur profile as deleted without removing the row.
func (repo *entrepreneurRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.EntrepreneurProfileModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete entrepreneur profile")
	}
	if result.RowsAffected == 0 {
		return repository.ErrEntrepreneurNotFound
	}

	return nil
}

func toEntrepreneurProfileDomains(data []*model.EntrepreneurProfileModel) []*entity.EntrepreneurProfile {
	profiles := make([]*entity.EntrepreneurProfile, 0, len(data))
	for _, profileM := range data {
		profiles = append(profiles, toEntrepreneurProfileDomain(profileM))
	}

	return profiles
}
