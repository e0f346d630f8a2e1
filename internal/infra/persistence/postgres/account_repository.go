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

// accountRepository implements the domain.AccountRepository interface using GORM.
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository is the constructor for accountRepository.
// It returns the repository as a domain.AccountRepository interface, adhering to dependency inversion.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{db: db}
}

// FindByID retrieves a single account by its unique ID, preloading its role profiles.
// Soft-deleted rows are excluded by GORM's deleted_at handling.
func (repo *accountRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	var accountM model.AccountModel
	err := repo.db.WithContext(ctx).
		Preload("PetOwnerProfile").
		Preload("EntrepreneurProfile").
		Where("id = ?", id).
		First(&accountM).Error

	if err != nil {
		// If the error is 'record not found', return a domain-specific error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}
		// Otherwise, return the original database error.
		return nil, errors.Wrap(err, "failed to find account by id")
	}

	// Map the persistence model back to a pure domain entity before returning.
	return toAccountDomain(&accountM), nil
}

// FindByEmail retrieves a single account by its email address, preloading its role profiles.
func (repo *accountRepository) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	var accountM model.AccountModel
	err := repo.db.WithContext(ctx).
		Preload("PetOwnerProfile").
		Preload("EntrepreneurProfile").
		Where("email = ?", email).
		First(&accountM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account by email")
	}

	return toAccountDomain(&accountM), nil
}

// Create persists a new account entity, including its attached role profiles.
// GORM's Create with associations inserts into accounts, pet_owner_profiles
// and/or entrepreneur_profiles as one composite write.
func (repo *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	accountM := fromAccountDomain(account)

	if err := repo.db.WithContext(ctx).Create(accountM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors.
		if uniqueViolationOn(err, "tax_id") {
			return domainerrors.ErrDuplicateTaxID
		}
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrDuplicateEmail
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "invalid account reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create account")
	}

	// Propagate generated IDs and timestamps back onto the entity.
	account.ID = accountM.ID
	account.CreatedAt = accountM.CreatedAt
	account.UpdatedAt = accountM.UpdatedAt

	if account.PetOwnerProfile != nil && accountM.PetOwnerProfile != nil {
		account.PetOwnerProfile.AccountID = accountM.PetOwnerProfile.AccountID
		account.PetOwnerProfile.UpdatedAt = accountM.PetOwnerProfile.UpdatedAt
	}
	if account.EntrepreneurProfile != nil && accountM.EntrepreneurProfile != nil {
		account.EntrepreneurProfile.ID = accountM.EntrepreneurProfile.ID
		account.EntrepreneurProfile.AccountID = accountM.EntrepreneurProfile.AccountID
		account.EntrepreneurProfile.CreatedAt = accountM.EntrepreneurProfile.CreatedAt
		account.EntrepreneurProfile.UpdatedAt = accountM.EntrepreneurProfile.UpdatedAt
	}

	return nil
}

// Update modifies an existing account entity, including its attached profiles.
func (repo *accountRepository) Update(ctx context.Context, account *entity.Account) error {
	accountM := fromAccountDomain(account)

	// Use Session with FullSaveAssociations to update nested associations.
	err := repo.db.WithContext(ctx).
		Session(&gorm.Session{FullSaveAssociations: true}).
		Save(accountM).Error
	if err != nil {
		if uniqueViolationOn(err, "tax_id") {
			return domainerrors.ErrDuplicateTaxID
		}
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrDuplicateEmail
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update account")
	}

	account.UpdatedAt = accountM.UpdatedAt
	if account.PetOwnerProfile != nil && accountM.PetOwnerProfile != nil {
		account.PetOwnerProfile.UpdatedAt = accountM.PetOwnerProfile.UpdatedAt
	}
	if account.EntrepreneurProfile != nil && accountM.EntrepreneurProfile != nil {
		account.EntrepreneurProfile.UpdatedAt = accountM.EntrepreneurProfile.UpdatedAt
	}

	return nil
}

// SoftDelete marks the account row as deleted. GORM writes deleted_at instead
// of removing the row because the model declares gorm.DeletedAt.
func (repo *accountRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.AccountModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete account")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAccountNotFound
	}

	return nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toAccountDomain converts a GORM AccountModel to a domain Account entity.
func toAccountDomain(data *model.AccountModel) *entity.Account {
	if data == nil {
		return nil
	}

	return &entity.Account{
		ID:                  data.ID,
		Email:               data.Email,
		Name:                data.Name,
		PasswordHash:        data.PasswordHash,
		IsAdmin:             data.IsAdmin,
		PetOwnerProfile:     toPetOwnerProfileDomain(data.PetOwnerProfile),
		EntrepreneurProfile: toEntrepreneurProfileDomain(data.EntrepreneurProfile),
		CreatedAt:           data.CreatedAt,
		UpdatedAt:           data.UpdatedAt,
	}
}

// fromAccountDomain converts a domain Account entity to a GORM AccountModel for persistence.
func fromAccountDomain(data *entity.Account) *model.AccountModel {
	if data == nil {
		return nil
	}

	return &model.AccountModel{
		ID:                  data.ID,
		Email:               data.Email,
		Name:                data.Name,
		PasswordHash:        data.PasswordHash,
		IsAdmin:             data.IsAdmin,
		PetOwnerProfile:     fromPetOwnerProfileDomain(data.PetOwnerProfile),
		EntrepreneurProfile: fromEntrepreneurProfileDomain(data.EntrepreneurProfile),
	}
}

// toPetOwnerProfileDomain converts a GORM PetOwnerProfileModel to a domain PetOwnerProfile entity.
func toPetOwnerProfileDomain(data *model.PetOwnerProfileModel) *entity.PetOwnerProfile {
	if data == nil {
		return nil
	}

	return &entity.PetOwnerProfile{
		AccountID:      data.AccountID,
		PhotoURL:       data.PhotoURL,
		PhoneNumber:    data.PhoneNumber,
		Preferences:    data.Preferences,
		PetPreferences: data.PetPreferences,
		Addresses:      data.Addresses,
		UpdatedAt:      data.UpdatedAt,
	}
}

// fromPetOwnerProfileDomain converts a domain PetOwnerProfile entity to a GORM PetOwnerProfileModel.
func fromPetOwnerProfileDomain(data *entity.PetOwnerProfile) *model.PetOwnerProfileModel {
	if data == nil {
		return nil
	}

	return &model.PetOwnerProfileModel{
		AccountID:      data.AccountID,
		PhotoURL:       data.PhotoURL,
		PhoneNumber:    data.PhoneNumber,
		Preferences:    data.Preferences,
		PetPreferences: data.PetPreferences,
		Addresses:      data.Addresses,
		UpdatedAt:      data.UpdatedAt,
	}
}

// toEntrepreneurProfileDomain converts a GORM EntrepreneurProfileModel to a domain EntrepreneurProfile entity.
func toEntrepreneurProfileDomain(data *model.EntrepreneurProfileModel) *entity.EntrepreneurProfile {
	if data == nil {
		return nil
	}

	return &entity.EntrepreneurProfile{
		ID:           data.ID,
		AccountID:    data.AccountID,
		BusinessName: data.BusinessName,
		TaxID:        data.TaxID,
		PhoneNumber:  data.PhoneNumber,
		Bank: entity.BankDetails{
			BankName:          data.BankName,
			AccountType:       entity.BankAccountType(data.BankAccountType),
			AccountNumber:     data.BankAccountNum,
			AccountHolderName: data.BankOwnerName,
		},
		DoesDeliver:     data.DoesDeliver,
		StorePickupOnly: data.StorePickupOnly,
		LocalAddress:    data.LocalAddress,
		LocalSector:     data.LocalSector,
		Schedule:        data.Schedule,
		LocalPhotos:     data.LocalPhotos,
		LogoPhotos:      data.LogoPhotos,
		AcceptedTerms:   data.AcceptedTerms,
		State:           entity.ApprovalState(data.State),
		Commission:      data.Commission,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

// fromEntrepreneurProfileDomain converts a domain EntrepreneurProfile entity to a GORM EntrepreneurProfileModel.
func fromEntrepreneurProfileDomain(data *entity.EntrepreneurProfile) *model.EntrepreneurProfileModel {
	if data == nil {
		return nil
	}

	return &model.EntrepreneurProfileModel{
		ID:              data.ID,
		AccountID:       data.AccountID,
		BusinessName:    data.BusinessName,
		TaxID:           data.TaxID,
		PhoneNumber:     data.PhoneNumber,
		BankName:        data.Bank.BankName,
		BankAccountType: string(data.Bank.AccountType),
		BankAccountNum:  data.Bank.AccountNumber,
		BankOwnerName:   data.Bank.AccountHolderName,
		DoesDeliver:     data.DoesDeliver,
		StorePickupOnly: data.StorePickupOnly,
		LocalAddress:    data.LocalAddress,
		LocalSector:     data.LocalSector,
		Schedule:        data.Schedule,
		LocalPhotos:     data.LocalPhotos,
		LogoPhotos:      data.LogoPhotos,
		AcceptedTerms:   data.AcceptedTerms,
		State:           data.State.String(),
		Commission:      data.Commission,
		UpdatedAt:       data.UpdatedAt,
	}
}
