package impl

import (
	"context"
	"log/slog"

	deliverycontext "pawmart/internal/delivery/context"
	"pawmart/internal/domain/entity"
	domainerrors "pawmart/internal/domain/errors"
	"pawmart/internal/domain/repository"
	"pawmart/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// petOwnerService implements the PetOwnerUsecase interface.
type petOwnerService struct {
	txManager   repository.TransactionManager
	accountRepo repository.AccountRepository
	logger      *slog.Logger
}

// PetOwnerServiceParams holds dependencies for petOwnerService, injected by Fx.
type PetOwnerServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	AccountRepo repository.AccountRepository
	Logger      *slog.Logger
}

// NewPetOwnerService is the constructor for petOwnerService.
func NewPetOwnerService(params PetOwnerServiceParams) usecase.PetOwnerUsecase {
	return &petOwnerService{
		txManager:   params.TxManager,
		accountRepo: params.AccountRepo,
		logger:      params.Logger,
	}
}

func (srv *petOwnerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Get returns the account with its pet-owner profile attached.
func (srv *petOwnerService) Get(ctx context.Context, accountID uuid.UUID) (*entity.Account, error) {
	account, err := srv.findPetOwnerAccount(ctx, srv.accountRepo, accountID)
	if err != nil {
		return nil, err
	}

	return account, nil
}

// Update edits the pet-owner profile fields. Nil input fields are left unchanged.
func (srv *petOwnerService) Update(ctx context.Context, accountID uuid.UUID, input *usecase.UpdatePetOwnerInput) (*entity.Account, error) {
	var updated *entity.Account
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.NewAccountRepository()

		account, err := srv.findPetOwnerAccount(ctx, accountRepo, accountID)
		if err != nil {
			return err
		}

		applyPetOwnerUpdate(account, input)

		if err := accountRepo.Update(ctx, account); err != nil {
			return err
		}

		updated = account

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to update pet owner", slog.Any("accountID", accountID), slog.Any("error", err))

		return nil, err
	}

	return updated, nil
}

// Delete soft-deletes the profile and its owning account in one transaction.
func (srv *petOwnerService) Delete(ctx context.Context, accountID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.NewAccountRepository()
		petOwnerRepo := repoFactory.NewPetOwnerRepository()

		if _, err := srv.findPetOwnerAccount(ctx, accountRepo, accountID); err != nil {
			return err
		}

		if err := petOwnerRepo.SoftDelete(ctx, accountID); err != nil {
			return err
		}

		return accountRepo.SoftDelete(ctx, accountID)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to delete pet owner", slog.Any("accountID", accountID), slog.Any("error", err))

		return err
	}

	srv.log(ctx).Info("Pet owner deleted", slog.Any("accountID", accountID))

	return nil
}

// findPetOwnerAccount loads the account and verifies it holds the pet-owner role.
func (srv *petOwnerService) findPetOwnerAccount(ctx context.Context, accountRepo repository.AccountRepository, accountID uuid.UUID) (*entity.Account, error) {
	account, err := accountRepo.FindByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("pet owner not found")
		}

		return nil, errors.Wrap(err, "failed to find account")
	}

	if account.PetOwnerProfile == nil {
		return nil, domainerrors.ErrNotFound.WrapMessage("pet owner not found")
	}

	return account, nil
}

func applyPetOwnerUpdate(account *entity.Account, input *usecase.UpdatePetOwnerInput) {
	if input == nil {
		return
	}

	if input.Name != nil {
		account.Name = *input.Name
	}

	profile := account.PetOwnerProfile
	if input.PhotoURL != nil {
		profile.PhotoURL = *input.PhotoURL
	}
	if input.PhoneNumber != nil {
		profile.PhoneNumber = *input.PhoneNumber
	}
	if input.Preferences != nil {
		profile.Preferences = *input.Preferences
	}
	if input.PetPreferences != nil {
		profile.PetPreferences = *input.PetPreferences
	}
	if input.Addresses != nil {
		profile.Addresses = *input.Addresses
	}
}
