package impl

import (
	"context"
	"log/slog"

	deliverycontext "pawmart/internal/delivery/context"
	"pawmart/internal/domain/entity"
	domainerrors "pawmart/internal/domain/errors"
	"pawmart/internal/domain/repository"
	"pawmart/internal/domain/service"
	"pawmart/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// adminService implements the AdminUsecase interface.
type adminService struct {
	txManager   repository.TransactionManager
	accountRepo repository.AccountRepository
	hasher      service.PasswordHasher
	logger      *slog.Logger
}

// AdminServiceParams holds dependencies for adminService, injected by Fx.
type AdminServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	AccountRepo repository.AccountRepository
	Hasher      service.PasswordHasher
	Logger      *slog.Logger
}

// NewAdminService is the constructor for adminService.
func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	return &adminService{
		txManager:   params.TxManager,
		accountRepo: params.AccountRepo,
		hasher:      params.Hasher,
		logger:      params.Logger,
	}
}

func (srv *adminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetAdmin returns the admin account with the given ID.
func (srv *adminService) GetAdmin(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	return findAdminAccount(ctx, srv.accountRepo, id)
}

// UpdateAdmin edits the admin account. A new password is re-hashed before storage.
func (srv *adminService) UpdateAdmin(ctx context.Context, id uuid.UUID, input *usecase.UpdateAdminInput) (*entity.Account, error) {
	var updated *entity.Account
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.NewAccountRepository()

		account, err := findAdminAccount(ctx, accountRepo, id)
		if err != nil {
			return err
		}

		if input != nil {
			if input.Name != nil {
				account.Name = *input.Name
			}
			if input.Email != nil {
				account.Email = *input.Email
			}
			if input.Password != nil {
				hashed, err := srv.hasher.Hash(*input.Password)
				if err != nil {
					return errors.Wrap(err, "failed to hash password")
				}
				account.PasswordHash = hashed
			}
		}

		if err := accountRepo.Update(ctx, account); err != nil {
			return err
		}

		updated = account

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to update admin", slog.Any("accountID", id), slog.Any("error", err))

		return nil, err
	}

	return updated, nil
}

// findAdminAccount loads the account and verifies it holds the admin role.
func findAdminAccount(ctx context.Context, accountRepo repository.AccountRepository, id uuid.UUID) (*entity.Account, error) {
	account, err := accountRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("admin not found")
		}

		return nil, errors.Wrap(err, "failed to find account")
	}

	if !account.IsAdmin {
		return nil, domainerrors.ErrNotFound.WrapMessage("admin not found")
	}

	return account, nil
}
