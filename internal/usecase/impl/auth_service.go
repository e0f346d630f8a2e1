// Package impl contains the implementation of the application's business logic.
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

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager        repository.TransactionManager
	accountRepo      repository.AccountRepository
	entrepreneurRepo repository.EntrepreneurRepository
	hasher           service.PasswordHasher
	tokenService     service.TokenService
	logger           *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	AccountRepo      repository.AccountRepository
	EntrepreneurRepo repository.EntrepreneurRepository
	Hasher           service.PasswordHasher
	TokenService     service.TokenService
	Logger           *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:        params.TxManager,
		accountRepo:      params.AccountRepo,
		entrepreneurRepo: params.EntrepreneurRepo,
		hasher:           params.Hasher,
		tokenService:     params.TokenService,
		logger:           params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterPetOwner creates an account with a pet-owner profile attached.
// The whole composite is written in a single transaction.
func (srv *authService) RegisterPetOwner(ctx context.Context, input usecase.RegisterPetOwnerInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.Any("role", entity.RolePetOwner), slog.String("email", input.Email))

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password")
	}

	account := &entity.Account{
		Email:        input.Email,
		Name:         input.Name,
		PasswordHash: hashedPassword,
		PetOwnerProfile: &entity.PetOwnerProfile{
			PhotoURL:       input.PhotoURL,
			PhoneNumber:    input.PhoneNumber,
			Preferences:    input.Preferences,
			PetPreferences: input.PetPreferences,
			Addresses:      input.Addresses,
		},
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.NewAccountRepository()

		if _, err := accountRepo.FindByEmail(ctx, input.Email); err == nil {
			return domainerrors.ErrDuplicateEmail
		} else if !errors.Is(err, repository.ErrAccountNotFound) {
			return errors.Wrap(err, "failed to check email uniqueness")
		}

		return accountRepo.Create(ctx, account)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute registration transaction", slog.Any("role", entity.RolePetOwner), slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("role", entity.RolePetOwner), slog.Any("accountID", account.ID))

	return &usecase.RegisterOutput{Account: account}, nil
}

// RegisterEntrepreneur creates an account with an entrepreneur profile attached.
// The profile always starts PENDING with no commission, whatever the caller
// sent, and its schedule is normalized to the full seven-day week.
func (srv *authService) RegisterEntrepreneur(ctx context.Context, input usecase.RegisterEntrepreneurInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.Any("role", entity.RoleEntrepreneur), slog.String("email", input.Email))

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password")
	}

	account := &entity.Account{
		Email:        input.Email,
		Name:         input.Name,
		PasswordHash: hashedPassword,
		EntrepreneurProfile: &entity.EntrepreneurProfile{
			BusinessName:    input.BusinessName,
			TaxID:           input.TaxID,
			PhoneNumber:     input.PhoneNumber,
			Bank:            input.Bank,
			DoesDeliver:     input.DoesDeliver,
			StorePickupOnly: input.StorePickupOnly,
			LocalAddress:    input.LocalAddress,
			LocalSector:     input.LocalSector,
			Schedule:        entity.NormalizeWeekSchedule(input.Schedule),
			LocalPhotos:     input.LocalPhotos,
			LogoPhotos:      input.LogoPhotos,
			AcceptedTerms:   input.AcceptedTerms,
			State:           entity.StatePending,
			Commission:      nil,
		},
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.NewAccountRepository()
		entrepreneurRepo := repoFactory.NewEntrepreneurRepository()

		if _, err := accountRepo.FindByEmail(ctx, input.Email); err == nil {
			return domainerrors.ErrDuplicateEmail
		} else if !errors.Is(err, repository.ErrAccountNotFound) {
			return errors.Wrap(err, "failed to check email uniqueness")
		}

		if _, err := entrepreneurRepo.FindByTaxID(ctx, input.TaxID); err == nil {
			return domainerrors.ErrDuplicateTaxID
		} else if !errors.Is(err, repository.ErrEntrepreneurNotFound) {
			return errors.Wrap(err, "failed to check tax id uniqueness")
		}

		return accountRepo.Create(ctx, account)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute registration transaction", slog.Any("role", entity.RoleEntrepreneur), slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("role", entity.RoleEntrepreneur), slog.Any("accountID", account.ID))

	return &usecase.RegisterOutput{Account: account}, nil
}

// Login authenticates an account in the given role and issues a session token.
// Entrepreneur logins check the approval state before the password so that an
// unapproved entrepreneur gets a definitive answer rather than a credential error.
func (srv *authService) Login(ctx context.Context, role entity.Role, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	if !role.IsValid() {
		return nil, domainerrors.ErrInvalidCredentials
	}

	account, err := srv.accountRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			srv.log(ctx).Warn("Login attempt for unknown email", slog.Any("role", role))

			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find account by email")
	}

	if !account.HasRole(role) {
		srv.log(ctx).Warn("Login attempt with wrong role", slog.Any("role", role), slog.Any("accountID", account.ID))

		return nil, domainerrors.ErrInvalidCredentials
	}

	if role == entity.RoleEntrepreneur && !account.EntrepreneurProfile.IsApproved() {
		srv.log(ctx).Warn("Login attempt by unapproved entrepreneur",
			slog.Any("accountID", account.ID),
			slog.String("state", account.EntrepreneurProfile.State.String()),
		)

		return nil, domainerrors.ErrAccountNotApproved
	}

	if !srv.hasher.Check(input.Password, account.PasswordHash) {
		srv.log(ctx).Warn("Login attempt with wrong password", slog.Any("role", role), slog.Any("accountID", account.ID))

		return nil, domainerrors.ErrInvalidCredentials
	}

	token, err := srv.tokenService.Issue(account.ID, account.Email)
	if err != nil {
		srv.log(ctx).Error("Failed to issue token", slog.Any("accountID", account.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue token")
	}

	output := &usecase.LoginOutput{
		AccountID: account.ID.String(),
		Email:     account.Email,
		Token:     token,
	}
	if role == entity.RoleEntrepreneur {
		output.EntrepreneurID = account.EntrepreneurProfile.ID.String()
	}

	srv.log(ctx).Info("Login succeeded", slog.Any("role", role), slog.Any("accountID", account.ID))

	return output, nil
}

// VerifyToken validates a signed token and returns the identity inside it.
func (srv *authService) VerifyToken(_ context.Context, token string) (*service.TokenIdentity, error) {
	return srv.tokenService.Verify(token)
}
