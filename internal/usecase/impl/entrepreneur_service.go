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

// entrepreneurService implements the EntrepreneurUsecase interface.
type entrepreneurService struct {
	txManager        repository.TransactionManager
	entrepreneurRepo repository.EntrepreneurRepository
	logger           *slog.Logger
}

// EntrepreneurServiceParams holds dependencies for entrepreneurService, injected by Fx.
type EntrepreneurServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	EntrepreneurRepo repository.EntrepreneurRepository
	Logger           *slog.Logger
}

// NewEntrepreneurService is the constructor for entrepreneurService.
func NewEntrepreneurService(params EntrepreneurServiceParams) usecase.EntrepreneurUsecase {
	return &entrepreneurService{
		txManager:        params.TxManager,
		entrepreneurRepo: params.EntrepreneurRepo,
		logger:           params.Logger,
	}
}

func (srv *entrepreneurService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetByID returns the entrepreneur profile with the given ID.
func (srv *entrepreneurService) GetByID(ctx context.Context, id uuid.UUID) (*entity.EntrepreneurProfile, error) {
	profile, err := srv.entrepreneurRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrEntrepreneurNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("entrepreneur not found")
		}

		return nil, errors.Wrap(err, "failed to find entrepreneur")
	}

	return profile, nil
}

// GetByEmail returns the entrepreneur profile owned by the account with the given email.
func (srv *entrepreneurService) GetByEmail(ctx context.Context, email string) (*entity.EntrepreneurProfile, error) {
	profile, err := srv.entrepreneurRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrEntrepreneurNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("entrepreneur not found")
		}

		return nil, errors.Wrap(err, "failed to find entrepreneur by email")
	}

	return profile, nil
}

// List returns all entrepreneurs, optionally filtered by approval state.
func (srv *entrepreneurService) List(ctx context.Context, state *entity.ApprovalState) ([]*entity.EntrepreneurProfile, error) {
	if state == nil {
		return srv.entrepreneurRepo.ListAll(ctx)
	}

	if !state.IsValid() {
		return nil, domainerrors.ErrInvalidState.WrapMessage("unknown approval state: " + state.String())
	}

	return srv.entrepreneurRepo.ListByState(ctx, *state)
}

// Transition moves the profile to the requested approval state. The state and
// the commission change together in one transaction so the pairing invariant
// holds at every commit point: APPROVED carries a commission in [0,100],
// PENDING and REJECTED carry none.
func (srv *entrepreneurService) Transition(ctx context.Context, id uuid.UUID, input usecase.TransitionInput) (*entity.EntrepreneurProfile, error) {
	if !input.State.IsValid() {
		return nil, domainerrors.ErrInvalidState.WrapMessage("unknown approval state: " + input.State.String())
	}

	if input.State == entity.StateApproved {
		if input.Commission == nil {
			return nil, domainerrors.ErrInvalidCommission.WrapMessage("approval requires a commission")
		}
		if *input.Commission < 0 || *input.Commission > 100 {
			return nil, domainerrors.ErrInvalidCommission.WrapMessage("commission must be between 0 and 100")
		}
	}

	var updated *entity.EntrepreneurProfile
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		entrepreneurRepo := repoFactory.NewEntrepreneurRepository()

		profile, err := entrepreneurRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrEntrepreneurNotFound) {
				return domainerrors.ErrNotFound.WrapMessage("entrepreneur not found")
			}

			return errors.Wrap(err, "failed to find entrepreneur")
		}

		profile.State = input.State
		if input.State == entity.StateApproved {
			commission := *input.Commission
			profile.Commission = &commission
		} else {
			// A commission sent alongside PENDING or REJECTED is ignored.
			profile.Commission = nil
		}

		if err := entrepreneurRepo.Update(ctx, profile); err != nil {
			return err
		}

		updated = profile

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to transition entrepreneur state", slog.Any("entrepreneurID", id), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Entrepreneur state transitioned",
		slog.Any("entrepreneurID", id),
		slog.String("state", updated.State.String()),
	)

	return updated, nil
}

// UpdateProfile edits the descriptive profile fields. The approval state and
// commission are never touched here; only Transition moves them.
func (srv *entrepreneurService) UpdateProfile(ctx context.Context, id uuid.UUID, input *usecase.UpdateEntrepreneurInput) (*entity.EntrepreneurProfile, error) {
	var updated *entity.EntrepreneurProfile
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		entrepreneurRepo := repoFactory.NewEntrepreneurRepository()

		profile, err := entrepreneurRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrEntrepreneurNotFound) {
				return domainerrors.ErrNotFound.WrapMessage("entrepreneur not found")
			}

			return errors.Wrap(err, "failed to find entrepreneur")
		}

		applyEntrepreneurUpdate(profile, input)

		if err := entrepreneurRepo.Update(ctx, profile); err != nil {
			return err
		}

		updated = profile

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to update entrepreneur profile", slog.Any("entrepreneurID", id), slog.Any("error", err))

		return nil, err
	}

	return updated, nil
}

// Delete soft-deletes the profile and its owning account in one transaction.
func (srv *entrepreneurService) Delete(ctx context.Context, id uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		entrepreneurRepo := repoFactory.NewEntrepreneurRepository()
		accountRepo := repoFactory.NewAccountRepository()

		profile, err := entrepreneurRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrEntrepreneurNotFound) {
				return domainerrors.ErrNotFound.WrapMessage("entrepreneur not found")
			}

			return errors.Wrap(err, "failed to find entrepreneur")
		}

		if err := entrepreneurRepo.SoftDelete(ctx, id); err != nil {
			return err
		}

		return accountRepo.SoftDelete(ctx, profile.AccountID)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to delete entrepreneur", slog.Any("entrepreneurID", id), slog.Any("error", err))

		return err
	}

	srv.log(ctx).Info("Entrepreneur deleted", slog.Any("entrepreneurID", id))

	return nil
}

func applyEntrepreneurUpdate(profile *entity.EntrepreneurProfile, input *usecase.UpdateEntrepreneurInput) {
	if input == nil {
		return
	}

	if input.BusinessName != nil {
		profile.BusinessName = *input.BusinessName
	}
	if input.PhoneNumber != nil {
		profile.PhoneNumber = *input.PhoneNumber
	}
	if input.Bank != nil {
		profile.Bank = *input.Bank
	}
	if input.DoesDeliver != nil {
		profile.DoesDeliver = *input.DoesDeliver
	}
	if input.StorePickupOnly != nil {
		profile.StorePickupOnly = *input.StorePickupOnly
	}
	if input.LocalAddress != nil {
		profile.LocalAddress = *input.LocalAddress
	}
	if input.LocalSector != nil {
		profile.LocalSector = *input.LocalSector
	}
	if input.Schedule != nil {
		profile.Schedule = entity.NormalizeWeekSchedule(*input.Schedule)
	}
	if input.LocalPhotos != nil {
		profile.LocalPhotos = *input.LocalPhotos
	}
	if input.LogoPhotos != nil {
		profile.LogoPhotos = *input.LogoPhotos
	}
}
