// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"pawmart/internal/domain/entity"

	"github.com/google/uuid"
)

// EntrepreneurUsecase defines the interface for entrepreneur-related business operations.
type EntrepreneurUsecase interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.EntrepreneurProfile, error)
	GetByEmail(ctx context.Context, email string) (*entity.EntrepreneurProfile, error)

	// List returns all entrepreneurs, optionally filtered by approval state.
	// An unknown state value is rejected; an empty result is not an error.
	List(ctx context.Context, state *entity.ApprovalState) ([]*entity.EntrepreneurProfile, error)

	// Transition moves the profile's approval state. APPROVED requires a
	// commission in [0,100]; PENDING and REJECTED always clear it.
	Transition(ctx context.Context, id uuid.UUID, input TransitionInput) (*entity.EntrepreneurProfile, error)

	// UpdateProfile edits descriptive fields. It never touches the approval
	// state or the commission.
	UpdateProfile(ctx context.Context, id uuid.UUID, input *UpdateEntrepreneurInput) (*entity.EntrepreneurProfile, error)

	// Delete soft-deletes the profile and its owning account.
	Delete(ctx context.Context, id uuid.UUID) error
}

// --- Input DTOs ---

// TransitionInput carries the target approval state and, for APPROVED, the
// commission percentage to record.
type TransitionInput struct {
	State      entity.ApprovalState
	Commission *float64
}

// UpdateEntrepreneurInput defines the editable profile fields. Nil fields are
// left unchanged. A non-nil schedule is re-normalized to the full week.
type UpdateEntrepreneurInput struct {
	BusinessName    *string
	PhoneNumber     *string
	Bank            *entity.BankDetails
	DoesDeliver     *bool
	StorePickupOnly *bool
	LocalAddress    *string
	LocalSector     *string
	Schedule        *entity.WeekSchedule
	LocalPhotos     *[]string
	LogoPhotos      *[]string
}
