package repository

import (
	"context"
	"errors"

	"pawmart/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrEntrepreneurNotFound is returned when no entrepreneur profile matches a lookup.
var ErrEntrepreneurNotFound = errors.New("entrepreneur not found")

// EntrepreneurRepository defines persistence operations scoped to
// entrepreneur profiles. Lookups never surface soft-deleted rows.
type EntrepreneurRepository interface {
	// FindByID retrieves a profile by its own ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.EntrepreneurProfile, error)

	// FindByEmail retrieves a profile by joining to the owning account's email.
	FindByEmail(ctx context.Context, email string) (*entity.EntrepreneurProfile, error)

	// FindByTaxID retrieves a profile by its tax identifier.
	FindByTaxID(ctx context.Context, taxID string) (*entity.EntrepreneurProfile, error)

	// ListAll returns every non-deleted profile.
	ListAll(ctx context.Context) ([]*entity.EntrepreneurProfile, error)

	// ListByState returns the non-deleted profiles in the given state.
	// An empty result is not an error.
	ListByState(ctx context.Context, state entity.ApprovalState) ([]*entity.EntrepreneurProfile, error)

	// Update persists the full profile, including state and commission, as a
	// single atomic write.
	Update(ctx context.Context, profile *entity.EntrepreneurProfile) error

	// SoftDelete marks the profile as deleted without removing the row.
	SoftDelete(ctx context.Context, id uuid.UUID) error
}
