package repository

import (
	"context"
	"errors"

	"pawmart/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrPetOwnerNotFound is returned when no pet-owner profile matches a lookup.
var ErrPetOwnerNotFound = errors.New("pet owner not found")

// PetOwnerRepository defines persistence operations scoped to pet-owner
// profiles. Lookups never surface soft-deleted rows.
type PetOwnerRepository interface {
	// FindByAccountID retrieves the profile owned by the given account.
	FindByAccountID(ctx context.Context, accountID uuid.UUID) (*entity.PetOwnerProfile, error)

	// Update persists the profile fields.
	Update(ctx context.Context, profile *entity.PetOwnerProfile) error

	// SoftDelete marks the profile as deleted without removing the row.
	SoftDelete(ctx context.Context, accountID uuid.UUID) error
}
