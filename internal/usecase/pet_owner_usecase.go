// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"pawmart/internal/domain/entity"

	"github.com/google/uuid"
)

// PetOwnerUsecase defines the interface for pet-owner-related business operations.
type PetOwnerUsecase interface {
	// Get returns the account with its pet-owner profile attached.
	Get(ctx context.Context, accountID uuid.UUID) (*entity.Account, error)

	// Update edits the pet-owner profile. Nil input fields are left unchanged.
	Update(ctx context.Context, accountID uuid.UUID, input *UpdatePetOwnerInput) (*entity.Account, error)

	// Delete soft-deletes the profile and its owning account.
	Delete(ctx context.Context, accountID uuid.UUID) error
}

// --- Input DTOs ---

// UpdatePetOwnerInput defines the editable pet-owner profile fields.
type UpdatePetOwnerInput struct {
	Name           *string
	PhotoURL       *string
	PhoneNumber    *string
	Preferences    *[]string
	PetPreferences *[]string
	Addresses      *[]string
}
