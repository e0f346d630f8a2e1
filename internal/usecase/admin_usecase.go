// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"pawmart/internal/domain/entity"

	"github.com/google/uuid"
)

// AdminUsecase defines the interface for admin account operations.
type AdminUsecase interface {
	// GetAdmin returns the admin account with the given ID.
	GetAdmin(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// UpdateAdmin edits the admin account. A new password is re-hashed before
	// it is stored.
	UpdateAdmin(ctx context.Context, id uuid.UUID, input *UpdateAdminInput) (*entity.Account, error)
}

// --- Input DTOs ---

// UpdateAdminInput defines the editable admin account fields.
type UpdateAdminInput struct {
	Name     *string
	Email    *string
	Password *string
}
