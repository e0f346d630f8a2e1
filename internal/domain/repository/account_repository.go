// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"pawmart/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAccountNotFound is a domain-specific error returned when an account is not found.
var ErrAccountNotFound = errors.New("account not found")

// AccountRepository defines the standard operations for account persistence.
// The application layer will depend on this interface, not the concrete implementation.
// Soft-deleted accounts are invisible to every lookup.
type AccountRepository interface {
	// FindByID retrieves a single account by its unique ID, with role profiles attached.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// FindByEmail retrieves a single account by its email address, with role profiles attached.
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)

	// Create persists a new account together with any attached role profiles.
	// The account and its profiles are written as one atomic composite.
	Create(ctx context.Context, account *entity.Account) error

	// Update modifies an existing account and its attached profiles.
	Update(ctx context.Context, account *entity.Account) error

	// SoftDelete marks the account as deleted without removing the row.
	SoftDelete(ctx context.Context, id uuid.UUID) error
}
