// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"pawmart/internal/domain/entity"
	"pawmart/internal/domain/service"
)

// --- Input DTOs ---

// RegisterPetOwnerInput defines the data required to register a new pet owner.
type RegisterPetOwnerInput struct {
	Name           string
	Email          string
	Password       string
	PhotoURL       string
	PhoneNumber    string
	Preferences    []string
	PetPreferences []string
	Addresses      []string
}

// RegisterEntrepreneurInput defines the data required to register a new entrepreneur.
// The schedule may name any subset of weekdays; it is normalized to the full
// seven-day week before being persisted.
type RegisterEntrepreneurInput struct {
	Name            string
	Email           string
	Password        string
	BusinessName    string
	TaxID           string
	PhoneNumber     string
	Bank            entity.BankDetails
	DoesDeliver     bool
	StorePickupOnly bool
	LocalAddress    string
	LocalSector     string
	Schedule        entity.WeekSchedule
	LocalPhotos     []string
	LogoPhotos      []string
	AcceptedTerms   bool
}

// LoginInput defines the data required to log in, regardless of role.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created account's information.
type RegisterOutput struct {
	Account *entity.Account
}

// LoginOutput returns the signed token after a successful login.
// EntrepreneurID is set only for entrepreneur logins.
type LoginOutput struct {
	AccountID      string
	Email          string
	Token          string
	EntrepreneurID string
}

// AuthUsecase defines the interface for authentication business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	RegisterPetOwner(ctx context.Context, input RegisterPetOwnerInput) (*RegisterOutput, error)
	RegisterEntrepreneur(ctx context.Context, input RegisterEntrepreneurInput) (*RegisterOutput, error)

	// Login authenticates the account in the given role. Entrepreneur logins
	// additionally require an APPROVED profile.
	Login(ctx context.Context, role entity.Role, input LoginInput) (*LoginOutput, error)

	// VerifyToken validates a signed token and returns the identity inside it.
	VerifyToken(ctx context.Context, token string) (*service.TokenIdentity, error)
}
