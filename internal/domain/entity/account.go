// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Account is the core identity record shared by every role. An account may
// hold more than one role at a time: admin membership is a plain flag (it has
// no profile table), while pet-owner and entrepreneur membership is expressed
// by the presence of the corresponding profile.
type Account struct {
	ID                  uuid.UUID            // The unique identifier for the account.
	Email               string               // Login identifier; unique among non-deleted accounts.
	Name                string               // Display name.
	PasswordHash        string               // The bcrypt-hashed secret. Lives only here, never on a profile.
	IsAdmin             bool                 // Administrator role flag.
	PetOwnerProfile     *PetOwnerProfile     // Nil when the account does not hold the pet-owner role.
	EntrepreneurProfile *EntrepreneurProfile // Nil when the account does not hold the entrepreneur role.
	CreatedAt           time.Time            // Timestamp of when this account was created.
	UpdatedAt           time.Time            // Timestamp of the last modification.
}

// Roles derives the set of roles this account currently holds.
func (a *Account) Roles() Roles {
	var roles Roles
	if a.IsAdmin {
		roles = append(roles, RoleAdmin)
	}
	if a.PetOwnerProfile != nil {
		roles = append(roles, RolePetOwner)
	}
	if a.EntrepreneurProfile != nil {
		roles = append(roles, RoleEntrepreneur)
	}

	return roles
}

// HasRole reports whether the account holds the given role.
func (a *Account) HasRole(role Role) bool {
	return a.Roles().Contains(role)
}
