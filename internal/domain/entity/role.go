// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role represents the type of role an account can hold in the system.
type Role string

const (
	// RoleAdmin indicates a platform administrator.
	RoleAdmin Role = "admin"
	// RolePetOwner indicates a pet owner.
	RolePetOwner Role = "pet-owner"
	// RoleEntrepreneur indicates an entrepreneur running a store.
	RoleEntrepreneur Role = "entrepreneur"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RolePetOwner, RoleEntrepreneur:
		return true
	default:
		return false
	}
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// ToStrings converts Roles to []string for token compatibility.
func (rs Roles) ToStrings() []string {
	result := make([]string, len(rs))
	for i, r := range rs {
		result[i] = r.String()
	}

	return result
}
