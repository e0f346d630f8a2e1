package entity

import (
	"time"

	"github.com/google/uuid"
)

// PetOwnerProfile holds data specific to the pet-owner role. It has no
// lifecycle state of its own and is soft-deleted together with its account.
type PetOwnerProfile struct {
	AccountID      uuid.UUID // Foreign key that links this profile to its Account.
	PhotoURL       string    // Optional avatar photo reference.
	PhoneNumber    string    // Contact phone number.
	Preferences    []string  // Free-form shopping preferences.
	PetPreferences []string  // Free-form pet preferences.
	Addresses      []string  // Delivery addresses, ordered.
	UpdatedAt      time.Time // Timestamp of the last modification to this profile.
}
