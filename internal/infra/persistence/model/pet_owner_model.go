package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PetOwnerProfileModel mirrors the 'pet_owner_profiles' table. AccountID
// references accounts.id (UUID).
type PetOwnerProfileModel struct {
	AccountID      uuid.UUID `gorm:"primaryKey"`
	PhotoURL       string    `gorm:"type:varchar(512)"`
	PhoneNumber    string    `gorm:"type:varchar(30)"`
	Preferences    []string  `gorm:"serializer:json;type:jsonb"`
	PetPreferences []string  `gorm:"serializer:json;type:jsonb"`
	Addresses      []string  `gorm:"serializer:json;type:jsonb"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (PetOwnerProfileModel) TableName() string {
	return "pet_owner_profiles"
}
