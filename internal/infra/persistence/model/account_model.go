package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AccountModel mirrors the 'accounts' table. PostgreSQL generates UUIDs via
// uuid_generate_v7(). It is an exported type so it can be used by the GORM
// Gen tool from other packages.
type AccountModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex:idx_accounts_email,where:deleted_at IS NULL;not null"`
	Name         string    `gorm:"type:varchar(100)"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	IsAdmin      bool      `gorm:"not null;default:false"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`

	PetOwnerProfile     *PetOwnerProfileModel     `gorm:"foreignKey:AccountID"`
	EntrepreneurProfile *EntrepreneurProfileModel `gorm:"foreignKey:AccountID"`
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "accounts"
}
