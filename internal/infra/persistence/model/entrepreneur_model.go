package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"pawmart/internal/domain/entity"
)

// EntrepreneurProfileModel mirrors the 'entrepreneur_profiles' table.
// AccountID references accounts.id (UUID). The weekly schedule and photo
// lists are stored as jsonb columns.
type EntrepreneurProfileModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	AccountID       uuid.UUID `gorm:"type:uuid;not null;index"`
	BusinessName    string    `gorm:"type:varchar(100);not null"`
	TaxID           string    `gorm:"type:varchar(20);uniqueIndex:idx_entrepreneur_tax_id,where:deleted_at IS NULL;not null"`
	PhoneNumber     string    `gorm:"type:varchar(30)"`
	BankName        string    `gorm:"type:varchar(100)"`
	BankAccountType string    `gorm:"type:varchar(20)"`
	BankAccountNum  string    `gorm:"column:bank_account_number;type:varchar(30)"`
	BankOwnerName   string    `gorm:"type:varchar(100)"`
	DoesDeliver     bool      `gorm:"not null;default:false"`
	StorePickupOnly bool      `gorm:"not null;default:false"`
	LocalAddress    string    `gorm:"type:varchar(255)"`
	LocalSector     string    `gorm:"type:varchar(100)"`
	Schedule        entity.WeekSchedule `gorm:"serializer:json;type:jsonb"`
	LocalPhotos     []string            `gorm:"serializer:json;type:jsonb"`
	LogoPhotos      []string            `gorm:"serializer:json;type:jsonb"`
	AcceptedTerms   bool                `gorm:"not null;default:false"`
	State           string              `gorm:"type:varchar(20);not null;default:'PENDING';index"`
	Commission      *float64            `gorm:"type:numeric(5,2)"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
	DeletedAt       gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (EntrepreneurProfileModel) TableName() string {
	return "entrepreneur_profiles"
}
