package entity

import (
	"time"

	"github.com/google/uuid"
)

// ApprovalState classifies an entrepreneur profile. Every profile starts
// PENDING; only the lifecycle transition operation may move it. There is no
// terminal state, any value may transition to any other.
type ApprovalState string

const (
	// StatePending is the initial state of every new entrepreneur profile.
	StatePending ApprovalState = "PENDING"
	// StateApproved enables entrepreneur login and requires a commission.
	StateApproved ApprovalState = "APPROVED"
	// StateRejected blocks entrepreneur login; the profile can be re-opened.
	StateRejected ApprovalState = "REJECTED"
)

// String returns the string representation of the ApprovalState.
func (s ApprovalState) String() string {
	return string(s)
}

// IsValid checks if the ApprovalState is one of the three known values.
func (s ApprovalState) IsValid() bool {
	switch s {
	case StatePending, StateApproved, StateRejected:
		return true
	default:
		return false
	}
}

// BankAccountType enumerates the supported bank account kinds.
type BankAccountType string

const (
	// BankAccountSavings is a savings account.
	BankAccountSavings BankAccountType = "Savings"
	// BankAccountChecking is a checking account.
	BankAccountChecking BankAccountType = "Checking"
)

// IsValid checks if the BankAccountType is a known value.
func (t BankAccountType) IsValid() bool {
	return t == BankAccountSavings || t == BankAccountChecking
}

// BankDetails groups the payout banking information of an entrepreneur.
type BankDetails struct {
	BankName          string          // Name of the bank.
	AccountType       BankAccountType // Savings or Checking.
	AccountNumber     string          // Bank account number.
	AccountHolderName string          // Name of the account holder.
}

// EntrepreneurProfile holds data specific to the entrepreneur role, including
// the approval state machine and the commission attached to it.
//
// Invariant: State == APPROVED if and only if Commission is non-nil and in
// [0,100]; in PENDING and REJECTED the commission is always nil.
type EntrepreneurProfile struct {
	ID              uuid.UUID     // The unique identifier of the profile itself.
	AccountID       uuid.UUID     // Foreign key that links this profile to its Account.
	BusinessName    string        // Official name of the venture.
	TaxID           string        // Tax identifier; unique among non-deleted profiles.
	PhoneNumber     string        // Contact phone number.
	Bank            BankDetails   // Payout banking details.
	DoesDeliver     bool          // Whether the store ships orders.
	StorePickupOnly bool          // Whether orders can only be picked up in store.
	LocalAddress    string        // Street address of the store.
	LocalSector     string        // Neighborhood / sector of the store.
	Schedule        WeekSchedule  // Weekly opening schedule, always the seven canonical days.
	LocalPhotos     []string      // Photos of the store, ordered.
	LogoPhotos      []string      // Logo images, ordered.
	AcceptedTerms   bool          // Whether the platform terms were accepted.
	State           ApprovalState // Approval state, PENDING at registration.
	Commission      *float64      // Commission percentage; nil unless State is APPROVED.
	CreatedAt       time.Time     // Timestamp of when this profile was created.
	UpdatedAt       time.Time     // Timestamp of the last modification.
}

// IsApproved reports whether the profile may authenticate.
func (p *EntrepreneurProfile) IsApproved() bool {
	return p.State == StateApproved
}
