package handler

import (
	"time"

	"pawmart/internal/domain/entity"
)

// Response views keep the password hash and other internals out of the
// JSON the API returns.

type accountView struct {
	ID                  string            `json:"id"`
	Email               string            `json:"email"`
	Name                string            `json:"name"`
	Roles               []string          `json:"roles"`
	PetOwnerProfile     *petOwnerView     `json:"petOwnerProfile,omitempty"`
	EntrepreneurProfile *entrepreneurView `json:"entrepreneurProfile,omitempty"`
	CreatedAt           time.Time         `json:"createdAt"`
	UpdatedAt           time.Time         `json:"updatedAt"`
}

type petOwnerView struct {
	PhotoURL       string   `json:"photoUrl,omitempty"`
	PhoneNumber    string   `json:"phoneNumber,omitempty"`
	Preferences    []string `json:"preferences,omitempty"`
	PetPreferences []string `json:"petPreferences,omitempty"`
	Addresses      []string `json:"addresses,omitempty"`
}

type entrepreneurView struct {
	ID              string              `json:"id"`
	AccountID       string              `json:"accountId"`
	BusinessName    string              `json:"businessName"`
	TaxID           string              `json:"taxId"`
	PhoneNumber     string              `json:"phoneNumber,omitempty"`
	Bank            entity.BankDetails  `json:"bank"`
	DoesDeliver     bool                `json:"doesDeliver"`
	StorePickupOnly bool                `json:"storePickupOnly"`
	LocalAddress    string              `json:"localAddress,omitempty"`
	LocalSector     string              `json:"localSector,omitempty"`
	Schedule        entity.WeekSchedule `json:"schedule"`
	LocalPhotos     []string            `json:"localPhotos,omitempty"`
	LogoPhotos      []string            `json:"logoPhotos,omitempty"`
	AcceptedTerms   bool                `json:"acceptedTerms"`
	State           string              `json:"state"`
	Commission      *float64            `json:"commission"`
	CreatedAt       time.Time           `json:"createdAt"`
	UpdatedAt       time.Time           `json:"updatedAt"`
}

func newAccountView(account *entity.Account) *accountView {
	if account == nil {
		return nil
	}

	return &accountView{
		ID:                  account.ID.String(),
		Email:               account.Email,
		Name:                account.Name,
		Roles:               account.Roles().ToStrings(),
		PetOwnerProfile:     newPetOwnerView(account.PetOwnerProfile),
		EntrepreneurProfile: newEntrepreneurView(account.EntrepreneurProfile),
		CreatedAt:           account.CreatedAt,
		UpdatedAt:           account.UpdatedAt,
	}
}

func newPetOwnerView(profile *entity.PetOwnerProfile) *petOwnerView {
	if profile == nil {
		return nil
	}

	return &petOwnerView{
		PhotoURL:       profile.PhotoURL,
		PhoneNumber:    profile.PhoneNumber,
		Preferences:    profile.Preferences,
		PetPreferences: profile.PetPreferences,
		Addresses:      profile.Addresses,
	}
}

func newEntrepreneurView(profile *entity.EntrepreneurProfile) *entrepreneurView {
	if profile == nil {
		return nil
	}

	return &entrepreneurView{
		ID:              profile.ID.String(),
		AccountID:       profile.AccountID.String(),
		BusinessName:    profile.BusinessName,
		TaxID:           profile.TaxID,
		PhoneNumber:     profile.PhoneNumber,
		Bank:            profile.Bank,
		DoesDeliver:     profile.DoesDeliver,
		StorePickupOnly: profile.StorePickupOnly,
		LocalAddress:    profile.LocalAddress,
		LocalSector:     profile.LocalSector,
		Schedule:        profile.Schedule,
		LocalPhotos:     profile.LocalPhotos,
		LogoPhotos:      profile.LogoPhotos,
		AcceptedTerms:   profile.AcceptedTerms,
		State:           profile.State.String(),
		Commission:      profile.Commission,
		CreatedAt:       profile.CreatedAt,
		UpdatedAt:       profile.UpdatedAt,
	}
}

func newEntrepreneurViews(profiles []*entity.EntrepreneurProfile) []*entrepreneurView {
	views := make([]*entrepreneurView, 0, len(profiles))
	for _, profile := range profiles {
		views = append(views, newEntrepreneurView(profile))
	}

	return views
}
