package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims carried inside a signed session token.
type Claims struct {
	AccountID uuid.UUID `json:"accountId"`
	Email     string    `json:"email"`
	jwt.RegisteredClaims
}

// TokenIdentity is the caller-visible result of a successful verification.
// It exposes only the identity fields; issuance and expiry instants stay
// internal to the token.
type TokenIdentity struct {
	AccountID uuid.UUID
	Email     string
}

// TokenService defines the interface for issuing and verifying signed
// session tokens. Tokens are never persisted; a verified, unexpired token is
// always accepted.
type TokenService interface {
	// Issue creates a signed token bound to the account identity, valid for
	// a fixed window.
	Issue(accountID uuid.UUID, email string) (string, error)

	// Verify checks the token's structure, signature and expiry and returns
	// the embedded identity claims. Every failure mode surfaces as the
	// invalid-token error.
	Verify(token string) (*TokenIdentity, error)
}
