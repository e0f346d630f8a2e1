// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"pawmart/config"
	domainerrors "pawmart/internal/domain/errors"
	"pawmart/internal/domain/service"
	"pawmart/internal/errors"
)

// tokenTTL is the fixed validity window of every issued session token.
const tokenTTL = 24 * time.Hour

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret string
	ttl    time.Duration
	now    func() time.Time
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Token == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	return &jwtService{
		secret: cfg.SecretKey.Token,
		ttl:    tokenTTL,
		now:    time.Now,
	}, nil
}

// Issue creates a signed HS256 token embedding the account identity, the
// issuance instant and the expiry instant.
func (s *jwtService) Issue(accountID uuid.UUID, email string) (string, error) {
	now := s.now()
	claims := &service.Claims{
		AccountID: accountID,
		Email:     email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   accountID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// Verify checks structure, signature and expiry and returns only the
// identity claims. Any failure mode collapses into the invalid-token error;
// callers learn nothing about which check failed.
func (s *jwtService) Verify(tokenString string) (*service.TokenIdentity, error) {
	if tokenString == "" {
		return nil, domainerrors.ErrInvalidToken.WrapMessage("empty token")
	}
	if strings.Count(tokenString, ".") != 2 {
		return nil, domainerrors.ErrInvalidToken.WrapMessage("malformed token structure")
	}

	claims := &service.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil || !token.Valid {
		return nil, domainerrors.ErrInvalidToken.WrapMessage("token verification failed")
	}

	return &service.TokenIdentity{
		AccountID: claims.AccountID,
		Email:     claims.Email,
	}, nil
}
