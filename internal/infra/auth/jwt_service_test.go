package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pawmart/config"
	domainerrors "pawmart/internal/domain/errors"
	"pawmart/internal/errors"
)

func newTestJWTConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Token = "test_token_secret_key_very_long_for_testing"

	return cfg
}

func TestJWTService_IssueAndVerify(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	accountID := uuid.New()
	email := "owner@example.com"

	token, err := svc.Issue(accountID, email)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, 3, len(strings.Split(token, ".")))

	identity, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, accountID, identity.AccountID)
	assert.Equal(t, email, identity.Email)
}

func TestJWTService_RejectsMissingSecret(t *testing.T) {
	svc, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
	assert.Nil(t, svc)
}

func TestJWTService_VerifyRejectsBadTokens(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	valid, err := svc.Issue(uuid.New(), "owner@example.com")
	require.NoError(t, err)

	// Flip the last signature byte to corrupt it.
	corrupted := valid[:len(valid)-1]
	if strings.HasSuffix(valid, "A") {
		corrupted += "B"
	} else {
		corrupted += "A"
	}

	tests := []struct {
		name  string
		token string
	}{
		{name: "empty", token: ""},
		{name: "not a token", token: "not-a-token"},
		{name: "two segments", token: "aaaa.bbbb"},
		{name: "corrupted signature", token: corrupted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			identity, err := svc.Verify(tt.token)
			assert.Nil(t, identity)
			assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
		})
	}
}

func TestJWTService_VerifyRejectsWrongSecret(t *testing.T) {
	issuer, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	otherCfg := &config.Config{}
	otherCfg.SecretKey.Token = "a_completely_different_secret_key_for_testing"
	verifier, err := NewJWTService(otherCfg)
	require.NoError(t, err)

	token, err := issuer.Issue(uuid.New(), "owner@example.com")
	require.NoError(t, err)

	identity, err := verifier.Verify(token)
	assert.Nil(t, identity)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
}

func TestJWTService_VerifyRejectsExpiredToken(t *testing.T) {
	svc := &jwtService{
		secret: "test_token_secret_key_very_long_for_testing",
		ttl:    tokenTTL,
		now:    time.Now,
	}

	token, err := svc.Issue(uuid.New(), "owner@example.com")
	require.NoError(t, err)

	// Jump the verifier clock past the 24h validity window.
	svc.now = func() time.Time { return time.Now().Add(tokenTTL + time.Minute) }

	identity, err := svc.Verify(token)
	assert.Nil(t, identity)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
}
