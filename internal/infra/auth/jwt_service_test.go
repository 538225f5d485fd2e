package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/drbearcub/jw-deployable-app/config"
	"github.com/drbearcub/jw-deployable-app/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig(ttl time.Duration) *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			Secret:   "test_signing_secret_very_long_for_testing",
			TokenTTL: ttl,
		},
	}
}

func TestJWTService_IssueAndVerify(t *testing.T) {
	svc, err := NewJWTService(newTestConfig(time.Hour))
	require.NoError(t, err)

	token, err := svc.Issue("a@b.com")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", claims.Subject)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt, 5*time.Second)
}

func TestJWTService_VerifyExpiredToken(t *testing.T) {
	// A negative window makes the token already expired at issuance.
	svc, err := NewJWTService(newTestConfig(-time.Minute))
	require.NoError(t, err)

	token, err := svc.Issue("a@b.com")
	require.NoError(t, err)

	claims, err := svc.Verify(token)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, service.ErrTokenInvalid)
	assert.Contains(t, err.Error(), "expired")
}

func TestJWTService_VerifyTamperedSignature(t *testing.T) {
	svc, err := NewJWTService(newTestConfig(time.Hour))
	require.NoError(t, err)

	token, err := svc.Issue("a@b.com")
	require.NoError(t, err)

	// Flip one character in the signature segment.
	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	claims, err := svc.Verify(tampered)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, service.ErrTokenInvalid)
}

func TestJWTService_VerifyWrongSecret(t *testing.T) {
	issuer, err := NewJWTService(newTestConfig(time.Hour))
	require.NoError(t, err)

	other, err := NewJWTService(&config.Config{
		Auth: &config.AuthConfig{Secret: "a_rotated_secret_invalidates_old_tokens", TokenTTL: time.Hour},
	})
	require.NoError(t, err)

	token, err := issuer.Issue("a@b.com")
	require.NoError(t, err)

	// Tokens issued before a secret rotation become unverifiable after it.
	claims, err := other.Verify(token)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, service.ErrTokenInvalid)
}

func TestJWTService_VerifyGarbage(t *testing.T) {
	svc, err := NewJWTService(newTestConfig(time.Hour))
	require.NoError(t, err)

	claims, err := svc.Verify("clearly-not-a-jwt-token-format")
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, service.ErrTokenInvalid)
}

func TestJWTService_EmptySecret(t *testing.T) {
	svc, err := NewJWTService(&config.Config{Auth: &config.AuthConfig{}})
	assert.Error(t, err)
	assert.Nil(t, svc)
	assert.Contains(t, err.Error(), "jwt secret must be provided")
}
