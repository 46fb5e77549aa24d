package auth

import (
	"strings"
	"testing"
	"time"

	"vidtube/config"
	"vidtube/internal/domain/entity"
	domainerrors "vidtube/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"
	cfg.SecretKey.Refresh = "test_refresh_secret_key_very_long_for_testing"
	cfg.Token.AccessTTL = 15 * time.Minute
	cfg.Token.RefreshTTL = 7 * 24 * time.Hour

	return cfg
}

func newTestUser() *entity.User {
	return &entity.User{
		ID:       "65a1f0c2e4b0a1b2c3d4e5f6",
		Email:    "a@x.com",
		Username: "alice",
		FullName: "Alice Liddell",
	}
}

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time { return c.t }

func TestJWTService_AccessTokenRoundTrip(t *testing.T) {
	svc, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	user := newTestUser()
	token, err := svc.IssueAccessToken(user)
	require.NoError(t, err)

	claims, err := svc.VerifyAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, user.Email, claims.Email)
	assert.Equal(t, user.Username, claims.Username)
	assert.Equal(t, user.FullName, claims.FullName)
}

func TestJWTService_AccessTokenIsDeterministic(t *testing.T) {
	clock := &fakeClock{t: time.Unix(1_700_000_000, 0)}
	svc, err := newJWTService(newTestConfig(), clock.Now)
	require.NoError(t, err)

	first, err := svc.IssueAccessToken(newTestUser())
	require.NoError(t, err)
	second, err := svc.IssueAccessToken(newTestUser())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestJWTService_RefreshTokensAreUnique(t *testing.T) {
	clock := &fakeClock{t: time.Unix(1_700_000_000, 0)}
	svc, err := newJWTService(newTestConfig(), clock.Now)
	require.NoError(t, err)

	first, err := svc.IssueRefreshToken(newTestUser())
	require.NoError(t, err)
	second, err := svc.IssueRefreshToken(newTestUser())
	require.NoError(t, err)
	assert.NotEqual(t, first, second)

	claims, err := svc.VerifyRefreshToken(first)
	require.NoError(t, err)
	assert.Equal(t, newTestUser().ID, claims.UserID)
	assert.NotEmpty(t, claims.TokenID)
}

func TestJWTService_ExpiredTokenReportsExpired(t *testing.T) {
	clock := &fakeClock{t: time.Now()}
	svc, err := newJWTService(newTestConfig(), clock.Now)
	require.NoError(t, err)

	token, err := svc.IssueAccessToken(newTestUser())
	require.NoError(t, err)

	clock.t = clock.t.Add(16 * time.Minute)
	_, err = svc.VerifyAccessToken(token)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenExpired))
	assert.False(t, errors.Is(err, domainerrors.ErrTokenInvalid))
}

func TestJWTService_InvalidTokens(t *testing.T) {
	svc, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	access, err := svc.IssueAccessToken(newTestUser())
	require.NoError(t, err)
	refresh, err := svc.IssueRefreshToken(newTestUser())
	require.NoError(t, err)

	parts := strings.Split(refresh, ".")
	require.Len(t, parts, 3)
	tamperedSig := []byte(parts[2])
	if tamperedSig[0] == 'A' {
		tamperedSig[0] = 'B'
	} else {
		tamperedSig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(tamperedSig)

	t.Run("malformed", func(t *testing.T) {
		_, err := svc.VerifyAccessToken("clearly-not-a-jwt-token-format")
		assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))
	})

	t.Run("tampered signature", func(t *testing.T) {
		_, err := svc.VerifyRefreshToken(tampered)
		assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))
	})

	t.Run("access token used as refresh token", func(t *testing.T) {
		_, err := svc.VerifyRefreshToken(access)
		assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))
	})

	t.Run("refresh token used as access token", func(t *testing.T) {
		_, err := svc.VerifyAccessToken(refresh)
		assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))
	})
}

func TestJWTService_ConfigValidation(t *testing.T) {
	t.Run("empty secrets", func(t *testing.T) {
		cfg := newTestConfig()
		cfg.SecretKey.Access = ""

		svc, err := NewJWTService(cfg)
		assert.Error(t, err)
		assert.Nil(t, svc)
		assert.Contains(t, err.Error(), "jwt secrets must be provided")
	})

	t.Run("shared secret", func(t *testing.T) {
		cfg := newTestConfig()
		cfg.SecretKey.Refresh = cfg.SecretKey.Access

		_, err := NewJWTService(cfg)
		assert.Error(t, err)
	})

	t.Run("zero ttl", func(t *testing.T) {
		cfg := newTestConfig()
		cfg.Token.AccessTTL = 0

		_, err := NewJWTService(cfg)
		assert.Error(t, err)
	})
}
