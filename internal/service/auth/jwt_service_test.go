package auth

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecofinds/ecofinds-api/internal/config"
	"github.com/ecofinds/ecofinds-api/internal/domain"
)

const testSecret = "test-secret-that-is-at-least-32-chars-long"

func testUser() *domain.User {
	return &domain.User{
		ID:       42,
		Email:    "a@x.com",
		Username: "alice",
	}
}

func TestNewJWTService(t *testing.T) {
	t.Parallel()

	t.Run("valid config", func(t *testing.T) {
		svc, err := NewJWTService(config.AuthConfig{
			JWTSecret:            testSecret,
			TokenLifetimeMinutes: 24 * 60,
		})
		require.NoError(t, err)
		assert.NotNil(t, svc)
	})

	t.Run("secret too short", func(t *testing.T) {
		_, err := NewJWTService(config.AuthConfig{
			JWTSecret:            "short",
			TokenLifetimeMinutes: 60,
		})
		assert.Error(t, err)
	})

	t.Run("missing secret", func(t *testing.T) {
		_, err := NewJWTService(config.AuthConfig{
			TokenLifetimeMinutes: 60,
		})
		assert.Error(t, err)
	})

	t.Run("zero lifetime", func(t *testing.T) {
		_, err := NewJWTService(config.AuthConfig{
			JWTSecret: testSecret,
		})
		assert.Error(t, err)
	})
}

func TestTokenRoundTrip(t *testing.T) {
	t.Parallel()

	svc, err := NewJWTService(config.AuthConfig{
		JWTSecret:            testSecret,
		TokenLifetimeMinutes: 24 * 60,
	})
	require.NoError(t, err)

	ctx := context.Background()
	user := testUser()

	token, err := svc.GenerateToken(ctx, user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(ctx, token)
	require.NoError(t, err)

	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, user.Email, claims.Email)
	assert.Equal(t, strconv.FormatInt(user.ID, 10), claims.Subject)
	assert.NotEmpty(t, claims.ID)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), claims.ExpiresAt, time.Minute)
}

func TestValidateTokenExpired(t *testing.T) {
	t.Parallel()

	now := time.Now()
	current := now

	svc := NewJWTServiceWithClock(testSecret, 24*time.Hour, func() time.Time {
		return current
	})

	ctx := context.Background()
	token, err := svc.GenerateToken(ctx, testUser())
	require.NoError(t, err)

	// Immediately valid.
	_, err = svc.ValidateToken(ctx, token)
	require.NoError(t, err)

	// Still valid one minute before the window closes.
	current = now.Add(24*time.Hour - time.Minute)
	_, err = svc.ValidateToken(ctx, token)
	require.NoError(t, err)

	// Expired once the validity window has elapsed.
	current = now.Add(24*time.Hour + time.Minute)
	_, err = svc.ValidateToken(ctx, token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateTokenFailures(t *testing.T) {
	t.Parallel()

	svc, err := NewJWTService(config.AuthConfig{
		JWTSecret:            testSecret,
		TokenLifetimeMinutes: 60,
	})
	require.NoError(t, err)

	otherSvc, err := NewJWTService(config.AuthConfig{
		JWTSecret:            "another-secret-that-is-32-chars-long!!",
		TokenLifetimeMinutes: 60,
	})
	require.NoError(t, err)

	ctx := context.Background()

	t.Run("malformed token", func(t *testing.T) {
		_, err := svc.ValidateToken(ctx, "not-a-jwt")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("empty token", func(t *testing.T) {
		_, err := svc.ValidateToken(ctx, "")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("wrong signing secret", func(t *testing.T) {
		token, err := otherSvc.GenerateToken(ctx, testUser())
		require.NoError(t, err)

		_, err = svc.ValidateToken(ctx, token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
