package jwt

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nazmulhossain17/multi-vendor-ecommerce-api/internal/domain"
)

func testUser() *domain.User {
	return &domain.User{
		ID:    uuid.New(),
		Email: "a@x.com",
		Role:  domain.RoleCustomer,
	}
}

func newTestService(accessExpiry, refreshExpiry time.Duration) *TokenService {
	return NewTokenService("access-secret", "refresh-secret", accessExpiry, refreshExpiry, "test")
}

func TestAccessTokenRoundTrip(t *testing.T) {
	t.Parallel()

	svc := newTestService(time.Minute, time.Hour)
	user := testUser()

	token, err := svc.GenerateAccessToken(user)
	require.NoError(t, err)

	claims, err := svc.ValidateAccessToken(token)
	require.NoError(t, err)

	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, user.Email, claims.Email)
	assert.Equal(t, user.Role, claims.Role)
	assert.Equal(t, domain.TokenTypeAccess, claims.TokenType)
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	t.Parallel()

	svc := newTestService(time.Minute, time.Hour)
	user := testUser()

	token, err := svc.GenerateRefreshToken(user)
	require.NoError(t, err)

	claims, err := svc.ValidateRefreshToken(token)
	require.NoError(t, err)

	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, domain.TokenTypeRefresh, claims.TokenType)
}

func TestExpiredTokenFailsValidation(t *testing.T) {
	t.Parallel()

	svc := newTestService(-time.Second, -time.Second)
	user := testUser()

	token, err := svc.GenerateAccessToken(user)
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestCrossSecretIsolation(t *testing.T) {
	t.Parallel()

	svc := newTestService(time.Minute, time.Hour)
	user := testUser()

	pair, err := svc.GenerateTokenPair(user)
	require.NoError(t, err)

	// an access token must never pass refresh validation and vice versa
	_, err = svc.ValidateRefreshToken(pair.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = svc.ValidateAccessToken(pair.RefreshToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestWrongSecretFailsValidation(t *testing.T) {
	t.Parallel()

	svc := newTestService(time.Minute, time.Hour)
	other := NewTokenService("other-access", "other-refresh", time.Minute, time.Hour, "test")

	token, err := svc.GenerateAccessToken(testUser())
	require.NoError(t, err)

	_, err = other.ValidateAccessToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestMalformedTokensFailUniformly(t *testing.T) {
	t.Parallel()

	svc := newTestService(time.Minute, time.Hour)

	for _, token := range []string{"", "garbage", "aaa.bbb.ccc"} {
		_, err := svc.ValidateAccessToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)

		_, err = svc.ValidateRefreshToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	}
}
