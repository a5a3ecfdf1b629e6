package jwt

import (
	"testing"

	"github.com/abdelmoulehnajeh/redcastle-sub001/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSecret     = "test-secret-key-for-jwt"
	testAccessExp  = "1h"
	testRefreshExp = "24h"
)

func newTestService() Service {
	return NewJWTService(testSecret, testAccessExp, testRefreshExp)
}

func TestGenerateAccessToken(t *testing.T) {
	t.Parallel()
	svc := newTestService()

	employeeID := "emp-1"
	token, expiresAt, err := svc.GenerateAccessToken("user-1", "sami", &employeeID, user.RoleManager)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Greater(t, expiresAt, int64(0))

	decoded, err := svc.JWTAuth().Decode(token)
	require.NoError(t, err)

	claim := func(key string) any {
		v, ok := decoded.Get(key)
		require.True(t, ok, "missing claim %s", key)
		return v
	}
	assert.Equal(t, "user-1", claim("user_id"))
	assert.Equal(t, "sami", claim("username"))
	assert.Equal(t, "emp-1", claim("employee_id"))
	assert.Equal(t, "manager", claim("role"))
	assert.Equal(t, "access", claim("type"))
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	t.Parallel()
	svc := newTestService()

	token, _, err := svc.GenerateRefreshToken("user-1")
	require.NoError(t, err)

	userID, err := svc.ParseRefreshToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
}

func TestParseRefreshTokenRejectsAccessToken(t *testing.T) {
	t.Parallel()
	svc := newTestService()

	token, _, err := svc.GenerateAccessToken("user-1", "sami", nil, user.RoleEmployee)
	require.NoError(t, err)

	_, err = svc.ParseRefreshToken(token)
	assert.Error(t, err)
}

func TestRevokedTokenRejected(t *testing.T) {
	t.Parallel()
	svc := newTestService()

	token, _, err := svc.GenerateRefreshToken("user-1")
	require.NoError(t, err)

	svc.RevokeToken(token)
	assert.True(t, svc.IsTokenRevoked(token))

	_, err = svc.ParseRefreshToken(token)
	assert.Error(t, err)
}

func TestRefreshTokenCookie(t *testing.T) {
	t.Parallel()
	svc := newTestService()

	cookie := svc.RefreshTokenCookie("tok", 1700000000)
	assert.Equal(t, "refresh_token", cookie.Name)
	assert.Equal(t, "tok", cookie.Value)
	assert.True(t, cookie.HttpOnly)
}
